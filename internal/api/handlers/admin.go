package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/drohack/GACKfilesQuest/internal/auth"
	"github.com/drohack/GACKfilesQuest/internal/models"
	"github.com/drohack/GACKfilesQuest/internal/storage"
)

// AdminHandler serves the operator panel: inline catalog editing, user
// management and password resets.
type AdminHandler struct {
	db      *gorm.DB
	storage *storage.Client
}

func NewAdminHandler(db *gorm.DB, st *storage.Client) *AdminHandler {
	return &AdminHandler{db: db, storage: st}
}

// AdminVideo is a catalog row plus whether its asset is actually present in
// the video store, so operators spot missing files before the event starts.
type AdminVideo struct {
	models.Video
	AssetPresent bool
}

// Panel renders the admin page (GET /admin).
func (h *AdminHandler) Panel(c *gin.Context) {
	var videos []models.Video
	if err := h.db.Order("id ASC").Find(&videos).Error; err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Database error"})
		return
	}

	var users []models.User
	if err := h.db.Order("id ASC").Find(&users).Error; err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Database error"})
		return
	}

	rows := make([]AdminVideo, 0, len(videos))
	for _, v := range videos {
		present, err := h.storage.HasVideo(v.Filename)
		if err != nil {
			slog.Error("asset check failed", "filename", v.Filename, "error", err)
		}
		rows = append(rows, AdminVideo{Video: v, AssetPresent: present})
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"Videos": rows,
		"Users":  users,
	})
}

// CreateVideo adds a catalog row (POST /admin/videos).
func (h *AdminHandler) CreateVideo(c *gin.Context) {
	video := models.Video{
		Filename: strings.TrimSpace(c.PostForm("filename")),
		Title:    strings.TrimSpace(c.PostForm("title")),
		Keyword:  strings.TrimSpace(c.PostForm("keyword")),
		Hint:     strings.TrimSpace(c.PostForm("hint")),
		ScanCode: strings.TrimSpace(c.PostForm("scan_code")),
		IsBonus:  c.PostForm("is_bonus") == "on",
	}

	if video.Filename == "" || video.Title == "" || video.Keyword == "" || video.ScanCode == "" {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{"Message": "Filename, title, keyword and scan code are required"})
		return
	}

	if err := h.db.Create(&video).Error; err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to create video (scan code must be unique)"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin")
}

// UpdateVideo applies an inline edit form (POST /admin/videos/:id).
func (h *AdminHandler) UpdateVideo(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{"Message": "Invalid video ID"})
		return
	}

	var video models.Video
	if err := h.db.First(&video, id).Error; err != nil {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"Message": "Video not found"})
		return
	}

	video.Filename = strings.TrimSpace(c.PostForm("filename"))
	video.Title = strings.TrimSpace(c.PostForm("title"))
	video.Keyword = strings.TrimSpace(c.PostForm("keyword"))
	video.Hint = strings.TrimSpace(c.PostForm("hint"))
	video.ScanCode = strings.TrimSpace(c.PostForm("scan_code"))
	video.IsBonus = c.PostForm("is_bonus") == "on"

	if err := h.db.Save(&video).Error; err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to update video"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin")
}

// DeleteVideo removes a catalog row and the progress attached to it
// (POST /admin/videos/:id/delete).
func (h *AdminHandler) DeleteVideo(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{"Message": "Invalid video ID"})
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("video_id = ?", id).Delete(&models.UnlockRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id).Delete(&models.FoundRecord{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Video{}, id).Error
	})
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to delete video"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin")
}

// CreateUser adds a participant account (POST /admin/users).
func (h *AdminHandler) CreateUser(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	if username == "" || password == "" {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{"Message": "Username and password are required"})
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to hash password"})
		return
	}

	user := models.User{
		Username:     username,
		PasswordHash: hash,
		IsAdmin:      c.PostForm("is_admin") == "on",
	}
	if err := h.db.Create(&user).Error; err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to create user (username must be unique)"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin")
}

// ResetPassword replaces a user's password hash and drops their sessions
// (POST /admin/users/:id/password).
func (h *AdminHandler) ResetPassword(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{"Message": "Invalid user ID"})
		return
	}

	password := c.PostForm("password")
	if password == "" {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{"Message": "Password is required"})
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to hash password"})
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.User{}).Where("id = ?", id).Update("password_hash", hash)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("user_id = ?", id).Delete(&models.Session{}).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.HTML(http.StatusNotFound, "error.html", gin.H{"Message": "User not found"})
			return
		}
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to reset password"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin")
}
