package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/drohack/GACKfilesQuest/internal/api/middleware"
	"github.com/drohack/GACKfilesQuest/internal/models"
	"github.com/drohack/GACKfilesQuest/internal/storage"
)

// VideoHandler renders the video page and streams gated assets. The access
// gate is the entire anti-sharing mechanism: without a found record for
// (user, video) neither the page nor the file is served.
type VideoHandler struct {
	db      *gorm.DB
	storage *storage.Client
}

func NewVideoHandler(db *gorm.DB, st *storage.Client) *VideoHandler {
	return &VideoHandler{db: db, storage: st}
}

// hasFound is the access gate check.
func (h *VideoHandler) hasFound(userID, videoID uint) bool {
	var count int64
	h.db.Model(&models.FoundRecord{}).
		Where("user_id = ? AND video_id = ?", userID, videoID).
		Count(&count)
	return count > 0
}

// Show renders the video page with the unlock form (GET /video?id=N).
func (h *VideoHandler) Show(c *gin.Context) {
	user := middleware.CurrentUser(c)

	videoID, err := strconv.ParseUint(c.Query("id"), 10, 32)
	if err != nil {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{"Message": "Video ID required"})
		return
	}

	var video models.Video
	if err := h.db.First(&video, videoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.HTML(http.StatusNotFound, "error.html", gin.H{"Message": "Video not found"})
			return
		}
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Database error"})
		return
	}

	if !h.hasFound(user.ID, video.ID) {
		c.HTML(http.StatusForbidden, "denied.html", gin.H{
			"Message": "You haven't discovered this evidence yet. Scan its code first.",
		})
		return
	}

	var unlocked int64
	h.db.Model(&models.UnlockRecord{}).
		Where("user_id = ? AND video_id = ?", user.ID, video.ID).
		Count(&unlocked)

	c.HTML(http.StatusOK, "video.html", gin.H{
		"Video":      video,
		"IsUnlocked": unlocked > 0,
	})
}

// Serve streams the video file through the storage client (GET /videos/:filename).
func (h *VideoHandler) Serve(c *gin.Context) {
	user := middleware.CurrentUser(c)
	filename := c.Param("filename")

	var video models.Video
	if err := h.db.Where("filename = ?", filename).First(&video).Error; err != nil {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"Message": "Video not found"})
		return
	}

	if !h.hasFound(user.ID, video.ID) {
		c.HTML(http.StatusForbidden, "denied.html", gin.H{
			"Message": "You haven't discovered this evidence yet. Scan its code first.",
		})
		return
	}

	obj, err := h.storage.GetVideo(video.Filename)
	if err != nil {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"Message": "Video file missing from storage"})
		return
	}
	defer obj.Body.Close()

	if seeker, ok := obj.Body.(io.ReadSeeker); ok {
		http.ServeContent(c.Writer, c.Request, video.Filename, obj.LastModified, seeker)
		return
	}

	// Fallback for non-seekable streams (S3 backend)
	extraHeaders := map[string]string{
		"Accept-Ranges": "none",
	}
	c.DataFromReader(http.StatusOK, obj.ContentLength, obj.ContentType, obj.Body, extraHeaders)
}
