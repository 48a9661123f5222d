package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/drohack/GACKfilesQuest/internal/api/middleware"
	"github.com/drohack/GACKfilesQuest/internal/metrics"
	"github.com/drohack/GACKfilesQuest/internal/models"
)

// UnlockHandler checks submitted keywords and records unlocks. The video page
// posts here via fetch, so responses are JSON banners rather than full pages.
type UnlockHandler struct {
	db *gorm.DB
}

func NewUnlockHandler(db *gorm.DB) *UnlockHandler {
	return &UnlockHandler{db: db}
}

// Unlock handles POST /unlock with video_id and keyword form fields.
func (h *UnlockHandler) Unlock(c *gin.Context) {
	user := middleware.CurrentUser(c)

	videoID, err := strconv.ParseUint(c.PostForm("video_id"), 10, 32)
	keyword := strings.TrimSpace(c.PostForm("keyword"))
	if err != nil || keyword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request"})
		return
	}

	var video models.Video
	if err := h.db.First(&video, videoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Video not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Database error"})
		return
	}

	// An unlock must never exist without a found record, so the check lives
	// here and not just in the UI flow.
	var found int64
	h.db.Model(&models.FoundRecord{}).
		Where("user_id = ? AND video_id = ?", user.ID, video.ID).
		Count(&found)
	if found == 0 {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Scan this evidence before unlocking it"})
		return
	}

	// Keywords are typed by humans, so the compare is case-insensitive.
	if !strings.EqualFold(keyword, video.Keyword) {
		metrics.Unlocks.WithLabelValues("wrong").Inc()
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "Incorrect keyword"})
		return
	}

	unlock := models.UnlockRecord{UserID: user.ID, VideoID: video.ID}
	if err := h.db.Where("user_id = ? AND video_id = ?", user.ID, video.ID).
		FirstOrCreate(&unlock).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Database error"})
		return
	}

	metrics.Unlocks.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Video unlocked successfully!"})
}
