package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/drohack/GACKfilesQuest/internal/api/middleware"
	"github.com/drohack/GACKfilesQuest/internal/models"
)

// StatusHandler renders the player progress page.
type StatusHandler struct {
	db *gorm.DB
}

func NewStatusHandler(db *gorm.DB) *StatusHandler {
	return &StatusHandler{db: db}
}

// StatusEntry is one catalog row annotated with the player's progress.
type StatusEntry struct {
	ID         uint
	Title      string
	Hint       string
	IsBonus    bool
	FoundAt    *time.Time
	UnlockedAt *time.Time
}

// Status partitions the catalog into unlocked, found and missing for the
// current user.
func (h *StatusHandler) Status(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var videos []models.Video
	if err := h.db.Order("id ASC").Find(&videos).Error; err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Database error"})
		return
	}

	foundAt := make(map[uint]time.Time)
	var found []models.FoundRecord
	h.db.Where("user_id = ?", user.ID).Find(&found)
	for _, f := range found {
		foundAt[f.VideoID] = f.FoundAt
	}

	unlockedAt := make(map[uint]time.Time)
	var unlocks []models.UnlockRecord
	h.db.Where("user_id = ?", user.ID).Find(&unlocks)
	for _, u := range unlocks {
		unlockedAt[u.VideoID] = u.UnlockedAt
	}

	var unlockedVideos, foundVideos, missingVideos []StatusEntry
	for _, v := range videos {
		entry := StatusEntry{
			ID:      v.ID,
			Title:   v.Title,
			Hint:    v.Hint,
			IsBonus: v.IsBonus,
		}
		if t, ok := foundAt[v.ID]; ok {
			entry.FoundAt = &t
		}
		if t, ok := unlockedAt[v.ID]; ok {
			entry.UnlockedAt = &t
		}

		switch {
		case entry.UnlockedAt != nil:
			unlockedVideos = append(unlockedVideos, entry)
		case entry.FoundAt != nil:
			foundVideos = append(foundVideos, entry)
		default:
			missingVideos = append(missingVideos, entry)
		}
	}

	c.HTML(http.StatusOK, "status.html", gin.H{
		"Username":       user.Username,
		"IsAdmin":        user.IsAdmin,
		"UnlockedVideos": unlockedVideos,
		"FoundVideos":    foundVideos,
		"MissingVideos":  missingVideos,
	})
}

// ScanPage renders the in-browser QR scanner.
func (h *StatusHandler) ScanPage(c *gin.Context) {
	c.HTML(http.StatusOK, "qrscan.html", gin.H{})
}
