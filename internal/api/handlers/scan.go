package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/drohack/GACKfilesQuest/internal/api/middleware"
	"github.com/drohack/GACKfilesQuest/internal/metrics"
	"github.com/drohack/GACKfilesQuest/internal/models"
)

var errUnknownCode = errors.New("unknown scan code")

// ScanHandler maps submitted scan codes to catalog entries and records
// discovery. Codes are machine-printed secrets and compare exactly.
type ScanHandler struct {
	db *gorm.DB
}

func NewScanHandler(db *gorm.DB) *ScanHandler {
	return &ScanHandler{db: db}
}

// Submit handles the scanner page form (POST /scan).
func (h *ScanHandler) Submit(c *gin.Context) {
	h.verify(c, strings.TrimSpace(c.PostForm("code")))
}

// FromURL handles the printed QR images, which encode /qr/<scan_code>.
func (h *ScanHandler) FromURL(c *gin.Context) {
	h.verify(c, c.Param("code"))
}

func (h *ScanHandler) verify(c *gin.Context, code string) {
	user := middleware.CurrentUser(c)

	videoID, err := h.recordDiscovery(user.ID, code)
	if err != nil {
		if errors.Is(err, errUnknownCode) {
			metrics.Scans.WithLabelValues("miss").Inc()
			c.HTML(http.StatusNotFound, "error.html", gin.H{
				"Message": "That code doesn't match any evidence. Keep looking.",
			})
			return
		}
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Database error"})
		return
	}

	metrics.Scans.WithLabelValues("hit").Inc()
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/video?id=%d", videoID))
}

// recordDiscovery inserts the found record if it doesn't already exist and
// returns the matched video id. Re-scanning a code is a no-op.
func (h *ScanHandler) recordDiscovery(userID uint, code string) (uint, error) {
	if code == "" {
		return 0, errUnknownCode
	}

	var video models.Video
	if err := h.db.Where("scan_code = ?", code).First(&video).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errUnknownCode
		}
		return 0, err
	}

	found := models.FoundRecord{UserID: userID, VideoID: video.ID}
	if err := h.db.Where("user_id = ? AND video_id = ?", userID, video.ID).
		FirstOrCreate(&found).Error; err != nil {
		return 0, err
	}

	return video.ID, nil
}
