package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/drohack/GACKfilesQuest/internal/config"
	database "github.com/drohack/GACKfilesQuest/internal/db"
	"github.com/drohack/GACKfilesQuest/internal/models"
	"github.com/drohack/GACKfilesQuest/internal/qr"
	"github.com/drohack/GACKfilesQuest/internal/utils"
)

// qrgen renders one printable QR PNG per catalog entry. Each image encodes
// <base_url>/qr/<scan_code>, so scanning lands players on the discovery route.
func main() {
	outputDir := flag.String("out", "qrcodes", "output directory for generated PNGs")
	size := flag.Int("size", qr.DefaultSize, "image size in pixels")
	flag.Parse()

	cfg := config.Load()
	db := database.New(cfg)
	db.AutoMigrate()

	var videos []models.Video
	if err := db.DB.Order("id ASC").Find(&videos).Error; err != nil {
		log.Fatalf("❌ Failed to load catalog: %v", err)
	}
	if len(videos) == 0 {
		log.Fatal("No videos in catalog. Run 'questctl init' or add some first.")
	}

	baseURL := strings.TrimRight(cfg.Server.BaseURL, "/")
	log.Printf("Generating QR codes for %d quests (base URL %s)...", len(videos), baseURL)

	for _, v := range videos {
		safeTitle := utils.SafeFilename(v.Title, "quest")
		path := filepath.Join(*outputDir, fmt.Sprintf("%02d_%s.png", v.ID, safeTitle))
		content := fmt.Sprintf("%s/qr/%s", baseURL, v.ScanCode)

		if err := qr.WritePNG(content, path, *size); err != nil {
			log.Fatalf("❌ Failed to render %s: %v", path, err)
		}
		log.Printf("[%d] %s (%s) -> %s", v.ID, v.Title, v.ScanCode, path)
	}

	log.Printf("✅ All QR codes generated in: %s", *outputDir)
}
