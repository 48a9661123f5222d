package main

import (
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/drohack/GACKfilesQuest/internal/config"
	database "github.com/drohack/GACKfilesQuest/internal/db"
	"github.com/drohack/GACKfilesQuest/internal/metrics"
	"github.com/drohack/GACKfilesQuest/internal/storage"

	// Use an alias to prevent naming collisions with the 'server' variable
	apiserver "github.com/drohack/GACKfilesQuest/internal/api/server"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting GACKfiles Quest Server...")

	// 1. Setup Configuration
	cfg := config.Load()

	// 2. Initialize Infrastructure
	db := database.New(cfg)

	// 3. Run Database Migrations + Seed Defaults
	db.AutoMigrate()
	database.SeedAdminUser(db.DB)
	database.SeedVideos(db.DB)

	// 4. Storage
	store := storage.New(cfg)

	// 5. Setup Metrics
	metrics.Register()
	go func() {
		http.Handle("/_metrics", promhttp.Handler())
		log.Printf("📊 Metrics exposed at http://localhost%s/_metrics", cfg.Server.MetricsPort)
		if err := http.ListenAndServe(cfg.Server.MetricsPort, nil); err != nil {
			log.Printf("⚠️ Metrics server error: %v", err)
		}
	}()

	// 6. Start Server
	srv := apiserver.New(cfg, db, store)

	log.Printf("🚀 Quest server starting on %s", cfg.Server.Address)

	if err := srv.Start(cfg.Server.Address); err != nil {
		log.Fatalf("❌ Server failed to start: %v", err)
	}
}
