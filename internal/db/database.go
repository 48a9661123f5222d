package database

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/drohack/GACKfilesQuest/internal/config"
	"github.com/drohack/GACKfilesQuest/internal/models"
)

type Client struct {
	DB *gorm.DB
}

func New(cfg *config.Config) *Client {
	db, err := gorm.Open(sqlite.Open(cfg.Database.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("❌ Failed to open database %s: %v", cfg.Database.Path, err)
	}

	// SQLite serializes writers; a single connection avoids "database is
	// locked" errors from concurrent request goroutines.
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	log.Println("✅ Database Connected")

	return &Client{DB: db}
}

// AutoMigrate creates/updates tables based on struct definitions
func (c *Client) AutoMigrate() {
	log.Println("Running Database Migrations...")
	err := c.DB.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Video{},
		&models.FoundRecord{},
		&models.UnlockRecord{},
		&models.CashoutToken{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("✅ Migrations Complete")
}
