package database

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/drohack/GACKfilesQuest/internal/models"
)

// SeedAdminUser creates the default operator account (admin/admin).
// Operators are expected to change the password via questctl reset-password.
func SeedAdminUser(db *gorm.DB) {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash default admin password: %v", err)
	}

	admin := models.User{
		Username:     "admin",
		PasswordHash: string(hash),
		IsAdmin:      true,
	}

	// UPSERT based on 'Username' to prevent duplicates on restart
	db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoNothing: true, // If it exists, leave it alone.
	}).Create(&admin)

	log.Println("🌱 Default admin user present (username: admin)")
}

// SeedVideos populates the catalog with the five cryptid body-part quests.
func SeedVideos(db *gorm.DB) {
	videos := []models.Video{
		{
			Filename: "head.mp4",
			Title:    "HEAD",
			Keyword:  "cranium",
			Hint:     "Scan the highest point of the location",
			ScanCode: "GACK_HEAD_7X9K2",
		},
		{
			Filename: "claws.mp4",
			Title:    "CLAWS",
			Keyword:  "talons",
			Hint:     "Look for evidence near the entrance",
			ScanCode: "GACK_CLAWS_3M8P5",
		},
		{
			Filename: "body.mp4",
			Title:    "BODY",
			Keyword:  "torso",
			Hint:     "Search the central area",
			ScanCode: "GACK_BODY_9Q4W7",
		},
		{
			Filename: "feet.mp4",
			Title:    "FEET",
			Keyword:  "limbs",
			Hint:     "Check near the ground level",
			ScanCode: "GACK_FEET_2J6R8",
		},
		{
			Filename: "tail.mp4",
			Title:    "TAIL",
			Keyword:  "appendage",
			Hint:     "Investigate the rear section",
			ScanCode: "GACK_TAIL_5H1N4",
		},
	}

	log.Printf("🌱 Seeding %d Videos...", len(videos))
	for _, v := range videos {
		db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "scan_code"}},
			DoNothing: true,
		}).Create(&v)
	}
}
