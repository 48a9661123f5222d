package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/drohack/GACKfilesQuest/internal/auth"
	"github.com/drohack/GACKfilesQuest/internal/config"
	database "github.com/drohack/GACKfilesQuest/internal/db"
	"github.com/drohack/GACKfilesQuest/internal/models"
)

// questctl is the operator's setup/maintenance tool: catalog listing and
// editing, user creation and password resets, without touching the web UI.
func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg := config.Load()
	db := database.New(cfg)
	db.AutoMigrate()

	switch os.Args[1] {
	case "init":
		database.SeedAdminUser(db.DB)
		database.SeedVideos(db.DB)
		log.Println("Database initialized. Default credentials: admin / admin")
		log.Println("Remember to change the default password!")

	case "list-videos":
		var videos []models.Video
		if err := db.DB.Order("id ASC").Find(&videos).Error; err != nil {
			log.Fatalf("[X] Failed to list videos: %v", err)
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tFILENAME\tKEYWORD\tSCAN CODE\tBONUS\tHINT")
		for _, v := range videos {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%v\t%s\n",
				v.ID, v.Title, v.Filename, v.Keyword, v.ScanCode, v.IsBonus, v.Hint)
		}
		w.Flush()

	case "add-video":
		// add-video <filename> <title> <keyword> <scan_code> [hint]
		if len(os.Args) < 6 {
			usage()
			os.Exit(1)
		}
		video := models.Video{
			Filename: os.Args[2],
			Title:    os.Args[3],
			Keyword:  os.Args[4],
			ScanCode: os.Args[5],
		}
		if len(os.Args) > 6 {
			video.Hint = os.Args[6]
		}
		if err := db.DB.Create(&video).Error; err != nil {
			log.Fatalf("[X] Failed to add video (scan code unique?): %v", err)
		}
		log.Printf("[OK] Video '%s' added with id %d", video.Title, video.ID)

	case "edit-video":
		// edit-video <id> <field> <value>
		if len(os.Args) != 5 {
			usage()
			os.Exit(1)
		}
		id, err := strconv.Atoi(os.Args[2])
		if err != nil {
			log.Fatalf("[X] Invalid video id: %s", os.Args[2])
		}
		field, value := os.Args[3], os.Args[4]
		allowed := map[string]bool{
			"filename": true, "title": true, "keyword": true,
			"hint": true, "scan_code": true, "is_bonus": true,
		}
		if !allowed[field] {
			log.Fatalf("[X] Unknown field %q", field)
		}
		result := db.DB.Model(&models.Video{}).Where("id = ?", id).Update(field, value)
		if result.Error != nil {
			log.Fatalf("[X] Failed to edit video: %v", result.Error)
		}
		if result.RowsAffected == 0 {
			log.Fatalf("[X] No video with id %d", id)
		}
		log.Printf("[OK] Video %d updated: %s = %s", id, field, value)

	case "add-user":
		// add-user <username> <password> [--admin]
		if len(os.Args) < 4 {
			usage()
			os.Exit(1)
		}
		hash, err := auth.HashPassword(os.Args[3])
		if err != nil {
			log.Fatalf("[X] Failed to hash password: %v", err)
		}
		user := models.User{
			Username:     os.Args[2],
			PasswordHash: hash,
			IsAdmin:      len(os.Args) > 4 && os.Args[4] == "--admin",
		}
		if err := db.DB.Create(&user).Error; err != nil {
			log.Fatalf("[X] User '%s' already exists!", user.Username)
		}
		log.Printf("[OK] User '%s' created successfully!", user.Username)

	case "reset-password":
		// reset-password <username> <new_password>
		if len(os.Args) != 4 {
			usage()
			os.Exit(1)
		}
		hash, err := auth.HashPassword(os.Args[3])
		if err != nil {
			log.Fatalf("[X] Failed to hash password: %v", err)
		}
		var user models.User
		if err := db.DB.Where("username = ?", os.Args[2]).First(&user).Error; err != nil {
			log.Fatalf("[X] No user named '%s'", os.Args[2])
		}
		err = db.DB.Model(&user).Update("password_hash", hash).Error
		if err != nil {
			log.Fatalf("[X] Failed to reset password: %v", err)
		}
		// Old sessions die with the old password.
		db.DB.Where("user_id = ?", user.ID).Delete(&models.Session{})
		log.Printf("[OK] Password reset for '%s'", user.Username)

	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Usage:")
	fmt.Println("  questctl init                                              # Migrate and seed defaults")
	fmt.Println("  questctl list-videos")
	fmt.Println("  questctl add-video <filename> <title> <keyword> <scan_code> [hint]")
	fmt.Println("  questctl edit-video <id> <field> <value>")
	fmt.Println("  questctl add-user <username> <password> [--admin]")
	fmt.Println("  questctl reset-password <username> <new_password>")
}
