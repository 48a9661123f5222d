package models

import "gorm.io/gorm"

// Video is one catalog entry of the hunt. The ScanCode is the static secret
// printed inside a QR image; the Keyword is what players type to unlock.
type Video struct {
	gorm.Model

	Filename string `gorm:"not null" json:"filename"`
	Title    string `gorm:"not null" json:"title"`
	Keyword  string `gorm:"not null" json:"keyword"`
	Hint     string `json:"hint"`
	ScanCode string `gorm:"uniqueIndex;not null" json:"scan_code"`
	IsBonus  bool   `gorm:"default:false" json:"is_bonus"`
}
