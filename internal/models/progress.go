package models

import "time"

// FoundRecord marks that a user has submitted the correct scan code for a
// video at least once. The composite unique index makes discovery idempotent.
type FoundRecord struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	UserID  uint      `gorm:"not null;uniqueIndex:idx_found_user_video" json:"user_id"`
	VideoID uint      `gorm:"not null;uniqueIndex:idx_found_user_video" json:"video_id"`
	FoundAt time.Time `gorm:"autoCreateTime" json:"found_at"`
}

// UnlockRecord marks that the user additionally supplied the correct keyword.
// An unlock row must never exist without a matching found row; the unlock
// handler enforces that before inserting.
type UnlockRecord struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_unlock_user_video" json:"user_id"`
	VideoID    uint      `gorm:"not null;uniqueIndex:idx_unlock_user_video" json:"video_id"`
	UnlockedAt time.Time `gorm:"autoCreateTime" json:"unlocked_at"`
}
