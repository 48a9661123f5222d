package models

import "time"

// CashoutToken is a short-lived, single-use token rendered as a QR image and
// redeemed once by an admin view. RedeemedAt stays nil until redemption.
type CashoutToken struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Token      string     `gorm:"uniqueIndex;not null" json:"token"`
	IssuedAt   time.Time  `gorm:"not null" json:"issued_at"`
	ExpiresAt  time.Time  `gorm:"not null" json:"expires_at"`
	RedeemedAt *time.Time `json:"redeemed_at"`
}
