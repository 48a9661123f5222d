package cashout

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/drohack/GACKfilesQuest/internal/models"
)

var (
	ErrUnknownToken    = errors.New("unknown cashout token")
	ErrTokenExpired    = errors.New("cashout token expired")
	ErrAlreadyRedeemed = errors.New("cashout token already redeemed")
)

// Issuer hands out short-lived single-use cashout tokens. The stored row is
// authoritative for expiry and single use; the QR image encodes a signed JWT
// carrying the token as jti so a scanned payload can be sanity-checked before
// the redemption view hits the database.
type Issuer struct {
	db         *gorm.DB
	window     time.Duration
	signingKey []byte
}

func NewIssuer(db *gorm.DB, windowMinutes int, signingKey string) *Issuer {
	return &Issuer{
		db:         db,
		window:     time.Duration(windowMinutes) * time.Minute,
		signingKey: []byte(signingKey),
	}
}

// Issue creates a token valid for the configured window.
func (i *Issuer) Issue() (*models.CashoutToken, error) {
	now := time.Now()
	token := models.CashoutToken{
		Token:     uuid.NewString(),
		IssuedAt:  now,
		ExpiresAt: now.Add(i.window),
	}
	if err := i.db.Create(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

// Get fetches a token row by its string.
func (i *Issuer) Get(tokenStr string) (*models.CashoutToken, error) {
	var token models.CashoutToken
	if err := i.db.Where("token = ?", tokenStr).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownToken
		}
		return nil, err
	}
	return &token, nil
}

// Payload returns the signed JWT string encoded into the QR image.
func (i *Issuer) Payload(t *models.CashoutToken) (string, error) {
	claims := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        t.Token,
		IssuedAt:  jwt.NewNumericDate(t.IssuedAt),
		ExpiresAt: jwt.NewNumericDate(t.ExpiresAt),
		Subject:   "cashout",
	})
	return claims.SignedString(i.signingKey)
}

// ParsePayload verifies a scanned JWT payload and extracts the token string.
func (i *Issuer) ParsePayload(payload string) (string, error) {
	token, err := jwt.ParseWithClaims(payload, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return i.signingKey, nil
	})
	if err != nil || !token.Valid {
		return "", ErrUnknownToken
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.ID == "" {
		return "", ErrUnknownToken
	}
	return claims.ID, nil
}

// Redeem marks the token redeemed exactly once. Expiry is enforced at
// redemption time against the stored issue time + window.
func (i *Issuer) Redeem(tokenStr string) (*models.CashoutToken, error) {
	var token models.CashoutToken
	if err := i.db.Where("token = ?", tokenStr).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownToken
		}
		return nil, err
	}

	if token.RedeemedAt != nil {
		return &token, ErrAlreadyRedeemed
	}
	if time.Now().After(token.ExpiresAt) {
		return &token, ErrTokenExpired
	}

	// Guard the flip with the null check so two concurrent redemptions
	// can't both succeed.
	now := time.Now()
	result := i.db.Model(&models.CashoutToken{}).
		Where("token = ? AND redeemed_at IS NULL", tokenStr).
		Update("redeemed_at", now)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return &token, ErrAlreadyRedeemed
	}

	token.RedeemedAt = &now
	return &token, nil
}
