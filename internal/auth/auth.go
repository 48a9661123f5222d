package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/drohack/GACKfilesQuest/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNoSession          = errors.New("no valid session")
)

// Service manages opaque server-side session tokens. Tokens are stored in the
// sessions table; expired rows are ignored at lookup rather than swept.
type Service struct {
	db  *gorm.DB
	ttl time.Duration
}

func NewService(db *gorm.DB, sessionHours int) *Service {
	return &Service{
		db:  db,
		ttl: time.Duration(sessionHours) * time.Hour,
	}
}

func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Login verifies the password against the stored bcrypt hash and creates a
// fresh session token on success.
func (s *Service) Login(username, password string) (*models.Session, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	session := models.Session{
		Token:     newToken(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, err
	}

	return &session, nil
}

// Lookup resolves a session token to its user, rejecting expired tokens.
func (s *Service) Lookup(token string) (*models.User, error) {
	if token == "" {
		return nil, ErrNoSession
	}

	var session models.Session
	err := s.db.Where("token = ? AND expires_at > ?", token, time.Now()).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoSession
		}
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, session.UserID).Error; err != nil {
		return nil, ErrNoSession
	}

	return &user, nil
}

// Logout deletes the session row. Deleting an unknown token is not an error.
func (s *Service) Logout(token string) error {
	return s.db.Where("token = ?", token).Delete(&models.Session{}).Error
}

// HashPassword wraps bcrypt for user creation and password resets.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func newToken() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(err) // crypto/rand never fails on supported platforms
	}
	return base64.RawURLEncoding.EncodeToString(buf)
}
