package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/drohack/GACKfilesQuest/internal/models"
)

func setupAuthDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Session{}))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username, password string) models.User {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	user := models.User{Username: username, PasswordHash: hash}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TestLoginAndLookup(t *testing.T) {
	db := setupAuthDB(t)
	svc := NewService(db, 24)
	user := createUser(t, db, "mulder", "trustno1")

	session, err := svc.Login("mulder", "trustno1")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, user.ID, session.UserID)
	assert.True(t, session.ExpiresAt.After(time.Now().Add(23*time.Hour)))

	got, err := svc.Lookup(session.Token)
	require.NoError(t, err)
	assert.Equal(t, "mulder", got.Username)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := setupAuthDB(t)
	svc := NewService(db, 24)
	createUser(t, db, "mulder", "trustno1")

	_, err := svc.Login("mulder", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("scully", "trustno1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLookupRejectsExpiredSession(t *testing.T) {
	db := setupAuthDB(t)
	svc := NewService(db, 24)
	user := createUser(t, db, "mulder", "trustno1")

	expired := models.Session{
		Token:     "expired-token",
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, db.Create(&expired).Error)

	_, err := svc.Lookup("expired-token")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestLogoutInvalidatesToken(t *testing.T) {
	db := setupAuthDB(t)
	svc := NewService(db, 24)
	createUser(t, db, "mulder", "trustno1")

	session, err := svc.Login("mulder", "trustno1")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(session.Token))

	_, err = svc.Lookup(session.Token)
	assert.ErrorIs(t, err, ErrNoSession)

	// Logging out an unknown token is not an error.
	assert.NoError(t, svc.Logout("no-such-token"))
}

func TestTokensAreUnique(t *testing.T) {
	db := setupAuthDB(t)
	svc := NewService(db, 1)
	createUser(t, db, "mulder", "trustno1")

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		session, err := svc.Login("mulder", "trustno1")
		require.NoError(t, err)
		assert.False(t, seen[session.Token], "duplicate session token")
		seen[session.Token] = true
	}
}
