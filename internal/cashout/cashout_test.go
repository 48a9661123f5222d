package cashout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/drohack/GACKfilesQuest/internal/models"
)

func setupIssuer(t *testing.T, windowMinutes int) *Issuer {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.CashoutToken{}))
	return NewIssuer(db, windowMinutes, "test-signing-key")
}

func TestIssueAndRedeem(t *testing.T) {
	issuer := setupIssuer(t, 15)

	token, err := issuer.Issue()
	require.NoError(t, err)
	assert.NotEmpty(t, token.Token)
	assert.Nil(t, token.RedeemedAt)

	redeemed, err := issuer.Redeem(token.Token)
	require.NoError(t, err)
	require.NotNil(t, redeemed.RedeemedAt)
}

func TestRedeemIsSingleUse(t *testing.T) {
	issuer := setupIssuer(t, 15)

	token, err := issuer.Issue()
	require.NoError(t, err)

	_, err = issuer.Redeem(token.Token)
	require.NoError(t, err)

	_, err = issuer.Redeem(token.Token)
	assert.ErrorIs(t, err, ErrAlreadyRedeemed)
}

func TestRedeemRejectsExpiredToken(t *testing.T) {
	issuer := setupIssuer(t, 15)

	token, err := issuer.Issue()
	require.NoError(t, err)

	// Age the token past its window.
	past := time.Now().Add(-time.Minute)
	require.NoError(t, issuer.db.Model(&models.CashoutToken{}).
		Where("token = ?", token.Token).
		Update("expires_at", past).Error)

	_, err = issuer.Redeem(token.Token)
	assert.ErrorIs(t, err, ErrTokenExpired)

	// Expired tokens stay unredeemed.
	got, err := issuer.Get(token.Token)
	require.NoError(t, err)
	assert.Nil(t, got.RedeemedAt)
}

func TestRedeemUnknownToken(t *testing.T) {
	issuer := setupIssuer(t, 15)

	_, err := issuer.Redeem("not-a-token")
	assert.ErrorIs(t, err, ErrUnknownToken)
}

func TestPayloadRoundTrip(t *testing.T) {
	issuer := setupIssuer(t, 15)

	token, err := issuer.Issue()
	require.NoError(t, err)

	payload, err := issuer.Payload(token)
	require.NoError(t, err)

	got, err := issuer.ParsePayload(payload)
	require.NoError(t, err)
	assert.Equal(t, token.Token, got)
}

func TestPayloadRejectsTampering(t *testing.T) {
	issuer := setupIssuer(t, 15)
	other := setupIssuer(t, 15)
	other.signingKey = []byte("different-key")

	token, err := issuer.Issue()
	require.NoError(t, err)

	payload, err := issuer.Payload(token)
	require.NoError(t, err)

	_, err = other.ParsePayload(payload)
	assert.ErrorIs(t, err, ErrUnknownToken)

	_, err = issuer.ParsePayload(payload + "x")
	assert.ErrorIs(t, err, ErrUnknownToken)
}
