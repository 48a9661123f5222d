package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/drohack/GACKfilesQuest/internal/cashout"
	"github.com/drohack/GACKfilesQuest/internal/metrics"
	"github.com/drohack/GACKfilesQuest/internal/qr"
)

// CashoutHandler issues the time-boxed cashout QR and redeems it once.
type CashoutHandler struct {
	issuer  *cashout.Issuer
	baseURL string
}

func NewCashoutHandler(issuer *cashout.Issuer, baseURL string) *CashoutHandler {
	return &CashoutHandler{issuer: issuer, baseURL: baseURL}
}

// Issue creates a fresh token and shows its QR page (POST /admin/cashout).
func (h *CashoutHandler) Issue(c *gin.Context) {
	token, err := h.issuer.Issue()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to issue cashout token"})
		return
	}

	c.HTML(http.StatusOK, "cashout.html", gin.H{
		"Token":     token.Token,
		"ExpiresAt": token.ExpiresAt,
		"ImageURL":  fmt.Sprintf("/admin/cashout/%s/qr.png", token.Token),
		"RedeemURL": fmt.Sprintf("%s/admin/cashout/%s", h.baseURL, token.Token),
	})
}

// QRImage renders the signed payload as a PNG (GET /admin/cashout/:token/qr.png).
// The QR encodes the redemption URL with the signed JWT attached, so a phone
// scan lands straight on the redemption view.
func (h *CashoutHandler) QRImage(c *gin.Context) {
	tokenStr := c.Param("token")

	token, err := h.issuer.Get(tokenStr)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	payload, err := h.issuer.Payload(token)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	png, err := qr.EncodePNG(fmt.Sprintf("%s/admin/cashout/%s?sig=%s", h.baseURL, tokenStr, payload), qr.DefaultSize)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// Redeem marks the token spent exactly once (GET /admin/cashout/:token).
func (h *CashoutHandler) Redeem(c *gin.Context) {
	tokenStr := c.Param("token")

	// Printed payloads carry a signature; verify it when present so a
	// mistyped or tampered QR fails before touching the token row.
	if sig := c.Query("sig"); sig != "" {
		signed, err := h.issuer.ParsePayload(sig)
		if err != nil || signed != tokenStr {
			metrics.CashoutRedemptions.WithLabelValues("invalid").Inc()
			c.HTML(http.StatusForbidden, "cashout_result.html", gin.H{
				"Success": false,
				"Message": "This cashout code is not genuine.",
			})
			return
		}
	}

	token, err := h.issuer.Redeem(tokenStr)
	switch {
	case err == nil:
		metrics.CashoutRedemptions.WithLabelValues("ok").Inc()
		c.HTML(http.StatusOK, "cashout_result.html", gin.H{
			"Success":    true,
			"Message":    "Cashout redeemed. Pay out the prize!",
			"RedeemedAt": token.RedeemedAt,
		})
	case errors.Is(err, cashout.ErrTokenExpired):
		metrics.CashoutRedemptions.WithLabelValues("expired").Inc()
		c.HTML(http.StatusGone, "cashout_result.html", gin.H{
			"Success": false,
			"Message": "This cashout code has expired.",
		})
	case errors.Is(err, cashout.ErrAlreadyRedeemed):
		metrics.CashoutRedemptions.WithLabelValues("spent").Inc()
		c.HTML(http.StatusGone, "cashout_result.html", gin.H{
			"Success": false,
			"Message": "This cashout code was already redeemed.",
		})
	case errors.Is(err, cashout.ErrUnknownToken):
		metrics.CashoutRedemptions.WithLabelValues("invalid").Inc()
		c.HTML(http.StatusNotFound, "cashout_result.html", gin.H{
			"Success": false,
			"Message": "Unknown cashout code.",
		})
	default:
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Database error"})
	}
}
