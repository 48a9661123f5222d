package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/drohack/GACKfilesQuest/internal/api/middleware"
	"github.com/drohack/GACKfilesQuest/internal/auth"
	"github.com/drohack/GACKfilesQuest/internal/metrics"
)

// AuthHandler renders the login page and manages the session cookie.
type AuthHandler struct {
	sessions *auth.Service
}

func NewAuthHandler(sessions *auth.Service) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// Index redirects to the status page or the login form depending on session.
func (h *AuthHandler) Index(c *gin.Context) {
	token, _ := c.Cookie(middleware.SessionCookie)
	if _, err := h.sessions.Lookup(token); err == nil {
		c.Redirect(http.StatusSeeOther, "/status")
		return
	}
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login verifies credentials and sets the HttpOnly session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	if username == "" || password == "" {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"Error": "Username and password are required",
		})
		return
	}

	session, err := h.sessions.Login(username, password)
	if err != nil {
		metrics.Logins.WithLabelValues("failed").Inc()
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"Error": "Invalid username or password",
		})
		return
	}

	metrics.Logins.WithLabelValues("ok").Inc()
	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, session.Token, maxAge, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/status")
}

// Logout deletes the server-side session and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil && token != "" {
		_ = h.sessions.Logout(token)
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/login")
}
