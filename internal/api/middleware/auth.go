package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/drohack/GACKfilesQuest/internal/auth"
	"github.com/drohack/GACKfilesQuest/internal/models"
)

// SessionCookie is the name of the HttpOnly login cookie.
const SessionCookie = "session"

const userKey = "current_user"

// RequireSession resolves the session cookie against the sessions table and
// redirects to /login when it is missing, unknown or expired.
func RequireSession(sessions *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(SessionCookie)

		user, err := sessions.Lookup(token)
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// RequireAdmin restricts a route to admin users.
// It MUST be used AFTER RequireSession.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin {
			c.HTML(http.StatusForbidden, "denied.html", gin.H{
				"Message": "Admin access required.",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user set by RequireSession, or nil.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
