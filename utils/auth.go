// utils/auth.go
package utils

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"spa-admin/api"
)

const (
	sessionKey    = "session"
	SignInPath    = "/sign-in"
	RedirectHdr   = "X-Redirect"
	sessionCookie = "session"
)

// AuthMiddleware is the single place session expiry is checked. A valid
// session is stored on the context for controllers to scope their API client.
func AuthMiddleware(now func() time.Time) gin.HandlerFunc {
	if now == nil {
		now = time.Now
	}
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			if cookie, err := c.Cookie(sessionCookie); err == nil {
				token = cookie
			}
		}

		sess, err := api.ParseSession(token, now())
		if err != nil {
			msg := "Invalid Session"
			if errors.Is(err, api.ErrSessionExpired) {
				msg = "Session Expired"
			}
			ClearSessionCookie(c)
			c.Header(RedirectHdr, SignInPath)
			RespondWithError(c, http.StatusUnauthorized, msg)
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// SessionFrom returns the session stored by AuthMiddleware, or nil.
func SessionFrom(c *gin.Context) *api.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*api.Session)
	return sess
}

// SetSessionCookie stores the token for browser clients until it expires.
func SetSessionCookie(c *gin.Context, sess *api.Session, now time.Time) {
	maxAge := int(sess.ExpiresAt.Sub(now).Seconds())
	c.SetCookie(sessionCookie, sess.Token, maxAge, "/", "", true, true)
}

func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", true, true)
}
