// internal/interfaces/http/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/kraken-dive/storefront-backend/internal/session"
)

const (
	// SessionContextKey is where the middleware stores the resolved session
	SessionContextKey = "storefront_session"
	// SessionHeader carries the session id for API clients
	SessionHeader = "X-Session-ID"
	// SessionCookie carries the session id for browser clients
	SessionCookie = "storefront_session"
)

// Session resolves the caller's storefront session from the X-Session-ID
// header or the session cookie, creating one on first touch, and makes it
// available on the request context.
func Session(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Request.Header.Get(SessionHeader)
		if id == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				id = cookie
			}
		}

		s := manager.Get(id)

		if s.ID != id {
			c.SetCookie(SessionCookie, s.ID, 0, "/", "", false, true)
		}
		c.Header(SessionHeader, s.ID)
		c.Set(SessionContextKey, s)

		c.Next()
	}
}

// GetSession returns the session resolved for this request
func GetSession(c *gin.Context) *session.Session {
	value, exists := c.Get(SessionContextKey)
	if !exists {
		return nil
	}
	s, ok := value.(*session.Session)
	if !ok {
		return nil
	}
	return s
}
