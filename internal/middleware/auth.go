package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smilepoint/dental-clinic/internal/session"
)

const (
	ContextUserID      = "userID"
	ContextSessionID   = "sessionID"
	ContextPhoneNumber = "phoneNumber"
)

// RequireAuth gates a route on an authenticated session. Anonymous and
// pending-signup sessions are rejected the same way as missing ones.
func RequireAuth(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(session.CookieName)
		if err != nil || cookie == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		sid, state, err := sessions.Load(c.Request.Context(), cookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		if state.Kind != session.KindAuthenticated {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		c.Set(ContextSessionID, sid)
		c.Set(ContextUserID, state.UserID)
		c.Set(ContextPhoneNumber, state.PhoneNumber)

		c.Next()
	}
}
