package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/velvetrow/salon-booking/internal/session"
)

const ContextSession = "session"

// SessionMiddleware attaches the request's session to the gin context and
// persists it to Redis after the handler chain runs.
func SessionMiddleware(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := store.FromRequest(c)
		c.Set(ContextSession, sess)

		c.Next()

		_ = sess.Persist(c.Request.Context())
	}
}

// GetSession returns the session attached by SessionMiddleware.
func GetSession(c *gin.Context) *session.Session {
	sess, _ := c.MustGet(ContextSession).(*session.Session)
	return sess
}
