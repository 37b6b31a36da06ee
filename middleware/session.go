package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookie is the name of the cookie carrying the session id.
const SessionCookie = "session_id"

// sessionKey is the gin context key the session id is stored under.
const sessionKey = "session_id"

// EnsureSession reads the session id cookie, minting a fresh uuid and setting
// the cookie when the client has none, and puts the id on the request context
// for the cart and checkout handlers.
func EnsureSession(c *gin.Context) {
	sessionID, err := c.Cookie(SessionCookie)
	if err != nil || sessionID == "" {
		sessionID = uuid.NewString()
		c.SetCookie(SessionCookie, sessionID, 0, "/", "", false, true)
	}
	c.Set(sessionKey, sessionID)
	c.Next()
}

// SessionID returns the session id placed on the context by EnsureSession.
// Handlers behind the middleware can rely on it being present; the boolean
// guards direct handler tests that skip the middleware.
func SessionID(c *gin.Context) (string, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
