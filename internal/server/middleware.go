package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nafisnihal/product-management-backend/internal/auth"
)

const sessionKey = "session"

func setSession(c *gin.Context, identity auth.Identity) {
	c.Set(sessionKey, identity)
}

// GetSession returns the identity resolved by SessionAuthMiddleware for
// the current request, if any.
func GetSession(c *gin.Context) (auth.Identity, bool) {
	value, exists := c.Get(sessionKey)
	if !exists {
		return auth.Identity{}, false
	}

	identity, ok := value.(auth.Identity)
	return identity, ok
}

func respondUnauthorized(c *gin.Context, log zerolog.Logger, err error, message string) {
	log.Warn().Err(err).Str("path", c.Request.URL.Path).Msg(message)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
	})
}

// SessionAuthMiddleware gates protected routes behind a valid session
// cookie. On success the decoded identity is attached to the request
// context; on any failure the request is answered with 401 and never
// reaches the downstream handler. This path fails closed: errors that
// fit no known category still produce 401, never a pass-through.
func SessionAuthMiddleware(transport *auth.CookieTransport, codec *auth.Codec, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := transport.Read(c.Request)
		if err != nil {
			if errors.Is(err, auth.ErrNoToken) {
				respondUnauthorized(c, log, err, "Authentication required")
			} else {
				respondUnauthorized(c, log, err, "Authentication failed")
			}
			return
		}

		identity, err := codec.Decode(token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrNoToken):
				respondUnauthorized(c, log, err, "Authentication required")
			case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrExpiredToken):
				respondUnauthorized(c, log, err, "Invalid or expired token")
			default:
				respondUnauthorized(c, log, err, "Authentication failed")
			}
			return
		}

		setSession(c, identity)

		c.Next()
	}
}
