// internal/interfaces/http/middleware/session.go
package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/zyra-atelier/storefront/internal/config"
	"github.com/zyra-atelier/storefront/internal/domain/session"
	"github.com/zyra-atelier/storefront/internal/pkg/token"
)

const sessionIDKey = "session_id"

// SessionProvider loads existing sessions and starts new ones
type SessionProvider interface {
	Start(ctx context.Context) (session.State, error)
	Get(ctx context.Context, id string) (session.State, error)
}

// Session resolves the shopper session from the session token header,
// cookie or bearer token. A missing, invalid or expired token starts a new
// session and the new token is returned in both the header and a cookie.
func Session(cfg *config.Config, tokens *token.Manager, sessions SessionProvider, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, ok := existingSession(c, cfg, tokens, sessions); ok {
			c.Set(sessionIDKey, id)
			c.Next()
			return
		}

		state, err := sessions.Start(c.Request.Context())
		if err != nil {
			logger.WithError(err).Error("Failed to start session")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to start session",
			})
			c.Abort()
			return
		}

		signed, err := tokens.Generate(state.ID)
		if err != nil {
			logger.WithError(err).Error("Failed to sign session token")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to start session",
			})
			c.Abort()
			return
		}

		c.Header(cfg.Session.HeaderName, signed)
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cfg.Session.CookieName, signed, int(cfg.Session.TTL.Seconds()), "/", "", cfg.Session.Secure, true)

		c.Set(sessionIDKey, state.ID)
		c.Next()
	}
}

func existingSession(c *gin.Context, cfg *config.Config, tokens *token.Manager, sessions SessionProvider) (string, bool) {
	raw := c.GetHeader(cfg.Session.HeaderName)
	if raw == "" {
		raw = token.ExtractTokenFromHeader(c.GetHeader("Authorization"))
	}
	if raw == "" {
		raw, _ = c.Cookie(cfg.Session.CookieName)
	}
	if raw == "" {
		return "", false
	}

	id, err := tokens.Validate(raw)
	if err != nil {
		return "", false
	}

	// Other store errors keep the id so the handler reports them.
	if _, err := sessions.Get(c.Request.Context(), id); errors.Is(err, session.ErrNotFound) {
		return "", false
	}
	return id, true
}

// SessionIDFromContext returns the session id set by Session
func SessionIDFromContext(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
