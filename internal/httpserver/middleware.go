package httpserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"mavazimarket/internal/auth"
	"mavazimarket/internal/service/session"
)

const sessionContextKey = "mavazi.session"

func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}

// sessionMiddleware resolves the device session and feeds it the identity
// carried by the request: a valid bearer token observes Authenticated, no
// token observes Anonymous. A token that fails verification aborts with 401
// instead of silently downgrading to guest.
func sessionMiddleware(sessions *session.Manager, verifier auth.TokenVerifier, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		deviceID := strings.TrimSpace(c.GetHeader("X-Device-ID"))
		sess, ok := sessions.Resolve(deviceID)
		if !ok {
			respondError(c, http.StatusBadRequest, "X-Device-ID header is required")
			c.Abort()
			return
		}

		identity := session.AnonymousIdentity()
		if token := bearerToken(c); token != "" {
			userID, err := verifier.Verify(c.Request.Context(), token)
			if err != nil {
				respondError(c, http.StatusUnauthorized, "invalid or expired token")
				c.Abort()
				return
			}
			identity = session.AuthenticatedIdentity(userID)
		}

		if err := sess.Observe(c.Request.Context(), identity); err != nil {
			logger.Error().Str("device_id", deviceID).Err(err).Msg("identity observation failed")
			respondError(c, http.StatusServiceUnavailable, "session unavailable, retry shortly")
			c.Abort()
			return
		}

		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

func adminAuthMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" || c.GetHeader("X-API-Key") != apiKey {
			respondError(c, http.StatusUnauthorized, "invalid api key")
			c.Abort()
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func sessionFrom(c *gin.Context) *session.Session {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*session.Session)
	return sess
}
