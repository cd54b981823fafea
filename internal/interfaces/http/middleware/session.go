package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pickleworks/backend/internal/domain/shopping"
	"github.com/pickleworks/backend/internal/infrastructure/auth"
	"github.com/pickleworks/backend/internal/infrastructure/config"
	"github.com/pickleworks/backend/internal/infrastructure/logger"
	"github.com/pickleworks/backend/internal/interfaces/http/dto"
)

// SessionIDContextKey is the gin context key holding the session ID
const SessionIDContextKey = "session_id"

// SessionMiddlewareConfig wires the session middleware
type SessionMiddlewareConfig struct {
	Tokens *auth.SessionTokenService
	Cookie config.SessionConfig
	Logger *zap.Logger
}

// Session resolves the session cookie on every request. A valid cookie
// yields its session ID; a missing or invalid cookie gets a fresh
// session ID and a new signed cookie. Handlers can rely on a session ID
// always being present.
func Session(cfg SessionMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := ""

		if cookie, err := c.Cookie(cfg.Cookie.CookieName); err == nil && cookie != "" {
			id, err := cfg.Tokens.Validate(cookie)
			if err == nil {
				sessionID = id
			} else if cfg.Logger != nil {
				cfg.Logger.Debug("rejecting session cookie", zap.Error(err))
			}
		}

		if sessionID == "" {
			id, token, _, err := cfg.Tokens.Issue()
			if err != nil {
				if cfg.Logger != nil {
					cfg.Logger.Error("failed to issue session token", zap.Error(err))
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(
					dto.ErrCodeInternal,
					"Failed to establish session",
				))
				return
			}
			sessionID = id
			setSessionCookie(c, cfg, token, int(cfg.Tokens.TTL().Seconds()))
		}

		c.Set(SessionIDContextKey, sessionID)
		base := cfg.Logger
		if base == nil {
			base = logger.FromContext(c.Request.Context())
		}
		ctx, _ := logger.WithSessionID(c.Request.Context(), base, sessionID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// ClearSessionCookie expires the session cookie on the client
func ClearSessionCookie(c *gin.Context, cfg SessionMiddlewareConfig) {
	setSessionCookie(c, cfg, "", -1)
}

func setSessionCookie(c *gin.Context, cfg SessionMiddlewareConfig, value string, maxAge int) {
	path := cfg.Cookie.Path
	if path == "" {
		path = "/"
	}
	c.SetSameSite(parseSameSite(cfg.Cookie.SameSite))
	c.SetCookie(cfg.Cookie.CookieName, value, maxAge, path, cfg.Cookie.Domain, cfg.Cookie.Secure, true)
}

func parseSameSite(mode string) http.SameSite {
	switch mode {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

// GetSessionID returns the session ID resolved by the Session middleware
func GetSessionID(c *gin.Context) string {
	return c.GetString(SessionIDContextKey)
}

// RequireIdentity rejects requests whose session has no authenticated
// identity bound to it
func RequireIdentity(sessions shopping.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := GetSessionID(c)
		if sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				dto.ErrCodeUnauthorized,
				"Authentication required",
			))
			return
		}

		session, err := sessions.Get(c.Request.Context(), sessionID)
		if err != nil || !session.IsAuthenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				dto.ErrCodeUnauthorized,
				"Authentication required",
			))
			return
		}

		c.Next()
	}
}
