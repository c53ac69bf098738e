// Package middleware provides the per-request principal resolution and
// the credential-endpoint rate limit.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cafe_backend/internal/feature/auth/domain/entity"
)

const (
	// ContextPrincipal is the gin context key holding the request principal.
	ContextPrincipal = "principal"

	// ContextSessionID is the gin context key holding the resolved session id.
	ContextSessionID = "sessionID"

	// SessionCookie is the cookie carrying the signed session token.
	SessionCookie = "cafe_session"
)

// TokenParser verifies a session cookie value and extracts the session id.
// Following Go convention: interfaces are defined by the consumer (middleware), not the provider (token).
type TokenParser interface {
	Parse(tokenStr string) (string, error)
}

// SessionResolver maps a session id to the live user it belongs to.
type SessionResolver interface {
	Resolve(ctx context.Context, sessionID string) (*entity.User, error)
}

// CurrentUser resolves the request's principal from the session cookie.
// Every failure along the chain (no cookie, bad signature, dead
// session, deleted user) downgrades to the anonymous principal; the
// request itself never fails here.
func CurrentUser(parser TokenParser, resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := entity.Anonymous()

		raw, err := c.Cookie(SessionCookie)
		if err == nil && raw != "" {
			if sid, err := parser.Parse(raw); err == nil {
				user, err := resolver.Resolve(c.Request.Context(), sid)
				if err == nil {
					principal = entity.PrincipalFor(user)
					c.Set(ContextSessionID, sid)
				} else {
					slog.Debug("session resolution failed", "error", err)
				}
			}
		}

		c.Set(ContextPrincipal, principal)
		c.Next()
	}
}

// PrincipalFrom returns the principal resolved for this request, or
// anonymous when resolution middleware did not run.
func PrincipalFrom(c *gin.Context) entity.Principal {
	if v, ok := c.Get(ContextPrincipal); ok {
		if p, ok := v.(entity.Principal); ok {
			return p
		}
	}
	return entity.Anonymous()
}

// SessionIDFrom returns the session id resolved for this request, or
// empty when the request is anonymous.
func SessionIDFrom(c *gin.Context) string {
	return c.GetString(ContextSessionID)
}

// SetSessionCookie attaches the signed session token to the response.
func SetSessionCookie(c *gin.Context, token string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, int(ttl.Seconds()), "/", "", false, true)
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
}
