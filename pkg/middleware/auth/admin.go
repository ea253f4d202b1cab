package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/boutiquechat/pkg/logging"
	"github.com/Skotchmaster/boutiquechat/pkg/tokens"
)

// Authenticator validates a raw access token.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*tokens.AccessClaims, error)
}

type AdminMiddleware struct {
	Auth         Authenticator
	SecureCookie bool
}

func NewAdminMiddleware(auth Authenticator, secureCookie bool) *AdminMiddleware {
	return &AdminMiddleware{Auth: auth, SecureCookie: secureCookie}
}

func (m *AdminMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		l := logging.FromContext(ctx).With("middleware", "require_admin")

		raw := TokenFromRequest(c)
		if raw == "" {
			l.Warn("auth_failed", "status", 401, "reason", "missing access token")
			return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
		}

		claims, err := m.Auth.Authenticate(ctx, raw)
		if err != nil {
			c.SetCookie(tokens.DeleteCookie(tokens.AccessCookieName, "/", m.SecureCookie))
			l.Warn("auth_failed", "status", 401, "reason", "invalid access token", "error", err)
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid access token")
		}

		setUserContext(c, claims)
		return next(c)
	}
}

// TokenFromRequest reads the access token from the cookie, falling back to a Bearer header.
func TokenFromRequest(c echo.Context) string {
	if ck, err := c.Cookie(tokens.AccessCookieName); err == nil && ck.Value != "" {
		return ck.Value
	}
	h := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(h, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

func setUserContext(c echo.Context, claims *tokens.AccessClaims) {
	c.Set("user_id", claims.Subject)
	c.Set("role", claims.Role)
}
