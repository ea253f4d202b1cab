package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/boutiquechat/internal/service"
	"github.com/Skotchmaster/boutiquechat/internal/transport"
	"github.com/Skotchmaster/boutiquechat/pkg/logging"
	middleware "github.com/Skotchmaster/boutiquechat/pkg/middleware/auth"
	"github.com/Skotchmaster/boutiquechat/pkg/middleware/csrf"
	"github.com/Skotchmaster/boutiquechat/pkg/tokens"
)

type AuthHTTP struct {
	Svc  *service.AuthService
	CSRF csrf.Config
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := bind(c, l, "login_error", &req); err != nil {
		return err
	}

	res, err := h.Svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		return fail(l, "login_error", err, "login failed")
	}

	csrfToken, err := csrf.Issue(c, h.CSRF)
	if err != nil {
		return fail(l, "login_error", err, "login failed")
	}

	c.SetCookie(tokens.CreateCookie(tokens.AccessCookieName, res.AccessToken, "/", res.AccessExp, h.CSRF.Secure))
	l.Info("login_successful", "username", req.Username)

	return c.JSON(http.StatusOK, echo.Map{
		"access_token": res.AccessToken,
		"expires_at":   res.AccessExp.Unix(),
		"csrf_token":   csrfToken,
	})
}

func (h *AuthHTTP) LogOut(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.logout")

	if raw := middleware.TokenFromRequest(c); raw != "" {
		if err := h.Svc.SignOut(ctx, raw); err != nil {
			c.SetCookie(tokens.DeleteCookie(tokens.AccessCookieName, "/", h.CSRF.Secure))
			return fail(l, "logout_error", err, "cannot revoke token")
		}
	}

	c.SetCookie(tokens.DeleteCookie(tokens.AccessCookieName, "/", h.CSRF.Secure))
	l.Info("logout_successful")
	return c.JSON(http.StatusOK, echo.Map{"message": "logged out"})
}
