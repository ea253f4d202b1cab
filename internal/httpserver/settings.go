package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/boutiquechat/internal/service"
	"github.com/Skotchmaster/boutiquechat/internal/transport"
	"github.com/Skotchmaster/boutiquechat/pkg/logging"
)

type SettingsHTTP struct {
	Svc *service.SettingsService
}

// GetPublicSettings never exposes the image host credential.
func (h *SettingsHTTP) GetPublicSettings(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "settings.get_public")

	st, err := h.Svc.Get(ctx)
	if err != nil {
		return fail(l, "get_settings_error", err, "cannot get settings")
	}
	return c.JSON(http.StatusOK, st.Public())
}

func (h *SettingsHTTP) GetSettings(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "settings.get")

	st, err := h.Svc.Get(ctx)
	if err != nil {
		return fail(l, "get_settings_error", err, "cannot get settings")
	}
	return c.JSON(http.StatusOK, st)
}

func (h *SettingsHTTP) SaveSettings(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "settings.save")

	var req transport.SettingsRequest
	if err := bind(c, l, "save_settings_error", &req); err != nil {
		return err
	}

	st, err := h.Svc.Save(ctx, req)
	if err != nil {
		return fail(l, "save_settings_error", err, "save failed")
	}

	l.Info("save_settings_success")
	return c.JSON(http.StatusOK, st)
}
