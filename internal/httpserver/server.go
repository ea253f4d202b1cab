package httpserver

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	loggingmw "github.com/Skotchmaster/boutiquechat/pkg/middleware/logging"
)

// New builds the echo instance with the shared middleware stack and routes.
func New(logger *slog.Logger, d *Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()

	e.Use(echomw.Recover())
	e.Use(loggingmw.RequestLogger(logger, "/health"))
	e.Use(echomw.CORS())

	Register(e, d)
	return e
}
