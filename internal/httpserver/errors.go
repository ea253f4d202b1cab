package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Skotchmaster/boutiquechat/internal/service"
	"github.com/Skotchmaster/boutiquechat/internal/upload"
)

// fail logs err under event and returns the matching HTTP error.
// reason is the message clients see for unexpected failures.
func fail(l *slog.Logger, event string, err error, reason string) error {
	var provErr *upload.ProviderError

	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, upload.ErrEmptyImage):
		l.Warn(event, "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	case errors.Is(err, service.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		l.Warn(event, "status", 404, "reason", "not found", "error", err)
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrUnauthorized):
		l.Warn(event, "status", 401, "reason", "unauthorized", "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid username or password")
	case errors.Is(err, service.ErrNotConfigured), errors.Is(err, upload.ErrMissingAPIKey):
		l.Warn(event, "status", 503, "reason", "not configured", "error", err)
		return echo.NewHTTPError(http.StatusServiceUnavailable, "not configured")
	case errors.As(err, &provErr):
		l.Error(event, "status", 502, "reason", "image host rejected upload", "error", err)
		return echo.NewHTTPError(http.StatusBadGateway, "upload failed")
	default:
		l.Error(event, "status", 500, "reason", reason, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, reason)
	}
}

// bind decodes and validates the request body into req.
func bind(c echo.Context, l *slog.Logger, event string, req any) error {
	if err := c.Bind(req); err != nil {
		l.Warn(event, "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(req); err != nil {
		l.Warn(event, "status", 400, "reason", "validation failed", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	return nil
}
