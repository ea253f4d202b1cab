package httpserver

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/boutiquechat/internal/transport"
	"github.com/Skotchmaster/boutiquechat/internal/upload"
	"github.com/Skotchmaster/boutiquechat/pkg/logging"
)

// DefaultMaxUploadBytes matches the image host's per-file limit.
const DefaultMaxUploadBytes = 32 << 20

type UploadHTTP struct {
	Uploader upload.Uploader
	MaxBytes int64
}

func (h *UploadHTTP) maxBytes() int64 {
	if h.MaxBytes <= 0 {
		return DefaultMaxUploadBytes
	}
	return h.MaxBytes
}

// UploadImage accepts a multipart "image" field and answers with the hosted URL.
func (h *UploadHTTP) UploadImage(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "upload.image")

	fh, err := c.FormFile("image")
	if err != nil {
		l.Warn("upload_error", "status", 400, "reason", "missing image field", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "missing image")
	}
	if fh.Size > h.maxBytes() {
		l.Warn("upload_error", "status", 400, "reason", "image too large", "size", fh.Size)
		return echo.NewHTTPError(http.StatusBadRequest, "image too large")
	}
	if ct := fh.Header.Get(echo.HeaderContentType); ct != "" && !strings.HasPrefix(ct, "image/") {
		l.Warn("upload_error", "status", 400, "reason", "not an image", "content_type", ct)
		return echo.NewHTTPError(http.StatusBadRequest, "not an image")
	}

	f, err := fh.Open()
	if err != nil {
		return fail(l, "upload_error", err, "upload failed")
	}
	defer f.Close()

	url, err := h.Uploader.Upload(ctx, fh.Filename, f)
	if err != nil {
		return fail(l, "upload_error", err, "upload failed")
	}

	l.Info("upload_success", "url", url)
	return c.JSON(http.StatusOK, transport.URLResponse{URL: url})
}
