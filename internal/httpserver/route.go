package httpserver

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	middleware "github.com/Skotchmaster/boutiquechat/pkg/middleware/auth"
	"github.com/Skotchmaster/boutiquechat/pkg/middleware/csrf"
	"github.com/Skotchmaster/boutiquechat/pkg/tokens"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Deps struct {
	CatalogHandler  *CatalogHTTP
	SettingsHandler *SettingsHTTP
	AuthHandler     *AuthHTTP
	UploadHandler   *UploadHTTP
	Auth            middleware.Authenticator
	CSRF            csrf.Config
	DB              Pinger
}

// withoutSessionCookie exempts Bearer-authenticated requests from the CSRF check.
func withoutSessionCookie(c echo.Context) bool {
	ck, err := c.Cookie(tokens.AccessCookieName)
	return err != nil || ck.Value == ""
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if d.DB != nil {
			if err := d.DB.PingContext(c.Request().Context()); err != nil {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "database unavailable")
			}
		}
		return c.NoContent(http.StatusOK)
	})

	csrfCfg := d.CSRF
	if csrfCfg.Skipper == nil {
		csrfCfg.Skipper = withoutSessionCookie
	}
	d.AuthHandler.CSRF = csrfCfg
	adminMW := middleware.NewAdminMiddleware(d.Auth, csrfCfg.Secure)

	catalog := e.Group("/catalog")
	catalog.GET("/categories", d.CatalogHandler.GetCategories)
	catalog.GET("/categories/:id", d.CatalogHandler.GetCategory)
	catalog.GET("/products", d.CatalogHandler.GetProducts)
	catalog.GET("/products/search", d.CatalogHandler.SearchProducts)
	catalog.GET("/products/:id", d.CatalogHandler.GetProduct)
	catalog.GET("/products/:id/chat-link", d.CatalogHandler.GetChatLink)
	catalog.GET("/settings", d.SettingsHandler.GetPublicSettings)

	e.POST("/admin/login", d.AuthHandler.Login)
	e.POST("/admin/logout", d.AuthHandler.LogOut)

	admin := e.Group("/admin", adminMW.RequireAdmin, csrf.Middleware(csrfCfg))
	admin.POST("/categories", d.CatalogHandler.CreateCategory)
	admin.PATCH("/categories/:id", d.CatalogHandler.PatchCategory)
	admin.DELETE("/categories/:id", d.CatalogHandler.DeleteCategory)
	admin.POST("/categories/:id/move", d.CatalogHandler.MoveCategory)

	admin.POST("/products", d.CatalogHandler.CreateProduct)
	admin.PATCH("/products/:id", d.CatalogHandler.PatchProduct)
	admin.DELETE("/products/:id", d.CatalogHandler.DeleteProduct)

	admin.GET("/settings", d.SettingsHandler.GetSettings)
	admin.PUT("/settings", d.SettingsHandler.SaveSettings)

	admin.POST("/uploads", d.UploadHandler.UploadImage)
}
