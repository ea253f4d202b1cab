package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/boutiquechat/internal/service"
	"github.com/Skotchmaster/boutiquechat/internal/transport"
	"github.com/Skotchmaster/boutiquechat/pkg/logging"
)

type CatalogHTTP struct {
	Svc      *service.CatalogService
	Settings *service.SettingsService
}

func parseID(c echo.Context, l *slog.Logger, event string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn(event, "status", 400, "reason", "id not a uuid", "error", err)
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "id not a uuid")
	}
	return id, nil
}

func (h *CatalogHTTP) GetCategories(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.get_categories")

	items, err := h.Svc.ListCategories(ctx)
	if err != nil {
		return fail(l, "get_categories_error", err, "cannot get categories")
	}

	return c.JSON(http.StatusOK, map[string]any{"data": items})
}

func (h *CatalogHTTP) GetCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.get_category")

	id, err := parseID(c, l, "get_category_error")
	if err != nil {
		return err
	}

	cat, err := h.Svc.GetCategory(ctx, id)
	if err != nil {
		return fail(l, "get_category_error", err, "cannot get category")
	}
	return c.JSON(http.StatusOK, cat)
}

func (h *CatalogHTTP) CreateCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.create_category")

	var req transport.CreateCategoryRequest
	if err := bind(c, l, "create_category_error", &req); err != nil {
		return err
	}

	cat, err := h.Svc.CreateCategory(ctx, req)
	if err != nil {
		return fail(l, "create_category_error", err, "save failed")
	}

	l.Info("create_category_success", "category_id", cat.ID)
	return c.JSON(http.StatusCreated, cat)
}

func (h *CatalogHTTP) PatchCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.patch_category")

	id, err := parseID(c, l, "patch_category_error")
	if err != nil {
		return err
	}

	var req transport.PatchCategoryRequest
	if err := bind(c, l, "patch_category_error", &req); err != nil {
		return err
	}

	cat, err := h.Svc.PatchCategory(ctx, id, req)
	if err != nil {
		return fail(l, "patch_category_error", err, "save failed")
	}

	l.Info("patch_category_success", "category_id", cat.ID)
	return c.JSON(http.StatusOK, cat)
}

func (h *CatalogHTTP) DeleteCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.delete_category")

	id, err := parseID(c, l, "delete_category_error")
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteCategory(ctx, id); err != nil {
		return fail(l, "delete_category_error", err, "delete failed")
	}

	l.Info("delete_category_success", "category_id", id)
	return c.NoContent(http.StatusNoContent)
}

func (h *CatalogHTTP) MoveCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.move_category")

	id, err := parseID(c, l, "move_category_error")
	if err != nil {
		return err
	}

	var req transport.MoveCategoryRequest
	if err := bind(c, l, "move_category_error", &req); err != nil {
		return err
	}

	items, err := h.Svc.MoveCategory(ctx, id, req.Direction)
	if err != nil {
		return fail(l, "move_category_error", err, "reorder failed")
	}

	l.Info("move_category_success", "category_id", id, "direction", req.Direction)
	return c.JSON(http.StatusOK, map[string]any{"data": items})
}
