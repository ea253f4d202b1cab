package httpserver

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/boutiquechat/internal/service"
	"github.com/Skotchmaster/boutiquechat/internal/transport"
	"github.com/Skotchmaster/boutiquechat/internal/util"
	"github.com/Skotchmaster/boutiquechat/pkg/logging"
)

func (h *CatalogHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	var f service.ProductFilter
	if raw := strings.TrimSpace(c.QueryParam("category_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			l.Warn("get_products_error", "status", 400, "reason", "category_id not a uuid", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "category_id not a uuid")
		}
		f.CategoryID = id
	}
	f.Query = c.QueryParam("q")

	page, offset, limit := util.Calculate(
		util.ParseIntDefault(c.QueryParam("page"), 1),
		util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize),
	)

	items, err := h.Svc.ListProducts(ctx, f)
	if err != nil {
		return fail(l, "get_products_error", err, "cannot get products")
	}

	total := len(items)
	lo, hi := util.Window(total, offset, limit)

	l.Debug("get_products_success", "total", total)
	return c.JSON(http.StatusOK, map[string]any{
		"data": items[lo:hi],
		"meta": util.Meta(page, limit, offset, int64(total)),
	})
}

func (h *CatalogHTTP) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.search_products")

	page, offset, limit := util.Calculate(
		util.ParseIntDefault(c.QueryParam("page"), 1),
		util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize),
	)

	total, items, err := h.Svc.SearchProducts(ctx, c.QueryParam("q"), offset, limit)
	if err != nil {
		return fail(l, "search_products_error", err, "search failed")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data": items,
		"meta": util.Meta(page, limit, offset, total),
	})
}

func (h *CatalogHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	id, err := parseID(c, l, "get_product_error")
	if err != nil {
		return err
	}

	p, err := h.Svc.GetProduct(ctx, id)
	if err != nil {
		return fail(l, "get_product_error", err, "cannot get product")
	}
	return c.JSON(http.StatusOK, p)
}

// GetChatLink builds the prefilled chat deep link for a product.
func (h *CatalogHTTP) GetChatLink(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_chat_link")

	id, err := parseID(c, l, "get_chat_link_error")
	if err != nil {
		return err
	}

	p, err := h.Svc.GetProduct(ctx, id)
	if err != nil {
		return fail(l, "get_chat_link_error", err, "cannot get product")
	}

	st, err := h.Settings.Get(ctx)
	if err != nil {
		return fail(l, "get_chat_link_error", err, "cannot get settings")
	}

	link, err := service.ChatLink(st.WhatsAppNumber, *p)
	if err != nil {
		return fail(l, "get_chat_link_error", err, "cannot build link")
	}
	return c.JSON(http.StatusOK, transport.URLResponse{URL: link})
}

func (h *CatalogHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create_product")

	var req transport.CreateProductRequest
	if err := bind(c, l, "create_product_error", &req); err != nil {
		return err
	}

	p, err := h.Svc.CreateProduct(ctx, req)
	if err != nil {
		return fail(l, "create_product_error", err, "save failed")
	}

	l.Info("create_product_success", "product_id", p.ID)
	return c.JSON(http.StatusCreated, p)
}

func (h *CatalogHTTP) PatchProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.patch_product")

	id, err := parseID(c, l, "patch_product_error")
	if err != nil {
		return err
	}

	var req transport.PatchProductRequest
	if err := bind(c, l, "patch_product_error", &req); err != nil {
		return err
	}

	p, err := h.Svc.PatchProduct(ctx, id, req)
	if err != nil {
		return fail(l, "patch_product_error", err, "save failed")
	}

	l.Info("patch_product_success", "product_id", p.ID)
	return c.JSON(http.StatusOK, p)
}

func (h *CatalogHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete_product")

	id, err := parseID(c, l, "delete_product_error")
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteProduct(ctx, id); err != nil {
		return fail(l, "delete_product_error", err, "delete failed")
	}

	l.Info("delete_product_success", "product_id", id)
	return c.NoContent(http.StatusNoContent)
}
