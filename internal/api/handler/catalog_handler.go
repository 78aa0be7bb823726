package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/soyelectronico/storefront/internal/api/metrics"
	"github.com/soyelectronico/storefront/internal/core/ports"
)

// CatalogHandler exposes catalog reads. Viewing the catalog is always
// allowed; no policy gate applies.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// List queries the catalog by free-text term or category.
//
// @Summary      List products
// @Tags         catalog
// @Produce      json
// @Param        q          query     string  false  "Free-text search term"
// @Param        categoria  query     string  false  "Category filter (takes precedence over q)"
// @Success      200  {array}   domain.Product
// @Failure      502  {object}  errorResponse
// @Router       /catalog [get]
func (h *CatalogHandler) List(c echo.Context) error {
	filter := ports.CatalogFilter{
		Term:     c.QueryParam("q"),
		Category: c.QueryParam("categoria"),
	}

	products, err := h.catalog.Query(c.Request().Context(), filter)
	if err != nil {
		metrics.CatalogQueriesTotal.WithLabelValues(filterKind(filter), "error").Inc()
		return err
	}
	metrics.CatalogQueriesTotal.WithLabelValues(filterKind(filter), "ok").Inc()

	return c.JSON(http.StatusOK, products)
}

// Get fetches one product by id.
//
// @Summary      Get a product
// @Tags         catalog
// @Produce      json
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  errorResponse
// @Router       /catalog/{id} [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	product, err := h.catalog.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

func filterKind(filter ports.CatalogFilter) string {
	switch {
	case strings.TrimSpace(filter.Category) != "":
		return "category"
	case strings.TrimSpace(filter.Term) != "":
		return "term"
	default:
		return "none"
	}
}
