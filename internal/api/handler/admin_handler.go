package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/soyelectronico/storefront/internal/api/metrics"
	"github.com/soyelectronico/storefront/internal/core/domain"
	"github.com/soyelectronico/storefront/internal/core/ports"
)

// AdminHandler exposes catalog create/update. Field-level validation lives
// in the coordinator so it cannot be bypassed; this layer only shapes the
// payload.
type AdminHandler struct {
	admin    ports.AdminService
	sessions ports.SessionService
}

func NewAdminHandler(admin ports.AdminService, sessions ports.SessionService) *AdminHandler {
	return &AdminHandler{admin: admin, sessions: sessions}
}

type productDraft struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category"`
	Details     string  `json:"details"`
}

func (d productDraft) toDomain(id int64) domain.Product {
	return domain.Product{
		ID:          id,
		Name:        d.Name,
		Description: d.Description,
		Price:       decimal.NewFromFloat(d.Price),
		Stock:       d.Stock,
		ImageURL:    d.ImageURL,
		Category:    d.Category,
		Details:     d.Details,
	}
}

// Create adds a new product to the catalog.
//
// @Summary      Create a product
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      productDraft  true  "Product draft"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /admin/products [post]
func (h *AdminHandler) Create(c echo.Context) error {
	var req productDraft
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	saved, err := h.admin.Save(c.Request().Context(), h.sessions.Current(), req.toDomain(0))
	if err != nil {
		metrics.AdminSavesTotal.WithLabelValues("create", "error").Inc()
		return err
	}
	metrics.AdminSavesTotal.WithLabelValues("create", "ok").Inc()

	return c.JSON(http.StatusCreated, saved)
}

// Update replaces an existing product.
//
// @Summary      Update a product
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      int           true  "Product id"
// @Param        body  body      productDraft  true  "Product draft"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /admin/products/{id} [put]
func (h *AdminHandler) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	var req productDraft
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	saved, err := h.admin.Save(c.Request().Context(), h.sessions.Current(), req.toDomain(id))
	if err != nil {
		metrics.AdminSavesTotal.WithLabelValues("update", "error").Inc()
		return err
	}
	metrics.AdminSavesTotal.WithLabelValues("update", "ok").Inc()

	return c.JSON(http.StatusOK, saved)
}
