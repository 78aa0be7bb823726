package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/soyelectronico/storefront/internal/api/metrics"
	"github.com/soyelectronico/storefront/internal/core/domain"
	"github.com/soyelectronico/storefront/internal/core/ports"
)

// CommerceHandler exposes purchases and order history for the current
// customer session.
type CommerceHandler struct {
	purchases ports.PurchaseService
	sessions  ports.SessionService
}

func NewCommerceHandler(purchases ports.PurchaseService, sessions ports.SessionService) *CommerceHandler {
	return &CommerceHandler{purchases: purchases, sessions: sessions}
}

type purchaseRequest struct {
	ProductID int64 `json:"productId" validate:"required"`
	Quantity  int   `json:"quantity"`
}

// Purchase executes a single purchase intent.
//
// @Summary      Purchase a product
// @Tags         commerce
// @Accept       json
// @Produce      json
// @Param        body  body      purchaseRequest  true  "Purchase intent"
// @Success      200   {object}  domain.Receipt
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /purchase [post]
func (h *CommerceHandler) Purchase(c echo.Context) error {
	var req purchaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	intent := domain.PurchaseIntent{ProductID: req.ProductID, Quantity: req.Quantity}

	receipt, err := h.purchases.Purchase(c.Request().Context(), h.sessions.Current(), intent)
	if err != nil {
		metrics.PurchasesTotal.WithLabelValues(purchaseResult(err)).Inc()
		return err
	}
	metrics.PurchasesTotal.WithLabelValues("confirmed").Inc()

	return c.JSON(http.StatusOK, receipt)
}

// MyOrders lists the current customer's purchases.
//
// @Summary      List my orders
// @Tags         commerce
// @Produce      json
// @Success      200  {array}   domain.Order
// @Failure      401  {object}  errorResponse
// @Router       /orders/mine [get]
func (h *CommerceHandler) MyOrders(c echo.Context) error {
	orders, err := h.purchases.MyOrders(c.Request().Context(), h.sessions.Current())
	if err != nil {
		return err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return c.JSON(http.StatusOK, orders)
}

func purchaseResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, domain.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, domain.ErrInvalidQuantity):
		return "invalid_quantity"
	case errors.Is(err, domain.ErrUnreachable):
		return "unreachable"
	default:
		return "rejected"
	}
}
