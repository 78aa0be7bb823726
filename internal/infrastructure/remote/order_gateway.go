package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/soyelectronico/storefront/internal/core/domain"
)

// OrderGateway consumes the remote order service. Every call is
// authenticated.
type OrderGateway struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

func NewOrderGateway(baseURL string, client *http.Client, log zerolog.Logger) *OrderGateway {
	return &OrderGateway{baseURL: strings.TrimRight(baseURL, "/"), client: client, log: log}
}

type purchaseRequest struct {
	Quantity int `json:"quantity"`
}

// Purchase issues exactly one purchase call. The gateway never retries: the
// operation decrements real inventory and is not safe to replay blindly.
func (g *OrderGateway) Purchase(ctx context.Context, credential string, productID int64, quantity int) (*domain.Receipt, error) {
	endpoint := fmt.Sprintf("%s/purchase/%d", g.baseURL, productID)

	status, body, err := do(ctx, g.client, http.MethodPost, endpoint, credential, purchaseRequest{Quantity: quantity})
	if err != nil {
		return nil, err
	}

	switch {
	case is2xx(status):
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return nil, domain.ErrUnauthorized
	case status == http.StatusConflict:
		return nil, fmt.Errorf("%w: %s", domain.ErrInsufficientStock, serverMessage(body))
	default:
		return nil, &domain.RemoteError{Status: status, Message: serverMessage(body)}
	}

	receipt := domain.Receipt{ProductID: productID, Quantity: quantity}
	// Some deployments answer the purchase with an empty body; a 2xx is
	// confirmation enough.
	if len(body) > 0 {
		if err := json.Unmarshal(body, &receipt); err != nil {
			g.log.Warn().Int64("product_id", productID).Msg("purchase confirmed but receipt unreadable")
		}
	}
	return &receipt, nil
}

// ListMine returns the authenticated customer's orders.
func (g *OrderGateway) ListMine(ctx context.Context, credential string) ([]domain.Order, error) {
	status, body, err := do(ctx, g.client, http.MethodGet, g.baseURL+"/orders/mine", credential, nil)
	if err != nil {
		return nil, err
	}

	switch {
	case is2xx(status):
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return nil, domain.ErrUnauthorized
	default:
		return nil, &domain.RemoteError{Status: status, Message: serverMessage(body)}
	}

	var orders []domain.Order
	if err := json.Unmarshal(body, &orders); err != nil {
		return nil, &domain.RemoteError{Status: status, Message: "order service returned an unreadable list"}
	}
	return orders, nil
}
