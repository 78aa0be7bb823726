package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/soyelectronico/storefront/internal/core/domain"
	"github.com/soyelectronico/storefront/internal/core/ports"
)

// CatalogGateway consumes the remote catalog service. Reads are public;
// create/update carry the admin's bearer credential.
type CatalogGateway struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

func NewCatalogGateway(baseURL string, client *http.Client, log zerolog.Logger) *CatalogGateway {
	return &CatalogGateway{baseURL: strings.TrimRight(baseURL, "/"), client: client, log: log}
}

// productPayload is the outbound wire form. Numeric fields are coerced to
// JSON numbers; the catalog service rejects stringly-typed prices.
type productPayload struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category"`
	Details     string  `json:"details"`
}

func toPayload(p domain.Product) productPayload {
	return productPayload{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
		Category:    p.Category,
		Details:     p.Details,
	}
}

// List queries products by free-text term or category. The category
// parameter is named "categoria" on the wire, matching the catalog service.
func (g *CatalogGateway) List(ctx context.Context, filter ports.CatalogFilter) ([]domain.Product, error) {
	endpoint := g.baseURL + "/products"

	params := url.Values{}
	if filter.Category != "" {
		params.Set("categoria", filter.Category)
	} else if filter.Term != "" {
		params.Set("q", filter.Term)
	}
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	status, body, err := do(ctx, g.client, http.MethodGet, endpoint, "", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	if !is2xx(status) {
		return nil, fmt.Errorf("%w: status %d", domain.ErrFetchFailed, status)
	}

	var products []domain.Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", domain.ErrFetchFailed, err)
	}

	return products, nil
}

// Get fetches a single product by id.
func (g *CatalogGateway) Get(ctx context.Context, id int64) (*domain.Product, error) {
	status, body, err := do(ctx, g.client, http.MethodGet, fmt.Sprintf("%s/products/%d", g.baseURL, id), "", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	if status == http.StatusNotFound {
		return nil, domain.ErrProductNotFound
	}
	if !is2xx(status) {
		return nil, fmt.Errorf("%w: status %d", domain.ErrFetchFailed, status)
	}

	var product domain.Product
	if err := json.Unmarshal(body, &product); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", domain.ErrFetchFailed, err)
	}
	return &product, nil
}

// Create posts a new product and returns the server's authoritative copy,
// including the assigned id.
func (g *CatalogGateway) Create(ctx context.Context, credential string, product domain.Product) (*domain.Product, error) {
	return g.save(ctx, http.MethodPost, g.baseURL+"/products", credential, product)
}

// Update puts the full product keyed by its id.
func (g *CatalogGateway) Update(ctx context.Context, credential string, product domain.Product) (*domain.Product, error) {
	return g.save(ctx, http.MethodPut, fmt.Sprintf("%s/products/%d", g.baseURL, product.ID), credential, product)
}

func (g *CatalogGateway) save(ctx context.Context, method, endpoint, credential string, product domain.Product) (*domain.Product, error) {
	status, body, err := do(ctx, g.client, method, endpoint, credential, toPayload(product))
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

	var saved domain.Product
	if err := json.Unmarshal(body, &saved); err != nil {
		return nil, &domain.RemoteError{Status: status, Message: "catalog service returned an unreadable product"}
	}
	return &saved, nil
}
