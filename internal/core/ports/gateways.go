package ports

import (
	"context"

	"github.com/soyelectronico/storefront/internal/core/domain"
)

// UserGateway talks to the remote user service.
type UserGateway interface {
	// Login exchanges credentials for a bearer credential.
	// Business rejection maps to domain.ErrAuthRejected.
	Login(ctx context.Context, email, password string) (string, error)
	// Register creates a customer account. Server-side rule violations map
	// to *domain.ValidationRejectedError; the caller must log in afterwards.
	Register(ctx context.Context, name, email, password string) error
}

// CatalogFilter selects products by free-text term or category. A non-empty
// category takes precedence over the term.
type CatalogFilter struct {
	Term     string
	Category string
}

// CatalogGateway talks to the remote catalog service. Mutations carry the
// bearer credential; reads are public.
type CatalogGateway interface {
	List(ctx context.Context, filter CatalogFilter) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, credential string, product domain.Product) (*domain.Product, error)
	Update(ctx context.Context, credential string, product domain.Product) (*domain.Product, error)
}

// OrderGateway talks to the remote order service.
type OrderGateway interface {
	Purchase(ctx context.Context, credential string, productID int64, quantity int) (*domain.Receipt, error)
	ListMine(ctx context.Context, credential string) ([]domain.Order, error)
}
