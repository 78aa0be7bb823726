package ports

import (
	"context"

	"github.com/soyelectronico/storefront/internal/core/domain"
)

// PurchaseService executes purchase intents for the given session.
type PurchaseService interface {
	// Purchase runs one purchase against the order service. Denied or
	// locally invalid intents never reach the network. Never retried.
	Purchase(ctx context.Context, session *domain.Session, intent domain.PurchaseIntent) (*domain.Receipt, error)
	// MyOrders lists the current customer's past purchases.
	MyOrders(ctx context.Context, session *domain.Session) ([]domain.Order, error)
}

// AdminService executes catalog create/update for an admin session.
type AdminService interface {
	// Save creates the draft when it has no id, updates it otherwise. The
	// snapshot is touched only after remote confirmation.
	Save(ctx context.Context, session *domain.Session, draft domain.Product) (*domain.Product, error)
}
