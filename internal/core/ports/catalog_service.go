package ports

import (
	"context"

	"github.com/soyelectronico/storefront/internal/core/domain"
)

// CatalogService owns the in-memory catalog snapshot for the active filter.
type CatalogService interface {
	// Query issues a fresh remote read and replaces the snapshot wholesale
	// on success. On failure the previous snapshot is left untouched.
	Query(ctx context.Context, filter CatalogFilter) ([]domain.Product, error)
	// Get fetches a single product directly from the remote catalog.
	Get(ctx context.Context, id int64) (*domain.Product, error)
	// Snapshot returns a copy of the currently held product list.
	Snapshot() []domain.Product
}

// SnapshotReconciler is the write side of the snapshot used by the purchase
// and admin coordinators. Both mutations are display reconciliation only;
// the next full Query supersedes them.
type SnapshotReconciler interface {
	// ApplyPurchase optimistically decrements local stock, floored at zero.
	ApplyPurchase(productID int64, quantity int)
	// Upsert replaces the entry with the product's id, or appends it.
	Upsert(product domain.Product)
}
