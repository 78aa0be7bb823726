package service

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/soyelectronico/storefront/internal/core/domain"
	"github.com/soyelectronico/storefront/internal/core/ports"
)

// CatalogService issues remote catalog reads and owns the in-memory snapshot
// those reads populate. The snapshot is the one piece of shared mutable
// state in the engine: a completed query replaces it wholesale
// (last-writer-wins), which may discard an optimistic purchase decrement not
// yet reflected server-side. That transient display inconsistency is
// accepted; the server remains the source of truth.
type CatalogService struct {
	gateway ports.CatalogGateway
	log     zerolog.Logger

	mu       sync.RWMutex
	snapshot []domain.Product
}

func NewCatalogService(gateway ports.CatalogGateway, log zerolog.Logger) *CatalogService {
	return &CatalogService{gateway: gateway, log: log}
}

// Query runs a fresh remote read for the given filter. Category takes
// precedence over the free-text term; whitespace-only values count as empty.
// Stock and price correctness at decision time matters more than call
// volume, so there is no caching across filter values.
func (s *CatalogService) Query(ctx context.Context, filter ports.CatalogFilter) ([]domain.Product, error) {
	filter.Term = strings.TrimSpace(filter.Term)
	filter.Category = strings.TrimSpace(filter.Category)
	if filter.Category != "" {
		filter.Term = ""
	}

	products, err := s.gateway.List(ctx, filter)
	if err != nil {
		// Previous snapshot stays in place; the caller decides whether to
		// keep showing it as stale.
		s.log.Error().Err(err).Str("term", filter.Term).Str("category", filter.Category).Msg("catalog query failed")
		return nil, err
	}

	s.mu.Lock()
	s.snapshot = products
	s.mu.Unlock()

	s.log.Debug().Int("count", len(products)).Str("term", filter.Term).Str("category", filter.Category).Msg("snapshot replaced")

	return s.Snapshot(), nil
}

// Get reads a single product from the remote catalog without touching the
// snapshot.
func (s *CatalogService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.gateway.Get(ctx, id)
}

// Snapshot returns a copy of the currently held product list.
func (s *CatalogService) Snapshot() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, len(s.snapshot))
	copy(out, s.snapshot)
	return out
}

// ApplyPurchase optimistically decrements the cached stock of productID,
// floored at zero. Display approximation only; the next Query resynchronizes
// truth.
func (s *CatalogService) ApplyPurchase(productID int64, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.snapshot {
		if s.snapshot[i].ID != productID {
			continue
		}
		s.snapshot[i].Stock -= quantity
		if s.snapshot[i].Stock < 0 {
			s.snapshot[i].Stock = 0
		}
		return
	}
}

// Upsert writes a server-confirmed product into the snapshot: it replaces
// the entry with the same id, or appends when none exists.
func (s *CatalogService) Upsert(product domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.snapshot {
		if s.snapshot[i].ID == product.ID {
			s.snapshot[i] = product
			return
		}
	}
	s.snapshot = append(s.snapshot, product)
}
