package service

import (
	"context"

	"github.com/soyelectronico/storefront/internal/core/domain"
	"github.com/soyelectronico/storefront/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Test doubles shared by the service tests
// ---------------------------------------------------------------------------

type stubCredentialStore struct {
	raw        string
	loadErr    error
	saveErr    error
	clearCalls int
}

func (s *stubCredentialStore) Save(_ context.Context, raw string) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.raw = raw
	return nil
}

func (s *stubCredentialStore) Load(_ context.Context) (string, error) {
	if s.loadErr != nil {
		return "", s.loadErr
	}
	if s.raw == "" {
		return "", domain.ErrCredentialNotFound
	}
	return s.raw, nil
}

func (s *stubCredentialStore) Clear(_ context.Context) error {
	s.clearCalls++
	s.raw = ""
	return nil
}

type stubUserGateway struct {
	credential  string
	loginErr    error
	registerErr error
	loginCalls  int
}

func (g *stubUserGateway) Login(_ context.Context, _, _ string) (string, error) {
	g.loginCalls++
	if g.loginErr != nil {
		return "", g.loginErr
	}
	return g.credential, nil
}

func (g *stubUserGateway) Register(_ context.Context, _, _, _ string) error {
	return g.registerErr
}

type stubCatalogGateway struct {
	products  []domain.Product
	listErr   error
	saved     *domain.Product
	saveErr   error
	listCalls int
	lastList  ports.CatalogFilter
	created   []domain.Product
	updated   []domain.Product
}

func (g *stubCatalogGateway) List(_ context.Context, filter ports.CatalogFilter) ([]domain.Product, error) {
	g.listCalls++
	g.lastList = filter
	if g.listErr != nil {
		return nil, g.listErr
	}
	out := make([]domain.Product, len(g.products))
	copy(out, g.products)
	return out, nil
}

func (g *stubCatalogGateway) Get(_ context.Context, id int64) (*domain.Product, error) {
	for _, p := range g.products {
		if p.ID == id {
			clone := p
			return &clone, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (g *stubCatalogGateway) Create(_ context.Context, _ string, product domain.Product) (*domain.Product, error) {
	g.created = append(g.created, product)
	if g.saveErr != nil {
		return nil, g.saveErr
	}
	clone := *g.saved
	return &clone, nil
}

func (g *stubCatalogGateway) Update(_ context.Context, _ string, product domain.Product) (*domain.Product, error) {
	g.updated = append(g.updated, product)
	if g.saveErr != nil {
		return nil, g.saveErr
	}
	clone := *g.saved
	return &clone, nil
}

type stubOrderGateway struct {
	receipt       *domain.Receipt
	orders        []domain.Order
	purchaseErr   error
	listErr       error
	purchaseCalls int
}

func (g *stubOrderGateway) Purchase(_ context.Context, _ string, _ int64, _ int) (*domain.Receipt, error) {
	g.purchaseCalls++
	if g.purchaseErr != nil {
		return nil, g.purchaseErr
	}
	clone := *g.receipt
	return &clone, nil
}

func (g *stubOrderGateway) ListMine(_ context.Context, _ string) ([]domain.Order, error) {
	if g.listErr != nil {
		return nil, g.listErr
	}
	return g.orders, nil
}

type stubSessionService struct {
	session     *domain.Session
	invalidated []string
}

func (s *stubSessionService) Bootstrap(context.Context) {}

func (s *stubSessionService) Login(context.Context, string, string) (*domain.Session, error) {
	return nil, nil
}

func (s *stubSessionService) Register(context.Context, string, string, string) error { return nil }

func (s *stubSessionService) Logout(context.Context) { s.session = nil }

func (s *stubSessionService) Current() *domain.Session { return s.session }

func (s *stubSessionService) CurrentRole() domain.Role {
	if s.session == nil {
		return domain.RoleAnonymous
	}
	return s.session.Role
}

func (s *stubSessionService) InvalidateCredential(_ context.Context, raw string) {
	s.invalidated = append(s.invalidated, raw)
	if s.session != nil && s.session.Credential == raw {
		s.session = nil
	}
}

type recordingReconciler struct {
	purchases []domain.PurchaseIntent
	upserts   []domain.Product
}

func (r *recordingReconciler) ApplyPurchase(productID int64, quantity int) {
	r.purchases = append(r.purchases, domain.PurchaseIntent{ProductID: productID, Quantity: quantity})
}

func (r *recordingReconciler) Upsert(product domain.Product) {
	r.upserts = append(r.upserts, product)
}
