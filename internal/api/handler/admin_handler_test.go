package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/soyelectronico/storefront/internal/core/domain"
)

type stubAdminService struct {
	saveFn func(ctx context.Context, session *domain.Session, draft domain.Product) (*domain.Product, error)
}

func (s *stubAdminService) Save(ctx context.Context, session *domain.Session, draft domain.Product) (*domain.Product, error) {
	return s.saveFn(ctx, session, draft)
}

func adminSession() *stubSessionService {
	return &stubSessionService{current: &domain.Session{
		Credential: "h.p.s",
		Identity:   "root@example.com",
		Role:       domain.RoleAdmin,
	}}
}

func TestAdminHandler_Create_Returns201(t *testing.T) {
	stub := &stubAdminService{
		saveFn: func(_ context.Context, session *domain.Session, draft domain.Product) (*domain.Product, error) {
			if session == nil || session.Role != domain.RoleAdmin {
				t.Fatalf("expected the admin session, got %+v", session)
			}
			if draft.ID != 0 || draft.Name != "Sensor DHT22" {
				t.Fatalf("unexpected draft: %+v", draft)
			}
			saved := draft
			saved.ID = 42
			return &saved, nil
		},
	}
	h := NewAdminHandler(stub, adminSession())

	c, rec := newContext(t, http.MethodPost, "/admin/products", `{"name":"Sensor DHT22","price":129.5,"stock":10,"category":"sensors"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var saved domain.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &saved); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if saved.ID != 42 {
		t.Fatalf("expected server-assigned id 42, got %d", saved.ID)
	}
}

func TestAdminHandler_Update_CarriesPathID(t *testing.T) {
	stub := &stubAdminService{
		saveFn: func(_ context.Context, _ *domain.Session, draft domain.Product) (*domain.Product, error) {
			if draft.ID != 7 {
				t.Fatalf("expected id 7 from the path, got %d", draft.ID)
			}
			return &draft, nil
		},
	}
	h := NewAdminHandler(stub, adminSession())

	c, rec := newContext(t, http.MethodPut, "/admin/products/7", `{"name":"Sensor DHT22","price":119,"stock":8}`)
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAdminHandler_Update_InvalidID(t *testing.T) {
	h := NewAdminHandler(&stubAdminService{
		saveFn: func(context.Context, *domain.Session, domain.Product) (*domain.Product, error) {
			t.Fatalf("service must not be called on invalid id")
			return nil, nil
		},
	}, adminSession())

	c, _ := newContext(t, http.MethodPut, "/admin/products/zero", "")
	c.SetParamNames("id")
	c.SetParamValues("zero")

	err := h.Update(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAdminHandler_Create_DomainErrorPassesThrough(t *testing.T) {
	want := &domain.InvalidInputError{Field: "name", Reason: "must not be empty"}
	h := NewAdminHandler(&stubAdminService{
		saveFn: func(context.Context, *domain.Session, domain.Product) (*domain.Product, error) {
			return nil, want
		},
	}, adminSession())

	c, _ := newContext(t, http.MethodPost, "/admin/products", `{"price":10}`)
	err := h.Create(c)
	if _, ok := err.(*domain.InvalidInputError); !ok {
		t.Fatalf("expected the field error to reach the error handler, got %v", err)
	}
}
