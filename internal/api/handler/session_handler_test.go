package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/soyelectronico/storefront/internal/core/domain"
)

type stubSessionService struct {
	loginFn    func(ctx context.Context, email, password string) (*domain.Session, error)
	registerFn func(ctx context.Context, name, email, password string) error
	current    *domain.Session
	logouts    int
}

func (s *stubSessionService) Bootstrap(context.Context) {}

func (s *stubSessionService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubSessionService) Register(ctx context.Context, name, email, password string) error {
	return s.registerFn(ctx, name, email, password)
}

func (s *stubSessionService) Logout(context.Context) {
	s.logouts++
	s.current = nil
}

func (s *stubSessionService) Current() *domain.Session { return s.current }

func (s *stubSessionService) CurrentRole() domain.Role {
	if s.current == nil {
		return domain.RoleAnonymous
	}
	return s.current.Role
}

func (s *stubSessionService) InvalidateCredential(context.Context, string) { s.current = nil }

func newContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSessionHandler_Login_Success(t *testing.T) {
	stub := &stubSessionService{
		loginFn: func(_ context.Context, email, password string) (*domain.Session, error) {
			if email != "ana@example.com" || password != "s3cret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &domain.Session{Credential: "h.p.s", Identity: email, Role: domain.RoleCustomer}, nil
		},
	}
	h := NewSessionHandler(stub)

	c, rec := newContext(t, http.MethodPost, "/session/login", `{"email":"ana@example.com","password":"s3cret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["identity"] != "ana@example.com" || resp["role"] != "customer" {
		t.Fatalf("unexpected response: %v", resp)
	}
	if strings.Contains(rec.Body.String(), "h.p.s") {
		t.Fatalf("raw credential must never leave the engine")
	}
}

func TestSessionHandler_Login_MissingFields(t *testing.T) {
	h := NewSessionHandler(&stubSessionService{
		loginFn: func(context.Context, string, string) (*domain.Session, error) {
			t.Fatalf("service must not be called on invalid payload")
			return nil, nil
		},
	})

	c, _ := newContext(t, http.MethodPost, "/session/login", `{"email":"not-an-email"}`)
	err := h.Login(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestSessionHandler_Register_Success(t *testing.T) {
	stub := &stubSessionService{
		registerFn: func(_ context.Context, name, email, _ string) error {
			if name != "Ana" || email != "ana@example.com" {
				t.Fatalf("unexpected args: %s %s", name, email)
			}
			return nil
		},
	}
	h := NewSessionHandler(stub)

	c, rec := newContext(t, http.MethodPost, "/session/register", `{"name":"Ana","email":"ana@example.com","password":"s3cret1"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestSessionHandler_Logout_AlwaysSucceeds(t *testing.T) {
	stub := &stubSessionService{current: &domain.Session{Identity: "ana@example.com", Role: domain.RoleCustomer}}
	h := NewSessionHandler(stub)

	for i := 0; i < 2; i++ {
		c, rec := newContext(t, http.MethodPost, "/session/logout", "")
		if err := h.Logout(c); err != nil {
			t.Fatalf("logout must never fail: %v", err)
		}
		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
	}
	if stub.logouts != 2 {
		t.Fatalf("expected 2 logout calls, got %d", stub.logouts)
	}
}

func TestSessionHandler_Current_Anonymous(t *testing.T) {
	h := NewSessionHandler(&stubSessionService{})

	c, rec := newContext(t, http.MethodGet, "/session", "")
	if err := h.Current(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["role"] != "anonymous" {
		t.Fatalf("expected anonymous, got %v", resp)
	}
}
