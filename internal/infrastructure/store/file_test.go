package store

import (
	"context"
	"errors"
	"testing"

	"github.com/soyelectronico/storefront/internal/core/domain"
)

func TestFileStore_RoundTrip(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	if _, err := s.Load(ctx); !errors.Is(err, domain.ErrCredentialNotFound) {
		t.Fatalf("expected ErrCredentialNotFound on empty store, got %v", err)
	}

	if err := s.Save(ctx, "h.p.s"); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	raw, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if raw != "h.p.s" {
		t.Fatalf("unexpected credential: %q", raw)
	}

	// Saving again replaces, never appends.
	if err := s.Save(ctx, "x.y.z"); err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	if raw, _ := s.Load(ctx); raw != "x.y.z" {
		t.Fatalf("expected replacement, got %q", raw)
	}
}

func TestFileStore_ClearIdempotent(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	if err := s.Save(ctx, "h.p.s"); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("second clear must be a no-op, got %v", err)
	}

	if _, err := s.Load(ctx); !errors.Is(err, domain.ErrCredentialNotFound) {
		t.Fatalf("expected ErrCredentialNotFound after clear, got %v", err)
	}
}
