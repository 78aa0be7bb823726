package ports

import (
	"context"

	"github.com/soyelectronico/storefront/internal/core/domain"
)

// SessionService is the single authority on who the current actor is and
// what role they hold.
type SessionService interface {
	// Bootstrap restores a session from the credential store. It runs its
	// work exactly once per process, before any privileged view renders.
	Bootstrap(ctx context.Context)
	// Login establishes a session from the user service's credential. No
	// session is established on failure.
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	// Register creates an account but never establishes a session.
	Register(ctx context.Context, name, email, password string) error
	// Logout destroys the session unconditionally. Never fails, idempotent.
	Logout(ctx context.Context)
	// Current returns the active session, or nil for an anonymous actor.
	Current() *domain.Session
	// CurrentRole is a pure read: RoleAnonymous when no session exists.
	CurrentRole() domain.Role
	// InvalidateCredential tears the session down only if it still holds
	// exactly raw. A 401 arriving late for a superseded credential leaves
	// the newer session intact.
	InvalidateCredential(ctx context.Context, raw string)
}
