package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/soyelectronico/storefront/internal/core/domain"
	"github.com/soyelectronico/storefront/internal/core/ports"
)

// SessionManager composes the credential codec and the credential store into
// the single authority on the current actor. At most one session exists;
// establishing a new one fully replaces the prior one.
type SessionManager struct {
	users ports.UserGateway
	store ports.CredentialStore
	log   zerolog.Logger

	bootstrapOnce sync.Once

	mu      sync.RWMutex
	current *domain.Session
}

func NewSessionManager(users ports.UserGateway, store ports.CredentialStore, log zerolog.Logger) *SessionManager {
	return &SessionManager{users: users, store: store, log: log}
}

// Bootstrap restores a session from the credential store. A credential that
// no longer decodes is cleared so the next start comes up cleanly anonymous.
// The restore runs exactly once per process.
func (m *SessionManager) Bootstrap(ctx context.Context) {
	m.bootstrapOnce.Do(func() {
		raw, err := m.store.Load(ctx)
		if err != nil {
			if !errors.Is(err, domain.ErrCredentialNotFound) {
				m.log.Warn().Err(err).Msg("credential store unreadable, starting anonymous")
			}
			return
		}

		claims, err := domain.DecodeCredential(raw)
		if err != nil {
			m.log.Warn().Msg("stored credential no longer valid, clearing")
			if clearErr := m.store.Clear(ctx); clearErr != nil {
				m.log.Warn().Err(clearErr).Msg("failed to clear stale credential")
			}
			return
		}

		m.mu.Lock()
		m.current = &domain.Session{Credential: raw, Identity: claims.Identity, Role: claims.Role}
		m.mu.Unlock()

		m.log.Info().Str("identity", claims.Identity).Str("role", string(claims.Role)).Msg("session restored")
	})
}

// Login exchanges credentials with the user service and establishes the
// session. On any failure no session is established and any prior session
// is left as it was.
func (m *SessionManager) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	if email == "" || password == "" {
		return nil, domain.ErrAuthRejected
	}

	raw, err := m.users.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	claims, err := domain.DecodeCredential(raw)
	if err != nil {
		m.log.Error().Msg("user service issued an undecodable credential")
		return nil, domain.ErrInvalidCredential
	}

	if err := m.store.Save(ctx, raw); err != nil {
		// The session is still valid for this process; it just won't
		// survive a restart.
		m.log.Warn().Err(err).Msg("failed to persist credential")
	}

	session := &domain.Session{Credential: raw, Identity: claims.Identity, Role: claims.Role}

	m.mu.Lock()
	m.current = session
	m.mu.Unlock()

	m.log.Info().Str("identity", claims.Identity).Str("role", string(claims.Role)).Msg("session established")

	clone := *session
	return &clone, nil
}

// Register creates an account with the user service. It never establishes a
// session; the caller logs in afterwards.
func (m *SessionManager) Register(ctx context.Context, name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return &domain.ValidationRejectedError{Message: "name, email and password are required"}
	}
	return m.users.Register(ctx, name, email, password)
}

// Logout destroys the session and the stored credential unconditionally.
func (m *SessionManager) Logout(ctx context.Context) {
	m.mu.Lock()
	had := m.current != nil
	m.current = nil
	m.mu.Unlock()

	if err := m.store.Clear(ctx); err != nil {
		m.log.Warn().Err(err).Msg("failed to clear stored credential on logout")
	}

	if had {
		m.log.Info().Msg("session destroyed")
	}
}

// Current returns a copy of the active session, or nil.
func (m *SessionManager) Current() *domain.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return nil
	}
	clone := *m.current
	return &clone
}

// CurrentRole reports the active role, RoleAnonymous when no session exists.
func (m *SessionManager) CurrentRole() domain.Role {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return domain.RoleAnonymous
	}
	return m.current.Role
}

// InvalidateCredential tears down the session holding exactly raw. A 401
// that arrives after the user has logged out or logged in again refers to a
// superseded credential and must not destroy the newer session.
func (m *SessionManager) InvalidateCredential(ctx context.Context, raw string) {
	m.mu.Lock()
	if m.current == nil || m.current.Credential != raw {
		m.mu.Unlock()
		return
	}
	m.current = nil
	m.mu.Unlock()

	if err := m.store.Clear(ctx); err != nil {
		m.log.Warn().Err(err).Msg("failed to clear invalidated credential")
	}

	m.log.Info().Msg("session invalidated by remote rejection")
}
