package ports

import "context"

// CredentialStore persists the single raw bearer credential across process
// restarts. Absence of a stored credential means the actor is anonymous.
type CredentialStore interface {
	// Save durably writes the credential, replacing any previous one.
	Save(ctx context.Context, raw string) error
	// Load returns the stored credential, or domain.ErrCredentialNotFound.
	Load(ctx context.Context) (string, error)
	// Clear removes the credential. Idempotent.
	Clear(ctx context.Context) error
}
