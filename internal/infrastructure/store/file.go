// Package store provides the durable credential store backends. Exactly one
// key is persisted: the raw bearer credential of the current session.
package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/soyelectronico/storefront/internal/core/domain"
)

const credentialFileName = "soyelectronico_credential"

// FileStore keeps the credential in a single file under dir. Writes go
// through a temp file followed by a rename so a crash mid-write never leaves
// a torn credential behind.
type FileStore struct {
	path string
}

// NewFileStore creates dir when missing and returns the store.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("credential store dir: %w", err)
	}
	return &FileStore{path: filepath.Join(dir, credentialFileName)}, nil
}

func (s *FileStore) Save(_ context.Context, raw string) error {
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(raw), 0o600); err != nil {
		return fmt.Errorf("write credential: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("write credential: %w", err)
	}
	return nil
}

func (s *FileStore) Load(_ context.Context) (string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", domain.ErrCredentialNotFound
		}
		return "", fmt.Errorf("read credential: %w", err)
	}
	credential := strings.TrimSpace(string(raw))
	if credential == "" {
		return "", domain.ErrCredentialNotFound
	}
	return credential, nil
}

func (s *FileStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}
