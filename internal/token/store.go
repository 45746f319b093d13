// Package token persists the bearer token between runs. Absence of a
// token means logged out; no other session state is durable.
package token

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound reports that no token is stored. Callers treat it as
// "logged out", not as a failure.
var ErrNotFound = errors.New("token: not found")

// Store is a single-key durable string store.
type Store interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// FileStore keeps the token in a file under the user config dir.
type FileStore struct {
	Path string
}

// NewFileStore places the token file at <user-config>/turf-admin/<key>.
func NewFileStore(key string) (*FileStore, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return &FileStore{Path: filepath.Join(dir, "turf-admin", key)}, nil
}

func (s *FileStore) Load(_ context.Context) (string, error) {
	b, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	tok := strings.TrimSpace(string(b))
	if tok == "" {
		return "", ErrNotFound
	}
	return tok, nil
}

func (s *FileStore) Save(_ context.Context, tok string) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.Path, []byte(tok), 0o600)
}

func (s *FileStore) Clear(_ context.Context) error {
	err := os.Remove(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
