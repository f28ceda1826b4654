package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalStore keeps objects on the local filesystem under Dir and serves them
// from BaseURL (the server exposes Dir as static files). Useful for
// development without an object store.
type LocalStore struct {
	Dir     string
	BaseURL string
}

var _ Store = &LocalStore{}

func NewLocalStore(dir, baseURL string) *LocalStore {
	return &LocalStore{Dir: dir, BaseURL: baseURL}
}

func (s *LocalStore) Put(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	dstPath := filepath.Join(s.Dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if err := os.WriteFile(dstPath, data, 0644); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return fmt.Sprintf("%s/uploads/%s", s.BaseURL, name), nil
}
