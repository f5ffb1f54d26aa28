package store

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/BurntSushi/toml"

	kerrors "github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/errors"
)

// FileStore is a Store backed by a local TOML document. It serves local
// development and tests; real deployments swap in a remote implementation
// behind the same interface.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// storeDocument is the on-disk shape.
type storeDocument struct {
	Secrets map[string]string `toml:"secrets"`
}

// NewFileStore returns a FileStore persisting to path. The file is created
// lazily on first Set.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// List returns all secrets. A missing file is an empty store.
func (s *FileStore) List(ctx context.Context) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(doc.Secrets))
	for k, v := range doc.Secrets {
		out[k] = v
	}
	return out, nil
}

// Set creates or replaces a secret.
func (s *FileStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	if doc.Secrets == nil {
		doc.Secrets = make(map[string]string)
	}
	doc.Secrets[key] = value
	return s.write(doc)
}

// Delete removes a secret. Absent keys are a no-op.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := doc.Secrets[key]; !ok {
		return nil
	}
	delete(doc.Secrets, key)
	return s.write(doc)
}

func (s *FileStore) read() (*storeDocument, error) {
	doc := &storeDocument{}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return doc, nil
	}
	if _, err := toml.DecodeFile(s.path, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrStoreUnavailable, err)
	}
	return doc, nil
}

func (s *FileStore) write(doc *storeDocument) error {
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("%w: %v", kerrors.ErrStoreUnavailable, err)
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(doc)
}
