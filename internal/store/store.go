// Package store persists one slot registry per context as a JSON file.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-ports/filemarks/internal/registry"
)

// ErrDecode is returned when a context file does not hold a valid JSON
// object of strings. The file is never repaired or reset automatically.
var ErrDecode = errors.New("invalid context file")

// Store reads and writes per-context registry files under a data directory.
type Store struct {
	dir string
}

// New records the data directory and creates it (including parents) if absent.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store.New: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the data directory the store was opened on.
func (s *Store) Dir() string { return s.dir }

// PathFor returns the file backing the given context ID.
func (s *Store) PathFor(contextID string) string {
	return filepath.Join(s.dir, contextID)
}

// Load reads the registry for contextID. If no file exists yet an empty
// registry is written first and then read back, so a first Load always
// succeeds. Content that does not decode as a JSON object of strings
// fails with an error wrapping ErrDecode.
func (s *Store) Load(contextID string) (registry.Registry, error) {
	path := s.PathFor(contextID)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("{}"), 0o600); err != nil {
			return nil, fmt.Errorf("store.Load: init %s: %w", path, err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("store.Load: %w", err)
	}

	reg := registry.Registry{}
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	return reg, nil
}

// Save overwrites the context file with the registry as a single-line
// JSON object. Full overwrite, no backup of the previous content.
func (s *Store) Save(reg registry.Registry, contextID string) error {
	data, err := json.Marshal(reg)
	if err != nil {
		return fmt.Errorf("store.Save: %w", err)
	}
	if err := os.WriteFile(s.PathFor(contextID), data, 0o600); err != nil {
		return fmt.Errorf("store.Save: %w", err)
	}
	return nil
}
