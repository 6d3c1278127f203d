package jsonstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/idilsaglam/tracalorie/internal/store"
)

// JSON-backed slots. One human-readable file per key inside a data directory.
// No locking; fine for a local single-user CLI.

const fileSuffix = ".json"

// Store keeps each slot in <dir>/<key>.json.
type Store struct {
	dir string
}

// Open prepares dir (creating it if needed) and returns a Store rooted there.
func Open(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("jsonstore: empty data dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir reports the data directory.
func (s *Store) Dir() string { return s.dir }

func (s *Store) slotPath(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("jsonstore: invalid slot key %q", key)
	}
	return filepath.Join(s.dir, key+fileSuffix), nil
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	p, err := s.slotPath(key)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	return b, nil
}

func (s *Store) Put(_ context.Context, key string, value []byte) error {
	p, err := s.slotPath(key)
	if err != nil {
		return err
	}
	if err := os.WriteFile(p, value, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	p, err := s.slotPath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("remove: %w", err)
	}
	return nil
}

func (s *Store) Close() error { return nil }
