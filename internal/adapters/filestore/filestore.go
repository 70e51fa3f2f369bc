// internal/adapters/filestore/filestore.go
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store keeps items in one JSON file. Every write replaces the file through a
// rename, so a crash leaves either the old or the new set of keys.
type Store struct {
	path string
	mu   sync.Mutex
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

func (s *Store) GetItem(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, err := s.read()
	if err != nil {
		return "", false, err
	}
	v, ok := items[key]
	return v, ok, nil
}

func (s *Store) SetItems(ctx context.Context, items map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, err := s.read()
	if err != nil {
		// unreadable file: start over rather than lock the user out
		current = map[string]string{}
	}
	for k, v := range items {
		current[k] = v
	}
	return s.write(current)
}

func (s *Store) RemoveItems(ctx context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, err := s.read()
	if err != nil {
		current = map[string]string{}
	}
	changed := false
	for _, k := range keys {
		if _, ok := current[k]; ok {
			delete(current, k)
			changed = true
		}
	}
	if !changed && err == nil {
		return nil
	}
	if len(current) == 0 {
		if rmErr := os.Remove(s.path); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			return rmErr
		}
		return nil
	}
	return s.write(current)
}

func (s *Store) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}
	items := map[string]string{}
	if len(data) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("corrupt storage file %s: %w", s.path, err)
	}
	return items, nil
}

func (s *Store) write(items map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".session-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
