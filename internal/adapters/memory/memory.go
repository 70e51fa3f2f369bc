// internal/adapters/memory/memory.go
package memory

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
)

// ErrCacheMiss is returned by Cache.Get for unknown keys.
var ErrCacheMiss = errors.New("cache miss")

// Storage is a process-local StoragePort.
type Storage struct {
	mu    sync.RWMutex
	items map[string]string
}

func NewStorage() *Storage {
	return &Storage{items: make(map[string]string)}
}

func (s *Storage) GetItem(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	return v, ok, nil
}

func (s *Storage) SetItems(ctx context.Context, items map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range items {
		s.items[k] = v
	}
	return nil
}

func (s *Storage) RemoveItems(ctx context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.items, k)
	}
	return nil
}

// Len is the number of stored keys.
func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Cache is a process-local CachePort without expiry.
type Cache struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string][]byte)}
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	data, ok := c.entries[key]
	if !ok {
		return nil, ErrCacheMiss
	}
	return data, nil
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.entries[key] = data
	c.mu.Unlock()
	return nil
}

func (c *Cache) DeleteByPrefix(ctx context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
	return nil
}

func (c *Cache) Ping(ctx context.Context) error { return nil }
