// internal/adapters/redis/redis.go
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

type Options struct {
	Addr     string
	Username string
	Password string
	DB       int
}

func NewClient(o Options) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     o.Addr,
		Username: o.Username,
		Password: o.Password,
		DB:       o.DB,
	})
}

// Cache keeps order views for ttl; callers invalidate by prefix after mutations.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	return c.client.Get(ctx, key).Bytes()
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

func (c *Cache) DeleteByPrefix(ctx context.Context, prefix string) error {
	iter := c.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Storage persists session keys under a namespace. Writes and removals run in
// MULTI/EXEC so both keys change together.
type Storage struct {
	client    *redis.Client
	namespace string
}

func NewStorage(client *redis.Client, namespace string) *Storage {
	if namespace == "" {
		namespace = "zamgas:session"
	}
	return &Storage{client: client, namespace: namespace}
}

func (s *Storage) key(k string) string { return s.namespace + ":" + k }

func (s *Storage) GetItem(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *Storage) SetItems(ctx context.Context, items map[string]string) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for k, v := range items {
			pipe.Set(ctx, s.key(k), v, 0)
		}
		return nil
	})
	return err
}

func (s *Storage) RemoveItems(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = s.key(k)
	}
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, full...)
		return nil
	})
	return err
}
