// internal/adapters/redis/redis_test.go
package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests talk to a real server: ZAMGAS_TEST_REDIS_ADDR=localhost:6379
func testOptions(t *testing.T) Options {
	addr := os.Getenv("ZAMGAS_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("ZAMGAS_TEST_REDIS_ADDR not set")
	}
	return Options{Addr: addr}
}

func TestStorage_SetAndRemove(t *testing.T) {
	client := NewClient(testOptions(t))
	defer client.Close()
	ctx := context.Background()
	s := NewStorage(client, "zamgas:test:"+time.Now().Format("150405.000000"))

	require.NoError(t, s.SetItems(ctx, map[string]string{"authToken": "tok", "user": `{"id":"1"}`}))
	v, ok, err := s.GetItem(ctx, "user")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"id":"1"}`, v)

	require.NoError(t, s.RemoveItems(ctx, "authToken", "user"))
	require.NoError(t, s.RemoveItems(ctx, "authToken", "user"))
	_, ok, err = s.GetItem(ctx, "authToken")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCache_DeleteByPrefix(t *testing.T) {
	client := NewClient(testOptions(t))
	defer client.Close()
	ctx := context.Background()
	c := NewCache(client, time.Minute)
	require.NoError(t, c.Ping(ctx))

	prefix := "zamgas:test:orders:" + time.Now().Format("150405.000000") + ":"
	require.NoError(t, c.Set(ctx, prefix+"courier:1", []int{1, 2}))
	data, err := c.Get(ctx, prefix+"courier:1")
	require.NoError(t, err)
	assert.JSONEq(t, `[1,2]`, string(data))

	require.NoError(t, c.DeleteByPrefix(ctx, prefix))
	_, err = c.Get(ctx, prefix+"courier:1")
	assert.Error(t, err)
}
