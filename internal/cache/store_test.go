package cache

import (
	"context"
	"testing"
	"time"

	"restaurant-api/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInProcessStores(t *testing.T) {
	stores := map[string]Store{
		"memory":  NewMemoryStore(time.Minute, 100),
		"sturdyc": NewSturdyStore("test", time.Minute, 100),
	}
	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			defer store.Close()

			_, ok, err := store.Get(ctx, "test:a")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, store.Set(ctx, "test:a", []byte("menu")))
			val, ok, err := store.Get(ctx, "test:a")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, []byte("menu"), val)

			require.NoError(t, store.Purge(ctx))
			_, ok, err = store.Get(ctx, "test:a")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore(50*time.Millisecond, 10)
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("v")))
	assert.Eventually(t, func() bool {
		_, ok, _ := store.Get(ctx, "k")
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestMemoryStore_RunEvictsUntilCancelled(t *testing.T) {
	store := NewMemoryStore(20*time.Millisecond, 10)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- store.Run(ctx) }()

	require.NoError(t, store.Set(context.Background(), "k", []byte("v")))
	assert.Eventually(t, func() bool { return store.cache.Len() == 0 },
		time.Second, 10*time.Millisecond, "expired entry is evicted without a read")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestMemoryStore_CloseWithoutRun(t *testing.T) {
	store := NewMemoryStore(time.Minute, 10)
	require.NoError(t, store.Set(context.Background(), "k", []byte("v")))
	require.NoError(t, store.Close())
	assert.Zero(t, store.cache.Len())
}

func TestNew(t *testing.T) {
	cfg := config.CacheConfig{TTL: time.Second, Prefix: "p", Capacity: 10}

	cfg.Backend = config.CacheBackendMemory
	s, err := New(cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)
	s.Close()

	cfg.Backend = config.CacheBackendSturdyc
	s, err = New(cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &SturdyStore{}, s)

	cfg.Backend = config.CacheBackendRedis
	_, err = New(cfg, nil)
	assert.Error(t, err)

	cfg.Backend = "memcached"
	_, err = New(cfg, nil)
	assert.Error(t, err)
}
