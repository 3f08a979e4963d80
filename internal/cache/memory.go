package cache

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// MemoryStore is an in-process store backed by ttlcache. Hits do not extend
// an entry's lifetime. Expired entries are never served; Run additionally
// evicts them in the background.
type MemoryStore struct {
	cache *ttlcache.Cache[string, []byte]
}

func NewMemoryStore(ttl time.Duration, capacity int) *MemoryStore {
	c := ttlcache.New(
		ttlcache.WithTTL[string, []byte](ttl),
		ttlcache.WithDisableTouchOnHit[string, []byte](),
		ttlcache.WithCapacity[string, []byte](uint64(capacity)),
	)
	return &MemoryStore{cache: c}
}

var (
	_ Store  = (*MemoryStore)(nil)
	_ Runner = (*MemoryStore)(nil)
)

// Run drives the expiry loop until ctx is done.
func (s *MemoryStore) Run(ctx context.Context) error {
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		s.cache.Start()
	}()

	<-ctx.Done()
	s.cache.Stop()
	<-stopped
	return nil
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	item := s.cache.Get(key)
	if item == nil {
		return nil, false, nil
	}
	return item.Value(), true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.cache.Set(key, value, ttlcache.DefaultTTL)
	return nil
}

func (s *MemoryStore) Purge(context.Context) error {
	s.cache.DeleteAll()
	return nil
}

// Close drops every entry. The expiry loop is owned by Run.
func (s *MemoryStore) Close() error {
	s.cache.DeleteAll()
	return nil
}
