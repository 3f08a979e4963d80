package cache

import (
	"context"
	"strings"
	"time"

	"github.com/viccon/sturdyc"
)

const (
	sturdyShards          = 10
	sturdyEvictionPercent = 10
)

// SturdyStore is a sharded in-process store backed by sturdyc.
type SturdyStore struct {
	client *sturdyc.Client[[]byte]
	prefix string
}

func NewSturdyStore(prefix string, ttl time.Duration, capacity int) *SturdyStore {
	return &SturdyStore{
		client: sturdyc.New[[]byte](capacity, sturdyShards, ttl, sturdyEvictionPercent),
		prefix: prefix,
	}
}

var _ Store = (*SturdyStore)(nil)

func (s *SturdyStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	val, ok := s.client.Get(key)
	return val, ok, nil
}

func (s *SturdyStore) Set(_ context.Context, key string, value []byte) error {
	s.client.Set(key, value)
	return nil
}

func (s *SturdyStore) Purge(context.Context) error {
	for _, key := range s.client.ScanKeys() {
		if strings.HasPrefix(key, s.prefix+":") {
			s.client.Delete(key)
		}
	}
	return nil
}

func (s *SturdyStore) Close() error { return nil }
