package payload

import (
	"fmt"
	"time"

	"github.com/libsv/go-p2p/wire"
	"github.com/patrickmn/go-cache"
)

const (
	defaultExpiration = 10 * time.Minute
	defaultCleanup    = 15 * time.Minute
)

// Store keeps fetched inventory payloads for a bounded time until a consumer
// picks them up. Entries expire so an abandoned payload cannot pin memory.
type Store struct {
	cacheStore *cache.Cache
}

func WithExpiration(expiration, cleanup time.Duration) func(s *Store) {
	return func(s *Store) {
		s.cacheStore = cache.New(expiration, cleanup)
	}
}

func NewStore(opts ...func(s *Store)) *Store {
	s := &Store{
		cacheStore: cache.New(defaultExpiration, defaultCleanup),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Put stores the raw payload delivered for inv. A payload delivered twice
// keeps the latest copy.
func (s *Store) Put(inv wire.InvVect, raw []byte) {
	s.cacheStore.Set(key(inv), raw, cache.DefaultExpiration)
}

func (s *Store) Get(inv wire.InvVect) ([]byte, bool) {
	v, found := s.cacheStore.Get(key(inv))
	if !found {
		return nil, false
	}

	raw, ok := v.([]byte)
	return raw, ok
}

func (s *Store) Delete(inv wire.InvVect) {
	s.cacheStore.Delete(key(inv))
}

func (s *Store) Len() int {
	return s.cacheStore.ItemCount()
}

func key(inv wire.InvVect) string {
	return fmt.Sprintf("%d:%s", inv.Type, inv.Hash.String())
}
