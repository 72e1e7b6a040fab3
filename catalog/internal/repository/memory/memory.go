package memory

import (
	"context"
	"moviecatalog/catalog/internal/repository"
	"moviecatalog/catalog/pkg/model"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru"
)

// DefaultSize is the number of entries kept when no size is configured.
const DefaultSize = 1000

type item struct {
	m       *model.Metadata
	expires time.Time
}

// Repository defines a bounded in-memory metadata cache keyed by external id
// or title/year. The least recently used entry is evicted once the cache is
// full, and entries older than the TTL are treated as missing.
type Repository struct {
	cache *lru.Cache
	ttl   time.Duration
	now   func() time.Time
}

// New creates a new memory repository holding at most size entries. A
// non-positive size means DefaultSize and a non-positive ttl disables expiry.
func New(size int, ttl time.Duration) (*Repository, error) {
	if size <= 0 {
		size = DefaultSize
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Repository{cache: cache, ttl: ttl, now: time.Now}, nil
}

// Get retrieves cached metadata.
func (r *Repository) Get(_ context.Context, key string) (*model.Metadata, error) {
	key = strings.ToLower(key)
	v, ok := r.cache.Get(key)
	if !ok {
		return nil, repository.ErrNotFound
	}
	it := v.(item)
	if !it.expires.IsZero() && !r.now().Before(it.expires) {
		r.cache.Remove(key)
		return nil, repository.ErrNotFound
	}
	return it.m, nil
}

// Put caches metadata under key.
func (r *Repository) Put(_ context.Context, key string, m *model.Metadata) error {
	it := item{m: m}
	if r.ttl > 0 {
		it.expires = r.now().Add(r.ttl)
	}
	r.cache.Add(strings.ToLower(key), it)
	return nil
}

// Len returns the number of cached entries, expired ones included.
func (r *Repository) Len() int {
	return r.cache.Len()
}
