package memory

import (
	"context"
	"moviecatalog/pkg/kvstore"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"
)

const tracerID = "kvstore-memory"

// Store defines an in-memory key-value store.
type Store struct {
	sync.RWMutex
	data map[string][]byte
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{data: map[string][]byte{}}
}

// Get retrieves the value stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "Store/Get")
	defer span.End()
	s.RLock()
	defer s.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, kvstore.ErrNotFound
	}
	return clone(v), nil
}

// Set stores value under key.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	_, span := otel.Tracer(tracerID).Start(ctx, "Store/Set")
	defer span.End()
	s.Lock()
	defer s.Unlock()
	s.data[key] = clone(value)
	return nil
}

// Del removes key.
func (s *Store) Del(ctx context.Context, key string) error {
	_, span := otel.Tracer(tracerID).Start(ctx, "Store/Del")
	defer span.End()
	s.Lock()
	defer s.Unlock()
	delete(s.data, key)
	return nil
}

// GetByPrefix returns all values whose key starts with prefix.
func (s *Store) GetByPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "Store/GetByPrefix")
	defer span.End()
	s.RLock()
	defer s.RUnlock()
	var res [][]byte
	for k, v := range s.data {
		if strings.HasPrefix(k, prefix) {
			res = append(res, clone(v))
		}
	}
	return res, nil
}

// Scan returns all pairs whose key starts with prefix.
func (s *Store) Scan(ctx context.Context, prefix string) ([]kvstore.Pair, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "Store/Scan")
	defer span.End()
	s.RLock()
	defer s.RUnlock()
	var res []kvstore.Pair
	for k, v := range s.data {
		if strings.HasPrefix(k, prefix) {
			res = append(res, kvstore.Pair{Key: k, Value: clone(v)})
		}
	}
	return res, nil
}

func clone(b []byte) []byte {
	return append([]byte(nil), b...)
}
