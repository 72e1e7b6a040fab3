// Package kvstore defines the namespaced key-value store every catalog entity lives in.
//
// Keys are flat strings partitioned by prefix ("movie:", "rating:<movieId>:", ...).
// Values are JSON documents. There are no transactions and no secondary indexes:
// the last write to a key wins.
package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by Get when the key does not exist.
var ErrNotFound = errors.New("key not found")

// Store defines a namespaced key-value store.
type Store interface {
	// Get returns the value stored under key or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Del removes key. Removing a missing key is not an error.
	Del(ctx context.Context, key string) error
	// GetByPrefix returns the values of all keys starting with prefix, in no particular order.
	GetByPrefix(ctx context.Context, prefix string) ([][]byte, error)
}

// Pair defines one stored key with its value.
type Pair struct {
	Key   string
	Value []byte
}

// Scanner defines a store that lists keys along with their values.
type Scanner interface {
	// Scan returns every pair whose key starts with prefix, in no particular order.
	Scan(ctx context.Context, prefix string) ([]Pair, error)
}

// GetJSON reads key and decodes it into v.
func GetJSON(ctx context.Context, s Store, key string, v any) error {
	b, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(ctx, key, b)
}

// ListJSON decodes every value under prefix. Values that fail to decode are
// skipped and reported through skipped, so one corrupt record never hides the rest.
func ListJSON[T any](ctx context.Context, s Store, prefix string, skipped func(err error)) ([]T, error) {
	values, err := s.GetByPrefix(ctx, prefix)
	if err != nil {
		return nil, err
	}
	res := make([]T, 0, len(values))
	for _, b := range values {
		var v T
		if err := json.Unmarshal(b, &v); err != nil {
			if skipped != nil {
				skipped(fmt.Errorf("decode value under %s: %w", prefix, err))
			}
			continue
		}
		res = append(res, v)
	}
	return res, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes SQL LIKE wildcards so a prefix scan matches literally.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}
