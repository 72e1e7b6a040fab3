// Package tiered composes a remote key-value store with a local fallback store.
//
// The remote tier is authoritative. The local tier only keeps the last known good
// values so reads survive a remote outage; the two tiers are never merged.
package tiered

import (
	"context"
	"errors"
	"moviecatalog/pkg/kvstore"
	"moviecatalog/pkg/logging"

	"go.uber.org/zap"
)

// SyncPolicy defines how the tiers cooperate.
type SyncPolicy struct {
	// ServeLocalOnRemoteError serves reads from the local tier when the remote read fails
	// with anything other than kvstore.ErrNotFound.
	ServeLocalOnRemoteError bool `yaml:"serveLocalOnRemoteError"`
	// AcceptLocalOnlyWrites keeps a write in the local tier and reports success when the
	// remote write fails. Such writes are not replayed later.
	AcceptLocalOnlyWrites bool `yaml:"acceptLocalOnlyWrites"`
}

// DefaultPolicy prefers remote on read success, writes both tiers and falls back to local on failure.
var DefaultPolicy = SyncPolicy{ServeLocalOnRemoteError: true, AcceptLocalOnlyWrites: true}

// Tier defines one tier of the store. Both tiers list keys with their values.
type Tier interface {
	kvstore.Store
	kvstore.Scanner
}

// Store defines a two-tier key-value store. Every successful remote read,
// including prefix listings, is mirrored key by key into the local tier, so
// the local tier holds the last known good copy of everything read or written.
type Store struct {
	remote Tier
	local  Tier
	policy SyncPolicy
	logger *zap.Logger
}

// New creates a two-tier store.
func New(remote, local Tier, policy SyncPolicy, logger *zap.Logger) *Store {
	logger = logger.With(
		zap.String(logging.FieldComponent, "kvstore"),
		zap.String(logging.FieldType, "tiered"),
	)
	return &Store{remote: remote, local: local, policy: policy, logger: logger}
}

// Get reads from the remote tier and refreshes the local copy. When the remote
// tier fails the local copy is served if the policy allows it.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := s.remote.Get(ctx, key)
	if err == nil {
		if err := s.local.Set(ctx, key, v); err != nil {
			s.logger.Warn("Failed to refresh local tier", zap.String(logging.FieldKey, key), zap.Error(err))
		}
		return v, nil
	}
	if errors.Is(err, kvstore.ErrNotFound) || !s.policy.ServeLocalOnRemoteError {
		return nil, err
	}
	s.logger.Warn("Remote read failed, serving local tier", zap.String(logging.FieldKey, key), zap.Error(err))
	lv, lerr := s.local.Get(ctx, key)
	if lerr != nil {
		return nil, err
	}
	return lv, nil
}

// Set writes the remote tier, then the local tier.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.remote.Set(ctx, key, value); err != nil {
		if !s.policy.AcceptLocalOnlyWrites {
			return err
		}
		s.logger.Warn("Remote write failed, keeping local-only copy", zap.String(logging.FieldKey, key), zap.Error(err))
	}
	if err := s.local.Set(ctx, key, value); err != nil {
		s.logger.Warn("Failed to write local tier", zap.String(logging.FieldKey, key), zap.Error(err))
	}
	return nil
}

// Del removes key from both tiers.
func (s *Store) Del(ctx context.Context, key string) error {
	if err := s.remote.Del(ctx, key); err != nil {
		if !s.policy.AcceptLocalOnlyWrites {
			return err
		}
		s.logger.Warn("Remote delete failed, deleting local copy only", zap.String(logging.FieldKey, key), zap.Error(err))
	}
	if err := s.local.Del(ctx, key); err != nil {
		s.logger.Warn("Failed to delete from local tier", zap.String(logging.FieldKey, key), zap.Error(err))
	}
	return nil
}

// GetByPrefix lists the remote tier and mirrors the result into the local
// tier. On remote failure it lists the local tier.
func (s *Store) GetByPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	pairs, err := s.Scan(ctx, prefix)
	if err != nil {
		return nil, err
	}
	values := make([][]byte, len(pairs))
	for i, p := range pairs {
		values[i] = p.Value
	}
	return values, nil
}

// Scan is GetByPrefix with keys.
func (s *Store) Scan(ctx context.Context, prefix string) ([]kvstore.Pair, error) {
	pairs, err := s.remote.Scan(ctx, prefix)
	if err == nil {
		s.mirror(ctx, prefix, pairs)
		return pairs, nil
	}
	if !s.policy.ServeLocalOnRemoteError {
		return nil, err
	}
	s.logger.Warn("Remote scan failed, serving local tier", zap.String(logging.FieldKey, prefix), zap.Error(err))
	local, lerr := s.local.Scan(ctx, prefix)
	if lerr != nil {
		return nil, err
	}
	return local, nil
}

// mirror makes the local keys under prefix match the remote listing.
func (s *Store) mirror(ctx context.Context, prefix string, pairs []kvstore.Pair) {
	live := make(map[string]struct{}, len(pairs))
	for _, p := range pairs {
		live[p.Key] = struct{}{}
		if err := s.local.Set(ctx, p.Key, p.Value); err != nil {
			s.logger.Warn("Failed to mirror key", zap.String(logging.FieldKey, p.Key), zap.Error(err))
		}
	}
	local, err := s.local.Scan(ctx, prefix)
	if err != nil {
		s.logger.Warn("Failed to list local tier", zap.String(logging.FieldKey, prefix), zap.Error(err))
		return
	}
	for _, p := range local {
		if _, ok := live[p.Key]; ok {
			continue
		}
		if err := s.local.Del(ctx, p.Key); err != nil {
			s.logger.Warn("Failed to drop stale key", zap.String(logging.FieldKey, p.Key), zap.Error(err))
		}
	}
}
