package memory

import (
	"context"
	"fmt"
	"moviecatalog/catalog/internal/repository"
	"moviecatalog/catalog/pkg/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	r, err := New(0, 0)
	require.NoError(t, err)
	_, err = r.Get(ctx, "tt0114369")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	m := &model.Metadata{Title: "Se7en", ImdbID: "tt0114369"}
	require.NoError(t, r.Put(ctx, "TT0114369", m))
	got, err := r.Get(ctx, "tt0114369")
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	r, err := New(2, 0)
	require.NoError(t, err)
	require.NoError(t, r.Put(ctx, "a", &model.Metadata{Title: "A"}))
	require.NoError(t, r.Put(ctx, "b", &model.Metadata{Title: "B"}))
	_, err = r.Get(ctx, "a")
	require.NoError(t, err)
	require.NoError(t, r.Put(ctx, "c", &model.Metadata{Title: "C"}))

	assert.Equal(t, 2, r.Len())
	_, err = r.Get(ctx, "b")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	for _, key := range []string{"a", "c"} {
		_, err := r.Get(ctx, key)
		assert.NoError(t, err, key)
	}
}

func TestStaysBounded(t *testing.T) {
	ctx := context.Background()
	r, err := New(10, 0)
	require.NoError(t, err)
	for i := range 100 {
		require.NoError(t, r.Put(ctx, fmt.Sprintf("title:%d", i), &model.Metadata{}))
	}
	assert.Equal(t, 10, r.Len())
}

func TestExpiry(t *testing.T) {
	tests := []struct {
		name    string
		ttl     time.Duration
		elapsed time.Duration
		wantErr error
	}{
		{name: "fresh", ttl: time.Hour, elapsed: 59 * time.Minute},
		{name: "expired", ttl: time.Hour, elapsed: time.Hour, wantErr: repository.ErrNotFound},
		{name: "no ttl", ttl: 0, elapsed: 24 * 365 * time.Hour},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			r, err := New(0, tt.ttl)
			require.NoError(t, err)
			now := time.Unix(1700000000, 0)
			r.now = func() time.Time { return now }
			require.NoError(t, r.Put(ctx, "tt0114369", &model.Metadata{Title: "Se7en"}))

			now = now.Add(tt.elapsed)
			_, err = r.Get(ctx, "tt0114369")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 0, r.Len())
				return
			}
			assert.NoError(t, err)
		})
	}
}
