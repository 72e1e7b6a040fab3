package rating

import (
	"context"
	"moviecatalog/catalog/internal/repository"
	"moviecatalog/catalog/pkg/model"
	"moviecatalog/pkg/kvstore/memory"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	repo := New(memory.New(), zap.NewNop())

	require.NoError(t, repo.Put(ctx, &model.Rating{MovieID: 7, Value: 4, UserIdentifier: "anon_123"}))
	require.NoError(t, repo.Put(ctx, &model.Rating{MovieID: 7, Value: 2, UserIdentifier: "anon_123"}))
	require.NoError(t, repo.Put(ctx, &model.Rating{MovieID: 70, Value: 5, UserIdentifier: "anon_123"}))

	got, err := repo.ListByMovie(ctx, 7)
	require.NoError(t, err)
	require.Len(t, got, 1, "repeat submission overwrites")
	assert.Equal(t, 2, got[0].Value)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	r, err := repo.Get(ctx, 70, "anon_123")
	require.NoError(t, err)
	assert.Equal(t, 5, r.Value)

	require.NoError(t, repo.Delete(ctx, 70, "anon_123"))
	_, err = repo.Get(ctx, 70, "anon_123")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
