package comment

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

	require.NoError(t, repo.Put(ctx, &model.Comment{ID: "b", MovieID: 1, Username: "ann", Text: "second", Timestamp: 200}))
	require.NoError(t, repo.Put(ctx, &model.Comment{ID: "a", MovieID: 1, Username: "bob", Text: "first", Timestamp: 100}))
	require.NoError(t, repo.Put(ctx, &model.Comment{ID: "c", MovieID: 2, Username: "ann", Text: "other", Timestamp: 50}))

	got, err := repo.ListByMovie(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Text)
	assert.Equal(t, "second", got[1].Text)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "other", all[0].Text)

	c, err := repo.Get(ctx, 1, "b")
	require.NoError(t, err)
	assert.Equal(t, "ann", c.Username)

	require.NoError(t, repo.Delete(ctx, 1, "b"))
	_, err = repo.Get(ctx, 1, "b")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
