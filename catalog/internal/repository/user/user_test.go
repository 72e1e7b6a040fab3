package user

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

func TestCreateAndLookup(t *testing.T) {
	ctx := context.Background()
	repo := New(memory.New(), zap.NewNop())
	require.NoError(t, repo.Create(ctx, &model.User{ID: "u1", Username: "Ann", Email: "Ann@Example.com", PasswordHash: "h"}))

	byName, err := repo.GetByUsername(ctx, "ANN")
	require.NoError(t, err)
	assert.Equal(t, "u1", byName.ID)

	byEmail, err := repo.GetByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", byEmail.ID)

	_, err = repo.GetByUsername(ctx, "bob")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCreateRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := New(memory.New(), zap.NewNop())
	require.NoError(t, repo.Create(ctx, &model.User{ID: "u1", Username: "ann", Email: "ann@example.com"}))

	tests := []struct {
		name string
		user model.User
	}{
		{name: "username", user: model.User{ID: "u2", Username: "ANN", Email: "other@example.com"}},
		{name: "email", user: model.User{ID: "u2", Username: "other", Email: "ANN@example.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Create(ctx, &tt.user)
			assert.ErrorIs(t, err, repository.ErrAlreadyExists)
			_, err = repo.Get(ctx, "u2")
			assert.ErrorIs(t, err, repository.ErrNotFound)
		})
	}
}

func TestUpdateMovesIndexes(t *testing.T) {
	ctx := context.Background()
	repo := New(memory.New(), zap.NewNop())
	require.NoError(t, repo.Create(ctx, &model.User{ID: "u1", Username: "ann", Email: "ann@example.com"}))
	require.NoError(t, repo.Create(ctx, &model.User{ID: "u2", Username: "bob", Email: "bob@example.com"}))

	err := repo.Update(ctx, &model.User{ID: "u1", Username: "bob", Email: "ann@example.com"})
	assert.ErrorIs(t, err, repository.ErrAlreadyExists)

	require.NoError(t, repo.Update(ctx, &model.User{ID: "u1", Username: "annie", Email: "annie@example.com"}))
	_, err = repo.GetByUsername(ctx, "ann")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = repo.GetByEmail(ctx, "ann@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	u, err := repo.GetByUsername(ctx, "Annie")
	require.NoError(t, err)
	assert.Equal(t, "annie@example.com", u.Email)

	require.NoError(t, repo.Update(ctx, &model.User{ID: "u1", Username: "Annie", Email: "annie@example.com", ProfilePicture: "p.png"}))
	u, err = repo.GetByUsername(ctx, "annie")
	require.NoError(t, err)
	assert.Equal(t, "p.png", u.ProfilePicture)

	err = repo.Update(ctx, &model.User{ID: "missing", Username: "x", Email: "x@example.com"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPasswordReset(t *testing.T) {
	ctx := context.Background()
	repo := New(memory.New(), zap.NewNop())
	require.NoError(t, repo.PutReset(ctx, "tok", &model.PasswordReset{UserID: "u1", ExpiresAt: 42}))
	got, err := repo.GetReset(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, &model.PasswordReset{UserID: "u1", ExpiresAt: 42}, got)
	require.NoError(t, repo.DeleteReset(ctx, "tok"))
	_, err = repo.GetReset(ctx, "tok")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
