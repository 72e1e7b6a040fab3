package comment

import (
	"context"
	"moviecatalog/catalog/internal/repository"
	"moviecatalog/catalog/pkg/model"
	"testing"
	"time"

	gen "moviecatalog/gen/mock/catalog/controller/comment"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newController(t *testing.T) (*Controller, *gen.MockcommentRepository) {
	repo := gen.NewMockcommentRepository(gomock.NewController(t))
	c := New(repo, zap.NewNop())
	c.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return c, repo
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name     string
		authUser string
		in       NewComment
		wantUser string
		wantErr  error
	}{
		{name: "anonymous author", in: NewComment{MovieID: 1, Username: "guest", Text: " great "}, wantUser: "guest"},
		{name: "authenticated fills username", authUser: "ann", in: NewComment{MovieID: 1, Text: "great"}, wantUser: "ann"},
		{name: "authenticated same username", authUser: "ann", in: NewComment{MovieID: 1, Username: "ANN", Text: "great"}, wantUser: "ann"},
		{name: "authenticated other username", authUser: "ann", in: NewComment{MovieID: 1, Username: "bob", Text: "great"}, wantErr: ErrUnauthorized},
		{name: "empty text", in: NewComment{MovieID: 1, Username: "guest", Text: "   "}, wantErr: ErrInvalid},
		{name: "no author", in: NewComment{MovieID: 1, Text: "great"}, wantErr: ErrInvalid},
		{name: "no movie", in: NewComment{Username: "guest", Text: "great"}, wantErr: ErrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, repo := newController(t)
			ctx := context.Background()
			if tt.wantErr == nil {
				repo.EXPECT().Put(ctx, gomock.Any()).Return(nil)
			}
			res, err := c.Create(ctx, tt.authUser, &tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUser, res.Username)
			assert.Equal(t, "great", res.Text)
			assert.Equal(t, int64(1700000000000), res.Timestamp)
			id, err := ulid.Parse(res.ID)
			require.NoError(t, err)
			assert.Equal(t, uint64(1700000000000), id.Time())
		})
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name     string
		authUser string
		repoRes  *model.Comment
		repoErr  error
		wantErr  error
	}{
		{name: "author", authUser: "Ann", repoRes: &model.Comment{ID: "c1", MovieID: 1, Username: "ann"}},
		{name: "not author", authUser: "bob", repoRes: &model.Comment{ID: "c1", MovieID: 1, Username: "ann"}, wantErr: ErrUnauthorized},
		{name: "no user", repoRes: &model.Comment{ID: "c1", MovieID: 1, Username: "ann"}, wantErr: ErrUnauthorized},
		{name: "missing", authUser: "ann", repoErr: repository.ErrNotFound, wantErr: ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, repo := newController(t)
			ctx := context.Background()
			repo.EXPECT().Get(ctx, int64(1), "c1").Return(tt.repoRes, tt.repoErr)
			if tt.wantErr == nil {
				repo.EXPECT().Delete(ctx, int64(1), "c1").Return(nil)
			}
			err := c.Delete(ctx, tt.authUser, 1, "c1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestList(t *testing.T) {
	c, repo := newController(t)
	ctx := context.Background()
	want := []model.Comment{{ID: "a", MovieID: 1, Text: "x"}}
	repo.EXPECT().ListByMovie(ctx, int64(1)).Return(want, nil)
	repo.EXPECT().List(ctx).Return(want, nil)
	got, err := c.ListByMovie(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	got, err = c.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
