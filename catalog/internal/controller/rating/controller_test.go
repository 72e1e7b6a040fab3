package rating

import (
	"context"
	"errors"
	"moviecatalog/catalog/pkg/model"
	"strings"
	"testing"
	"time"

	gen "moviecatalog/gen/mock/catalog/controller/rating"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newController(t *testing.T) (*Controller, *gen.MockratingRepository, *gen.MockratingIngester) {
	mc := gomock.NewController(t)
	repo := gen.NewMockratingRepository(mc)
	ingester := gen.NewMockratingIngester(mc)
	c := New(repo, ingester, zap.NewNop())
	c.now = func() time.Time { return time.UnixMilli(1000) }
	return c, repo, ingester
}

func TestPutRating(t *testing.T) {
	tests := []struct {
		name     string
		authUser string
		rating   model.Rating
		wantErr  error
	}{
		{name: "anonymous", rating: model.Rating{MovieID: 7, Value: 4, UserIdentifier: "anon_123"}},
		{name: "authenticated", authUser: "ann", rating: model.Rating{MovieID: 7, Value: 5, UserIdentifier: "ann"}},
		{name: "named without token", rating: model.Rating{MovieID: 7, Value: 4, UserIdentifier: "ann"}, wantErr: ErrUnauthorized},
		{name: "foreign token", authUser: "bob", rating: model.Rating{MovieID: 7, Value: 4, UserIdentifier: "ann"}, wantErr: ErrUnauthorized},
		{name: "value too high", rating: model.Rating{MovieID: 7, Value: 6, UserIdentifier: "anon_123"}, wantErr: ErrInvalid},
		{name: "value too low", rating: model.Rating{MovieID: 7, Value: 0, UserIdentifier: "anon_123"}, wantErr: ErrInvalid},
		{name: "no movie", rating: model.Rating{Value: 3, UserIdentifier: "anon_123"}, wantErr: ErrInvalid},
		{name: "no identifier", rating: model.Rating{MovieID: 7, Value: 3}, wantErr: ErrInvalid},
		{name: "identifier too long", rating: model.Rating{MovieID: 7, Value: 3, UserIdentifier: "anon_" + strings.Repeat("x", 200)}, wantErr: ErrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, repo, _ := newController(t)
			ctx := context.Background()
			if tt.wantErr == nil {
				want := tt.rating
				want.Timestamp = 1000
				repo.EXPECT().Put(ctx, &want).Return(nil)
				repo.EXPECT().ListByMovie(ctx, int64(7)).Return([]model.Rating{want}, nil)
			}
			res, err := c.PutRating(ctx, tt.authUser, &tt.rating)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, &model.AggregatedRating{MovieID: 7, Average: float64(tt.rating.Value), Count: 1}, res)
		})
	}
}

func TestGetAggregatedRating(t *testing.T) {
	c, repo, _ := newController(t)
	ctx := context.Background()
	repo.EXPECT().ListByMovie(ctx, int64(7)).Return([]model.Rating{
		{MovieID: 7, Value: 4, UserIdentifier: "anon_a"},
		{MovieID: 7, Value: 2, UserIdentifier: "anon_b"},
	}, nil)
	res, err := c.GetAggregatedRating(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, &model.AggregatedRating{MovieID: 7, Average: 3.0, Count: 2}, res)

	repo.EXPECT().ListByMovie(ctx, int64(8)).Return(nil, nil)
	res, err = c.GetAggregatedRating(ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, &model.AggregatedRating{MovieID: 8}, res)

	repo.EXPECT().ListByMovie(ctx, int64(9)).Return(nil, errors.New("unexpected error"))
	_, err = c.GetAggregatedRating(ctx, 9)
	assert.Equal(t, errors.New("unexpected error"), err)
}

func TestListAggregatedAndUserRatings(t *testing.T) {
	c, repo, _ := newController(t)
	ctx := context.Background()
	all := []model.Rating{
		{MovieID: 9, Value: 1, UserIdentifier: "ann"},
		{MovieID: 7, Value: 4, UserIdentifier: "ann"},
		{MovieID: 7, Value: 2, UserIdentifier: "bob"},
	}
	repo.EXPECT().List(ctx).Return(all, nil).Times(2)

	agg, err := c.ListAggregated(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.AggregatedRating{
		{MovieID: 7, Average: 3, Count: 2},
		{MovieID: 9, Average: 1, Count: 1},
	}, agg)

	mine, err := c.UserRatings(ctx, "ann")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, int64(7), mine[0].MovieID)
	assert.Equal(t, int64(9), mine[1].MovieID)
}

func TestNewAnonymousID(t *testing.T) {
	c, _, _ := newController(t)
	a, b := c.NewAnonymousID(), c.NewAnonymousID()
	assert.True(t, model.IsAnonymous(a))
	assert.NotEqual(t, a, b)
}

func TestStartIngestion(t *testing.T) {
	c, repo, ingester := newController(t)
	ctx := context.Background()
	ch := make(chan model.RatingEvent, 4)
	ch <- model.RatingEvent{Rating: model.Rating{MovieID: 7, Value: 4, UserIdentifier: "anon_1", Timestamp: 5}, EventType: model.RatingEventTypePut}
	ch <- model.RatingEvent{Rating: model.Rating{MovieID: 7, Value: 9, UserIdentifier: "anon_2"}, EventType: model.RatingEventTypePut}
	ch <- model.RatingEvent{Rating: model.Rating{MovieID: 7, UserIdentifier: "anon_3"}, EventType: model.RatingEventTypeDelete}
	ch <- model.RatingEvent{Rating: model.Rating{MovieID: 7, Value: 3, UserIdentifier: "anon_4"}, EventType: "upsert"}
	close(ch)

	ingester.EXPECT().Ingest(ctx).Return(ch, nil)
	repo.EXPECT().Put(ctx, &model.Rating{MovieID: 7, Value: 4, UserIdentifier: "anon_1", Timestamp: 5}).Return(nil)
	repo.EXPECT().Delete(ctx, int64(7), "anon_3").Return(nil)

	require.NoError(t, c.StartIngestion(ctx))
}

func TestStartIngestionWithoutIngester(t *testing.T) {
	c := New(nil, nil, zap.NewNop())
	require.Error(t, c.StartIngestion(context.Background()))
}
