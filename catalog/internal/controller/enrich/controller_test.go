package enrich

import (
	"context"
	"errors"
	"moviecatalog/catalog/internal/backfill"
	"moviecatalog/catalog/internal/controller/metadata"
	"moviecatalog/catalog/internal/gateway"
	"moviecatalog/catalog/internal/repository"
	"moviecatalog/catalog/pkg/model"
	"testing"

	gen "moviecatalog/catalog/gen/mock/controller/enrich"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type mocks struct {
	entries  *gen.MockentryRepository
	metadata *gen.MockmetadataLookup
	trailers *gen.MocktrailerGateway
	runner   *gen.MockbatchRunner
}

func newController(t *testing.T) (*Controller, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		entries:  gen.NewMockentryRepository(ctrl),
		metadata: gen.NewMockmetadataLookup(ctrl),
		trailers: gen.NewMocktrailerGateway(ctrl),
		runner:   gen.NewMockbatchRunner(ctrl),
	}
	return New(m.entries, m.metadata, m.trailers, m.runner, zap.NewNop()), m
}

func TestFetchTrailer(t *testing.T) {
	const search = "https://www.youtube.com/results?search_query=Heat+1995+trailer"
	tests := []struct {
		name      string
		findRes   string
		findErr   error
		wantURL   string
		searchURL bool
	}{
		{name: "found", findRes: "https://www.youtube.com/watch?v=abcdefghijk", wantURL: "https://www.youtube.com/watch?v=abcdefghijk"},
		{name: "no results", findErr: gateway.ErrNotFound, wantURL: search, searchURL: true},
		{name: "provider error", findErr: errors.New("unexpected error"), wantURL: search, searchURL: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, m := newController(t)
			ctx := context.Background()
			m.entries.EXPECT().Get(ctx, int64(1)).Return(&model.Entry{ID: 1, Title: "Heat", Year: 1995}, nil)
			m.trailers.EXPECT().Find(ctx, "Heat", 1995).Return(tt.findRes, tt.findErr)
			if tt.searchURL {
				m.trailers.EXPECT().SearchURL("Heat", 1995).Return(search)
			}
			m.entries.EXPECT().Put(ctx, &model.Entry{ID: 1, Title: "Heat", Year: 1995, Trailer: tt.wantURL}).Return(nil)
			res, err := c.FetchTrailer(ctx, 1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, res.Trailer)
		})
	}
}

func TestFetchTrailerNotFound(t *testing.T) {
	c, m := newController(t)
	ctx := context.Background()
	m.entries.EXPECT().Get(ctx, int64(2)).Return(nil, repository.ErrNotFound)
	_, err := c.FetchTrailer(ctx, 2)
	assert.Equal(t, ErrNotFound, err)
}

func TestFetchTrailerCanceled(t *testing.T) {
	c, m := newController(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m.entries.EXPECT().Get(ctx, int64(1)).Return(&model.Entry{ID: 1, Title: "Heat"}, nil)
	m.trailers.EXPECT().Find(ctx, "Heat", 0).Return("", context.Canceled)
	_, err := c.FetchTrailer(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlotsTask(t *testing.T) {
	c, m := newController(t)
	ctx := context.Background()
	task := c.PlotsTask()
	assert.True(t, task.Needs(&model.Entry{}))
	assert.False(t, task.Needs(&model.Entry{Plot: "known"}))

	e := &model.Entry{ID: 1, Title: "Heat", Year: 1995, Director: "Mann"}
	m.metadata.EXPECT().ForEntry(ctx, e).Return(&model.Metadata{
		Plot:     "A heist.",
		Director: "Michael Mann",
		Cast:     []string{"Al Pacino", "Robert De Niro"},
		ImdbID:   "tt0113277",
	}, nil)
	require.NoError(t, task.Fill(ctx, e))
	assert.Equal(t, &model.Entry{
		ID:       1,
		Title:    "Heat",
		Year:     1995,
		Director: "Mann",
		Plot:     "A heist.",
		Cast:     []string{"Al Pacino", "Robert De Niro"},
		ImdbID:   "tt0113277",
	}, e)

	unknown := &model.Entry{ID: 2, Title: "Nothing"}
	m.metadata.EXPECT().ForEntry(ctx, unknown).Return(nil, metadata.ErrNotFound)
	assert.ErrorIs(t, task.Fill(ctx, unknown), backfill.ErrSkipped)

	noPlot := &model.Entry{ID: 3, Title: "Blank"}
	m.metadata.EXPECT().ForEntry(ctx, noPlot).Return(&model.Metadata{Title: "Blank"}, nil)
	assert.ErrorIs(t, task.Fill(ctx, noPlot), backfill.ErrSkipped)
}

func TestRuntimesTask(t *testing.T) {
	c, m := newController(t)
	ctx := context.Background()
	task := c.RuntimesTask()
	assert.False(t, task.Needs(&model.Entry{Runtime: "120 min"}))

	e := &model.Entry{ID: 1, Title: "Dark"}
	m.metadata.EXPECT().ForEntry(ctx, e).Return(&model.Metadata{Runtime: "3 Seasons"}, nil)
	require.NoError(t, task.Fill(ctx, e))
	assert.Equal(t, "3 Seasons", e.Runtime)

	m.metadata.EXPECT().ForEntry(ctx, e).Return(nil, errors.New("unexpected error"))
	assert.Equal(t, errors.New("unexpected error"), task.Fill(ctx, e))
}

func TestTrailersTaskForce(t *testing.T) {
	c, _ := newController(t)
	withTrailer := &model.Entry{Trailer: "https://www.youtube.com/watch?v=abcdefghijk"}
	assert.False(t, c.TrailersTask(false).Needs(withTrailer))
	assert.True(t, c.TrailersTask(true).Needs(withTrailer))
}

func TestBatches(t *testing.T) {
	c, m := newController(t)
	ctx := context.Background()
	report := &backfill.Report{Task: "plots", Candidates: 3, Processed: 2, Updated: 2, Remaining: 1}
	m.runner.EXPECT().Run(ctx, gomock.Any(), 2).DoAndReturn(
		func(_ context.Context, task backfill.Task, _ int) (*backfill.Report, error) {
			assert.Equal(t, "plots", task.Name)
			return report, nil
		})
	got, err := c.FetchPlots(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, report, got)

	m.runner.EXPECT().Run(ctx, gomock.Any(), 0).DoAndReturn(
		func(_ context.Context, task backfill.Task, _ int) (*backfill.Report, error) {
			assert.Equal(t, "trailers", task.Name)
			return &backfill.Report{Task: task.Name}, nil
		})
	_, err = c.FetchAllTrailers(ctx, 0, true)
	require.NoError(t, err)

	m.runner.EXPECT().Run(ctx, gomock.Any(), 5).Return(nil, context.Canceled)
	_, err = c.FetchRuntimes(ctx, 5)
	assert.ErrorIs(t, err, context.Canceled)
}
