package enrich

import (
	"context"
	"errors"
	"moviecatalog/catalog/internal/backfill"
	"moviecatalog/catalog/internal/controller/metadata"
	"moviecatalog/catalog/internal/gateway"
	"moviecatalog/catalog/internal/repository"
	"moviecatalog/catalog/pkg/model"
	"moviecatalog/pkg/logging"

	"go.uber.org/zap"
)

// ErrNotFound is returned when the entry does not exist.
var ErrNotFound = errors.New("entry not found")

type entryRepository interface {
	Get(ctx context.Context, id int64) (*model.Entry, error)
	Put(ctx context.Context, e *model.Entry) error
}

type metadataLookup interface {
	ForEntry(ctx context.Context, e *model.Entry) (*model.Metadata, error)
}

type trailerGateway interface {
	Find(ctx context.Context, title string, year int) (string, error)
	SearchURL(title string, year int) string
}

type batchRunner interface {
	Run(ctx context.Context, task backfill.Task, limit int) (*backfill.Report, error)
}

// Controller defines the enrichment controller filling trailers, plots and runtimes.
type Controller struct {
	entries  entryRepository
	metadata metadataLookup
	trailers trailerGateway
	runner   batchRunner
	logger   *zap.Logger
}

// New creates an enrichment controller over the movie namespace.
func New(entries entryRepository, metadata metadataLookup, trailers trailerGateway, runner batchRunner, logger *zap.Logger) *Controller {
	logger = logger.With(
		zap.String(logging.FieldComponent, "controller"),
		zap.String(logging.FieldType, "enrich"),
	)
	return &Controller{entries: entries, metadata: metadata, trailers: trailers, runner: runner, logger: logger}
}

// FetchTrailer looks up a trailer for one entry and stores it.
func (c *Controller) FetchTrailer(ctx context.Context, id int64) (*model.Entry, error) {
	e, err := c.entries.Get(ctx, id)
	if err != nil && errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	if err := c.fillTrailer(ctx, e); err != nil {
		return nil, err
	}
	if err := c.entries.Put(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// fillTrailer sets the first search result, or the search page itself when
// the lookup fails.
func (c *Controller) fillTrailer(ctx context.Context, e *model.Entry) error {
	u, err := c.trailers.Find(ctx, e.Title, int(e.Year))
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !errors.Is(err, gateway.ErrNotFound) {
			c.logger.Warn("Trailer lookup failed, using search link", zap.Int64(logging.FieldMovieID, e.ID), zap.Error(err))
		}
		u = c.trailers.SearchURL(e.Title, int(e.Year))
	}
	e.Trailer = u
	return nil
}

// TrailersTask fills missing trailers, or every trailer when force is set.
func (c *Controller) TrailersTask(force bool) backfill.Task {
	return backfill.Task{
		Name:  "trailers",
		Needs: func(e *model.Entry) bool { return force || e.Trailer == "" },
		Fill:  c.fillTrailer,
	}
}

// PlotsTask fills missing plots along with missing director, cast and IMDb id.
func (c *Controller) PlotsTask() backfill.Task {
	return backfill.Task{
		Name:  "plots",
		Needs: func(e *model.Entry) bool { return e.Plot == "" },
		Fill: func(ctx context.Context, e *model.Entry) error {
			m, err := c.lookup(ctx, e)
			if err != nil {
				return err
			}
			if m.Plot == "" {
				return backfill.ErrSkipped
			}
			e.Plot = m.Plot
			if e.Director == "" {
				e.Director = m.Director
			}
			if len(e.Cast) == 0 {
				e.Cast = m.Cast
			}
			if e.ImdbID == "" {
				e.ImdbID = m.ImdbID
			}
			return nil
		},
	}
}

// RuntimesTask fills missing runtimes.
func (c *Controller) RuntimesTask() backfill.Task {
	return backfill.Task{
		Name:  "runtimes",
		Needs: func(e *model.Entry) bool { return e.Runtime == "" },
		Fill: func(ctx context.Context, e *model.Entry) error {
			m, err := c.lookup(ctx, e)
			if err != nil {
				return err
			}
			if m.Runtime == "" {
				return backfill.ErrSkipped
			}
			e.Runtime = m.Runtime
			return nil
		},
	}
}

func (c *Controller) lookup(ctx context.Context, e *model.Entry) (*model.Metadata, error) {
	m, err := c.metadata.ForEntry(ctx, e)
	if err != nil && errors.Is(err, metadata.ErrNotFound) {
		return nil, backfill.ErrSkipped
	}
	return m, err
}

// FetchAllTrailers runs the trailer task over at most limit entries.
func (c *Controller) FetchAllTrailers(ctx context.Context, limit int, force bool) (*backfill.Report, error) {
	return c.runner.Run(ctx, c.TrailersTask(force), limit)
}

// FetchPlots runs the plot task over at most limit entries.
func (c *Controller) FetchPlots(ctx context.Context, limit int) (*backfill.Report, error) {
	return c.runner.Run(ctx, c.PlotsTask(), limit)
}

// FetchRuntimes runs the runtime task over at most limit entries.
func (c *Controller) FetchRuntimes(ctx context.Context, limit int) (*backfill.Report, error) {
	return c.runner.Run(ctx, c.RuntimesTask(), limit)
}
