package movie

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"moviecatalog/catalog/internal/repository"
	"moviecatalog/catalog/pkg/model"
	"moviecatalog/catalog/pkg/query"
	"moviecatalog/catalog/pkg/slug"
	"moviecatalog/pkg/logging"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned when the entry does not exist.
	ErrNotFound = errors.New("entry not found")
	// ErrInvalid is returned when an entry fails validation.
	ErrInvalid = errors.New("invalid entry")
	// ErrSlugConflict is returned when another entry of the namespace already has the title's slug.
	ErrSlugConflict = errors.New("slug conflict")
)

type entryRepository interface {
	Get(ctx context.Context, id int64) (*model.Entry, error)
	List(ctx context.Context) ([]model.Entry, error)
	Put(ctx context.Context, e *model.Entry) error
	Delete(ctx context.Context, id int64) error
}

type ratingRepository interface {
	List(ctx context.Context) ([]model.Rating, error)
	ListByMovie(ctx context.Context, movieID int64) ([]model.Rating, error)
}

type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// Controller defines a catalog entry controller serving every namespace.
type Controller struct {
	entries  map[model.Namespace]entryRepository
	ratings  ratingRepository
	shuffler query.Shuffler
	now      func() time.Time
	logger   *zap.Logger
}

// New creates an entry controller over the movie and to-watch repositories.
func New(movies, towatch entryRepository, ratings ratingRepository, logger *zap.Logger) *Controller {
	logger = logger.With(
		zap.String(logging.FieldComponent, "controller"),
		zap.String(logging.FieldType, "movie"),
	)
	return &Controller{
		entries: map[model.Namespace]entryRepository{
			model.NamespaceMovie:   movies,
			model.NamespaceToWatch: towatch,
		},
		ratings:  ratings,
		shuffler: globalShuffler{},
		now:      time.Now,
		logger:   logger,
	}
}

// WithShuffler replaces the randomness used for recommendations.
func (c *Controller) WithShuffler(s query.Shuffler) *Controller {
	c.shuffler = s
	return c
}

func (c *Controller) repo(ns model.Namespace) (entryRepository, error) {
	r, ok := c.entries[ns]
	if !ok {
		return nil, fmt.Errorf("unknown namespace %q", ns)
	}
	return r, nil
}

// List returns every entry of the namespace with community ratings recomputed.
// A non-empty user attaches that identifier's own rating.
func (c *Controller) List(ctx context.Context, ns model.Namespace, user string) ([]model.Entry, error) {
	repo, err := c.repo(ns)
	if err != nil {
		return nil, err
	}
	entries, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	ratings, err := c.ratings.List(ctx)
	if err != nil {
		return nil, err
	}
	byMovie := map[int64][]model.Rating{}
	for _, r := range ratings {
		byMovie[r.MovieID] = append(byMovie[r.MovieID], r)
	}
	for i := range entries {
		attachRatings(&entries[i], byMovie[entries[i].ID], user)
	}
	return entries, nil
}

// Get returns one entry with its community rating.
func (c *Controller) Get(ctx context.Context, ns model.Namespace, id int64, user string) (*model.Entry, error) {
	repo, err := c.repo(ns)
	if err != nil {
		return nil, err
	}
	e, err := repo.Get(ctx, id)
	if err != nil && errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	ratings, err := c.ratings.ListByMovie(ctx, id)
	if err != nil {
		return nil, err
	}
	attachRatings(e, ratings, user)
	return e, nil
}

// GetBySlug resolves a slug to the first matching entry of the namespace.
func (c *Controller) GetBySlug(ctx context.Context, ns model.Namespace, s string, user string) (*model.Entry, error) {
	entries, err := c.List(ctx, ns, user)
	if err != nil {
		return nil, err
	}
	i, ok := slug.Resolve(entries, s)
	if !ok {
		return nil, ErrNotFound
	}
	return &entries[i], nil
}

// Query runs the query pipeline over the namespace.
func (c *Controller) Query(ctx context.Context, ns model.Namespace, p query.Params, user string) (*query.Result, error) {
	entries, err := c.List(ctx, ns, user)
	if err != nil {
		return nil, err
	}
	res := query.Run(entries, p)
	return &res, nil
}

// Recommended returns up to query.RecommendationLimit random entries sharing the primary genre of id.
func (c *Controller) Recommended(ctx context.Context, ns model.Namespace, id int64) ([]model.Entry, error) {
	entries, err := c.List(ctx, ns, "")
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].ID == id {
			res := query.Recommend(entries[i], entries, c.shuffler, query.RecommendationLimit)
			if res == nil {
				res = []model.Entry{}
			}
			return res, nil
		}
	}
	return nil, ErrNotFound
}

// Put creates or replaces an entry by id. A missing id is assigned from the
// clock, moving past ids already taken, and a new entry gets its dateAdded.
func (c *Controller) Put(ctx context.Context, ns model.Namespace, e *model.Entry) (*model.Entry, error) {
	repo, err := c.repo(ns)
	if err != nil {
		return nil, err
	}
	if err := validate(e); err != nil {
		return nil, err
	}
	now := c.now().UnixMilli()
	if e.ID <= 0 {
		if e.ID, err = c.freeID(ctx, repo, now); err != nil {
			return nil, err
		}
		if e.DateAdded == nil {
			e.DateAdded = &now
		}
	} else if e.DateAdded == nil {
		prev, err := repo.Get(ctx, e.ID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		if prev != nil && prev.DateAdded != nil {
			e.DateAdded = prev.DateAdded
		} else if prev == nil {
			e.DateAdded = &now
		}
	}
	if err := c.checkSlug(ctx, repo, e); err != nil {
		return nil, err
	}
	if err := repo.Put(ctx, e); err != nil {
		return nil, err
	}
	c.logger.Debug("Stored entry", zap.String("namespace", string(ns)), zap.Int64(logging.FieldMovieID, e.ID))
	return e, nil
}

// Patch merges the given fields into an existing entry.
func (c *Controller) Patch(ctx context.Context, ns model.Namespace, id int64, patch *model.EntryPatch) (*model.Entry, error) {
	repo, err := c.repo(ns)
	if err != nil {
		return nil, err
	}
	e, err := repo.Get(ctx, id)
	if err != nil && errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	prevTitle := e.Title
	patch.Apply(e)
	if err := validate(e); err != nil {
		return nil, err
	}
	if e.Title != prevTitle {
		if err := c.checkSlug(ctx, repo, e); err != nil {
			return nil, err
		}
	}
	if err := repo.Put(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Delete removes an entry. Its comments and ratings are kept.
func (c *Controller) Delete(ctx context.Context, ns model.Namespace, id int64) error {
	repo, err := c.repo(ns)
	if err != nil {
		return err
	}
	if _, err := repo.Get(ctx, id); err != nil && errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	} else if err != nil {
		return err
	}
	return repo.Delete(ctx, id)
}

// MarkWatched moves a to-watch entry into the movie namespace under a new id
// and dateAdded. The movie is written before the to-watch entry is removed.
func (c *Controller) MarkWatched(ctx context.Context, id int64) (*model.Entry, error) {
	towatch, movies := c.entries[model.NamespaceToWatch], c.entries[model.NamespaceMovie]
	e, err := towatch.Get(ctx, id)
	if err != nil && errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	now := c.now().UnixMilli()
	if e.ID, err = c.freeID(ctx, movies, now); err != nil {
		return nil, err
	}
	e.DateAdded = &now
	if err := c.checkSlug(ctx, movies, e); err != nil {
		return nil, err
	}
	if err := movies.Put(ctx, e); err != nil {
		return nil, err
	}
	if err := towatch.Delete(ctx, id); err != nil {
		return nil, err
	}
	c.logger.Info("Marked entry as watched", zap.Int64("towatchId", id), zap.Int64(logging.FieldMovieID, e.ID))
	return e, nil
}

// maxIDAttempts bounds the search for a free clock-derived id.
const maxIDAttempts = 1000

// freeID returns the first id from start on that repo does not hold.
func (c *Controller) freeID(ctx context.Context, repo entryRepository, start int64) (int64, error) {
	for id := start; id < start+maxIDAttempts; id++ {
		_, err := repo.Get(ctx, id)
		if err != nil && errors.Is(err, repository.ErrNotFound) {
			return id, nil
		} else if err != nil {
			return 0, err
		}
		c.logger.Debug("Entry id taken, trying the next one", zap.Int64(logging.FieldMovieID, id))
	}
	return 0, fmt.Errorf("no free entry id in [%d, %d)", start, start+maxIDAttempts)
}

func (c *Controller) checkSlug(ctx context.Context, repo entryRepository, e *model.Entry) error {
	s := slug.Encode(e.Title)
	entries, err := repo.List(ctx)
	if err != nil {
		return err
	}
	for i := range entries {
		if entries[i].ID != e.ID && slug.Encode(entries[i].Title) == s {
			return fmt.Errorf("%w: %q is used by entry %d", ErrSlugConflict, s, entries[i].ID)
		}
	}
	return nil
}

func validate(e *model.Entry) error {
	e.Title = strings.TrimSpace(e.Title)
	if e.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalid)
	}
	if slug.Encode(e.Title) == "" {
		return fmt.Errorf("%w: title must contain a letter or digit", ErrInvalid)
	}
	for _, r := range []model.Float{e.Rating, e.ImdbRating} {
		if r.Valid && (r.Value < 0 || r.Value > 10) {
			return fmt.Errorf("%w: rating must be between 0 and 10", ErrInvalid)
		}
	}
	return nil
}

func attachRatings(e *model.Entry, ratings []model.Rating, user string) {
	e.StripDerived()
	if len(ratings) == 0 {
		return
	}
	agg := model.Aggregate(e.ID, ratings)
	e.CommunityRating = &agg.Average
	e.RatingCount = agg.Count
	if user == "" {
		return
	}
	for _, r := range ratings {
		if r.UserIdentifier == user {
			v := r.Value
			e.UserRating = &v
			return
		}
	}
}
