package rating

import (
	"context"
	"errors"
	"fmt"
	"moviecatalog/catalog/pkg/model"
	"moviecatalog/pkg/logging"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrInvalid is returned when a rating fails validation.
	ErrInvalid = errors.New("invalid rating")
	// ErrUnauthorized is returned when the caller may not write as the given identifier.
	ErrUnauthorized = errors.New("unauthorized")
)

type ratingRepository interface {
	Put(ctx context.Context, rating *model.Rating) error
	Delete(ctx context.Context, movieID int64, userIdentifier string) error
	ListByMovie(ctx context.Context, movieID int64) ([]model.Rating, error)
	List(ctx context.Context) ([]model.Rating, error)
}

type ratingIngester interface {
	Ingest(ctx context.Context) (chan model.RatingEvent, error)
}

// Controller defines a rating controller.
type Controller struct {
	repo     ratingRepository
	ingester ratingIngester
	validate *validator.Validate
	now      func() time.Time
	logger   *zap.Logger
}

// New creates a rating controller. ingester may be nil when no event stream is configured.
func New(repo ratingRepository, ingester ratingIngester, logger *zap.Logger) *Controller {
	logger = logger.With(
		zap.String(logging.FieldComponent, "controller"),
		zap.String(logging.FieldType, "rating"),
	)
	return &Controller{repo: repo, ingester: ingester, validate: validator.New(), now: time.Now, logger: logger}
}

// NewAnonymousID issues a fresh anonymous user identifier.
func (c *Controller) NewAnonymousID() string {
	return model.AnonymousPrefix + uuid.NewString()
}

// GetAggregatedRating returns the community rating of an entry. An entry
// without ratings has a zero count.
func (c *Controller) GetAggregatedRating(ctx context.Context, movieID int64) (*model.AggregatedRating, error) {
	ratings, err := c.repo.ListByMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}
	agg := model.Aggregate(movieID, ratings)
	return &agg, nil
}

// ListAggregated returns the community rating of every rated entry ordered by movie id.
func (c *Controller) ListAggregated(ctx context.Context) ([]model.AggregatedRating, error) {
	ratings, err := c.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	byMovie := map[int64][]model.Rating{}
	for _, r := range ratings {
		byMovie[r.MovieID] = append(byMovie[r.MovieID], r)
	}
	res := make([]model.AggregatedRating, 0, len(byMovie))
	for id, rs := range byMovie {
		res = append(res, model.Aggregate(id, rs))
	}
	sort.Slice(res, func(i, j int) bool { return res[i].MovieID < res[j].MovieID })
	return res, nil
}

// UserRatings returns every rating given by one identifier.
func (c *Controller) UserRatings(ctx context.Context, userIdentifier string) ([]model.Rating, error) {
	ratings, err := c.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	res := []model.Rating{}
	for _, r := range ratings {
		if r.UserIdentifier == userIdentifier {
			res = append(res, r)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].MovieID < res[j].MovieID })
	return res, nil
}

// PutRating writes a rating and returns the entry's new community rating.
// Without an authenticated user the identifier must be anonymous; with one it
// must be that user's name.
func (c *Controller) PutRating(ctx context.Context, authUser string, r *model.Rating) (*model.AggregatedRating, error) {
	if err := c.validate.Struct(r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if authUser == "" && !model.IsAnonymous(r.UserIdentifier) {
		return nil, fmt.Errorf("%w: sign in to rate as %s", ErrUnauthorized, r.UserIdentifier)
	}
	if authUser != "" && authUser != r.UserIdentifier {
		return nil, fmt.Errorf("%w: token does not belong to %s", ErrUnauthorized, r.UserIdentifier)
	}
	r.Timestamp = c.now().UnixMilli()
	if err := c.repo.Put(ctx, r); err != nil {
		return nil, err
	}
	return c.GetAggregatedRating(ctx, r.MovieID)
}

// StartIngestion applies rating events from the ingester until its channel closes.
func (c *Controller) StartIngestion(ctx context.Context) error {
	if c.ingester == nil {
		return errors.New("no rating ingester configured")
	}
	ch, err := c.ingester.Ingest(ctx)
	if err != nil {
		return err
	}
	for e := range ch {
		c.logger.Debug("Consumed a rating event", zap.Stringer("event", &e))
		if err := c.apply(ctx, &e); err != nil {
			c.logger.Warn("Failed to apply rating event", zap.Stringer("event", &e), zap.Error(err))
		}
	}
	return nil
}

func (c *Controller) apply(ctx context.Context, e *model.RatingEvent) error {
	switch e.EventType {
	case model.RatingEventTypeDelete:
		if e.MovieID == 0 || e.UserIdentifier == "" {
			return fmt.Errorf("%w: delete event without movie or user", ErrInvalid)
		}
		return c.repo.Delete(ctx, e.MovieID, e.UserIdentifier)
	case model.RatingEventTypePut, "":
		r := e.Rating
		if err := c.validate.Struct(&r); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		if r.Timestamp == 0 {
			r.Timestamp = c.now().UnixMilli()
		}
		return c.repo.Put(ctx, &r)
	default:
		return fmt.Errorf("%w: unknown event type %q", ErrInvalid, e.EventType)
	}
}
