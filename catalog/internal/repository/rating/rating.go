package rating

import (
	"context"
	"errors"
	"fmt"
	"moviecatalog/catalog/internal/repository"
	"moviecatalog/catalog/pkg/model"
	"moviecatalog/pkg/kvstore"
	"moviecatalog/pkg/logging"

	"go.uber.org/zap"
)

const prefix = "rating:"

// Repository defines a rating repository keyed by "rating:<movieId>:<userIdentifier>".
type Repository struct {
	store  kvstore.Store
	logger *zap.Logger
}

// New creates a rating repository.
func New(store kvstore.Store, logger *zap.Logger) *Repository {
	logger = logger.With(
		zap.String(logging.FieldComponent, "repository"),
		zap.String(logging.FieldType, "rating"),
	)
	return &Repository{store: store, logger: logger}
}

func movieKey(movieID int64) string {
	return fmt.Sprintf("%s%d:", prefix, movieID)
}

func key(movieID int64, userIdentifier string) string {
	return movieKey(movieID) + userIdentifier
}

// Get retrieves the rating one identifier gave a movie.
func (r *Repository) Get(ctx context.Context, movieID int64, userIdentifier string) (*model.Rating, error) {
	var rating model.Rating
	if err := kvstore.GetJSON(ctx, r.store, key(movieID, userIdentifier), &rating); err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &rating, nil
}

// Put writes a rating, replacing the identifier's previous rating of the movie.
func (r *Repository) Put(ctx context.Context, rating *model.Rating) error {
	return kvstore.SetJSON(ctx, r.store, key(rating.MovieID, rating.UserIdentifier), rating)
}

// Delete removes the rating one identifier gave a movie.
func (r *Repository) Delete(ctx context.Context, movieID int64, userIdentifier string) error {
	return r.store.Del(ctx, key(movieID, userIdentifier))
}

// ListByMovie returns all ratings of a movie.
func (r *Repository) ListByMovie(ctx context.Context, movieID int64) ([]model.Rating, error) {
	return kvstore.ListJSON[model.Rating](ctx, r.store, movieKey(movieID), r.skip)
}

// List returns every rating in the store.
func (r *Repository) List(ctx context.Context) ([]model.Rating, error) {
	return kvstore.ListJSON[model.Rating](ctx, r.store, prefix, r.skip)
}

func (r *Repository) skip(err error) {
	r.logger.Warn("Skipping unreadable rating", zap.Error(err))
}
