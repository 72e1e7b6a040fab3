package comment

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"moviecatalog/catalog/internal/repository"
	"moviecatalog/catalog/pkg/model"
	"moviecatalog/pkg/kvstore"
	"moviecatalog/pkg/logging"
	"slices"
	"strings"

	"go.uber.org/zap"
)

const prefix = "comment:"

// Repository defines a comment repository keyed by "comment:<movieId>:<commentId>".
type Repository struct {
	store  kvstore.Store
	logger *zap.Logger
}

// New creates a comment repository.
func New(store kvstore.Store, logger *zap.Logger) *Repository {
	logger = logger.With(
		zap.String(logging.FieldComponent, "repository"),
		zap.String(logging.FieldType, "comment"),
	)
	return &Repository{store: store, logger: logger}
}

func movieKey(movieID int64) string {
	return fmt.Sprintf("%s%d:", prefix, movieID)
}

// Get retrieves one comment.
func (r *Repository) Get(ctx context.Context, movieID int64, id string) (*model.Comment, error) {
	var c model.Comment
	if err := kvstore.GetJSON(ctx, r.store, movieKey(movieID)+id, &c); err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Put stores a comment.
func (r *Repository) Put(ctx context.Context, c *model.Comment) error {
	return kvstore.SetJSON(ctx, r.store, movieKey(c.MovieID)+c.ID, c)
}

// Delete removes a comment.
func (r *Repository) Delete(ctx context.Context, movieID int64, id string) error {
	return r.store.Del(ctx, movieKey(movieID)+id)
}

// ListByMovie returns the comments of a movie, oldest first.
func (r *Repository) ListByMovie(ctx context.Context, movieID int64) ([]model.Comment, error) {
	return r.list(ctx, movieKey(movieID))
}

// List returns every comment, oldest first.
func (r *Repository) List(ctx context.Context) ([]model.Comment, error) {
	return r.list(ctx, prefix)
}

func (r *Repository) list(ctx context.Context, p string) ([]model.Comment, error) {
	res, err := kvstore.ListJSON[model.Comment](ctx, r.store, p, func(err error) {
		r.logger.Warn("Skipping unreadable comment", zap.Error(err))
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(res, func(a, b model.Comment) int {
		return cmp.Or(cmp.Compare(a.Timestamp, b.Timestamp), strings.Compare(a.ID, b.ID))
	})
	return res, nil
}
