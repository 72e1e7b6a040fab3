package comment

import (
	"context"
	"errors"
	"fmt"
	"moviecatalog/catalog/internal/repository"
	"moviecatalog/catalog/pkg/model"
	"moviecatalog/pkg/logging"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned when the comment does not exist.
	ErrNotFound = errors.New("comment not found")
	// ErrInvalid is returned when a comment fails validation.
	ErrInvalid = errors.New("invalid comment")
	// ErrUnauthorized is returned when the caller is not the comment's author.
	ErrUnauthorized = errors.New("unauthorized")
)

type commentRepository interface {
	Get(ctx context.Context, movieID int64, id string) (*model.Comment, error)
	Put(ctx context.Context, c *model.Comment) error
	Delete(ctx context.Context, movieID int64, id string) error
	ListByMovie(ctx context.Context, movieID int64) ([]model.Comment, error)
	List(ctx context.Context) ([]model.Comment, error)
}

// NewComment defines a comment submission.
type NewComment struct {
	MovieID  int64  `json:"movieId" validate:"required"`
	Username string `json:"username" validate:"required,max=64"`
	Text     string `json:"text" validate:"required,max=2000"`
}

// Controller defines a comment controller.
type Controller struct {
	repo     commentRepository
	validate *validator.Validate
	now      func() time.Time
	logger   *zap.Logger
}

// New creates a comment controller.
func New(repo commentRepository, logger *zap.Logger) *Controller {
	logger = logger.With(
		zap.String(logging.FieldComponent, "controller"),
		zap.String(logging.FieldType, "comment"),
	)
	return &Controller{repo: repo, validate: validator.New(), now: time.Now, logger: logger}
}

// List returns every comment, oldest first.
func (c *Controller) List(ctx context.Context) ([]model.Comment, error) {
	return c.repo.List(ctx)
}

// ListByMovie returns the comments of one entry, oldest first.
func (c *Controller) ListByMovie(ctx context.Context, movieID int64) ([]model.Comment, error) {
	return c.repo.ListByMovie(ctx, movieID)
}

// Create stores a new comment. An authenticated user always posts under their own name.
func (c *Controller) Create(ctx context.Context, authUser string, in *NewComment) (*model.Comment, error) {
	in.Text = strings.TrimSpace(in.Text)
	if authUser != "" {
		if in.Username != "" && !strings.EqualFold(in.Username, authUser) {
			return nil, fmt.Errorf("%w: token does not belong to %s", ErrUnauthorized, in.Username)
		}
		in.Username = authUser
	}
	if err := c.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	now := c.now()
	comment := &model.Comment{
		ID:        ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
		MovieID:   in.MovieID,
		Username:  in.Username,
		Text:      in.Text,
		Timestamp: now.UnixMilli(),
	}
	if err := c.repo.Put(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete removes a comment written by authUser.
func (c *Controller) Delete(ctx context.Context, authUser string, movieID int64, id string) error {
	comment, err := c.repo.Get(ctx, movieID, id)
	if err != nil && errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	} else if err != nil {
		return err
	}
	if authUser == "" || !strings.EqualFold(comment.Username, authUser) {
		c.logger.Info("Rejected comment delete", zap.String(logging.FieldUser, authUser), zap.String("author", comment.Username))
		return fmt.Errorf("%w: only the author may delete a comment", ErrUnauthorized)
	}
	return c.repo.Delete(ctx, movieID, id)
}
