package user

import (
	"context"
	"errors"
	"fmt"
	"moviecatalog/catalog/internal/repository"
	"moviecatalog/catalog/pkg/model"
	"moviecatalog/pkg/kvstore"
	"moviecatalog/pkg/logging"
	"strings"

	"go.uber.org/zap"
)

const (
	idPrefix       = "user:id:"
	usernamePrefix = "user:username:"
	emailPrefix    = "user:email:"
	resetPrefix    = "user:reset:"
)

// Repository defines a user repository. Each user is one record under
// "user:id:<id>" plus two unique indexes, "user:username:<lower>" and
// "user:email:<lower>", that map to the id.
type Repository struct {
	store  kvstore.Store
	logger *zap.Logger
}

// New creates a user repository.
func New(store kvstore.Store, logger *zap.Logger) *Repository {
	logger = logger.With(
		zap.String(logging.FieldComponent, "repository"),
		zap.String(logging.FieldType, "user"),
	)
	return &Repository{store: store, logger: logger}
}

func usernameKey(username string) string {
	return usernamePrefix + strings.ToLower(username)
}

func emailKey(email string) string {
	return emailPrefix + strings.ToLower(email)
}

// Get retrieves a user by id.
func (r *Repository) Get(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	if err := kvstore.GetJSON(ctx, r.store, idPrefix+id, &u); err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GetByUsername retrieves a user by username, case-insensitively.
func (r *Repository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.getByIndex(ctx, usernameKey(username))
}

// GetByEmail retrieves a user by email, case-insensitively.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getByIndex(ctx, emailKey(email))
}

func (r *Repository) getByIndex(ctx context.Context, indexKey string) (*model.User, error) {
	id, err := r.lookup(ctx, indexKey)
	if err != nil {
		return nil, err
	}
	u, err := r.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		r.logger.Warn("Index points at a missing user", zap.String(logging.FieldKey, indexKey), zap.String("id", id))
	}
	return u, err
}

func (r *Repository) lookup(ctx context.Context, indexKey string) (string, error) {
	var id string
	if err := kvstore.GetJSON(ctx, r.store, indexKey, &id); err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return "", repository.ErrNotFound
		}
		return "", err
	}
	return id, nil
}

// claimable reports whether indexKey is free or already points at id.
func (r *Repository) claimable(ctx context.Context, indexKey, id string) (bool, error) {
	owner, err := r.lookup(ctx, indexKey)
	if errors.Is(err, repository.ErrNotFound) {
		return true, nil
	} else if err != nil {
		return false, err
	}
	return owner == id, nil
}

// Create stores a new user and its username and email indexes, or returns
// ErrAlreadyExists when either is taken.
//
// The record and the two indexes are separate writes with no transaction:
// a concurrent signup with the same username can pass the check in between,
// and a failure after the first write leaves a record without indexes. The
// record is written first so an index never points at nothing.
func (r *Repository) Create(ctx context.Context, u *model.User) error {
	if err := r.checkFree(ctx, u); err != nil {
		return err
	}
	if err := kvstore.SetJSON(ctx, r.store, idPrefix+u.ID, u); err != nil {
		return err
	}
	if err := kvstore.SetJSON(ctx, r.store, usernameKey(u.Username), u.ID); err != nil {
		return err
	}
	return kvstore.SetJSON(ctx, r.store, emailKey(u.Email), u.ID)
}

// Update replaces a user record, moving its indexes when the username or
// email changed. It shares the non-atomic write sequence of Create.
func (r *Repository) Update(ctx context.Context, u *model.User) error {
	cur, err := r.Get(ctx, u.ID)
	if err != nil {
		return err
	}
	if err := r.checkFree(ctx, u); err != nil {
		return err
	}
	if err := kvstore.SetJSON(ctx, r.store, idPrefix+u.ID, u); err != nil {
		return err
	}
	if !strings.EqualFold(cur.Username, u.Username) {
		if err := kvstore.SetJSON(ctx, r.store, usernameKey(u.Username), u.ID); err != nil {
			return err
		}
		if err := r.store.Del(ctx, usernameKey(cur.Username)); err != nil {
			return err
		}
	}
	if !strings.EqualFold(cur.Email, u.Email) {
		if err := kvstore.SetJSON(ctx, r.store, emailKey(u.Email), u.ID); err != nil {
			return err
		}
		if err := r.store.Del(ctx, emailKey(cur.Email)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) checkFree(ctx context.Context, u *model.User) error {
	ok, err := r.claimable(ctx, usernameKey(u.Username), u.ID)
	if err != nil {
		return err
	} else if !ok {
		return fmt.Errorf("username %s: %w", u.Username, repository.ErrAlreadyExists)
	}
	ok, err = r.claimable(ctx, emailKey(u.Email), u.ID)
	if err != nil {
		return err
	} else if !ok {
		return fmt.Errorf("email %s: %w", u.Email, repository.ErrAlreadyExists)
	}
	return nil
}

// PutReset stores a pending password reset under token.
func (r *Repository) PutReset(ctx context.Context, token string, reset *model.PasswordReset) error {
	return kvstore.SetJSON(ctx, r.store, resetPrefix+token, reset)
}

// GetReset retrieves a pending password reset.
func (r *Repository) GetReset(ctx context.Context, token string) (*model.PasswordReset, error) {
	var reset model.PasswordReset
	if err := kvstore.GetJSON(ctx, r.store, resetPrefix+token, &reset); err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &reset, nil
}

// DeleteReset removes a password reset.
func (r *Repository) DeleteReset(ctx context.Context, token string) error {
	return r.store.Del(ctx, resetPrefix+token)
}
