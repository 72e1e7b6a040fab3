package entry

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

	"go.uber.org/zap"
)

// Repository defines the entries of one namespace stored under "<namespace>:<id>".
type Repository struct {
	store  kvstore.Store
	ns     model.Namespace
	logger *zap.Logger
}

// New creates an entry repository for namespace ns.
func New(store kvstore.Store, ns model.Namespace, logger *zap.Logger) *Repository {
	logger = logger.With(
		zap.String(logging.FieldComponent, "repository"),
		zap.String(logging.FieldType, "entry"),
		zap.String("namespace", string(ns)),
	)
	return &Repository{store: store, ns: ns, logger: logger}
}

// Namespace returns the namespace the repository serves.
func (r *Repository) Namespace() model.Namespace {
	return r.ns
}

func (r *Repository) key(id int64) string {
	return fmt.Sprintf("%s:%d", r.ns, id)
}

// Get retrieves an entry by id.
func (r *Repository) Get(ctx context.Context, id int64) (*model.Entry, error) {
	var e model.Entry
	if err := kvstore.GetJSON(ctx, r.store, r.key(id), &e); err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// List returns every entry of the namespace ordered by id.
func (r *Repository) List(ctx context.Context) ([]model.Entry, error) {
	res, err := kvstore.ListJSON[model.Entry](ctx, r.store, string(r.ns)+":", func(err error) {
		r.logger.Warn("Skipping unreadable entry", zap.Error(err))
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(res, func(a, b model.Entry) int { return cmp.Compare(a.ID, b.ID) })
	return res, nil
}

// Put stores e under its id. Derived fields are never persisted.
func (r *Repository) Put(ctx context.Context, e *model.Entry) error {
	stored := *e
	stored.StripDerived()
	return kvstore.SetJSON(ctx, r.store, r.key(e.ID), &stored)
}

// Delete removes an entry. Comments and ratings of the entry are kept.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.store.Del(ctx, r.key(id))
}
