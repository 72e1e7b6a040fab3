package metadata

import (
	"context"
	"errors"
	"fmt"
	"moviecatalog/catalog/internal/gateway"
	"moviecatalog/catalog/pkg/model"
	"moviecatalog/pkg/logging"
	"strings"

	"go.uber.org/zap"
)

// ErrNotFound is returned when the provider has no metadata for the request.
var ErrNotFound = errors.New("metadata not found")

type metadataCache interface {
	Get(ctx context.Context, key string) (*model.Metadata, error)
	Put(ctx context.Context, key string, m *model.Metadata) error
}

type metadataGateway interface {
	LookupByExternalID(ctx context.Context, id string) (*model.Metadata, error)
	LookupByTitleYear(ctx context.Context, title string, year int) (*model.Metadata, error)
}

// Controller defines a metadata controller reading through a cache.
type Controller struct {
	cache   metadataCache
	gateway metadataGateway
	logger  *zap.Logger
}

// New creates a metadata controller.
func New(cache metadataCache, gateway metadataGateway, logger *zap.Logger) *Controller {
	logger = logger.With(
		zap.String(logging.FieldComponent, "controller"),
		zap.String(logging.FieldType, "metadata"),
	)
	return &Controller{cache: cache, gateway: gateway, logger: logger}
}

// ByExternalID returns metadata for an IMDb id.
func (c *Controller) ByExternalID(ctx context.Context, id string) (*model.Metadata, error) {
	return c.get(ctx, "id:"+id, func() (*model.Metadata, error) {
		return c.gateway.LookupByExternalID(ctx, id)
	})
}

// ByTitleYear returns metadata for a title. A zero year matches any year.
func (c *Controller) ByTitleYear(ctx context.Context, title string, year int) (*model.Metadata, error) {
	key := fmt.Sprintf("title:%s:%d", strings.ToLower(strings.TrimSpace(title)), year)
	return c.get(ctx, key, func() (*model.Metadata, error) {
		return c.gateway.LookupByTitleYear(ctx, title, year)
	})
}

// ForEntry looks an entry up by its IMDb id when it has one, otherwise by title and year.
func (c *Controller) ForEntry(ctx context.Context, e *model.Entry) (*model.Metadata, error) {
	if e.ImdbID != "" {
		return c.ByExternalID(ctx, e.ImdbID)
	}
	return c.ByTitleYear(ctx, e.Title, int(e.Year))
}

func (c *Controller) get(ctx context.Context, key string, lookup func() (*model.Metadata, error)) (*model.Metadata, error) {
	res, err := c.cache.Get(ctx, key)
	if err == nil {
		return res, nil
	}
	res, err = lookup()
	if err != nil && errors.Is(err, gateway.ErrNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	if err := c.cache.Put(ctx, key, res); err != nil {
		c.logger.Warn("Failed to cache metadata", zap.String(logging.FieldKey, key), zap.Error(err))
	}
	return res, nil
}
