package testutil

import (
	"context"
	"moviecatalog/catalog/internal/backfill"
	"moviecatalog/catalog/internal/controller/auth"
	"moviecatalog/catalog/internal/controller/comment"
	"moviecatalog/catalog/internal/controller/enrich"
	"moviecatalog/catalog/internal/controller/metadata"
	"moviecatalog/catalog/internal/controller/movie"
	"moviecatalog/catalog/internal/controller/rating"
	"moviecatalog/catalog/internal/gateway/metadata/omdb"
	"moviecatalog/catalog/internal/gateway/trailer/youtube"
	"moviecatalog/catalog/internal/handler/grpc"
	httphandler "moviecatalog/catalog/internal/handler/http"
	commentrepo "moviecatalog/catalog/internal/repository/comment"
	"moviecatalog/catalog/internal/repository/entry"
	metadatarepo "moviecatalog/catalog/internal/repository/memory"
	ratingrepo "moviecatalog/catalog/internal/repository/rating"
	"moviecatalog/catalog/internal/repository/user"
	"moviecatalog/catalog/pkg/model"
	"moviecatalog/pkg/kvstore"
	"moviecatalog/pkg/logging"
	"net/http"
	"time"

	"github.com/uber-go/tally/v6"
	"go.uber.org/zap"
	grpcsrv "google.golang.org/grpc"
)

// NewTestCatalogHTTPHandler returns the catalog HTTP API over store. Metadata
// and trailer lookups go to upstreamURL.
func NewTestCatalogHTTPHandler(store kvstore.Store, upstreamURL string, logger *zap.Logger) http.Handler {
	logger = logger.With(
		zap.String(logging.FieldService, "catalog"),
	)
	movies := entry.New(store, model.NamespaceMovie, logger)
	towatch := entry.New(store, model.NamespaceToWatch, logger)
	ratings := ratingrepo.New(store, logger)
	cache, err := metadatarepo.New(0, 0)
	if err != nil {
		panic(err)
	}
	metadataCtrl := metadata.New(cache, omdb.New(upstreamURL, "test", http.DefaultClient, nil, logger), logger)
	h := httphandler.New(httphandler.Controllers{
		Movies:   movie.New(movies, towatch, ratings, logger),
		Ratings:  rating.New(ratings, nil, logger),
		Comments: comment.New(commentrepo.New(store, logger), logger),
		Auth:     auth.New(user.New(store, logger), func() []byte { return []byte("test") }, time.Hour, time.Hour, logger),
		Metadata: metadataCtrl,
		Enrich: enrich.New(movies, metadataCtrl, youtube.New(upstreamURL, http.DefaultClient, nil, logger),
			backfill.New(movies, nil, nil, logger), logger),
	}, nil, nil, tally.NoopScope, httphandler.Options{Prefix: "/api", ExposeResetToken: true}, logger)
	return h.Router()
}

// RegisterTestHealthServer registers a health service backed by store on srv
// and refreshes its status once.
func RegisterTestHealthServer(ctx context.Context, srv *grpcsrv.Server, store kvstore.Store, logger *zap.Logger) error {
	h := grpc.New("catalog", func(ctx context.Context) error {
		_, err := store.GetByPrefix(ctx, "health:")
		return err
	}, logger, tally.NoopScope)
	h.Register(srv)
	return h.Refresh(ctx)
}
