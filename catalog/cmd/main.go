package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"moviecatalog/catalog/configs"
	"moviecatalog/catalog/internal/backfill"
	"moviecatalog/catalog/internal/controller/auth"
	"moviecatalog/catalog/internal/controller/comment"
	"moviecatalog/catalog/internal/controller/enrich"
	"moviecatalog/catalog/internal/controller/metadata"
	"moviecatalog/catalog/internal/controller/movie"
	"moviecatalog/catalog/internal/controller/rating"
	"moviecatalog/catalog/internal/gateway/metadata/omdb"
	"moviecatalog/catalog/internal/gateway/trailer/youtube"
	grpchandler "moviecatalog/catalog/internal/handler/grpc"
	httphandler "moviecatalog/catalog/internal/handler/http"
	"moviecatalog/catalog/internal/ingester/kafka"
	"moviecatalog/catalog/internal/media/s3"
	commentrepo "moviecatalog/catalog/internal/repository/comment"
	"moviecatalog/catalog/internal/repository/entry"
	metadatarepo "moviecatalog/catalog/internal/repository/memory"
	ratingrepo "moviecatalog/catalog/internal/repository/rating"
	"moviecatalog/catalog/internal/repository/user"
	"moviecatalog/catalog/pkg/model"
	"moviecatalog/internal/grpcutil"
	"moviecatalog/pkg/discovery"
	"moviecatalog/pkg/discovery/consul"
	"moviecatalog/pkg/kvstore"
	"moviecatalog/pkg/kvstore/memory"
	"moviecatalog/pkg/kvstore/mysql"
	"moviecatalog/pkg/kvstore/postgres"
	"moviecatalog/pkg/kvstore/tiered"
	"moviecatalog/pkg/limiter"
	"moviecatalog/pkg/logging"
	"moviecatalog/pkg/metrics"
	"moviecatalog/pkg/tracing"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/grpc-ecosystem/go-grpc-middleware/ratelimit"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

const serviceName = "catalog"

func main() {
	configPath := flag.String("config", "configs/defaults.yaml", "path to the service configuration")
	certFile := flag.String("cert", "", "TLS certificate for the gRPC server")
	keyFile := flag.String("key", "", "TLS key for the gRPC server")
	flag.Parse()

	cfg, err := configs.Load(*configPath)
	if err != nil {
		panic(err)
	}
	log, err := logging.New(serviceName, cfg.Development)
	if err != nil {
		panic(err)
	}
	log.Info("Starting the service", zap.Int(logging.FieldPort, cfg.API.Port))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Jaeger.URL != "" {
		tp, err := tracing.NewJaegerProvider(cfg.Jaeger.URL, serviceName)
		if err != nil {
			log.Fatal("Failed to initialize jaeger provider", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				log.Warn("Failed to shutdown jaeger provider", zap.Error(err))
			}
		}()
		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(propagation.TraceContext{})
	}

	scope, closer := metrics.NewMetricsReporter(log, serviceName, cfg.Prometheus.MetricsPort)
	defer func() {
		if err := closer.Close(); err != nil {
			log.Warn("Failed to close Prometheus reporter scope", zap.Error(err))
		}
	}()

	store, storeCloser, err := openStore(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal("Failed to open the store", zap.String("backend", cfg.Storage.Backend), zap.Error(err))
	}
	defer func() {
		if err := storeCloser.Close(); err != nil {
			log.Warn("Failed to close the store", zap.Error(err))
		}
	}()

	var lockProvider backfill.LockProvider
	if cfg.ServiceDiscovery.Consul.Address != "" {
		registry, err := consul.NewRegistry(cfg.ServiceDiscovery.Consul.Address, log)
		if err != nil {
			log.Fatal("Failed to create consul registry", zap.Error(err))
		}
		lockProvider = registry
		instanceID := discovery.GenerateInstanceID(serviceName)
		hostPort := fmt.Sprintf("%s:%d", cfg.API.Hostname, cfg.API.GrpcPort)
		if err := registry.Register(ctx, instanceID, serviceName, hostPort); err != nil {
			log.Fatal("Failed to register service", zap.Error(err))
		}
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case <-time.After(1 * time.Second):
					if err := registry.ReportHealthyState(instanceID, serviceName); err != nil {
						log.Warn("Failed to report healthy state", zap.Error(err))
					}
				}
			}
		}()
		defer func() {
			if err := registry.Deregister(context.Background(), instanceID, serviceName); err != nil {
				log.Warn("Failed to deregister service", zap.Error(err))
			}
		}()
	}

	movies := entry.New(store, model.NamespaceMovie, log)
	towatch := entry.New(store, model.NamespaceToWatch, log)
	ratings := ratingrepo.New(store, log)

	var ratingCtrl *rating.Controller
	if cfg.MessengerConfig.Kafka.Address != "" {
		k := cfg.MessengerConfig.Kafka
		ingester, err := kafka.NewIngester(fmt.Sprintf("%s:%d", k.Address, k.Port), k.GroupID, k.Topic, log)
		if err != nil {
			log.Fatal("Failed to create kafka ingester", zap.Error(err))
		}
		ratingCtrl = rating.New(ratings, ingester, log)
		go func() {
			if err := ratingCtrl.StartIngestion(ctx); err != nil {
				log.Error("Rating ingestion stopped", zap.Error(err))
			}
		}()
	} else {
		ratingCtrl = rating.New(ratings, nil, log)
	}

	client := &http.Client{Timeout: cfg.Metadata.Timeout}
	cache, err := metadatarepo.New(cfg.Metadata.CacheSize, cfg.Metadata.CacheTTL)
	if err != nil {
		log.Fatal("Failed to create metadata cache", zap.Error(err))
	}
	metadataCtrl := metadata.New(
		cache,
		omdb.New(cfg.Metadata.BaseURL, cfg.Metadata.APIKey, client, limiter.New(log, cfg.Metadata.RateLimit, 1), log),
		log,
	)
	trailers := youtube.New(cfg.Trailer.BaseURL, client, limiter.New(log, cfg.Trailer.RateLimit, 1), log)
	processor := backfill.New(movies, limiter.New(log, cfg.Backfill.RateLimit, 1), lockProvider, log)
	enrichCtrl := enrich.New(movies, metadataCtrl, trailers, processor, log)
	if cfg.Backfill.Interval > 0 {
		go func() {
			err := processor.Start(ctx, cfg.Backfill.Interval, enrichCtrl.PlotsTask(), enrichCtrl.RuntimesTask(), enrichCtrl.TrailersTask(false))
			if err != nil && !errors.Is(err, context.Canceled) {
				log.Error("Backfill processor stopped", zap.Error(err))
			}
		}()
	}

	secret := []byte(cfg.Auth.Secret)
	ctrls := httphandler.Controllers{
		Movies:   movie.New(movies, towatch, ratings, log),
		Ratings:  ratingCtrl,
		Comments: comment.New(commentrepo.New(store, log), log),
		Auth:     auth.New(user.New(store, log), func() []byte { return secret }, cfg.Auth.TokenTTL, cfg.Auth.ResetTTL, log),
		Metadata: metadataCtrl,
		Enrich:   enrichCtrl,
	}

	var posters *s3.Store
	if cfg.Media.S3.Bucket != "" {
		if posters, err = s3.New(ctx, cfg.Media.S3, log); err != nil {
			log.Fatal("Failed to create poster storage", zap.Error(err))
		}
	}

	l := limiter.New(log, cfg.API.RateLimit, cfg.API.RateBurst)
	if !cfg.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	opts := httphandler.Options{
		Prefix:           cfg.API.Prefix,
		AllowOrigins:     cfg.API.AllowOrigins,
		ExposeResetToken: cfg.Auth.ExposeResetToken,
		MaxUploadBytes:   cfg.Media.MaxUploadBytes,
	}
	var h *httphandler.Handler
	if posters != nil {
		h = httphandler.New(ctrls, posters, l, scope, opts, log)
	} else {
		h = httphandler.New(ctrls, nil, l, scope, opts, log)
	}
	httpSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.API.Port),
		Handler:           h.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	creds, err := grpcutil.TransportCredentials(*certFile, *keyFile)
	if err != nil {
		log.Fatal("Failed to load gRPC credentials", zap.Error(err))
	}
	health := grpchandler.New(serviceName, func(ctx context.Context) error {
		_, err := store.Get(ctx, "health:ping")
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil
		}
		return err
	}, log, scope)
	go health.Start(ctx, 5*time.Second)

	grpcSrv := grpc.NewServer(
		grpc.UnaryInterceptor(ratelimit.UnaryServerInterceptor(l)),
		grpc.Creds(creds),
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
	)
	health.Register(grpcSrv)
	reflection.Register(grpcSrv)
	lis, err := net.Listen("tcp", fmt.Sprintf("0.0.0.0:%d", cfg.API.GrpcPort))
	if err != nil {
		log.Fatal("failed to listen", zap.Error(err))
	}
	go func() {
		if err := grpcSrv.Serve(lis); err != nil {
			log.Error("gRPC server stopped", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s := <-sigChan
		cancel()
		log.Info("Got signal, attempting graceful shutdown", zap.Stringer(logging.FieldSignal, s))
		shutdownCtx, done := context.WithTimeout(context.Background(), 10*time.Second)
		defer done()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Warn("Failed to shut down the HTTP server", zap.Error(err))
		}
		grpcSrv.GracefulStop()
		log.Info("Gracefully stopped the servers")
	}()

	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("HTTP server failed", zap.Error(err))
	}
	wg.Wait()
}

// sqlStore is a SQL-backed store owning its connection pool and schema.
type sqlStore interface {
	tiered.Tier
	io.Closer
	Migrate(ctx context.Context) error
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openStore opens the configured backend. A tiered store keeps an in-memory
// copy of the remote backend for reads while it is unreachable.
func openStore(ctx context.Context, cfg configs.StorageConfig, log *zap.Logger) (kvstore.Store, io.Closer, error) {
	var remote sqlStore
	switch cfg.Backend {
	case configs.BackendMysql:
		s, err := mysql.New(cfg.Mysql, log)
		if err != nil {
			return nil, nil, err
		}
		remote = s
	case configs.BackendPostgres:
		s, err := postgres.New(ctx, cfg.Postgres.DSN, log)
		if err != nil {
			return nil, nil, err
		}
		remote = s
	default:
		return memory.New(), nopCloser{}, nil
	}
	return prepareStore(ctx, remote, cfg, log)
}

// prepareStore ensures the remote schema and wraps the store in a tiered
// store when configured. The remote store is closed on failure.
func prepareStore(ctx context.Context, remote sqlStore, cfg configs.StorageConfig, log *zap.Logger) (kvstore.Store, io.Closer, error) {
	if err := remote.Migrate(ctx); err != nil {
		_ = remote.Close()
		return nil, nil, fmt.Errorf("migrate %s store: %w", cfg.Backend, err)
	}
	if !cfg.Tiered {
		return remote, remote, nil
	}
	return tiered.New(remote, memory.New(), cfg.Policy, log), remote, nil
}
