package grpc

import (
	"context"
	"moviecatalog/pkg/logging"
	"moviecatalog/pkg/metrics"
	"time"

	"github.com/uber-go/tally/v6"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Checker checks a dependency the service cannot serve without.
type Checker func(ctx context.Context) error

// Handler defines the catalog gRPC health handler. Its serving status follows
// the result of the last dependency check.
type Handler struct {
	server       *health.Server
	serviceName  string
	check        Checker
	logger       *zap.Logger
	checkMetrics *metrics.EndpointMetrics
}

// New creates a new health handler. The status is NOT_SERVING until the
// first successful Refresh.
func New(serviceName string, check Checker, logger *zap.Logger, scope tally.Scope) *Handler {
	logger = logger.With(
		zap.String(logging.FieldComponent, "handler"),
		zap.String(logging.FieldType, "grpc"),
	)
	h := &Handler{
		server:       health.NewServer(),
		serviceName:  serviceName,
		check:        check,
		logger:       logger,
		checkMetrics: metrics.NewEndpointMetrics(scope, "HealthCheck"),
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
	return h
}

// Register registers the health service on srv.
func (h *Handler) Register(srv *grpc.Server) {
	healthpb.RegisterHealthServer(srv, h.server)
}

// Check answers a health check request.
func (h *Handler) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	return h.server.Check(ctx, req)
}

// Refresh runs the dependency check once and updates the serving status.
func (h *Handler) Refresh(ctx context.Context) error {
	h.checkMetrics.Calls.Inc(1)
	if err := h.check(ctx); err != nil {
		h.checkMetrics.InternalErrors.Inc(1)
		h.logger.Warn("Health check failed", zap.Error(err))
		h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
		return err
	}
	h.checkMetrics.Successes.Inc(1)
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
	return nil
}

// Start refreshes the status every interval until ctx is done, then marks the service as
// shutting down.
func (h *Handler) Start(ctx context.Context, interval time.Duration) {
	for {
		_ = h.Refresh(ctx)
		select {
		case <-ctx.Done():
			h.server.Shutdown()
			return
		case <-time.After(interval):
		}
	}
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.server.SetServingStatus("", status)
	h.server.SetServingStatus(h.serviceName, status)
}
