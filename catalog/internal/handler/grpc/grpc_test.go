package grpc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally/v6"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

func TestRefresh(t *testing.T) {
	var checkErr error
	h := New("catalog", func(context.Context) error { return checkErr }, zap.NewNop(), tally.NoopScope)
	ctx := context.Background()

	check := func(service string) healthpb.HealthCheckResponse_ServingStatus {
		res, err := h.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
		require.NoError(t, err)
		return res.Status
	}
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check("catalog"))

	require.NoError(t, h.Refresh(ctx))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check("catalog"))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(""))

	checkErr = errors.New("store unreachable")
	assert.Error(t, h.Refresh(ctx))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check("catalog"))

	_, err := h.Check(ctx, &healthpb.HealthCheckRequest{Service: "unknown"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestStartShutsDown(t *testing.T) {
	h := New("catalog", func(context.Context) error { return nil }, zap.NewNop(), tally.NoopScope)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	h.Start(ctx, 0)
	res, err := h.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "catalog"})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, res.Status)
}
