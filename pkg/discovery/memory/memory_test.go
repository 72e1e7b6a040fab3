package memory

import (
	"context"
	"moviecatalog/pkg/discovery"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	ctx := context.Background()
	now := time.Unix(1700000000, 0)
	r := NewRegistry()
	r.now = func() time.Time { return now }

	_, err := r.ServiceAddresses(ctx, "catalog-grpc")
	assert.ErrorIs(t, err, discovery.ErrNotFound)

	require.NoError(t, r.Register(ctx, "a", "catalog-grpc", "localhost:9090"))
	addrs, err := r.ServiceAddresses(ctx, "catalog-grpc")
	require.NoError(t, err)
	assert.Equal(t, []string{"localhost:9090"}, addrs)

	now = now.Add(10 * time.Second)
	_, err = r.ServiceAddresses(ctx, "catalog-grpc")
	assert.ErrorIs(t, err, discovery.ErrNotFound, "stale instance must be skipped")

	require.NoError(t, r.ReportHealthyState("a", "catalog-grpc"))
	addrs, err = r.ServiceAddresses(ctx, "catalog-grpc")
	require.NoError(t, err)
	assert.Len(t, addrs, 1)

	assert.Error(t, r.ReportHealthyState("b", "catalog-grpc"))
	assert.Error(t, r.ReportHealthyState("a", "unknown"))

	require.NoError(t, r.Deregister(ctx, "a", "catalog-grpc"))
	_, err = r.ServiceAddresses(ctx, "catalog-grpc")
	assert.ErrorIs(t, err, discovery.ErrNotFound)
}
