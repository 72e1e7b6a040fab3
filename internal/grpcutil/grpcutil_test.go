package grpcutil

import (
	"context"
	"moviecatalog/pkg/discovery"
	"moviecatalog/pkg/discovery/memory"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceConnection(t *testing.T) {
	ctx := context.Background()
	registry := memory.NewRegistry()
	creds, err := TransportCredentials("", "")
	require.NoError(t, err)

	_, err = ServiceConnection(ctx, "catalog", registry, creds)
	assert.ErrorIs(t, err, discovery.ErrNotFound)

	require.NoError(t, registry.Register(ctx, "catalog-1", "catalog", "localhost:8084"))
	conn, err := ServiceConnection(ctx, "catalog", registry, creds)
	require.NoError(t, err)
	assert.Equal(t, "localhost:8084", conn.Target())
	require.NoError(t, conn.Close())
}

func TestTransportCredentialsMissingFiles(t *testing.T) {
	_, err := TransportCredentials("missing.crt", "missing.key")
	assert.Error(t, err)
}
