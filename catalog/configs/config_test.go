package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MC_AUTH_SECRET", "s3cret")
	t.Setenv("MC_METADATA_API_KEY", "omdb-key")
	cfg, err := Load("defaults.yaml")
	require.NoError(t, err)
	assert.Equal(t, 8083, cfg.API.Port)
	assert.Equal(t, "/api", cfg.API.Prefix)
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.True(t, cfg.Storage.Policy.ServeLocalOnRemoteError)
	assert.Equal(t, "s3cret", cfg.Auth.Secret)
	assert.Equal(t, "omdb-key", cfg.Metadata.APIKey)
	assert.Equal(t, 168*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 10*time.Second, cfg.Metadata.Timeout)
	assert.Equal(t, 1000, cfg.Metadata.CacheSize)
	assert.Equal(t, 24*time.Hour, cfg.Metadata.CacheTTL)
	assert.Equal(t, "kv", cfg.Storage.Mysql.Table)
}

func TestLoadRejects(t *testing.T) {
	dir := t.TempDir()
	write := func(body string) string {
		p := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
		return p
	}
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown backend", body: "api: {port: 1}\nstorage: {backend: redis}\nauth: {secret: x}\n"},
		{name: "tiered memory", body: "api: {port: 1}\nstorage: {backend: memory, tiered: true}\nauth: {secret: x}\n"},
		{name: "no port", body: "storage: {backend: memory}\nauth: {secret: x}\n"},
		{name: "malformed", body: "api: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(write(tt.body))
			assert.Error(t, err)
		})
	}

	t.Setenv("MC_AUTH_SECRET", "")
	_, err := Load(write("api: {port: 1}\nstorage: {backend: memory}\n"))
	assert.Error(t, err, "missing secret")

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
