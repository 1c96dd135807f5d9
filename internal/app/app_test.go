package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andy/clienthub/internal/config"
	"github.com/andy/clienthub/internal/domain/domaintest"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Storage.DataPath = filepath.Join(dir, "clients.json")
	cfg.Storage.DBPath = filepath.Join(dir, "clienthub.db")
	return cfg
}

func TestWriteConfigIfMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := config.DefaultConfig()

	require.NoError(t, writeConfigIfMissing(cfg, path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "backend: json")

	// an existing file is never overwritten
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  backend: encrypted\n"), 0644))
	require.NoError(t, writeConfigIfMissing(cfg, path))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "encrypted")
}

func TestNewWithConfigJSONBackendRoundTrip(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	a, err := NewWithConfig(ctx, cfg)
	require.NoError(t, err)
	defer a.Close()

	assert.Empty(t, a.LoadWarning)
	assert.Equal(t, 0, a.Registry.Len())

	require.NoError(t, a.Registry.Add(domaintest.Alice()))
	require.NoError(t, a.Save(ctx))

	b, err := NewWithConfig(ctx, cfg)
	require.NoError(t, err)
	defer b.Close()
	require.Equal(t, 1, b.Registry.Len())
	assert.True(t, b.Registry.Clients()[0].Equal(domaintest.Alice()))
}

func TestNewWithConfigCorruptDataStartsEmptyWithWarning(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(cfg.Storage.DataPath), 0755))
	require.NoError(t, os.WriteFile(cfg.Storage.DataPath, []byte("{not json"), 0644))

	a, err := NewWithConfig(context.Background(), cfg)
	require.NoError(t, err, "corrupt data must not abort startup")
	defer a.Close()

	assert.NotEmpty(t, a.LoadWarning)
	assert.Equal(t, 0, a.Registry.Len())
}
