package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, StoreMemory, cfg.StoreDriver)
	assert.Equal(t, "", cfg.SeedFile)
	assert.False(t, cfg.LogColors)
	assert.False(t, cfg.CountsDuplicateCompletions())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORE_DRIVER", StoreSQLite)
	t.Setenv("SEED_FILE", "fixtures/catalog.yaml")
	t.Setenv("LOG_COLORS", "true")
	t.Setenv("PROGRESS_COUNTING", CountingRecords)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, StoreSQLite, cfg.StoreDriver)
	assert.Equal(t, "fixtures/catalog.yaml", cfg.SeedFile)
	assert.True(t, cfg.LogColors)
	assert.True(t, cfg.CountsDuplicateCompletions())
}

func TestGetEnvBoolFallsBackOnGarbage(t *testing.T) {
	t.Setenv("LOG_COLORS", "sometimes")
	assert.True(t, getEnvBool("LOG_COLORS", true))
}
