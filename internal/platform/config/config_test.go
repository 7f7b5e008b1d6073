package config

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir()) // no .env file
	for _, key := range []string{"STORAGE_BACKEND", "SQLITE_PATH", "PGSQL_URL", "PORT", "LOG_LEVEL", "OWNER_USER_ID", "QUERY_CACHE_TTL", "RATE_LIMIT", "CORS_ALLOWED_ORIGINS", "SEED_DEMO_DATA"} {
		t.Setenv(key, "") // empty values fall back to defaults
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.StorageBackend)
	assert.Equal(t, "data/finance.db", cfg.SQLitePath)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "demo-user", cfg.OwnerUserID)
	assert.Equal(t, time.Minute, cfg.QueryCacheTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.SeedDemoData)
}

func TestLoadConfig_Overrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("STORAGE_BACKEND", "Memory")
	t.Setenv("SEED_DEMO_DATA", "true")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("OWNER_USER_ID", "owner-1")
	t.Setenv("QUERY_CACHE_TTL", "30s")
	t.Setenv("RATE_LIMIT", "10-S")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:8081, https://app.example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.StorageBackend)
	assert.True(t, cfg.SeedDemoData)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "owner-1", cfg.OwnerUserID)
	assert.Equal(t, 30*time.Second, cfg.QueryCacheTTL)
	assert.Equal(t, "10-S", cfg.RateLimit)
	assert.Equal(t, []string{"http://localhost:8081", "https://app.example.com"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_InvalidBackend(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("STORAGE_BACKEND", "mongodb")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "STORAGE_BACKEND")
}

func TestLoadConfig_PostgresRequiresURL(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("STORAGE_BACKEND", "postgres")
	t.Setenv("PGSQL_URL", "")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "PGSQL_URL")
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir on newer Go).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
