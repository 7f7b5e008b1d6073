package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/SscSPs/networth_tracker/internal/platform/config"
	"github.com/SscSPs/networth_tracker/internal/repositories/database/sqlstore"
	"github.com/SscSPs/networth_tracker/internal/repositories/memory"
	pkgdb "github.com/SscSPs/networth_tracker/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SelectsBackend(t *testing.T) {
	b, err := New(&config.Config{StorageBackend: config.BackendMemory, OwnerUserID: "demo-user"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &memory.Store{}, b)

	b, err = New(&config.Config{StorageBackend: config.BackendPostgres, DatabaseURL: "postgres://localhost/finance"}, nil)
	require.NoError(t, err)
	require.IsType(t, &sqlstore.Store{}, b)
	assert.Equal(t, pkgdb.Postgres, b.(*sqlstore.Store).Dialect())

	_, err = New(&config.Config{StorageBackend: "csv"}, nil)
	assert.Error(t, err)
}

func TestNew_SQLiteLifecycle(t *testing.T) {
	ctx := context.Background()
	b, err := New(&config.Config{StorageBackend: config.BackendSQLite, SQLitePath: filepath.Join(t.TempDir(), "nested", "finance.db")}, nil)
	require.NoError(t, err)

	require.NoError(t, b.Init(ctx))
	assets, err := b.Repositories().AssetRepo.ListAssets(ctx, "demo-user")
	require.NoError(t, err)
	assert.Empty(t, assets)
	require.NoError(t, b.Close())
}
