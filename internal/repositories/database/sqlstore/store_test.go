package sqlstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/SscSPs/networth_tracker/internal/apperrors"
	"github.com/SscSPs/networth_tracker/internal/repositories/database/sqlstore"
	"github.com/SscSPs/networth_tracker/internal/repositories/storetest"
	pkgdb "github.com/SscSPs/networth_tracker/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func newSQLiteStore(t *testing.T) storetest.Backend {
	return sqlstore.NewStore(pkgdb.SQLite, filepath.Join(t.TempDir(), "finance.db"), nil)
}

func TestSQLiteStore(t *testing.T) {
	suite.Run(t, &storetest.StoreSuite{NewBackend: newSQLiteStore})
}

func TestSQLiteStore_InitIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := sqlstore.NewStore(pkgdb.SQLite, filepath.Join(t.TempDir(), "finance.db"), nil)
	require.NoError(t, store.Init(ctx))
	require.NoError(t, store.Init(ctx))
	require.NoError(t, store.Close())
	require.NoError(t, store.Close())
}

func TestSQLiteStore_DataSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "finance.db")

	first := sqlstore.NewStore(pkgdb.SQLite, path, nil)
	require.NoError(t, first.Init(ctx))
	require.NoError(t, first.Repositories().ProfileRepo.UpsertProfile(ctx, profileFixture()))
	require.NoError(t, first.Close())

	second := sqlstore.NewStore(pkgdb.SQLite, path, nil)
	require.NoError(t, second.Init(ctx))
	defer second.Close()

	p, err := second.Repositories().ProfileRepo.GetProfile(ctx, profileFixture().ID)
	require.NoError(t, err)
	assert.Equal(t, profileFixture().ID, p.ID)
}

func TestSQLiteStore_InitFailsOnBadPath(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0o600))

	store := sqlstore.NewStore(pkgdb.SQLite, filepath.Join(blocker, "finance.db"), nil)
	require.Error(t, store.Init(context.Background()))

	_, err := store.Repositories().AssetRepo.ListAssets(context.Background(), "demo-user")
	assert.ErrorIs(t, err, apperrors.ErrNotReady)
}
