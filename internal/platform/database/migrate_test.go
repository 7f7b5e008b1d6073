package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/SscSPs/networth_tracker/internal/apperrors"
	pkgdb "github.com/SscSPs/networth_tracker/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := pkgdb.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "migrate.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func schemaOf(t *testing.T, db *sql.DB) []string {
	t.Helper()
	rows, err := db.Query("SELECT type || ':' || name || ':' || COALESCE(sql, '') FROM sqlite_master WHERE name NOT LIKE 'sqlite%' ORDER BY type, name")
	require.NoError(t, err)
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		require.NoError(t, rows.Scan(&s))
		out = append(out, s)
	}
	require.NoError(t, rows.Err())
	return out
}

func TestEmbeddedMigrationsAreContiguous(t *testing.T) {
	for _, dialect := range []pkgdb.Dialect{pkgdb.SQLite, pkgdb.Postgres} {
		r, err := NewRunner(nil, dialect, nil)
		require.NoError(t, err, dialect)
		assert.Equal(t, uint(11), r.Latest(), dialect)
		for i, m := range r.Migrations() {
			assert.Equal(t, uint(i+1), m.Version)
			assert.NotEmpty(t, m.SQL)
		}
	}
}

func TestRunner_UpFromFresh(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	r, err := NewRunner(db, pkgdb.SQLite, nil)
	require.NoError(t, err)

	res, err := r.Up(ctx)
	require.NoError(t, err)
	assert.Equal(t, MigrationResult{From: 0, To: 11, Applied: 11}, res)

	v, err := r.CurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(11), v)

	var rowsInVersion int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM schema_version").Scan(&rowsInVersion))
	assert.Equal(t, 1, rowsInVersion)

	// debts.type exists with its default
	_, err = db.Exec("INSERT INTO debts (id, user_id, name) VALUES ('d1', 'u1', 'Loan')")
	require.NoError(t, err)
	var debtType string
	require.NoError(t, db.QueryRow("SELECT type FROM debts WHERE id = 'd1'").Scan(&debtType))
	assert.Equal(t, "other", debtType)
}

func TestRunner_SecondRunIsNoop(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	r, err := NewRunner(db, pkgdb.SQLite, nil)
	require.NoError(t, err)

	_, err = r.Up(ctx)
	require.NoError(t, err)
	before := schemaOf(t, db)

	res, err := r.Up(ctx)
	require.NoError(t, err)
	assert.Equal(t, MigrationResult{From: 11, To: 11, Applied: 0}, res)
	assert.Equal(t, before, schemaOf(t, db))
}

func TestRunner_IncrementalMatchesFresh(t *testing.T) {
	ctx := context.Background()

	stepped := openTestDB(t)
	r, err := NewRunner(stepped, pkgdb.SQLite, nil)
	require.NoError(t, err)

	res, err := r.MigrateTo(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, res.Applied)

	res, err = r.MigrateTo(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, MigrationResult{From: 10, To: 11, Applied: 1}, res)

	fresh := openTestDB(t)
	r2, err := NewRunner(fresh, pkgdb.SQLite, nil)
	require.NoError(t, err)
	_, err = r2.Up(ctx)
	require.NoError(t, err)

	assert.Equal(t, schemaOf(t, fresh), schemaOf(t, stepped))
}

func TestRunner_AddColumnToleratesExistingColumn(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	r, err := NewRunner(db, pkgdb.SQLite, nil)
	require.NoError(t, err)

	_, err = r.MigrateTo(ctx, 10)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, "ALTER TABLE debts ADD COLUMN type TEXT NOT NULL DEFAULT 'other'")
	require.NoError(t, err)

	res, err := r.Up(ctx)
	require.NoError(t, err)
	assert.Equal(t, MigrationResult{From: 10, To: 11, Applied: 1}, res)

	v, err := r.CurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(11), v)
}

func TestAddColumnPattern(t *testing.T) {
	m := addColumnPattern.FindStringSubmatch("alter table debts add column type TEXT NOT NULL DEFAULT 'other';")
	require.Len(t, m, 3)
	assert.Equal(t, "debts", m[1])
	assert.Equal(t, "type", m[2])

	assert.Nil(t, addColumnPattern.FindStringSubmatch("CREATE INDEX idx_debts_user_id ON debts(user_id);"))
}

func TestRunner_TargetBelowCurrentIsNoop(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	r, err := NewRunner(db, pkgdb.SQLite, nil)
	require.NoError(t, err)
	_, err = r.Up(ctx)
	require.NoError(t, err)

	res, err := r.MigrateTo(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, MigrationResult{From: 11, To: 11}, res)

	v, err := r.CurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(11), v)
}

func TestRunner_TargetAboveLatest(t *testing.T) {
	r, err := NewRunner(openTestDB(t), pkgdb.SQLite, nil)
	require.NoError(t, err)

	_, err = r.MigrateTo(context.Background(), 12)
	assert.ErrorIs(t, err, apperrors.ErrMigration)
}

func TestRunner_FailingMigrationRollsBack(t *testing.T) {
	ctx := context.Background()
	fsys := fstest.MapFS{
		"m/0001_create_widgets.up.sql": {Data: []byte("CREATE TABLE widgets (id TEXT PRIMARY KEY)")},
		"m/0002_broken.up.sql":         {Data: []byte("CREATE TABLE gadgets (")},
	}
	db := openTestDB(t)
	r, err := NewRunnerFromFS(db, pkgdb.SQLite, fsys, "m", nil)
	require.NoError(t, err)

	_, err = r.Up(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrMigration)

	v, err := r.CurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(0), v)

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE name = 'widgets'").Scan(&n))
	assert.Equal(t, 0, n)
}

func TestNewRunnerFromFS_RejectsGaps(t *testing.T) {
	fsys := fstest.MapFS{
		"m/0001_a.up.sql": {Data: []byte("SELECT 1")},
		"m/0003_c.up.sql": {Data: []byte("SELECT 1")},
	}
	_, err := NewRunnerFromFS(nil, pkgdb.SQLite, fsys, "m", nil)
	assert.ErrorContains(t, err, "contiguous")
}
