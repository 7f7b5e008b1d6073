package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebind(t *testing.T) {
	q := "UPDATE debts SET current_balance = current_balance + ?, updated_at = ? WHERE id = ? AND user_id = ?"

	assert.Equal(t, q, SQLite.Rebind(q))
	assert.Equal(t,
		"UPDATE debts SET current_balance = current_balance + $1, updated_at = $2 WHERE id = $3 AND user_id = $4",
		Postgres.Rebind(q))
}

func TestForUpdate(t *testing.T) {
	assert.Equal(t, "", SQLite.ForUpdate())
	assert.Equal(t, " FOR UPDATE", Postgres.ForUpdate())
}

func TestParseDialect(t *testing.T) {
	d, err := ParseDialect(" SQLite ")
	require.NoError(t, err)
	assert.Equal(t, SQLite, d)

	d, err = ParseDialect("postgres")
	require.NoError(t, err)
	assert.Equal(t, Postgres, d)

	_, err = ParseDialect("mysql")
	assert.Error(t, err)
}

func TestOpenSQLite_EnforcesForeignKeys(t *testing.T) {
	ctx := context.Background()
	db, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "fk.db"))
	require.NoError(t, err)
	defer db.Close()

	var enabled int
	require.NoError(t, db.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&enabled))
	assert.Equal(t, 1, enabled)
}

func TestOpenSQLite_EmptyPath(t *testing.T) {
	_, err := OpenSQLite(context.Background(), "")
	assert.Error(t, err)
}

func TestOpen_UnknownDialect(t *testing.T) {
	_, err := Open(context.Background(), Dialect("oracle"), "x")
	assert.Error(t, err)
}
