package repositories

import (
	"context"
	"database/sql"
)

// TransactionManager defines methods for transaction management.
// SQL-backed repositories run multi-row writes (a transaction plus its debt
// balance) inside one of these.
type TransactionManager interface {
	// Begin starts a new database transaction
	Begin(ctx context.Context) (*sql.Tx, error)

	// Commit commits a transaction
	Commit(ctx context.Context, tx *sql.Tx) error

	// Rollback rolls back a transaction
	Rollback(ctx context.Context, tx *sql.Tx) error
}
