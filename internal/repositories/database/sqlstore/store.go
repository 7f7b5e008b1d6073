package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/SscSPs/networth_tracker/internal/apperrors"
	portsrepo "github.com/SscSPs/networth_tracker/internal/core/ports/repositories"
	platformdb "github.com/SscSPs/networth_tracker/internal/platform/database"
	pkgdb "github.com/SscSPs/networth_tracker/pkg/database"
)

// Store owns the SQL connection behind every repository it hands out.
// Repositories report apperrors.ErrNotReady until Init has opened and migrated
// the database, and again after Close.
type Store struct {
	dialect pkgdb.Dialect
	dsn     string
	logger  *slog.Logger

	mu sync.Mutex
	db atomic.Pointer[sql.DB]
}

// NewStore prepares a store; no connection is made until Init.
func NewStore(dialect pkgdb.Dialect, dsn string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{dialect: dialect, dsn: dsn, logger: logger}
}

// Init opens the database and applies pending migrations. Calling it again
// on an initialized store is a no-op.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db.Load() != nil {
		return nil
	}

	db, err := pkgdb.Open(ctx, s.dialect, s.dsn)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", s.dialect, err)
	}

	runner, err := platformdb.NewRunner(db, s.dialect, s.logger)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("%w: %v", apperrors.ErrMigration, err)
	}
	if _, err := runner.Up(ctx); err != nil {
		_ = db.Close()
		return err
	}

	s.db.Store(db)
	s.logger.InfoContext(ctx, "SQL store ready", slog.String("dialect", string(s.dialect)))
	return nil
}

// Close releases the connection. Repositories report ErrNotReady afterwards.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	db := s.db.Swap(nil)
	if db == nil {
		return nil
	}
	return db.Close()
}

// Repositories wires every repository to this store.
func (s *Store) Repositories() portsrepo.RepositoryProvider {
	return NewRepositoryProvider(s)
}

// Dialect reports the SQL dialect of the store.
func (s *Store) Dialect() pkgdb.Dialect {
	return s.dialect
}

func (s *Store) conn() (*sql.DB, error) {
	db := s.db.Load()
	if db == nil {
		return nil, apperrors.ErrNotReady
	}
	return db, nil
}
