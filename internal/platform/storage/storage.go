// Package storage selects the persistence backend at startup. Nothing above
// this package knows which engine is in use.
package storage

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/networth_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/networth_tracker/internal/platform/config"
	"github.com/SscSPs/networth_tracker/internal/repositories/database/sqlstore"
	"github.com/SscSPs/networth_tracker/internal/repositories/memory"
	pkgdb "github.com/SscSPs/networth_tracker/pkg/database"
)

// Backend is an owned store with an explicit lifecycle: New, Init, use, Close.
// Repositories may be taken before Init; they report apperrors.ErrNotReady until Init succeeds.
type Backend interface {
	Init(ctx context.Context) error
	Repositories() portsrepo.RepositoryProvider
	Close() error
}

var (
	_ Backend = (*sqlstore.Store)(nil)
	_ Backend = (*memory.Store)(nil)
)

// New builds the backend named by cfg.StorageBackend without connecting.
func New(cfg *config.Config, logger *slog.Logger) (Backend, error) {
	switch cfg.StorageBackend {
	case config.BackendSQLite:
		return sqlstore.NewStore(pkgdb.SQLite, cfg.SQLitePath, logger), nil
	case config.BackendPostgres:
		return sqlstore.NewStore(pkgdb.Postgres, cfg.DatabaseURL, logger), nil
	case config.BackendMemory:
		return memory.NewStore(memory.Options{
			SeedDemoData: cfg.SeedDemoData,
			OwnerUserID:  cfg.OwnerUserID,
			Logger:       logger,
		}), nil
	}
	return nil, fmt.Errorf("unsupported storage backend %q", cfg.StorageBackend)
}
