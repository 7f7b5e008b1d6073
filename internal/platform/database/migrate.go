package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"regexp"

	"github.com/SscSPs/networth_tracker/internal/apperrors"
	pkgdb "github.com/SscSPs/networth_tracker/pkg/database"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrationFiles embed.FS

// SQLite has no ADD COLUMN IF NOT EXISTS, so the runner checks the column itself.
var addColumnPattern = regexp.MustCompile(`(?i)^\s*ALTER\s+TABLE\s+"?(\w+)"?\s+ADD\s+COLUMN\s+"?(\w+)"?`)

// Migration is one versioned DDL statement.
type Migration struct {
	Version uint
	Name    string
	SQL     string
}

// MigrationResult reports what a run did.
type MigrationResult struct {
	From    uint
	To      uint
	Applied int
}

// Runner applies the pending migrations of one dialect inside a single transaction
// and records progress in the single-row schema_version table.
type Runner struct {
	db         *sql.DB
	dialect    pkgdb.Dialect
	migrations []Migration
	logger     *slog.Logger
}

// NewRunner loads the embedded migrations for dialect.
func NewRunner(db *sql.DB, dialect pkgdb.Dialect, logger *slog.Logger) (*Runner, error) {
	return NewRunnerFromFS(db, dialect, migrationFiles, "migrations/"+string(dialect), logger)
}

// NewRunnerFromFS loads migrations named NNNN_title.up.sql from dir in fsys.
// Versions must run 1, 2, 3... without gaps.
func NewRunnerFromFS(db *sql.DB, dialect pkgdb.Dialect, fsys fs.FS, dir string, logger *slog.Logger) (*Runner, error) {
	if logger == nil {
		logger = slog.Default()
	}
	migrations, err := loadMigrations(fsys, dir)
	if err != nil {
		return nil, err
	}
	return &Runner{db: db, dialect: dialect, migrations: migrations, logger: logger}, nil
}

func loadMigrations(fsys fs.FS, dir string) ([]Migration, error) {
	src, err := iofs.New(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open migration source %s: %w", dir, err)
	}
	defer src.Close()

	var migrations []Migration
	version, err := src.First()
	for err == nil {
		if want := uint(len(migrations) + 1); version != want {
			return nil, fmt.Errorf("migration versions must be contiguous: expected %d, found %d", want, version)
		}

		r, name, readErr := src.ReadUp(version)
		if readErr != nil {
			return nil, fmt.Errorf("failed to read migration %d: %w", version, readErr)
		}
		body, readErr := io.ReadAll(r)
		r.Close()
		if readErr != nil {
			return nil, fmt.Errorf("failed to read migration %d: %w", version, readErr)
		}

		migrations = append(migrations, Migration{Version: version, Name: name, SQL: string(body)})
		version, err = src.Next(version)
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to enumerate migrations: %w", err)
	}
	return migrations, nil
}

// Migrations returns the loaded migration set in version order.
func (r *Runner) Migrations() []Migration {
	return r.migrations
}

// Latest is the highest known migration version.
func (r *Runner) Latest() uint {
	return uint(len(r.migrations))
}

// Up applies every pending migration.
func (r *Runner) Up(ctx context.Context) (MigrationResult, error) {
	return r.MigrateTo(ctx, r.Latest())
}

// CurrentVersion returns the applied version, 0 on a fresh database.
func (r *Runner) CurrentVersion(ctx context.Context) (uint, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	version, err := r.currentVersion(ctx, tx)
	if err != nil {
		return 0, err
	}
	return version, tx.Commit()
}

// MigrateTo applies migrations with current < version <= target in one transaction.
// A failing statement rolls everything back and leaves the version untouched.
// A target at or below the current version is a no-op: the version never decreases.
func (r *Runner) MigrateTo(ctx context.Context, target uint) (MigrationResult, error) {
	if target > r.Latest() {
		return MigrationResult{}, fmt.Errorf("%w: target version %d exceeds latest %d", apperrors.ErrMigration, target, r.Latest())
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return MigrationResult{}, fmt.Errorf("%w: failed to begin transaction: %v", apperrors.ErrMigration, err)
	}
	defer tx.Rollback()

	current, err := r.currentVersion(ctx, tx)
	if err != nil {
		return MigrationResult{}, fmt.Errorf("%w: %v", apperrors.ErrMigration, err)
	}

	result := MigrationResult{From: current, To: current}
	if current >= target {
		r.logger.InfoContext(ctx, "Database is up to date", slog.Uint64("version", uint64(current)))
		return result, tx.Commit()
	}

	for _, m := range r.migrations[current:target] {
		r.logger.InfoContext(ctx, "Running migration",
			slog.Uint64("version", uint64(m.Version)),
			slog.String("name", m.Name),
			slog.Uint64("target", uint64(target)))
		skip, err := r.columnAlreadyAdded(ctx, tx, m.SQL)
		if err != nil {
			return MigrationResult{From: current, To: current},
				fmt.Errorf("%w: migration %d (%s): %v", apperrors.ErrMigration, m.Version, m.Name, err)
		}
		if skip {
			r.logger.WarnContext(ctx, "Column already present, skipping migration statement",
				slog.Uint64("version", uint64(m.Version)),
				slog.String("name", m.Name))
		} else if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
			return MigrationResult{From: current, To: current},
				fmt.Errorf("%w: migration %d (%s): %v", apperrors.ErrMigration, m.Version, m.Name, err)
		}
		result.Applied++
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM schema_version"); err != nil {
		return MigrationResult{From: current, To: current}, fmt.Errorf("%w: failed to clear schema version: %v", apperrors.ErrMigration, err)
	}
	if _, err := tx.ExecContext(ctx, r.dialect.Rebind("INSERT INTO schema_version (version) VALUES (?)"), target); err != nil {
		return MigrationResult{From: current, To: current}, fmt.Errorf("%w: failed to record schema version: %v", apperrors.ErrMigration, err)
	}
	if err := tx.Commit(); err != nil {
		return MigrationResult{From: current, To: current}, fmt.Errorf("%w: failed to commit migrations: %v", apperrors.ErrMigration, err)
	}

	result.To = target
	r.logger.InfoContext(ctx, "Database migrated",
		slog.Uint64("from", uint64(current)),
		slog.Uint64("to", uint64(target)),
		slog.Int("applied", result.Applied))
	return result, nil
}

// columnAlreadyAdded reports whether stmt is a SQLite ADD COLUMN whose column
// already exists, e.g. on a database patched by hand before the migration shipped.
func (r *Runner) columnAlreadyAdded(ctx context.Context, tx *sql.Tx, stmt string) (bool, error) {
	if r.dialect != pkgdb.SQLite {
		return false, nil
	}
	match := addColumnPattern.FindStringSubmatch(stmt)
	if match == nil {
		return false, nil
	}

	var n int
	err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?", match[1], match[2]).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to inspect columns of %s: %w", match[1], err)
	}
	return n > 0, nil
}

func (r *Runner) currentVersion(ctx context.Context, tx *sql.Tx) (uint, error) {
	if _, err := tx.ExecContext(ctx, "CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY)"); err != nil {
		return 0, fmt.Errorf("failed to create schema_version table: %w", err)
	}

	var version int64
	err := tx.QueryRowContext(ctx, "SELECT version FROM schema_version ORDER BY version DESC LIMIT 1").Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return uint(version), nil
}
