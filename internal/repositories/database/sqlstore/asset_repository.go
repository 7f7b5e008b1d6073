package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/networth_tracker/internal/apperrors"
	"github.com/SscSPs/networth_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/networth_tracker/internal/models"
	"github.com/SscSPs/networth_tracker/internal/utils/mapping"
)

const assetColumns = "id, user_id, name, type, current_value, is_deleted, created_at, updated_at"

type SQLAssetRepository struct {
	BaseRepository
}

func newSQLAssetRepository(store *Store) *SQLAssetRepository {
	return &SQLAssetRepository{BaseRepository: BaseRepository{store: store}}
}

var _ portsrepo.AssetRepositoryFacade = (*SQLAssetRepository)(nil)

func scanAsset(row interface{ Scan(...any) error }) (domain.Asset, error) {
	var m models.Asset
	if err := row.Scan(
		&m.ID,
		&m.UserID,
		&m.Name,
		&m.Type,
		&m.CurrentValue,
		&m.IsDeleted,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return domain.Asset{}, err
	}
	return mapping.ToDomainAsset(m)
}

// ListAssets retrieves the live assets of a user, newest first.
func (r *SQLAssetRepository) ListAssets(ctx context.Context, userID string) ([]domain.Asset, error) {
	db, err := r.DB()
	if err != nil {
		return nil, err
	}

	query := r.Rebind(`
		SELECT ` + assetColumns + `
		FROM assets
		WHERE user_id = ? AND is_deleted = 0
		ORDER BY created_at DESC, id DESC`)

	rows, err := db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	assets := []domain.Asset{}
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset row: %w", err)
		}
		assets = append(assets, asset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating asset rows: %w", err)
	}
	return assets, nil
}

// FindAssetByID retrieves an asset whether or not it is soft-deleted.
func (r *SQLAssetRepository) FindAssetByID(ctx context.Context, userID string, assetID string) (*domain.Asset, error) {
	db, err := r.DB()
	if err != nil {
		return nil, err
	}

	query := r.Rebind(`SELECT ` + assetColumns + ` FROM assets WHERE id = ? AND user_id = ?`)
	asset, err := scanAsset(db.QueryRowContext(ctx, query, assetID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("asset " + assetID)
		}
		return nil, fmt.Errorf("failed to find asset %s: %w", assetID, err)
	}
	return &asset, nil
}

// SaveAsset inserts a new asset.
func (r *SQLAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	db, err := r.DB()
	if err != nil {
		return err
	}

	m := mapping.ToModelAsset(asset)
	query := r.Rebind(`
		INSERT INTO assets (` + assetColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)

	_, err = db.ExecContext(ctx, query,
		m.ID,
		m.UserID,
		m.Name,
		m.Type,
		m.CurrentValue,
		boolToInt(m.IsDeleted),
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert asset %s: %w", asset.ID, classifyError(err))
	}
	return nil
}

// UpdateAsset writes the supplied fields and updated_at.
func (r *SQLAssetRepository) UpdateAsset(ctx context.Context, userID string, assetID string, patch domain.AssetPatch, now time.Time) error {
	db, err := r.DB()
	if err != nil {
		return err
	}
	if patch.IsEmpty() {
		return nil
	}

	var fields []string
	var args []any
	if patch.Name != nil {
		fields = append(fields, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Type != nil {
		fields = append(fields, "type = ?")
		args = append(args, string(*patch.Type))
	}
	if patch.CurrentValue != nil {
		fields = append(fields, "current_value = ?")
		args = append(args, *patch.CurrentValue)
	}
	fields = append(fields, "updated_at = ?")
	args = append(args, domain.FormatTimestamp(now), assetID, userID)

	query := r.Rebind("UPDATE assets SET " + strings.Join(fields, ", ") + " WHERE id = ? AND user_id = ?")
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update asset %s: %w", assetID, classifyError(err))
	}
	return nil
}

// DeleteAsset marks an asset as deleted. The row is kept.
func (r *SQLAssetRepository) DeleteAsset(ctx context.Context, userID string, assetID string, now time.Time) error {
	db, err := r.DB()
	if err != nil {
		return err
	}

	query := r.Rebind(`
		UPDATE assets SET is_deleted = 1, updated_at = ?
		WHERE id = ? AND user_id = ? AND is_deleted = 0`)
	if _, err := db.ExecContext(ctx, query, domain.FormatTimestamp(now), assetID, userID); err != nil {
		return fmt.Errorf("failed to delete asset %s: %w", assetID, classifyError(err))
	}
	return nil
}
