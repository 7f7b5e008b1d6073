package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/networth_tracker/internal/apperrors"
	"github.com/SscSPs/networth_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/networth_tracker/internal/models"
	"github.com/SscSPs/networth_tracker/internal/utils/mapping"
)

type SQLProfileRepository struct {
	BaseRepository
}

func newSQLProfileRepository(store *Store) *SQLProfileRepository {
	return &SQLProfileRepository{BaseRepository: BaseRepository{store: store}}
}

var _ portsrepo.ProfileRepositoryFacade = (*SQLProfileRepository)(nil)

func (r *SQLProfileRepository) GetProfile(ctx context.Context, profileID string) (*domain.Profile, error) {
	db, err := r.DB()
	if err != nil {
		return nil, err
	}

	var m models.Profile
	query := r.Rebind(`SELECT id, username, full_name, updated_at FROM profiles WHERE id = ?`)
	err = db.QueryRowContext(ctx, query, profileID).Scan(&m.ID, &m.Username, &m.FullName, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("profile " + profileID)
		}
		return nil, fmt.Errorf("failed to get profile %s: %w", profileID, err)
	}

	profile, err := mapping.ToDomainProfile(m)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *SQLProfileRepository) UpsertProfile(ctx context.Context, profile domain.Profile) error {
	db, err := r.DB()
	if err != nil {
		return err
	}

	m := mapping.ToModelProfile(profile)
	query := r.Rebind(`
		INSERT INTO profiles (id, username, full_name, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			username = excluded.username,
			full_name = excluded.full_name,
			updated_at = excluded.updated_at`)
	if _, err := db.ExecContext(ctx, query, m.ID, m.Username, m.FullName, m.UpdatedAt); err != nil {
		return fmt.Errorf("failed to upsert profile %s: %w", profile.ID, classifyError(err))
	}
	return nil
}
