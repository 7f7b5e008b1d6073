package repositories

import (
	"context"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
)

// ProfileRepositoryFacade reads and writes the owner profile.
type ProfileRepositoryFacade interface {
	// GetProfile returns ErrNotFound when no profile row exists yet.
	GetProfile(ctx context.Context, profileID string) (*domain.Profile, error)

	// UpsertProfile creates or replaces the profile row.
	UpsertProfile(ctx context.Context, profile domain.Profile) error
}
