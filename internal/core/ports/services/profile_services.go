package services

import (
	"context"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
)

// ProfileSvcFacade reads and updates the owner profile.
type ProfileSvcFacade interface {
	// GetProfile returns an empty profile when none has been saved yet.
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, userID string, input domain.UpdateProfileInput) (*domain.Profile, error)
}
