package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/networth_tracker/internal/apperrors"
	"github.com/SscSPs/networth_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/networth_tracker/internal/core/ports/services"
)

type profileService struct {
	BaseService
	profileRepo portsrepo.ProfileRepositoryFacade
}

// NewProfileService creates a new profile service.
func NewProfileService(repo portsrepo.ProfileRepositoryFacade) portssvc.ProfileSvcFacade {
	return &profileService{profileRepo: repo}
}

var _ portssvc.ProfileSvcFacade = (*profileService)(nil)

func (s *profileService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetProfile(ctx, userID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return &domain.Profile{ID: userID}, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to load profile", slog.String("user_id", userID))
		return nil, err
	}
	return profile, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userID string, input domain.UpdateProfileInput) (*domain.Profile, error) {
	if err := s.ValidateInput(ctx, input); err != nil {
		return nil, err
	}

	profile := domain.Profile{
		ID:        userID,
		Username:  input.Username,
		FullName:  input.FullName,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.profileRepo.UpsertProfile(ctx, profile); err != nil {
		s.LogError(ctx, err, "Failed to save profile", slog.String("user_id", userID))
		return nil, err
	}
	return &profile, nil
}
