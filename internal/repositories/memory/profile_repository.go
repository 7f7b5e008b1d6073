package memory

import (
	"context"

	"github.com/SscSPs/networth_tracker/internal/apperrors"
	"github.com/SscSPs/networth_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_tracker/internal/core/ports/repositories"
)

type ProfileRepository struct {
	store *Store
}

var _ portsrepo.ProfileRepositoryFacade = (*ProfileRepository)(nil)

func (r *ProfileRepository) GetProfile(ctx context.Context, profileID string) (*domain.Profile, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkReady(); err != nil {
		return nil, err
	}

	p, ok := s.profiles[profileID]
	if !ok {
		return nil, apperrors.NewNotFoundError("profile " + profileID)
	}
	p.Username = cloneString(p.Username)
	p.FullName = cloneString(p.FullName)
	return &p, nil
}

func (r *ProfileRepository) UpsertProfile(ctx context.Context, profile domain.Profile) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkReady(); err != nil {
		return err
	}

	profile.Username = cloneString(profile.Username)
	profile.FullName = cloneString(profile.FullName)
	profile.UpdatedAt = profile.UpdatedAt.UTC()
	s.profiles[profile.ID] = profile
	return nil
}
