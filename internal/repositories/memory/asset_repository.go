package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/networth_tracker/internal/apperrors"
	"github.com/SscSPs/networth_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_tracker/internal/core/ports/repositories"
)

type AssetRepository struct {
	store *Store
}

var _ portsrepo.AssetRepositoryFacade = (*AssetRepository)(nil)

func (r *AssetRepository) ListAssets(ctx context.Context, userID string) ([]domain.Asset, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkReady(); err != nil {
		return nil, err
	}

	assets := []domain.Asset{}
	for _, a := range s.assets {
		if a.UserID == userID && !a.IsDeleted {
			assets = append(assets, a)
		}
	}
	sort.Slice(assets, func(i, j int) bool {
		if !assets[i].CreatedAt.Equal(assets[j].CreatedAt) {
			return assets[i].CreatedAt.After(assets[j].CreatedAt)
		}
		return assets[i].ID > assets[j].ID
	})
	return assets, nil
}

func (r *AssetRepository) FindAssetByID(ctx context.Context, userID string, assetID string) (*domain.Asset, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkReady(); err != nil {
		return nil, err
	}

	a, ok := s.assets[assetID]
	if !ok || a.UserID != userID {
		return nil, apperrors.NewNotFoundError("asset " + assetID)
	}
	return &a, nil
}

func (r *AssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkReady(); err != nil {
		return err
	}

	if _, exists := s.assets[asset.ID]; exists {
		return fmt.Errorf("failed to insert asset %s: %w", asset.ID, apperrors.ErrDuplicate)
	}
	s.assets[asset.ID] = asset
	return nil
}

func (r *AssetRepository) UpdateAsset(ctx context.Context, userID string, assetID string, patch domain.AssetPatch, now time.Time) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkReady(); err != nil {
		return err
	}

	a, ok := s.assets[assetID]
	if patch.IsEmpty() || !ok || a.UserID != userID {
		return nil
	}
	a = patch.Apply(a)
	a.UpdatedAt = now.UTC()
	s.assets[assetID] = a
	return nil
}

func (r *AssetRepository) DeleteAsset(ctx context.Context, userID string, assetID string, now time.Time) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkReady(); err != nil {
		return err
	}

	a, ok := s.assets[assetID]
	if !ok || a.UserID != userID || a.IsDeleted {
		return nil
	}
	a.IsDeleted = true
	a.UpdatedAt = now.UTC()
	s.assets[assetID] = a
	return nil
}
