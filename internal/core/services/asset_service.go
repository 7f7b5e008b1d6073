package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/networth_tracker/internal/core/ports/services"
)

type assetService struct {
	BaseService
	assetRepo portsrepo.AssetRepositoryFacade
}

// NewAssetService creates a new asset service.
func NewAssetService(repo portsrepo.AssetRepositoryFacade) portssvc.AssetSvcFacade {
	return &assetService{assetRepo: repo}
}

var _ portssvc.AssetSvcFacade = (*assetService)(nil)

func (s *assetService) ListAssets(ctx context.Context, userID string) ([]domain.Asset, error) {
	assets, err := s.assetRepo.ListAssets(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list assets", slog.String("user_id", userID))
		return nil, err
	}
	return assets, nil
}

func (s *assetService) GetAssetByID(ctx context.Context, userID string, assetID string) (*domain.Asset, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, userID, assetID)
	if err != nil {
		s.LogDebug(ctx, "Failed to find asset", slog.String("asset_id", assetID), slog.String("error", err.Error()))
		return nil, err
	}
	return asset, nil
}

func (s *assetService) CreateAsset(ctx context.Context, userID string, input domain.CreateAssetInput) (string, error) {
	if err := s.ValidateInput(ctx, input); err != nil {
		return "", err
	}

	id, err := s.NewID("asset")
	if err != nil {
		return "", err
	}
	now := time.Now().UTC()

	asset := domain.Asset{
		ID:           id,
		UserID:       userID,
		Name:         input.Name,
		Type:         input.Type,
		CurrentValue: input.CurrentValue,
		AuditFields:  domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.assetRepo.SaveAsset(ctx, asset); err != nil {
		s.LogError(ctx, err, "Failed to save asset", slog.String("asset_id", id))
		return "", err
	}

	s.LogInfo(ctx, "Asset created successfully", slog.String("asset_id", id), slog.String("type", string(asset.Type)))
	return id, nil
}

func (s *assetService) UpdateAsset(ctx context.Context, userID string, assetID string, patch domain.AssetPatch) error {
	if err := s.ValidateInput(ctx, patch); err != nil {
		return err
	}

	if err := s.assetRepo.UpdateAsset(ctx, userID, assetID, patch, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to update asset", slog.String("asset_id", assetID))
		return err
	}

	s.LogDebug(ctx, "Asset updated", slog.String("asset_id", assetID), slog.Bool("empty_patch", patch.IsEmpty()))
	return nil
}

func (s *assetService) DeleteAsset(ctx context.Context, userID string, assetID string) error {
	if err := s.assetRepo.DeleteAsset(ctx, userID, assetID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to delete asset", slog.String("asset_id", assetID))
		return err
	}

	s.LogInfo(ctx, "Asset deleted", slog.String("asset_id", assetID))
	return nil
}
