package services

import (
	"context"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
)

// AssetReaderSvc defines read operations for asset data
type AssetReaderSvc interface {
	ListAssets(ctx context.Context, userID string) ([]domain.Asset, error)
	GetAssetByID(ctx context.Context, userID string, assetID string) (*domain.Asset, error)
}

// AssetWriterSvc defines write operations for asset data
type AssetWriterSvc interface {
	// CreateAsset validates the input, persists the asset and returns its id.
	CreateAsset(ctx context.Context, userID string, input domain.CreateAssetInput) (string, error)
	UpdateAsset(ctx context.Context, userID string, assetID string, patch domain.AssetPatch) error
	DeleteAsset(ctx context.Context, userID string, assetID string) error
}

// AssetSvcFacade combines all asset-related service interfaces
type AssetSvcFacade interface {
	AssetReaderSvc
	AssetWriterSvc
}
