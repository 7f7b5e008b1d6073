package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
)

// AssetReader defines read operations for asset data
type AssetReader interface {
	// ListAssets returns the non-deleted assets of userID, newest first.
	ListAssets(ctx context.Context, userID string) ([]domain.Asset, error)

	// FindAssetByID returns the asset even when soft-deleted; ErrNotFound if the row does not exist.
	FindAssetByID(ctx context.Context, userID string, assetID string) (*domain.Asset, error)
}

// AssetWriter defines write operations for asset data
type AssetWriter interface {
	// SaveAsset persists a new asset.
	SaveAsset(ctx context.Context, asset domain.Asset) error

	// UpdateAsset rewrites the supplied fields and updated_at. Empty patches and unknown ids are no-ops.
	UpdateAsset(ctx context.Context, userID string, assetID string, patch domain.AssetPatch, now time.Time) error

	// DeleteAsset soft-deletes an asset. Unknown ids are a no-op.
	DeleteAsset(ctx context.Context, userID string, assetID string, now time.Time) error
}

// AssetRepositoryFacade combines all asset-related repository interfaces
type AssetRepositoryFacade interface {
	AssetReader
	AssetWriter
}
