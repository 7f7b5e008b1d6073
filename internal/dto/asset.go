package dto

import (
	"time"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAssetRequest defines the data needed to create a new asset.
type CreateAssetRequest struct {
	Name         string          `json:"name" binding:"required"`
	Type         string          `json:"type" binding:"required,oneof=cash bank_account investment crypto real_estate vehicle other"`
	CurrentValue decimal.Decimal `json:"currentValue"`
}

// ToInput converts the request into the domain input.
func (r CreateAssetRequest) ToInput() domain.CreateAssetInput {
	return domain.CreateAssetInput{
		Name:         r.Name,
		Type:         domain.AssetType(r.Type),
		CurrentValue: r.CurrentValue,
	}
}

// UpdateAssetRequest carries the asset fields to change. Omitted fields stay as they are.
type UpdateAssetRequest struct {
	Name         *string          `json:"name" binding:"omitempty,min=1"`
	Type         *string          `json:"type" binding:"omitempty,oneof=cash bank_account investment crypto real_estate vehicle other"`
	CurrentValue *decimal.Decimal `json:"currentValue"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateAssetRequest) ToPatch() domain.AssetPatch {
	patch := domain.AssetPatch{Name: r.Name, CurrentValue: r.CurrentValue}
	if r.Type != nil {
		t := domain.AssetType(*r.Type)
		patch.Type = &t
	}
	return patch
}

// AssetResponse defines the data returned for an asset.
type AssetResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	CurrentValue decimal.Decimal `json:"currentValue"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ToAssetResponse converts a domain asset to its response DTO.
func ToAssetResponse(a *domain.Asset) AssetResponse {
	return AssetResponse{
		ID:           a.ID,
		Name:         a.Name,
		Type:         string(a.Type),
		CurrentValue: a.CurrentValue,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

// ToAssetResponses converts a slice of domain assets.
func ToAssetResponses(assets []domain.Asset) []AssetResponse {
	res := make([]AssetResponse, len(assets))
	for i := range assets {
		res[i] = ToAssetResponse(&assets[i])
	}
	return res
}
