package mapping

import (
	"github.com/SscSPs/networth_tracker/internal/core/domain"
	"github.com/SscSPs/networth_tracker/internal/models"
)

// ToModelAsset converts a domain Asset to a model Asset
func ToModelAsset(d domain.Asset) models.Asset {
	return models.Asset{
		ID:           d.ID,
		UserID:       d.UserID,
		Name:         d.Name,
		Type:         string(d.Type),
		CurrentValue: d.CurrentValue,
		IsDeleted:    d.IsDeleted,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAsset converts a model Asset to a domain Asset
func ToDomainAsset(m models.Asset) (domain.Asset, error) {
	audit, err := ToDomainAuditFields(m.AuditFields)
	if err != nil {
		return domain.Asset{}, err
	}
	return domain.Asset{
		ID:           m.ID,
		UserID:       m.UserID,
		Name:         m.Name,
		Type:         domain.AssetType(m.Type),
		CurrentValue: m.CurrentValue,
		IsDeleted:    m.IsDeleted,
		AuditFields:  audit,
	}, nil
}
