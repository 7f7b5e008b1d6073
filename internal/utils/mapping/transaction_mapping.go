package mapping

import (
	"fmt"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
	"github.com/SscSPs/networth_tracker/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		ID:          d.ID,
		UserID:      d.UserID,
		Date:        domain.FormatTimestamp(d.Date),
		Description: d.Description,
		Amount:      d.Amount,
		Type:        string(d.Type),
		AssetID:     ToNullString(d.AssetID),
		DebtID:      ToNullString(d.DebtID),
		IsDeleted:   d.IsDeleted,
		AuditFields: ToModelAuditFields(d.AuditFields),
		AssetName:   ToNullString(d.AssetName),
		DebtName:    ToNullString(d.DebtName),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) (domain.Transaction, error) {
	date, err := domain.ParseTimestamp(m.Date)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("invalid date %q: %w", m.Date, err)
	}
	audit, err := ToDomainAuditFields(m.AuditFields)
	if err != nil {
		return domain.Transaction{}, err
	}
	return domain.Transaction{
		ID:          m.ID,
		UserID:      m.UserID,
		Date:        date,
		Description: m.Description,
		Amount:      m.Amount,
		Type:        domain.TransactionType(m.Type),
		AssetID:     FromNullString(m.AssetID),
		DebtID:      FromNullString(m.DebtID),
		IsDeleted:   m.IsDeleted,
		AuditFields: audit,
		AssetName:   FromNullString(m.AssetName),
		DebtName:    FromNullString(m.DebtName),
	}, nil
}
