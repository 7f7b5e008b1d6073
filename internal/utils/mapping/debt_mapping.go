package mapping

import (
	"github.com/SscSPs/networth_tracker/internal/core/domain"
	"github.com/SscSPs/networth_tracker/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelDebt converts a domain Debt to a model Debt
func ToModelDebt(d domain.Debt) models.Debt {
	var rate decimal.NullDecimal
	if d.InterestRate != nil {
		rate = decimal.NewNullDecimal(*d.InterestRate)
	}
	return models.Debt{
		ID:             d.ID,
		UserID:         d.UserID,
		Name:           d.Name,
		Type:           string(d.Type),
		CurrentBalance: d.CurrentBalance,
		InterestRate:   rate,
		IsDeleted:      d.IsDeleted,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDebt converts a model Debt to a domain Debt
func ToDomainDebt(m models.Debt) (domain.Debt, error) {
	audit, err := ToDomainAuditFields(m.AuditFields)
	if err != nil {
		return domain.Debt{}, err
	}
	var rate *decimal.Decimal
	if m.InterestRate.Valid {
		r := m.InterestRate.Decimal
		rate = &r
	}
	debtType := domain.DebtType(m.Type)
	if debtType == "" {
		debtType = domain.DebtOther
	}
	return domain.Debt{
		ID:             m.ID,
		UserID:         m.UserID,
		Name:           m.Name,
		Type:           debtType,
		CurrentBalance: m.CurrentBalance,
		InterestRate:   rate,
		IsDeleted:      m.IsDeleted,
		AuditFields:    audit,
	}, nil
}
