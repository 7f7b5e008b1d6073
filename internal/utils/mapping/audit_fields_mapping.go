package mapping

import (
	"database/sql"
	"fmt"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
	"github.com/SscSPs/networth_tracker/internal/models"
)

// ToModelAuditFields converts a domain AuditFields to a model AuditFields
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt: domain.FormatTimestamp(d.CreatedAt),
		UpdatedAt: domain.FormatTimestamp(d.UpdatedAt),
	}
}

// ToDomainAuditFields converts a model AuditFields to a domain AuditFields
func ToDomainAuditFields(m models.AuditFields) (domain.AuditFields, error) {
	createdAt, err := domain.ParseTimestamp(m.CreatedAt)
	if err != nil {
		return domain.AuditFields{}, fmt.Errorf("invalid created_at %q: %w", m.CreatedAt, err)
	}
	updatedAt, err := domain.ParseTimestamp(m.UpdatedAt)
	if err != nil {
		return domain.AuditFields{}, fmt.Errorf("invalid updated_at %q: %w", m.UpdatedAt, err)
	}
	return domain.AuditFields{CreatedAt: createdAt, UpdatedAt: updatedAt}, nil
}

// ToNullString maps an optional id onto a nullable column value.
func ToNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// FromNullString is the inverse of ToNullString.
func FromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
