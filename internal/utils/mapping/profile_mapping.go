package mapping

import (
	"fmt"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
	"github.com/SscSPs/networth_tracker/internal/models"
)

// ToModelProfile converts a domain Profile to a model Profile
func ToModelProfile(d domain.Profile) models.Profile {
	return models.Profile{
		ID:        d.ID,
		Username:  ToNullString(d.Username),
		FullName:  ToNullString(d.FullName),
		UpdatedAt: domain.FormatTimestamp(d.UpdatedAt),
	}
}

// ToDomainProfile converts a model Profile to a domain Profile
func ToDomainProfile(m models.Profile) (domain.Profile, error) {
	updatedAt, err := domain.ParseTimestamp(m.UpdatedAt)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("invalid updated_at %q: %w", m.UpdatedAt, err)
	}
	return domain.Profile{
		ID:        m.ID,
		Username:  FromNullString(m.Username),
		FullName:  FromNullString(m.FullName),
		UpdatedAt: updatedAt,
	}, nil
}
