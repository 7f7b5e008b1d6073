package sqlstore_test

import (
	"time"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
)

func profileFixture() domain.Profile {
	name := "demo"
	return domain.Profile{
		ID:        domain.DefaultUserID,
		Username:  &name,
		UpdatedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}
}
