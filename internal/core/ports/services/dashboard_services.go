package services

import (
	"context"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
)

// DashboardSvc computes the net-worth summary from the current store contents.
type DashboardSvc interface {
	ComputeDashboard(ctx context.Context, userID string) (*domain.Dashboard, error)
}
