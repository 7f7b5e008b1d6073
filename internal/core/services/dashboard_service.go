package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/networth_tracker/internal/core/ports/services"
	"github.com/SscSPs/networth_tracker/internal/utils/accounting"
)

// RecentTransactionsLimit is how many transactions the dashboard carries.
const RecentTransactionsLimit = 5

type dashboardService struct {
	BaseService
	assetRepo       portsrepo.AssetReader
	debtRepo        portsrepo.DebtReader
	transactionRepo portsrepo.TransactionReader
}

// NewDashboardService creates the service that summarises net worth.
func NewDashboardService(assetRepo portsrepo.AssetReader, debtRepo portsrepo.DebtReader, transactionRepo portsrepo.TransactionReader) portssvc.DashboardSvc {
	return &dashboardService{
		assetRepo:       assetRepo,
		debtRepo:        debtRepo,
		transactionRepo: transactionRepo,
	}
}

var _ portssvc.DashboardSvc = (*dashboardService)(nil)

func (s *dashboardService) ComputeDashboard(ctx context.Context, userID string) (*domain.Dashboard, error) {
	assets, err := s.assetRepo.ListAssets(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load assets for dashboard", slog.String("user_id", userID))
		return nil, err
	}

	debts, err := s.debtRepo.ListDebts(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load debts for dashboard", slog.String("user_id", userID))
		return nil, err
	}

	recent, _, err := s.transactionRepo.ListTransactions(ctx, userID, RecentTransactionsLimit, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to load recent transactions for dashboard", slog.String("user_id", userID))
		return nil, err
	}

	dashboard := accounting.ComputeDashboard(assets, debts)
	if recent == nil {
		recent = []domain.Transaction{}
	}
	dashboard.RecentTransactions = recent

	s.LogDebug(ctx, "Dashboard computed",
		slog.Int("assets", len(assets)),
		slog.Int("debts", len(debts)),
		slog.String("net_worth", dashboard.NetWorth.String()))
	return &dashboard, nil
}
