package services

import (
	portsrepo "github.com/SscSPs/networth_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/networth_tracker/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Asset:       NewAssetService(repos.AssetRepo),
		Debt:        NewDebtService(repos.DebtRepo),
		Transaction: NewTransactionService(repos.TransactionRepo),
		Dashboard:   NewDashboardService(repos.AssetRepo, repos.DebtRepo, repos.TransactionRepo),
		Profile:     NewProfileService(repos.ProfileRepo),
	}
}
