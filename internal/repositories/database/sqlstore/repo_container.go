package sqlstore

import (
	portsrepo "github.com/SscSPs/networth_tracker/internal/core/ports/repositories"
)

func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	assetRepo := newSQLAssetRepository(store)
	debtRepo := newSQLDebtRepository(store)
	transactionRepo := newSQLTransactionRepository(store, debtRepo)
	profileRepo := newSQLProfileRepository(store)

	return portsrepo.RepositoryProvider{
		AssetRepo:       assetRepo,
		DebtRepo:        debtRepo,
		TransactionRepo: transactionRepo,
		ProfileRepo:     profileRepo,
	}
}
