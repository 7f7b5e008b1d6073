package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// Every storage backend hands one of these to the service container.
type RepositoryProvider struct {
	AssetRepo       AssetRepositoryFacade
	DebtRepo        DebtRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	ProfileRepo     ProfileRepositoryFacade
}
