package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	CreditSaleRepo   CreditSaleRepositoryWithTx
	TransactionRepo  TransactionRepositoryFacade
	ServiceOrderRepo ServiceOrderRepositoryFacade
	CashSessionRepo  CashSessionRepositoryFacade
	SettingsRepo     SettingsRepository
	UserRepo         UserRepositoryFacade
	ReportingRepo    ReportingRepository
}
