package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	OrganizationRepo OrganizationRepositoryFacade
	UserRepo         UserRepositoryFacade
	CustomerRepo     CustomerRepositoryFacade
	LedgerRepo       LedgerRepositoryFacade
	ProductRepo      ProductRepositoryFacade
	VariantRepo      VariantRepositoryFacade
	OrderRepo        OrderRepositoryFacade
	AttendanceRepo   AttendanceRepositoryFacade
	ExpenseRepo      ExpenseRepositoryFacade
}
