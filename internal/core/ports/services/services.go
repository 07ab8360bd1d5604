package services

// ServiceContainer holds all service facades for dependency injection.
type ServiceContainer struct {
	UserSvc         UserSvcFacade
	OrganizationSvc OrganizationSvcFacade
	CustomerSvc     CustomerSvcFacade
	LedgerSvc       LedgerSvcFacade
	ProductSvc      ProductSvcFacade
	VariantSvc      VariantSvcFacade
	OrderSvc        OrderSvcFacade
	AttendanceSvc   AttendanceSvcFacade
	ExpenseSvc      ExpenseSvcFacade
	Notifier        Notifier
}
