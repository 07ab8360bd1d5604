package services

import (
	portsrepo "github.com/SellSage/biz_management_app/internal/core/ports/repositories"
	portssvc "github.com/SellSage/biz_management_app/internal/core/ports/services"
)

// NewServiceContainer wires all services with their repositories. The
// organization service doubles as the authorizer consulted by every other
// service, so it is constructed first.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	notifier := NewLogNotifier()

	orgSvc := NewOrganizationService(repos.OrganizationRepo, repos.UserRepo, notifier)
	orgSvc.OrgAuthorizer = orgSvc

	return &portssvc.ServiceContainer{
		UserSvc:         NewUserService(repos.UserRepo, orgSvc),
		OrganizationSvc: orgSvc,
		CustomerSvc:     NewCustomerService(repos.CustomerRepo, orgSvc),
		LedgerSvc:       NewLedgerService(repos.LedgerRepo, repos.CustomerRepo, orgSvc),
		ProductSvc:      NewProductService(repos.ProductRepo, repos.VariantRepo, orgSvc),
		VariantSvc:      NewVariantService(repos.ProductRepo, repos.VariantRepo, orgSvc),
		OrderSvc:        NewOrderService(repos.OrderRepo, repos.CustomerRepo, repos.UserRepo, notifier, orgSvc),
		AttendanceSvc:   NewAttendanceService(repos.AttendanceRepo, repos.UserRepo, orgSvc),
		ExpenseSvc:      NewExpenseService(repos.ExpenseRepo, orgSvc),
		Notifier:        notifier,
	}
}
