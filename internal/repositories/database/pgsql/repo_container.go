package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/SellSage/biz_management_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		OrganizationRepo: newPgxOrganizationRepository(dbPool),
		UserRepo:         newPgxUserRepository(dbPool),
		CustomerRepo:     newPgxCustomerRepository(dbPool),
		LedgerRepo:       newPgxLedgerRepository(dbPool),
		ProductRepo:      newPgxProductRepository(dbPool),
		VariantRepo:      newPgxVariantRepository(dbPool),
		OrderRepo:        newPgxOrderRepository(dbPool),
		AttendanceRepo:   newPgxAttendanceRepository(dbPool),
		ExpenseRepo:      newPgxExpenseRepository(dbPool),
	}
}
