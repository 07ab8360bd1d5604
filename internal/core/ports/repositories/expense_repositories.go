package repositories

import (
	"context"

	"github.com/SellSage/biz_management_app/internal/core/domain"
)

// ExpenseRepositoryFacade defines persistence operations for expenses and
// their categories, all scoped to an organization.
type ExpenseRepositoryFacade interface {
	// SaveExpense persists a new expense.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// FindExpenseByID retrieves an expense visible to the organization.
	FindExpenseByID(ctx context.Context, organizationID string, expenseID string) (*domain.Expense, error)

	// ListExpensesByOrganization retrieves a paginated expense list.
	ListExpensesByOrganization(ctx context.Context, organizationID string, limit int, offset int) ([]domain.Expense, error)

	// SaveCategory persists a new expense category.
	SaveCategory(ctx context.Context, category domain.ExpenseCategory) error

	// ListCategoriesByOrganization retrieves all categories of an organization.
	ListCategoriesByOrganization(ctx context.Context, organizationID string) ([]domain.ExpenseCategory, error)
}
