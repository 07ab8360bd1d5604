package services

import (
	"context"

	"github.com/SellSage/biz_management_app/internal/core/domain"
	"github.com/SellSage/biz_management_app/internal/dto"
)

// ExpenseSvcFacade defines expense and expense category operations.
type ExpenseSvcFacade interface {
	// CreateExpense records an expense requested by the caller.
	CreateExpense(ctx context.Context, organizationID string, req dto.CreateExpenseRequest, caller domain.User) (*domain.Expense, error)

	// GetExpenseByID retrieves one expense scoped to the organization.
	GetExpenseByID(ctx context.Context, organizationID string, expenseID string, caller domain.User) (*domain.Expense, error)

	// ListExpenses retrieves a paginated expense list.
	ListExpenses(ctx context.Context, organizationID string, caller domain.User, limit, offset int) ([]domain.Expense, error)

	// CreateCategory creates an expense category.
	CreateCategory(ctx context.Context, organizationID string, req dto.CreateExpenseCategoryRequest, caller domain.User) (*domain.ExpenseCategory, error)

	// ListCategories retrieves all categories of the organization.
	ListCategories(ctx context.Context, organizationID string, caller domain.User) ([]domain.ExpenseCategory, error)
}
