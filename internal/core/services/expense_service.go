package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SellSage/biz_management_app/internal/apperrors"
	"github.com/SellSage/biz_management_app/internal/core/domain"
	portsrepo "github.com/SellSage/biz_management_app/internal/core/ports/repositories"
	portssvc "github.com/SellSage/biz_management_app/internal/core/ports/services"
	"github.com/SellSage/biz_management_app/internal/dto"
)

// ExpenseService implements expense tracking.
type ExpenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

var _ portssvc.ExpenseSvcFacade = (*ExpenseService)(nil)

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, authorizer portssvc.OrganizationAuthorizerSvc) *ExpenseService {
	return &ExpenseService{
		BaseService: BaseService{OrgAuthorizer: authorizer},
		expenseRepo: expenseRepo,
	}
}

// CreateExpense records an expense requested by the caller.
func (s *ExpenseService) CreateExpense(ctx context.Context, organizationID string, req dto.CreateExpenseRequest, caller domain.User) (*domain.Expense, error) {
	if err := s.AuthorizeUser(ctx, caller, organizationID, domain.CapabilityStaff); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	expenseDate := now
	if req.ExpenseDate != nil {
		expenseDate = *req.ExpenseDate
	}

	expense := domain.Expense{
		ExpenseID:      uuid.NewString(),
		OrganizationID: organizationID,
		CategoryID:     req.CategoryID,
		Name:           req.Name,
		Amount:         req.Amount,
		ExpenseDate:    expenseDate,
		RequestedByID:  caller.UserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", "organization_id", organizationID)
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	return &expense, nil
}

// GetExpenseByID retrieves one expense scoped to the organization.
func (s *ExpenseService) GetExpenseByID(ctx context.Context, organizationID string, expenseID string, caller domain.User) (*domain.Expense, error) {
	if err := s.AuthorizeUser(ctx, caller, organizationID, domain.CapabilityStaff); err != nil {
		return nil, err
	}
	expense, err := s.expenseRepo.FindExpenseByID(ctx, organizationID, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return expense, nil
}

// ListExpenses retrieves a paginated expense list.
func (s *ExpenseService) ListExpenses(ctx context.Context, organizationID string, caller domain.User, limit, offset int) ([]domain.Expense, error) {
	if err := s.AuthorizeUser(ctx, caller, organizationID, domain.CapabilityStaff); err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.ListExpensesByOrganization(ctx, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

// CreateCategory creates an expense category.
func (s *ExpenseService) CreateCategory(ctx context.Context, organizationID string, req dto.CreateExpenseCategoryRequest, caller domain.User) (*domain.ExpenseCategory, error) {
	if err := s.AuthorizeUser(ctx, caller, organizationID, domain.CapabilityEditor); err != nil {
		return nil, err
	}

	category := domain.ExpenseCategory{
		CategoryID:     uuid.NewString(),
		OrganizationID: organizationID,
		Name:           req.Name,
	}
	if err := s.expenseRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save expense category", "organization_id", organizationID)
		return nil, fmt.Errorf("failed to create expense category: %w", err)
	}
	return &category, nil
}

// ListCategories retrieves all categories of the organization.
func (s *ExpenseService) ListCategories(ctx context.Context, organizationID string, caller domain.User) ([]domain.ExpenseCategory, error) {
	if err := s.AuthorizeUser(ctx, caller, organizationID, domain.CapabilityStaff); err != nil {
		return nil, err
	}
	categories, err := s.expenseRepo.ListCategoriesByOrganization(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense categories: %w", err)
	}
	return categories, nil
}
