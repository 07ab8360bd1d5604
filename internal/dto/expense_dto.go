package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SellSage/biz_management_app/internal/core/domain"
)

// CreateExpenseRequest is the payload for recording an expense.
type CreateExpenseRequest struct {
	Name        string          `json:"name" binding:"required,max=120"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	CategoryID  *string         `json:"category_id,omitempty"`
	ExpenseDate *time.Time      `json:"expense_date,omitempty"`
}

// CreateExpenseCategoryRequest is the payload for creating an expense category.
type CreateExpenseCategoryRequest struct {
	Name string `json:"name" binding:"required,max=120"`
}

// ExpenseCategoryResponse is the API representation of an expense category.
type ExpenseCategoryResponse struct {
	CategoryID     string `json:"category_id"`
	OrganizationID string `json:"organization_id"`
	Name           string `json:"name"`
}

// ExpenseResponse is the API representation of an expense.
type ExpenseResponse struct {
	ExpenseID      string          `json:"expense_id"`
	OrganizationID string          `json:"organization_id"`
	CategoryID     *string         `json:"category_id,omitempty"`
	Name           string          `json:"name"`
	Amount         decimal.Decimal `json:"amount"`
	ExpenseDate    time.Time       `json:"expense_date"`
	RequestedByID  string          `json:"requested_by_id"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ToExpenseCategoryResponse converts a domain expense category.
func ToExpenseCategoryResponse(c *domain.ExpenseCategory) ExpenseCategoryResponse {
	return ExpenseCategoryResponse{
		CategoryID:     c.CategoryID,
		OrganizationID: c.OrganizationID,
		Name:           c.Name,
	}
}

// ToExpenseCategoryResponses converts a slice of domain expense categories.
func ToExpenseCategoryResponses(categories []domain.ExpenseCategory) []ExpenseCategoryResponse {
	resp := make([]ExpenseCategoryResponse, 0, len(categories))
	for i := range categories {
		resp = append(resp, ToExpenseCategoryResponse(&categories[i]))
	}
	return resp
}

// ToExpenseResponse converts a domain expense.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:      e.ExpenseID,
		OrganizationID: e.OrganizationID,
		CategoryID:     e.CategoryID,
		Name:           e.Name,
		Amount:         e.Amount,
		ExpenseDate:    e.ExpenseDate,
		RequestedByID:  e.RequestedByID,
		CreatedAt:      e.CreatedAt,
	}
}

// ToExpenseResponses converts a slice of domain expenses.
func ToExpenseResponses(expenses []domain.Expense) []ExpenseResponse {
	resp := make([]ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		resp = append(resp, ToExpenseResponse(&expenses[i]))
	}
	return resp
}
