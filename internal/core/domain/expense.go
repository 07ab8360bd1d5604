package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory groups expenses within an organization.
type ExpenseCategory struct {
	CategoryID     string `json:"categoryID"`
	OrganizationID string `json:"organizationID"`
	Name           string `json:"name"`
}

// Expense is a spend record requested by a user.
type Expense struct {
	ExpenseID       string          `json:"expenseID"`
	OrganizationID  string          `json:"organizationID"`
	CategoryID      *string         `json:"categoryID,omitempty"`
	Name            string          `json:"name"`
	Amount          decimal.Decimal `json:"amount"`
	ExpenseDate     time.Time       `json:"expenseDate"`
	RequestedByID   string          `json:"requestedByID"`
	AuditFields
}
