package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SellSage/biz_management_app/internal/core/domain"
)

// CreateLedgerRequest is the payload for creating a ledger.
type CreateLedgerRequest struct {
	Name           string          `json:"name" binding:"required,max=120"`
	LedgerType     string          `json:"ledger_type" binding:"required"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	CustomerID     *string         `json:"customer_id,omitempty"`
}

// PostTransactionRequest is the payload for posting one transaction to a
// ledger. IsCredit is a pointer so that an explicit false binds correctly.
type PostTransactionRequest struct {
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	IsCredit  *bool           `json:"is_credit" binding:"required"`
	EntryType string          `json:"entry_type" binding:"required"`
}

// LedgerResponse is the API representation of a ledger.
type LedgerResponse struct {
	LedgerID       string          `json:"ledger_id"`
	OrganizationID string          `json:"organization_id"`
	Name           string          `json:"name"`
	LedgerType     string          `json:"ledger_type"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
	Credit         decimal.Decimal `json:"credit"`
	Debit          decimal.Decimal `json:"debit"`
	CustomerID     *string         `json:"customer_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// EntryResponse is the API representation of a ledger entry.
type EntryResponse struct {
	EntryID        string          `json:"entry_id"`
	LedgerID       string          `json:"ledger_id"`
	Amount         decimal.Decimal `json:"amount"`
	IsCredit       bool            `json:"is_credit"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
	EntryType      string          `json:"entry_type"`
	CreatedAt      time.Time       `json:"created_at"`
	CreatedBy      string          `json:"created_by"`
}

// ToLedgerResponse converts a domain ledger.
func ToLedgerResponse(l *domain.Ledger) LedgerResponse {
	return LedgerResponse{
		LedgerID:       l.LedgerID,
		OrganizationID: l.OrganizationID,
		Name:           l.Name,
		LedgerType:     string(l.LedgerType),
		OpeningBalance: l.OpeningBalance,
		ClosingBalance: l.ClosingBalance,
		Credit:         l.Credit,
		Debit:          l.Debit,
		CustomerID:     l.CustomerID,
		CreatedAt:      l.CreatedAt,
	}
}

// ToLedgerResponses converts a slice of domain ledgers.
func ToLedgerResponses(ledgers []domain.Ledger) []LedgerResponse {
	resp := make([]LedgerResponse, 0, len(ledgers))
	for i := range ledgers {
		resp = append(resp, ToLedgerResponse(&ledgers[i]))
	}
	return resp
}

// ToEntryResponse converts a domain entry.
func ToEntryResponse(e *domain.Entry) EntryResponse {
	return EntryResponse{
		EntryID:        e.EntryID,
		LedgerID:       e.LedgerID,
		Amount:         e.Amount,
		IsCredit:       e.IsCredit,
		ClosingBalance: e.ClosingBalance,
		EntryType:      string(e.EntryType),
		CreatedAt:      e.CreatedAt,
		CreatedBy:      e.CreatedBy,
	}
}

// ToEntryResponses converts a slice of domain entries.
func ToEntryResponses(entries []domain.Entry) []EntryResponse {
	resp := make([]EntryResponse, 0, len(entries))
	for i := range entries {
		resp = append(resp, ToEntryResponse(&entries[i]))
	}
	return resp
}
