package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerType classifies an account in the chart of accounts.
type LedgerType string

const (
	LedgerCapital           LedgerType = "CAPITAL"
	LedgerFixedAsset        LedgerType = "FIXED_ASSET"
	LedgerCurrentAsset      LedgerType = "CURRENT_ASSET"
	LedgerLoanAndAdvance    LedgerType = "LOAN_AND_ADVANCE"
	LedgerCashAndBank       LedgerType = "CASH_AND_BANK"
	LedgerIncome            LedgerType = "INCOME"
	LedgerLiability         LedgerType = "LIABILITY"
	LedgerExpense           LedgerType = "EXPENSE"
	LedgerCustomer          LedgerType = "CUSTOMER"
	LedgerVendor            LedgerType = "VENDOR"
	LedgerCustomerAndVendor LedgerType = "CUSTOMER_AND_VENDOR"
)

// ValidLedgerType reports whether t is one of the known ledger types.
func ValidLedgerType(t LedgerType) bool {
	switch t {
	case LedgerCapital, LedgerFixedAsset, LedgerCurrentAsset,
		LedgerLoanAndAdvance, LedgerCashAndBank, LedgerIncome,
		LedgerLiability, LedgerExpense, LedgerCustomer, LedgerVendor,
		LedgerCustomerAndVendor:
		return true
	}
	return false
}

// EntryType classifies a ledger posting.
type EntryType string

const (
	EntrySalesInvoice    EntryType = "SALES_INVOICE"
	EntrySalesReturn     EntryType = "SALES_RETURN"
	EntryPurchaseInvoice EntryType = "PURCHASE_INVOICE"
	EntryPurchaseReturn  EntryType = "PURCHASE_RETURN"
	EntryReceiptVoucher  EntryType = "RECEIPT_VOUCHER"
	EntryPaymentVoucher  EntryType = "PAYMENT_VOUCHER"
	EntryJournalVoucher  EntryType = "JOURNAL_VOUCHER"
)

// ValidEntryType reports whether t is one of the known entry types.
func ValidEntryType(t EntryType) bool {
	switch t {
	case EntrySalesInvoice, EntrySalesReturn, EntryPurchaseInvoice,
		EntryPurchaseReturn, EntryReceiptVoucher, EntryPaymentVoucher,
		EntryJournalVoucher:
		return true
	}
	return false
}

// Ledger is an account tracking a running balance via immutable entries.
// ClosingBalance always equals OpeningBalance plus the signed sum of all
// entry amounts applied in creation order.
type Ledger struct {
	LedgerID       string          `json:"ledgerID"` // Primary key (UUID)
	OrganizationID string          `json:"organizationID"`
	Name           string          `json:"name"`
	LedgerType     LedgerType      `json:"ledgerType"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
	Credit         decimal.Decimal `json:"credit"` // Accumulated credit total
	Debit          decimal.Decimal `json:"debit"`  // Accumulated debit total
	CustomerID     *string         `json:"customerID,omitempty"`
	AuditFields
}

// Entry is one immutable posting against a ledger. ClosingBalance is the
// authoritative snapshot of the ledger balance immediately after posting,
// used for historical statements without recomputation. Entries are never
// edited or deleted; corrections are new offsetting entries.
type Entry struct {
	EntryID        string          `json:"entryID"` // Primary key (UUID)
	LedgerID       string          `json:"ledgerID"`
	OrganizationID string          `json:"organizationID"`
	Amount         decimal.Decimal `json:"amount"` // Always positive
	IsCredit       bool            `json:"isCredit"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
	EntryType      EntryType       `json:"entryType"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
}

// SignedAmount returns the entry amount with the credit/debit sign applied.
func (e Entry) SignedAmount() decimal.Decimal {
	if e.IsCredit {
		return e.Amount
	}
	return e.Amount.Neg()
}
