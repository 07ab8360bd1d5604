package services

import (
	"context"

	"github.com/SellSage/biz_management_app/internal/core/domain"
	"github.com/SellSage/biz_management_app/internal/dto"
)

// LedgerReaderSvc defines read operations for ledgers and entries.
type LedgerReaderSvc interface {
	// GetLedgerByID retrieves a ledger scoped to the organization.
	GetLedgerByID(ctx context.Context, organizationID string, ledgerID string, caller domain.User) (*domain.Ledger, error)

	// ListLedgers retrieves a paginated ledger list for the organization.
	ListLedgers(ctx context.Context, organizationID string, caller domain.User, limit, offset int) ([]domain.Ledger, error)

	// ListEntries retrieves the append-only entry trail of a ledger.
	ListEntries(ctx context.Context, organizationID string, ledgerID string, caller domain.User) ([]domain.Entry, error)
}

// LedgerWriterSvc defines write operations for ledgers.
type LedgerWriterSvc interface {
	// CreateLedger creates a ledger; the closing balance starts at the
	// opening balance.
	CreateLedger(ctx context.Context, organizationID string, req dto.CreateLedgerRequest, caller domain.User) (*domain.Ledger, error)

	// PostTransaction applies one balance-affecting transaction to a ledger
	// and appends the immutable entry carrying the post-transaction closing
	// balance snapshot. Amount must be positive.
	PostTransaction(ctx context.Context, organizationID string, ledgerID string, req dto.PostTransactionRequest, caller domain.User) (*domain.Entry, error)
}

// LedgerSvcFacade combines ledger service interfaces.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
