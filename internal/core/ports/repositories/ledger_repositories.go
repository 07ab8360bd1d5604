package repositories

import (
	"context"

	"github.com/SellSage/biz_management_app/internal/core/domain"
)

// LedgerReader defines read operations for ledger data.
type LedgerReader interface {
	// FindLedgerByID retrieves a ledger visible to the organization.
	FindLedgerByID(ctx context.Context, organizationID string, ledgerID string) (*domain.Ledger, error)

	// ListLedgersByOrganization retrieves a paginated ledger list.
	ListLedgersByOrganization(ctx context.Context, organizationID string, limit int, offset int) ([]domain.Ledger, error)

	// ListEntriesByLedger retrieves all entries of a ledger in creation order.
	ListEntriesByLedger(ctx context.Context, organizationID string, ledgerID string) ([]domain.Entry, error)
}

// LedgerWriter defines write operations for ledger data.
type LedgerWriter interface {
	// SaveLedger persists a new ledger.
	SaveLedger(ctx context.Context, ledger domain.Ledger) error

	// PostEntry atomically applies one entry to a ledger: it locks the ledger
	// row, moves the closing balance by the signed amount, accumulates the
	// credit/debit totals and appends the immutable entry carrying the
	// post-transaction closing balance snapshot. The returned entry holds the
	// snapshot actually persisted.
	PostEntry(ctx context.Context, entry domain.Entry) (*domain.Entry, error)
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
