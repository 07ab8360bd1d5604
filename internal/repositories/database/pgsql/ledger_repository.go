package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/SellSage/biz_management_app/internal/apperrors"
	"github.com/SellSage/biz_management_app/internal/core/domain"
	portsrepo "github.com/SellSage/biz_management_app/internal/core/ports/repositories"
)

type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(db *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository{Pool: db}}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryFacade
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

const ledgerColumns = `ledger_id, organization_id, name, ledger_type, opening_balance,
	closing_balance, credit, debit, customer_id,
	created_at, created_by, last_updated_at, last_updated_by`

const entryColumns = `entry_id, ledger_id, organization_id, amount, is_credit,
	closing_balance, entry_type, created_at, created_by`

func scanLedger(row pgx.Row) (*domain.Ledger, error) {
	var l domain.Ledger
	err := row.Scan(
		&l.LedgerID,
		&l.OrganizationID,
		&l.Name,
		&l.LedgerType,
		&l.OpeningBalance,
		&l.ClosingBalance,
		&l.Credit,
		&l.Debit,
		&l.CustomerID,
		&l.CreatedAt,
		&l.CreatedBy,
		&l.LastUpdatedAt,
		&l.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func scanEntry(row pgx.Row) (*domain.Entry, error) {
	var e domain.Entry
	err := row.Scan(
		&e.EntryID,
		&e.LedgerID,
		&e.OrganizationID,
		&e.Amount,
		&e.IsCredit,
		&e.ClosingBalance,
		&e.EntryType,
		&e.CreatedAt,
		&e.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PgxLedgerRepository) SaveLedger(ctx context.Context, ledger domain.Ledger) error {
	query := `
		INSERT INTO ledgers (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		ledger.LedgerID,
		ledger.OrganizationID,
		ledger.Name,
		ledger.LedgerType,
		ledger.OpeningBalance,
		ledger.ClosingBalance,
		ledger.Credit,
		ledger.Debit,
		ledger.CustomerID,
		ledger.CreatedAt,
		ledger.CreatedBy,
		ledger.LastUpdatedAt,
		ledger.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save ledger: %w", mapWriteError(err))
	}
	return nil
}

func (r *PgxLedgerRepository) FindLedgerByID(ctx context.Context, organizationID string, ledgerID string) (*domain.Ledger, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM ledgers
		WHERE organization_id = $1 AND ledger_id = $2;
	`
	ledger, err := scanLedger(r.Pool.QueryRow(ctx, query, organizationID, ledgerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ledger by ID %s: %w", ledgerID, err)
	}
	return ledger, nil
}

func (r *PgxLedgerRepository) ListLedgersByOrganization(ctx context.Context, organizationID string, limit int, offset int) ([]domain.Ledger, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + ledgerColumns + `
		FROM ledgers
		WHERE organization_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledgers: %w", err)
	}
	defer rows.Close()

	ledgers := []domain.Ledger{}
	for rows.Next() {
		ledger, err := scanLedger(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger row: %w", err)
		}
		ledgers = append(ledgers, *ledger)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger rows: %w", err)
	}
	return ledgers, nil
}

func (r *PgxLedgerRepository) ListEntriesByLedger(ctx context.Context, organizationID string, ledgerID string) ([]domain.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM entries
		WHERE organization_id = $1 AND ledger_id = $2
		ORDER BY created_at, entry_id;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID, ledgerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.Entry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entry rows: %w", err)
	}
	return entries, nil
}

// PostEntry applies one transaction to a ledger atomically. The ledger row is
// locked FOR UPDATE so concurrent posts serialize and every entry snapshot is
// consistent with the balance it moved.
func (r *PgxLedgerRepository) PostEntry(ctx context.Context, entry domain.Entry) (*domain.Entry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	lockQuery := `
		SELECT closing_balance, credit, debit
		FROM ledgers
		WHERE organization_id = $1 AND ledger_id = $2
		FOR UPDATE;
	`
	var closing, credit, debit decimal.Decimal
	err = tx.QueryRow(ctx, lockQuery, entry.OrganizationID, entry.LedgerID).Scan(&closing, &credit, &debit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock ledger %s: %w", entry.LedgerID, err)
	}

	closing = closing.Add(entry.SignedAmount())
	if entry.IsCredit {
		credit = credit.Add(entry.Amount)
	} else {
		debit = debit.Add(entry.Amount)
	}
	entry.ClosingBalance = closing

	updateQuery := `
		UPDATE ledgers SET
			closing_balance = $3,
			credit = $4,
			debit = $5,
			last_updated_at = $6,
			last_updated_by = $7
		WHERE organization_id = $1 AND ledger_id = $2;
	`
	_, err = tx.Exec(ctx, updateQuery,
		entry.OrganizationID,
		entry.LedgerID,
		closing,
		credit,
		debit,
		entry.CreatedAt,
		entry.CreatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to move ledger balance: %w", err)
	}

	insertQuery := `
		INSERT INTO entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, insertQuery,
		entry.EntryID,
		entry.LedgerID,
		entry.OrganizationID,
		entry.Amount,
		entry.IsCredit,
		entry.ClosingBalance,
		entry.EntryType,
		entry.CreatedAt,
		entry.CreatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert entry: %w", mapWriteError(err))
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &entry, nil
}
