package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SellSage/biz_management_app/internal/apperrors"
	"github.com/SellSage/biz_management_app/internal/core/domain"
	portsrepo "github.com/SellSage/biz_management_app/internal/core/ports/repositories"
)

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(db *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository{Pool: db}}
}

// Ensure PgxExpenseRepository implements portsrepo.ExpenseRepositoryFacade
var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

const expenseColumns = `expense_id, organization_id, category_id, name, amount, expense_date,
	requested_by_id, created_at, created_by, last_updated_at, last_updated_by`

func scanExpense(row pgx.Row) (*domain.Expense, error) {
	var e domain.Expense
	err := row.Scan(
		&e.ExpenseID,
		&e.OrganizationID,
		&e.CategoryID,
		&e.Name,
		&e.Amount,
		&e.ExpenseDate,
		&e.RequestedByID,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		expense.ExpenseID,
		expense.OrganizationID,
		expense.CategoryID,
		expense.Name,
		expense.Amount,
		expense.ExpenseDate,
		expense.RequestedByID,
		expense.CreatedAt,
		expense.CreatedBy,
		expense.LastUpdatedAt,
		expense.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense: %w", mapWriteError(err))
	}
	return nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, organizationID string, expenseID string) (*domain.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE organization_id = $1 AND expense_id = $2;
	`
	expense, err := scanExpense(r.Pool.QueryRow(ctx, query, organizationID, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense by ID %s: %w", expenseID, err)
	}
	return expense, nil
}

func (r *PgxExpenseRepository) ListExpensesByOrganization(ctx context.Context, organizationID string, limit int, offset int) ([]domain.Expense, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE organization_id = $1
		ORDER BY expense_date DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, *expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}
	return expenses, nil
}

func (r *PgxExpenseRepository) SaveCategory(ctx context.Context, category domain.ExpenseCategory) error {
	query := `
		INSERT INTO expense_categories (category_id, organization_id, name)
		VALUES ($1, $2, $3);
	`
	_, err := r.Pool.Exec(ctx, query, category.CategoryID, category.OrganizationID, category.Name)
	if err != nil {
		return fmt.Errorf("failed to save expense category: %w", mapWriteError(err))
	}
	return nil
}

func (r *PgxExpenseRepository) ListCategoriesByOrganization(ctx context.Context, organizationID string) ([]domain.ExpenseCategory, error) {
	query := `
		SELECT category_id, organization_id, name
		FROM expense_categories
		WHERE organization_id = $1
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.ExpenseCategory{}
	for rows.Next() {
		var c domain.ExpenseCategory
		if err := rows.Scan(&c.CategoryID, &c.OrganizationID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan expense category row: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense category rows: %w", err)
	}
	return categories, nil
}
