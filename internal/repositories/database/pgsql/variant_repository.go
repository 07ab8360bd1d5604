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

type PgxVariantRepository struct {
	BaseRepository
}

func newPgxVariantRepository(db *pgxpool.Pool) portsrepo.VariantRepositoryFacade {
	return &PgxVariantRepository{BaseRepository{Pool: db}}
}

// Ensure PgxVariantRepository implements portsrepo.VariantRepositoryFacade
var _ portsrepo.VariantRepositoryFacade = (*PgxVariantRepository)(nil)

const variantColumns = `variant_id, product_id, organization_id, price, quantity, sku,
	image_url, is_default, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

func scanVariant(row pgx.Row) (*domain.Variant, error) {
	var v domain.Variant
	err := row.Scan(
		&v.VariantID,
		&v.ProductID,
		&v.OrganizationID,
		&v.Price,
		&v.Quantity,
		&v.SKU,
		&v.ImageURL,
		&v.IsDefault,
		&v.IsActive,
		&v.CreatedAt,
		&v.CreatedBy,
		&v.LastUpdatedAt,
		&v.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// SaveVariant persists a variant and its field associations in one
// transaction. When the variant is flagged as default, the previous default
// of the same product is cleared inside the same transaction.
func (r *PgxVariantRepository) SaveVariant(ctx context.Context, variant domain.Variant) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	if variant.IsDefault {
		clearQuery := `UPDATE variants SET is_default = FALSE WHERE product_id = $1 AND is_default;`
		if _, err := tx.Exec(ctx, clearQuery, variant.ProductID); err != nil {
			return fmt.Errorf("failed to clear previous default variant: %w", err)
		}
	}

	insertQuery := `
		INSERT INTO variants (` + variantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, insertQuery,
		variant.VariantID,
		variant.ProductID,
		variant.OrganizationID,
		variant.Price,
		variant.Quantity,
		variant.SKU,
		variant.ImageURL,
		variant.IsDefault,
		variant.IsActive,
		variant.CreatedAt,
		variant.CreatedBy,
		variant.LastUpdatedAt,
		variant.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save variant: %w", mapWriteError(err))
	}

	linkQuery := `INSERT INTO variant_field_values (variant_id, field_id) VALUES ($1, $2);`
	for _, field := range variant.Fields {
		if _, err := tx.Exec(ctx, linkQuery, variant.VariantID, field.FieldID); err != nil {
			return fmt.Errorf("failed to link variant field %s: %w", field.FieldID, mapWriteError(err))
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxVariantRepository) FindVariantBySKU(ctx context.Context, organizationID string, sku string) (*domain.Variant, error) {
	query := `
		SELECT ` + variantColumns + `
		FROM variants
		WHERE organization_id = $1 AND sku = $2;
	`
	variant, err := scanVariant(r.Pool.QueryRow(ctx, query, organizationID, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find variant by SKU %s: %w", sku, err)
	}

	fields, err := r.findFieldsByVariant(ctx, variant.VariantID)
	if err != nil {
		return nil, err
	}
	variant.Fields = fields
	return variant, nil
}

func (r *PgxVariantRepository) ListVariantsByProduct(ctx context.Context, organizationID string, productID string) ([]domain.Variant, error) {
	query := `
		SELECT ` + variantColumns + `
		FROM variants
		WHERE organization_id = $1 AND product_id = $2
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to query variants: %w", err)
	}
	defer rows.Close()

	variants := []domain.Variant{}
	for rows.Next() {
		variant, err := scanVariant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan variant row: %w", err)
		}
		variants = append(variants, *variant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating variant rows: %w", err)
	}

	for i := range variants {
		fields, err := r.findFieldsByVariant(ctx, variants[i].VariantID)
		if err != nil {
			return nil, err
		}
		variants[i].Fields = fields
	}
	return variants, nil
}

// SKUExists checks system-wide: SKUs are globally unique lookup keys.
func (r *PgxVariantRepository) SKUExists(ctx context.Context, sku string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM variants WHERE sku = $1);`, sku).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check SKU existence: %w", err)
	}
	return exists, nil
}

func (r *PgxVariantRepository) FindFieldsByIDs(ctx context.Context, organizationID string, fieldIDs []string) ([]domain.VariantField, error) {
	if len(fieldIDs) == 0 {
		return []domain.VariantField{}, nil
	}

	query := `
		SELECT field_id, organization_id, name, value
		FROM variant_fields
		WHERE organization_id = $1 AND field_id = ANY($2);
	`
	rows, err := r.Pool.Query(ctx, query, organizationID, fieldIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query variant fields: %w", err)
	}
	defer rows.Close()

	fields := []domain.VariantField{}
	for rows.Next() {
		var f domain.VariantField
		if err := rows.Scan(&f.FieldID, &f.OrganizationID, &f.Name, &f.Value); err != nil {
			return nil, fmt.Errorf("failed to scan variant field row: %w", err)
		}
		fields = append(fields, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating variant field rows: %w", err)
	}
	return fields, nil
}

func (r *PgxVariantRepository) UpdateVariant(ctx context.Context, variant domain.Variant) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	if variant.IsDefault {
		clearQuery := `UPDATE variants SET is_default = FALSE WHERE product_id = $1 AND variant_id != $2 AND is_default;`
		if _, err := tx.Exec(ctx, clearQuery, variant.ProductID, variant.VariantID); err != nil {
			return fmt.Errorf("failed to clear previous default variant: %w", err)
		}
	}

	query := `
		UPDATE variants SET
			price = $3,
			quantity = $4,
			image_url = $5,
			is_default = $6,
			is_active = $7,
			last_updated_at = $8,
			last_updated_by = $9
		WHERE organization_id = $1 AND variant_id = $2;
	`
	tag, err := tx.Exec(ctx, query,
		variant.OrganizationID,
		variant.VariantID,
		variant.Price,
		variant.Quantity,
		variant.ImageURL,
		variant.IsDefault,
		variant.IsActive,
		variant.LastUpdatedAt,
		variant.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update variant %s: %w", variant.VariantID, mapWriteError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

func (r *PgxVariantRepository) SaveField(ctx context.Context, field domain.VariantField) error {
	query := `
		INSERT INTO variant_fields (field_id, organization_id, name, value)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query, field.FieldID, field.OrganizationID, field.Name, field.Value)
	if err != nil {
		return fmt.Errorf("failed to save variant field: %w", mapWriteError(err))
	}
	return nil
}

func (r *PgxVariantRepository) findFieldsByVariant(ctx context.Context, variantID string) ([]domain.VariantField, error) {
	query := `
		SELECT f.field_id, f.organization_id, f.name, f.value
		FROM variant_fields f
		JOIN variant_field_values v ON v.field_id = f.field_id
		WHERE v.variant_id = $1
		ORDER BY f.name;
	`
	rows, err := r.Pool.Query(ctx, query, variantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query fields of variant %s: %w", variantID, err)
	}
	defer rows.Close()

	fields := []domain.VariantField{}
	for rows.Next() {
		var f domain.VariantField
		if err := rows.Scan(&f.FieldID, &f.OrganizationID, &f.Name, &f.Value); err != nil {
			return nil, fmt.Errorf("failed to scan variant field row: %w", err)
		}
		fields = append(fields, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating variant field rows: %w", err)
	}
	return fields, nil
}
