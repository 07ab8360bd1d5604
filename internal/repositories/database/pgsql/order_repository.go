package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/SellSage/biz_management_app/internal/apperrors"
	"github.com/SellSage/biz_management_app/internal/core/domain"
	portsrepo "github.com/SellSage/biz_management_app/internal/core/ports/repositories"
)

type PgxOrderRepository struct {
	BaseRepository
}

func newPgxOrderRepository(db *pgxpool.Pool) portsrepo.OrderRepositoryFacade {
	return &PgxOrderRepository{BaseRepository{Pool: db}}
}

// Ensure PgxOrderRepository implements portsrepo.OrderRepositoryFacade
var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

const orderColumns = `order_id, organization_id, status, owner_user_id, customer_id,
	assigned_user_id, ordered_at, completed_at,
	created_at, created_by, last_updated_at, last_updated_by`

const orderItemColumns = `order_item_id, order_id, variant_id, sku, quantity, unit_price, organization_id`

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.OrderID,
		&o.OrganizationID,
		&o.Status,
		&o.OwnerUserID,
		&o.CustomerID,
		&o.AssignedUserID,
		&o.OrderedAt,
		&o.CompletedAt,
		&o.CreatedAt,
		&o.CreatedBy,
		&o.LastUpdatedAt,
		&o.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// reserveLine decrements variant stock with a compare-and-set predicate and
// materializes the order item with the price snapshot, all on the given tx.
// The decrement only matches rows holding enough stock, so quantity can
// never go negative regardless of concurrent reservations.
func (r *PgxOrderRepository) reserveLine(ctx context.Context, tx pgx.Tx, organizationID, orderID string, line portsrepo.ReservationLine) (*domain.OrderItem, error) {
	reserveQuery := `
		UPDATE variants SET quantity = quantity - $3
		WHERE organization_id = $1 AND sku = $2 AND is_active AND quantity >= $3
		RETURNING variant_id, price;
	`
	var variantID string
	var price decimal.Decimal
	err := tx.QueryRow(ctx, reserveQuery, organizationID, line.SKU, line.Quantity).Scan(&variantID, &price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Distinguish unknown SKU from short stock for the caller.
			var exists bool
			checkErr := tx.QueryRow(ctx,
				`SELECT EXISTS (SELECT 1 FROM variants WHERE organization_id = $1 AND sku = $2 AND is_active);`,
				organizationID, line.SKU,
			).Scan(&exists)
			if checkErr != nil {
				return nil, fmt.Errorf("failed to check variant %s: %w", line.SKU, checkErr)
			}
			if !exists {
				return nil, fmt.Errorf("variant %s: %w", line.SKU, apperrors.ErrNotFound)
			}
			return nil, fmt.Errorf("variant %s: %w", line.SKU, apperrors.ErrInsufficientStock)
		}
		return nil, fmt.Errorf("failed to reserve stock for %s: %w", line.SKU, err)
	}

	item := domain.OrderItem{
		OrderItemID:    uuid.NewString(),
		OrderID:        orderID,
		VariantID:      variantID,
		SKU:            line.SKU,
		Quantity:       line.Quantity,
		UnitPrice:      price,
		OrganizationID: organizationID,
	}
	insertQuery := `
		INSERT INTO order_items (` + orderItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, insertQuery,
		item.OrderItemID,
		item.OrderID,
		item.VariantID,
		item.SKU,
		item.Quantity,
		item.UnitPrice,
		item.OrganizationID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert order item for %s: %w", line.SKU, mapWriteError(err))
	}
	return &item, nil
}

// releaseItems returns the stock of all items attached to the order and
// deletes them, on the given tx.
func (r *PgxOrderRepository) releaseItems(ctx context.Context, tx pgx.Tx, organizationID, orderID string) error {
	releaseQuery := `
		UPDATE variants v SET quantity = v.quantity + i.quantity
		FROM order_items i
		WHERE i.order_id = $2 AND i.organization_id = $1 AND v.variant_id = i.variant_id;
	`
	if _, err := tx.Exec(ctx, releaseQuery, organizationID, orderID); err != nil {
		return fmt.Errorf("failed to release order stock: %w", err)
	}
	deleteQuery := `DELETE FROM order_items WHERE organization_id = $1 AND order_id = $2;`
	if _, err := tx.Exec(ctx, deleteQuery, organizationID, orderID); err != nil {
		return fmt.Errorf("failed to delete order items: %w", err)
	}
	return nil
}

func (r *PgxOrderRepository) CreateOrderWithItems(ctx context.Context, order domain.Order, lines []portsrepo.ReservationLine) (*domain.Order, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	insertQuery := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, insertQuery,
		order.OrderID,
		order.OrganizationID,
		order.Status,
		order.OwnerUserID,
		order.CustomerID,
		order.AssignedUserID,
		order.OrderedAt,
		order.CompletedAt,
		order.CreatedAt,
		order.CreatedBy,
		order.LastUpdatedAt,
		order.LastUpdatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", mapWriteError(err))
	}

	order.Items = make([]domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		item, err := r.reserveLine(ctx, tx, order.OrganizationID, order.OrderID, line)
		if err != nil {
			return nil, err
		}
		order.Items = append(order.Items, *item)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *PgxOrderRepository) UpdateOrderWithItems(ctx context.Context, order domain.Order, lines []portsrepo.ReservationLine) (*domain.Order, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	// Lock the order row so concurrent edits serialize.
	lockQuery := `SELECT order_id FROM orders WHERE organization_id = $1 AND order_id = $2 FOR UPDATE;`
	var lockedID string
	if err := tx.QueryRow(ctx, lockQuery, order.OrganizationID, order.OrderID).Scan(&lockedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock order %s: %w", order.OrderID, err)
	}

	headerQuery := `
		UPDATE orders SET
			status = $3,
			customer_id = $4,
			assigned_user_id = $5,
			completed_at = $6,
			last_updated_at = $7,
			last_updated_by = $8
		WHERE organization_id = $1 AND order_id = $2;
	`
	_, err = tx.Exec(ctx, headerQuery,
		order.OrganizationID,
		order.OrderID,
		order.Status,
		order.CustomerID,
		order.AssignedUserID,
		order.CompletedAt,
		order.LastUpdatedAt,
		order.LastUpdatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update order %s: %w", order.OrderID, mapWriteError(err))
	}

	if lines != nil {
		if err := r.releaseItems(ctx, tx, order.OrganizationID, order.OrderID); err != nil {
			return nil, err
		}
		order.Items = make([]domain.OrderItem, 0, len(lines))
		for _, line := range lines {
			item, err := r.reserveLine(ctx, tx, order.OrganizationID, order.OrderID, line)
			if err != nil {
				return nil, err
			}
			order.Items = append(order.Items, *item)
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	if lines == nil {
		items, err := r.findItemsByOrders(ctx, order.OrganizationID, []string{order.OrderID})
		if err != nil {
			return nil, err
		}
		order.Items = items[order.OrderID]
	}
	return &order, nil
}

func (r *PgxOrderRepository) CancelOrder(ctx context.Context, organizationID string, orderID string, cancelledBy string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	cancelQuery := `
		UPDATE orders SET
			status = $3,
			last_updated_at = $4,
			last_updated_by = $5
		WHERE organization_id = $1 AND order_id = $2 AND status NOT IN ($3, $6);
	`
	tag, err := tx.Exec(ctx, cancelQuery, organizationID, orderID, domain.OrderCancelled, now, cancelledBy, domain.OrderCompleted)
	if err != nil {
		return fmt.Errorf("failed to cancel order %s: %w", orderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	// Released stock goes back to the variants; the item rows stay for history.
	releaseQuery := `
		UPDATE variants v SET quantity = v.quantity + i.quantity
		FROM order_items i
		WHERE i.order_id = $2 AND i.organization_id = $1 AND v.variant_id = i.variant_id;
	`
	if _, err := tx.Exec(ctx, releaseQuery, organizationID, orderID); err != nil {
		return fmt.Errorf("failed to release cancelled order stock: %w", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, organizationID string, orderID string) (*domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE organization_id = $1 AND order_id = $2;
	`
	order, err := scanOrder(r.Pool.QueryRow(ctx, query, organizationID, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find order by ID %s: %w", orderID, err)
	}

	items, err := r.findItemsByOrders(ctx, organizationID, []string{order.OrderID})
	if err != nil {
		return nil, err
	}
	order.Items = items[order.OrderID]
	return order, nil
}

func (r *PgxOrderRepository) ListOrdersByOrganization(ctx context.Context, organizationID string, limit int, offset int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE organization_id = $1
		ORDER BY ordered_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	return r.collectOrdersWithItems(ctx, organizationID, rows)
}

func (r *PgxOrderRepository) ListPendingForUser(ctx context.Context, organizationID string, userID string, adminUserID *string) ([]domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE organization_id = $1
			AND status = $2
			AND (assigned_user_id = $3 OR assigned_user_id IS NULL)
			AND owner_user_id IN ($3, $4)
		ORDER BY ordered_at;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID, domain.OrderPending, userID, ownerScope(userID, adminUserID))
	if err != nil {
		return nil, fmt.Errorf("failed to query pending orders: %w", err)
	}
	return r.collectOrdersWithItems(ctx, organizationID, rows)
}

func (r *PgxOrderRepository) ListAcceptedForUser(ctx context.Context, organizationID string, userID string, adminUserID *string) ([]domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE organization_id = $1
			AND status = $2
			AND assigned_user_id = $3
			AND owner_user_id IN ($3, $4)
		ORDER BY ordered_at;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID, domain.OrderAccepted, userID, ownerScope(userID, adminUserID))
	if err != nil {
		return nil, fmt.Errorf("failed to query accepted orders: %w", err)
	}
	return r.collectOrdersWithItems(ctx, organizationID, rows)
}

func (r *PgxOrderRepository) AcceptOrder(ctx context.Context, organizationID string, orderID string, callerID string, callerAdminID *string, now time.Time) (*domain.Order, error) {
	query := `
		UPDATE orders SET
			status = $5,
			assigned_user_id = COALESCE(assigned_user_id, $3),
			last_updated_at = $6,
			last_updated_by = $3
		WHERE organization_id = $1 AND order_id = $2
			AND status = $7
			AND (assigned_user_id = $3 OR assigned_user_id IS NULL)
			AND owner_user_id IN ($3, $4)
		RETURNING ` + orderColumns + `;
	`
	return r.runTransition(ctx, organizationID, query,
		organizationID, orderID, callerID, ownerScope(callerID, callerAdminID),
		domain.OrderAccepted, now, domain.OrderPending)
}

func (r *PgxOrderRepository) DeclineAssigned(ctx context.Context, organizationID string, orderID string, callerID string, callerAdminID *string, now time.Time) (*domain.Order, error) {
	query := `
		UPDATE orders SET
			assigned_user_id = NULL,
			last_updated_at = $5,
			last_updated_by = $3
		WHERE organization_id = $1 AND order_id = $2
			AND status = $6
			AND (assigned_user_id = $3 OR assigned_user_id IS NULL)
			AND owner_user_id IN ($3, $4)
		RETURNING ` + orderColumns + `;
	`
	return r.runTransition(ctx, organizationID, query,
		organizationID, orderID, callerID, ownerScope(callerID, callerAdminID),
		now, domain.OrderPending)
}

func (r *PgxOrderRepository) DeclineAccepted(ctx context.Context, organizationID string, orderID string, callerID string, callerAdminID *string, now time.Time) (*domain.Order, error) {
	query := `
		UPDATE orders SET
			status = $5,
			assigned_user_id = NULL,
			last_updated_at = $6,
			last_updated_by = $3
		WHERE organization_id = $1 AND order_id = $2
			AND status = $7
			AND assigned_user_id = $3
			AND owner_user_id IN ($3, $4)
		RETURNING ` + orderColumns + `;
	`
	return r.runTransition(ctx, organizationID, query,
		organizationID, orderID, callerID, ownerScope(callerID, callerAdminID),
		domain.OrderPending, now, domain.OrderAccepted)
}

// runTransition executes a filtered transition update. Zero matched rows
// means the predicate missed; that is reported as ErrNotFound so callers
// learn nothing about orders outside their scope.
func (r *PgxOrderRepository) runTransition(ctx context.Context, organizationID string, query string, args ...any) (*domain.Order, error) {
	order, err := scanOrder(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to run order transition: %w", err)
	}

	items, err := r.findItemsByOrders(ctx, organizationID, []string{order.OrderID})
	if err != nil {
		return nil, err
	}
	order.Items = items[order.OrderID]
	return order, nil
}

// ownerScope canonicalizes the owner predicate: with no admin set, the
// second slot collapses onto the caller so owner IN ($caller, $caller).
func ownerScope(userID string, adminUserID *string) string {
	if adminUserID != nil {
		return *adminUserID
	}
	return userID
}

func (r *PgxOrderRepository) collectOrdersWithItems(ctx context.Context, organizationID string, rows pgx.Rows) ([]domain.Order, error) {
	defer rows.Close()

	orders := []domain.Order{}
	orderIDs := []string{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		orders = append(orders, *order)
		orderIDs = append(orderIDs, order.OrderID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order rows: %w", err)
	}
	if len(orders) == 0 {
		return orders, nil
	}

	items, err := r.findItemsByOrders(ctx, organizationID, orderIDs)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].OrderID]
	}
	return orders, nil
}

func (r *PgxOrderRepository) findItemsByOrders(ctx context.Context, organizationID string, orderIDs []string) (map[string][]domain.OrderItem, error) {
	query := `
		SELECT ` + orderItemColumns + `
		FROM order_items
		WHERE organization_id = $1 AND order_id = ANY($2)
		ORDER BY sku;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	items := make(map[string][]domain.OrderItem, len(orderIDs))
	for rows.Next() {
		var item domain.OrderItem
		err := rows.Scan(
			&item.OrderItemID,
			&item.OrderID,
			&item.VariantID,
			&item.SKU,
			&item.Quantity,
			&item.UnitPrice,
			&item.OrganizationID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item row: %w", err)
		}
		items[item.OrderID] = append(items[item.OrderID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order item rows: %w", err)
	}
	return items, nil
}
