package repositories

import (
	"context"
	"time"

	"github.com/SellSage/biz_management_app/internal/core/domain"
)

// ReservationLine is one requested order line: a variant addressed by SKU and
// the quantity to reserve from its stock.
type ReservationLine struct {
	SKU      string
	Quantity int64
}

// OrderReader defines read operations for orders.
type OrderReader interface {
	// FindOrderByID retrieves an order with its items, scoped to the organization.
	FindOrderByID(ctx context.Context, organizationID string, orderID string) (*domain.Order, error)

	// ListOrdersByOrganization retrieves a paginated order list with items.
	ListOrdersByOrganization(ctx context.Context, organizationID string, limit int, offset int) ([]domain.Order, error)

	// ListPendingForUser lists orders matching status=PENDING,
	// assigned IN (user, NULL) and owner IN (user, user.admin).
	ListPendingForUser(ctx context.Context, organizationID string, userID string, adminUserID *string) ([]domain.Order, error)

	// ListAcceptedForUser lists orders matching status=ACCEPTED,
	// assigned=user and owner IN (user, user.admin).
	ListAcceptedForUser(ctx context.Context, organizationID string, userID string, adminUserID *string) ([]domain.Order, error)
}

// OrderWriter defines the transactional mutation operations for orders.
// Stock reservation and order row changes always commit or roll back together.
type OrderWriter interface {
	// CreateOrderWithItems places an order inside one database transaction:
	// every line reserves stock with a compare-and-set decrement (quantity may
	// never go negative) and materializes an order item snapshotting the
	// variant price. A missing SKU fails with ErrNotFound, a short stock fails
	// with ErrInsufficientStock, and either rolls back all prior reservations.
	CreateOrderWithItems(ctx context.Context, order domain.Order, lines []ReservationLine) (*domain.Order, error)

	// UpdateOrderWithItems merges non-item fields (customer, assignee, status
	// timestamps) and, when lines is non-nil, releases the stock of all
	// currently attached items and reserves/attaches the new line set. Header
	// and item changes commit or roll back together; a nil line set leaves
	// the items untouched.
	UpdateOrderWithItems(ctx context.Context, order domain.Order, lines []ReservationLine) (*domain.Order, error)

	// CancelOrder sets the status to CANCELLED and releases remaining stock.
	CancelOrder(ctx context.Context, organizationID string, orderID string, cancelledBy string, now time.Time) error
}

// OrderActioner executes workflow transitions as single filtered updates.
// When the predicate does not match the current row, the transition reports
// ErrNotFound rather than a state error.
type OrderActioner interface {
	// AcceptOrder: status=PENDING AND assigned IN (caller, NULL) AND
	// owner IN (caller, caller.admin) -> status=ACCEPTED, assigned:=caller if NULL.
	AcceptOrder(ctx context.Context, organizationID string, orderID string, callerID string, callerAdminID *string, now time.Time) (*domain.Order, error)

	// DeclineAssigned: same predicate as AcceptOrder -> assigned:=NULL.
	DeclineAssigned(ctx context.Context, organizationID string, orderID string, callerID string, callerAdminID *string, now time.Time) (*domain.Order, error)

	// DeclineAccepted: status=ACCEPTED AND assigned=caller AND
	// owner IN (caller, caller.admin) -> assigned:=NULL, status:=PENDING.
	DeclineAccepted(ctx context.Context, organizationID string, orderID string, callerID string, callerAdminID *string, now time.Time) (*domain.Order, error)
}

// OrderRepositoryFacade combines all order-related repository interfaces.
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
	OrderActioner
}
