package services

import (
	"context"

	"github.com/SellSage/biz_management_app/internal/core/domain"
	"github.com/SellSage/biz_management_app/internal/dto"
)

// OrderAction names a workflow transition requested against an order.
type OrderAction string

const (
	ActionAccept          OrderAction = "accept"
	ActionDecline         OrderAction = "decline"
	ActionDeclineAccepted OrderAction = "decline_accepted"
	// ActionRejectAccepted is the legacy alias for decline_accepted kept for
	// API compatibility; both apply the identical transition.
	ActionRejectAccepted OrderAction = "reject_accepted"
)

// OrderListView names a filtered order listing for the caller.
type OrderListView string

const (
	ViewPending  OrderListView = "pending"
	ViewAccepted OrderListView = "accepted"
)

// OrderSvcFacade defines the order workflow operations.
type OrderSvcFacade interface {
	// PlaceOrder validates and reserves stock for every line, then creates a
	// PENDING order owned by the caller. All effects are atomic.
	PlaceOrder(ctx context.Context, caller domain.User, req dto.PlaceOrderRequest) (*domain.Order, error)

	// EditOrder replaces the item set (when present in the request) after
	// releasing previously reserved stock, and merges other changed fields.
	EditOrder(ctx context.Context, caller domain.User, orderID string, req dto.EditOrderRequest) (*domain.Order, error)

	// GetOrder retrieves one order with items.
	GetOrder(ctx context.Context, caller domain.User, orderID string) (*domain.Order, error)

	// ListOrders retrieves a paginated order list for the caller's organization.
	ListOrders(ctx context.Context, caller domain.User, limit, offset int) ([]domain.Order, error)

	// ListOrdersByView lists pending-for-caller or accepted-for-caller orders.
	ListOrdersByView(ctx context.Context, caller domain.User, view OrderListView) ([]domain.Order, error)

	// ApplyAction performs a workflow transition. A predicate miss surfaces
	// as ErrNotFound; an unknown action as ErrValidation.
	ApplyAction(ctx context.Context, caller domain.User, orderID string, action OrderAction) (*domain.Order, error)

	// CancelOrder soft-deletes the order (status CANCELLED) and releases its stock.
	CancelOrder(ctx context.Context, caller domain.User, orderID string) error
}
