package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SellSage/biz_management_app/internal/apperrors"
	"github.com/SellSage/biz_management_app/internal/core/domain"
	portsrepo "github.com/SellSage/biz_management_app/internal/core/ports/repositories"
	portssvc "github.com/SellSage/biz_management_app/internal/core/ports/services"
	"github.com/SellSage/biz_management_app/internal/dto"
)

// OrderService implements the order workflow: placement with atomic stock
// reservation, edits, and the accept/decline assignment state machine.
type OrderService struct {
	BaseService
	orderRepo    portsrepo.OrderRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
	userRepo     portsrepo.UserRepositoryFacade
	notifier     portssvc.Notifier
}

var _ portssvc.OrderSvcFacade = (*OrderService)(nil)

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo portsrepo.OrderRepositoryFacade, customerRepo portsrepo.CustomerRepositoryFacade, userRepo portsrepo.UserRepositoryFacade, notifier portssvc.Notifier, authorizer portssvc.OrganizationAuthorizerSvc) *OrderService {
	return &OrderService{
		BaseService:  BaseService{OrgAuthorizer: authorizer},
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		userRepo:     userRepo,
		notifier:     notifier,
	}
}

// callerOrg resolves the caller's organization or rejects the call.
func (s *OrderService) callerOrg(caller domain.User) (string, error) {
	if caller.OrganizationID == nil {
		return "", fmt.Errorf("%w: join an organization before working with orders", apperrors.ErrForbidden)
	}
	return *caller.OrganizationID, nil
}

// PlaceOrder validates the customer and optional assignee, then creates a
// PENDING order. Stock for every line is reserved inside one transaction;
// any failing line rolls back all previous reservations.
func (s *OrderService) PlaceOrder(ctx context.Context, caller domain.User, req dto.PlaceOrderRequest) (*domain.Order, error) {
	organizationID, err := s.callerOrg(caller)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeUser(ctx, caller, organizationID, domain.CapabilityStaff); err != nil {
		return nil, err
	}

	if _, err := s.customerRepo.FindCustomerByID(ctx, organizationID, req.CustomerID); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, fmt.Errorf("%w: customer does not exist in this organization", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to resolve order customer: %w", err)
	}
	if req.AssignedToID != nil {
		if err := s.validateAssignee(ctx, organizationID, *req.AssignedToID); err != nil {
			return nil, err
		}
	}

	lines, err := toReservationLines(req.Items)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := domain.Order{
		OrderID:        uuid.NewString(),
		OrganizationID: organizationID,
		Status:         domain.OrderPending,
		OwnerUserID:    caller.UserID,
		CustomerID:     req.CustomerID,
		AssignedUserID: req.AssignedToID,
		OrderedAt:      now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	placed, err := s.orderRepo.CreateOrderWithItems(ctx, order, lines)
	if err != nil {
		s.LogError(ctx, err, "Failed to place order", "organization_id", organizationID)
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	s.LogInfo(ctx, "Order placed", "order_id", placed.OrderID, "item_count", len(placed.Items))
	if s.notifier != nil && placed.AssignedUserID != nil {
		s.notifier.Notify(ctx, *placed.AssignedUserID, "Order assigned", "A new order has been assigned to you")
	}
	return placed, nil
}

// EditOrder mutates a PENDING order. The header merge and, when the request
// carries an item set, the release and re-reservation of stock commit in one
// transaction, so a failing line set leaves the order exactly as it was. An
// absent items key leaves the item set untouched.
func (s *OrderService) EditOrder(ctx context.Context, caller domain.User, orderID string, req dto.EditOrderRequest) (*domain.Order, error) {
	organizationID, err := s.callerOrg(caller)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindOrderByID(ctx, organizationID, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to find order for edit: %w", err)
	}
	if err := s.authorizeOrderMutation(ctx, caller, order); err != nil {
		return nil, err
	}
	if order.Status != domain.OrderPending {
		return nil, fmt.Errorf("%w: only pending orders can be edited", apperrors.ErrConflict)
	}

	now := time.Now()

	// Validate the new line set before touching anything.
	var lines []portsrepo.ReservationLine
	if req.Items != nil {
		lines, err = toReservationLines(*req.Items)
		if err != nil {
			return nil, err
		}
	}

	if req.CustomerID != nil {
		if _, err := s.customerRepo.FindCustomerByID(ctx, organizationID, *req.CustomerID); err != nil {
			if apperrors.IsNotFound(err) {
				return nil, fmt.Errorf("%w: customer does not exist in this organization", apperrors.ErrValidation)
			}
			return nil, fmt.Errorf("failed to resolve order customer: %w", err)
		}
		order.CustomerID = *req.CustomerID
	}
	if req.AssignedToID != nil {
		if err := s.validateAssignee(ctx, organizationID, *req.AssignedToID); err != nil {
			return nil, err
		}
		order.AssignedUserID = req.AssignedToID
	}
	order.LastUpdatedAt = now
	order.LastUpdatedBy = caller.UserID

	updated, err := s.orderRepo.UpdateOrderWithItems(ctx, *order, lines)
	if err != nil {
		s.LogError(ctx, err, "Failed to update order", "order_id", orderID)
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return updated, nil
}

// GetOrder retrieves one order with items.
func (s *OrderService) GetOrder(ctx context.Context, caller domain.User, orderID string) (*domain.Order, error) {
	organizationID, err := s.callerOrg(caller)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeUser(ctx, caller, organizationID, domain.CapabilityStaff); err != nil {
		return nil, err
	}
	order, err := s.orderRepo.FindOrderByID(ctx, organizationID, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

// ListOrders retrieves a paginated order list for the caller's organization.
func (s *OrderService) ListOrders(ctx context.Context, caller domain.User, limit, offset int) ([]domain.Order, error) {
	organizationID, err := s.callerOrg(caller)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeUser(ctx, caller, organizationID, domain.CapabilityStaff); err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.ListOrdersByOrganization(ctx, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// ListOrdersByView lists pending-for-caller or accepted-for-caller orders.
// Both views scope the owner to the caller or the caller's admin, so staff
// see the work placed by the person they report to.
func (s *OrderService) ListOrdersByView(ctx context.Context, caller domain.User, view portssvc.OrderListView) ([]domain.Order, error) {
	organizationID, err := s.callerOrg(caller)
	if err != nil {
		return nil, err
	}
	switch view {
	case portssvc.ViewPending:
		orders, err := s.orderRepo.ListPendingForUser(ctx, organizationID, caller.UserID, caller.AdminUserID)
		if err != nil {
			return nil, fmt.Errorf("failed to list pending orders: %w", err)
		}
		return orders, nil
	case portssvc.ViewAccepted:
		orders, err := s.orderRepo.ListAcceptedForUser(ctx, organizationID, caller.UserID, caller.AdminUserID)
		if err != nil {
			return nil, fmt.Errorf("failed to list accepted orders: %w", err)
		}
		return orders, nil
	default:
		return nil, fmt.Errorf("%w: unknown order view %q", apperrors.ErrValidation, view)
	}
}

// ApplyAction performs a workflow transition as a single filtered update.
// A miss of the transition predicate surfaces as ErrNotFound so callers
// cannot distinguish a foreign order from one in the wrong state.
func (s *OrderService) ApplyAction(ctx context.Context, caller domain.User, orderID string, action portssvc.OrderAction) (*domain.Order, error) {
	organizationID, err := s.callerOrg(caller)
	if err != nil {
		return nil, err
	}
	now := time.Now()

	var order *domain.Order
	switch action {
	case portssvc.ActionAccept:
		order, err = s.orderRepo.AcceptOrder(ctx, organizationID, orderID, caller.UserID, caller.AdminUserID, now)
	case portssvc.ActionDecline:
		order, err = s.orderRepo.DeclineAssigned(ctx, organizationID, orderID, caller.UserID, caller.AdminUserID, now)
	case portssvc.ActionDeclineAccepted, portssvc.ActionRejectAccepted:
		order, err = s.orderRepo.DeclineAccepted(ctx, organizationID, orderID, caller.UserID, caller.AdminUserID, now)
	default:
		return nil, fmt.Errorf("%w: unknown order action %q", apperrors.ErrValidation, action)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to apply order action %s: %w", action, err)
	}

	s.LogInfo(ctx, "Order action applied", "order_id", orderID, "action", string(action), "status", string(order.Status))
	if s.notifier != nil && action == portssvc.ActionAccept && order.OwnerUserID != caller.UserID {
		s.notifier.Notify(ctx, order.OwnerUserID, "Order accepted", "Your order has been accepted")
	}
	return order, nil
}

// CancelOrder soft-deletes the order and releases its remaining stock.
func (s *OrderService) CancelOrder(ctx context.Context, caller domain.User, orderID string) error {
	organizationID, err := s.callerOrg(caller)
	if err != nil {
		return err
	}

	order, err := s.orderRepo.FindOrderByID(ctx, organizationID, orderID)
	if err != nil {
		return fmt.Errorf("failed to find order for cancel: %w", err)
	}
	if err := s.authorizeOrderMutation(ctx, caller, order); err != nil {
		return err
	}
	if order.Status == domain.OrderCancelled {
		return fmt.Errorf("%w: order is already cancelled", apperrors.ErrConflict)
	}
	if order.Status == domain.OrderCompleted {
		return fmt.Errorf("%w: completed orders cannot be cancelled", apperrors.ErrConflict)
	}

	if err := s.orderRepo.CancelOrder(ctx, organizationID, orderID, caller.UserID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to cancel order", "order_id", orderID)
		return fmt.Errorf("failed to cancel order: %w", err)
	}
	s.LogInfo(ctx, "Order cancelled", "order_id", orderID)
	return nil
}

// authorizeOrderMutation allows the order owner, the owner's staff acting
// under them, and the organization owner.
func (s *OrderService) authorizeOrderMutation(ctx context.Context, caller domain.User, order *domain.Order) error {
	if order.OwnerUserID == caller.UserID {
		return nil
	}
	if caller.AdminUserID != nil && order.OwnerUserID == *caller.AdminUserID {
		return nil
	}
	return s.AuthorizeUser(ctx, caller, order.OrganizationID, domain.CapabilityOwner)
}

func (s *OrderService) validateAssignee(ctx context.Context, organizationID string, assigneeID string) error {
	assignee, err := s.userRepo.FindUserByID(ctx, assigneeID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return fmt.Errorf("%w: assigned user does not exist", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to resolve assignee: %w", err)
	}
	if !assignee.InOrganization(organizationID) {
		return fmt.Errorf("%w: assigned user must belong to the organization", apperrors.ErrValidation)
	}
	if assignee.Status != domain.UserActive {
		return fmt.Errorf("%w: assigned user is not active", apperrors.ErrValidation)
	}
	return nil
}

func toReservationLines(items []dto.OrderLineRequest) ([]portsrepo.ReservationLine, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", apperrors.ErrValidation)
	}
	// Merge duplicate SKUs so one line per variant hits the stock CAS.
	index := make(map[string]int, len(items))
	lines := make([]portsrepo.ReservationLine, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item quantity must be positive", apperrors.ErrValidation)
		}
		if i, ok := index[item.SKU]; ok {
			lines[i].Quantity += item.Quantity
			continue
		}
		index[item.SKU] = len(lines)
		lines = append(lines, portsrepo.ReservationLine{SKU: item.SKU, Quantity: item.Quantity})
	}
	return lines, nil
}
