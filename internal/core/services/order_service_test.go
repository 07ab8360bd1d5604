package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SellSage/biz_management_app/internal/apperrors"
	"github.com/SellSage/biz_management_app/internal/core/domain"
	portsrepo "github.com/SellSage/biz_management_app/internal/core/ports/repositories"
	portssvc "github.com/SellSage/biz_management_app/internal/core/ports/services"
	"github.com/SellSage/biz_management_app/internal/core/services"
	"github.com/SellSage/biz_management_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock OrderRepository ---
type MockOrderRepository struct {
	mock.Mock
}

var _ portsrepo.OrderRepositoryFacade = (*MockOrderRepository)(nil)

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, organizationID string, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, organizationID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListOrdersByOrganization(ctx context.Context, organizationID string, limit int, offset int) ([]domain.Order, error) {
	args := m.Called(ctx, organizationID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListPendingForUser(ctx context.Context, organizationID string, userID string, adminUserID *string) ([]domain.Order, error) {
	args := m.Called(ctx, organizationID, userID, adminUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListAcceptedForUser(ctx context.Context, organizationID string, userID string, adminUserID *string) ([]domain.Order, error) {
	args := m.Called(ctx, organizationID, userID, adminUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) CreateOrderWithItems(ctx context.Context, order domain.Order, lines []portsrepo.ReservationLine) (*domain.Order, error) {
	args := m.Called(ctx, order, lines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateOrderWithItems(ctx context.Context, order domain.Order, lines []portsrepo.ReservationLine) (*domain.Order, error) {
	args := m.Called(ctx, order, lines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) CancelOrder(ctx context.Context, organizationID string, orderID string, cancelledBy string, now time.Time) error {
	args := m.Called(ctx, organizationID, orderID, cancelledBy, now)
	return args.Error(0)
}

func (m *MockOrderRepository) AcceptOrder(ctx context.Context, organizationID string, orderID string, callerID string, callerAdminID *string, now time.Time) (*domain.Order, error) {
	args := m.Called(ctx, organizationID, orderID, callerID, callerAdminID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) DeclineAssigned(ctx context.Context, organizationID string, orderID string, callerID string, callerAdminID *string, now time.Time) (*domain.Order, error) {
	args := m.Called(ctx, organizationID, orderID, callerID, callerAdminID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) DeclineAccepted(ctx context.Context, organizationID string, orderID string, callerID string, callerAdminID *string, now time.Time) (*domain.Order, error) {
	args := m.Called(ctx, organizationID, orderID, callerID, callerAdminID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

// --- Mock Notifier ---
type MockNotifier struct {
	mock.Mock
}

var _ portssvc.Notifier = (*MockNotifier)(nil)

func (m *MockNotifier) Notify(ctx context.Context, recipientUserID string, subject string, body string) {
	m.Called(ctx, recipientUserID, subject, body)
}

// --- Test Suite Setup ---
type OrderServiceTestSuite struct {
	suite.Suite
	mockOrderRepo    *MockOrderRepository
	mockCustomerRepo *MockCustomerRepository
	mockUserRepo     *MockUserRepository
	mockNotifier     *MockNotifier
	mockAuthorizer   *MockOrgAuthorizer
	service          portssvc.OrderSvcFacade
	organizationID   string
	caller           domain.User
	customer         domain.Customer
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.mockOrderRepo = new(MockOrderRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockNotifier = new(MockNotifier)
	suite.mockAuthorizer = new(MockOrgAuthorizer)
	suite.service = services.NewOrderService(suite.mockOrderRepo, suite.mockCustomerRepo, suite.mockUserRepo, suite.mockNotifier, suite.mockAuthorizer)

	suite.organizationID = uuid.NewString()
	suite.caller = domain.User{
		UserID:         uuid.NewString(),
		OrganizationID: &suite.organizationID,
		Status:         domain.UserActive,
	}
	suite.customer = domain.Customer{
		CustomerID:     uuid.NewString(),
		OrganizationID: suite.organizationID,
		Name:           "Corner Shop",
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, mock.Anything, suite.organizationID, mock.Anything).Return(nil).Maybe()
}

// --- Test Cases ---

func (suite *OrderServiceTestSuite) TestPlaceOrder_Success() {
	ctx := context.Background()
	req := dto.PlaceOrderRequest{
		CustomerID: suite.customer.CustomerID,
		Items: []dto.OrderLineRequest{
			{SKU: "SHIRT-RED-XL", Quantity: 2},
			{SKU: "SHIRT-BLUE-M", Quantity: 1},
		},
	}

	placed := &domain.Order{
		OrderID:        uuid.NewString(),
		OrganizationID: suite.organizationID,
		Status:         domain.OrderPending,
		OwnerUserID:    suite.caller.UserID,
		CustomerID:     suite.customer.CustomerID,
		Items: []domain.OrderItem{
			{SKU: "SHIRT-RED-XL", Quantity: 2, UnitPrice: decimal.NewFromInt(20)},
			{SKU: "SHIRT-BLUE-M", Quantity: 1, UnitPrice: decimal.NewFromInt(25)},
		},
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.organizationID, suite.customer.CustomerID).Return(&suite.customer, nil).Once()
	suite.mockOrderRepo.On("CreateOrderWithItems", ctx, mock.MatchedBy(func(o domain.Order) bool {
		return o.Status == domain.OrderPending &&
			o.OrganizationID == suite.organizationID &&
			o.OwnerUserID == suite.caller.UserID &&
			o.CustomerID == suite.customer.CustomerID
	}), []portsrepo.ReservationLine{
		{SKU: "SHIRT-RED-XL", Quantity: 2},
		{SKU: "SHIRT-BLUE-M", Quantity: 1},
	}).Return(placed, nil).Once()

	order, err := suite.service.PlaceOrder(ctx, suite.caller, req)

	suite.Require().NoError(err)
	suite.Equal(placed.OrderID, order.OrderID)
	suite.mockOrderRepo.AssertExpectations(suite.T())
	// Unassigned orders notify nobody.
	suite.mockNotifier.AssertNotCalled(suite.T(), "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestPlaceOrder_MergesDuplicateSKUs() {
	ctx := context.Background()
	req := dto.PlaceOrderRequest{
		CustomerID: suite.customer.CustomerID,
		Items: []dto.OrderLineRequest{
			{SKU: "SHIRT-RED-XL", Quantity: 2},
			{SKU: "SHIRT-BLUE-M", Quantity: 1},
			{SKU: "SHIRT-RED-XL", Quantity: 3},
		},
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.organizationID, suite.customer.CustomerID).Return(&suite.customer, nil).Once()
	suite.mockOrderRepo.On("CreateOrderWithItems", ctx, mock.AnythingOfType("domain.Order"), mock.MatchedBy(func(lines []portsrepo.ReservationLine) bool {
		// Duplicate SKUs collapse to one line so a single reservation hits the row.
		return len(lines) == 2 &&
			lines[0].SKU == "SHIRT-RED-XL" && lines[0].Quantity == 5 &&
			lines[1].SKU == "SHIRT-BLUE-M" && lines[1].Quantity == 1
	})).Return(&domain.Order{OrderID: uuid.NewString()}, nil).Once()

	_, err := suite.service.PlaceOrder(ctx, suite.caller, req)

	suite.Require().NoError(err)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestPlaceOrder_CustomerNotFound() {
	ctx := context.Background()
	req := dto.PlaceOrderRequest{
		CustomerID: uuid.NewString(),
		Items:      []dto.OrderLineRequest{{SKU: "ANY", Quantity: 1}},
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.organizationID, req.CustomerID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.PlaceOrder(ctx, suite.caller, req)

	// A foreign or missing customer is a validation error, not a 404.
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "CreateOrderWithItems", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestPlaceOrder_InsufficientStock() {
	ctx := context.Background()
	req := dto.PlaceOrderRequest{
		CustomerID: suite.customer.CustomerID,
		Items:      []dto.OrderLineRequest{{SKU: "SHIRT-RED-XL", Quantity: 9999}},
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.organizationID, suite.customer.CustomerID).Return(&suite.customer, nil).Once()
	suite.mockOrderRepo.On("CreateOrderWithItems", ctx, mock.AnythingOfType("domain.Order"), mock.Anything).Return(nil, apperrors.ErrInsufficientStock).Once()

	_, err := suite.service.PlaceOrder(ctx, suite.caller, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientStock)
}

func (suite *OrderServiceTestSuite) TestPlaceOrder_AssigneeNotActive() {
	ctx := context.Background()
	assigneeID := uuid.NewString()
	assignee := &domain.User{
		UserID:         assigneeID,
		OrganizationID: &suite.organizationID,
		Status:         domain.UserInactive,
	}
	req := dto.PlaceOrderRequest{
		CustomerID:   suite.customer.CustomerID,
		AssignedToID: &assigneeID,
		Items:        []dto.OrderLineRequest{{SKU: "ANY", Quantity: 1}},
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.organizationID, suite.customer.CustomerID).Return(&suite.customer, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, assigneeID).Return(assignee, nil).Once()

	_, err := suite.service.PlaceOrder(ctx, suite.caller, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "CreateOrderWithItems", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestPlaceOrder_AssignedNotifiesAssignee() {
	ctx := context.Background()
	assigneeID := uuid.NewString()
	assignee := &domain.User{
		UserID:         assigneeID,
		OrganizationID: &suite.organizationID,
		Status:         domain.UserActive,
	}
	req := dto.PlaceOrderRequest{
		CustomerID:   suite.customer.CustomerID,
		AssignedToID: &assigneeID,
		Items:        []dto.OrderLineRequest{{SKU: "ANY", Quantity: 1}},
	}
	placed := &domain.Order{
		OrderID:        uuid.NewString(),
		OwnerUserID:    suite.caller.UserID,
		AssignedUserID: &assigneeID,
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.organizationID, suite.customer.CustomerID).Return(&suite.customer, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, assigneeID).Return(assignee, nil).Once()
	suite.mockOrderRepo.On("CreateOrderWithItems", ctx, mock.AnythingOfType("domain.Order"), mock.Anything).Return(placed, nil).Once()
	suite.mockNotifier.On("Notify", ctx, assigneeID, mock.Anything, mock.Anything).Once()

	_, err := suite.service.PlaceOrder(ctx, suite.caller, req)

	suite.Require().NoError(err)
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestPlaceOrder_NoOrganization() {
	ctx := context.Background()
	loner := domain.User{UserID: uuid.NewString()}

	_, err := suite.service.PlaceOrder(ctx, loner, dto.PlaceOrderRequest{
		CustomerID: uuid.NewString(),
		Items:      []dto.OrderLineRequest{{SKU: "ANY", Quantity: 1}},
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockCustomerRepo.AssertNotCalled(suite.T(), "FindCustomerByID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestEditOrder_NonPendingConflicts() {
	ctx := context.Background()
	orderID := uuid.NewString()
	order := &domain.Order{
		OrderID:        orderID,
		OrganizationID: suite.organizationID,
		Status:         domain.OrderAccepted,
		OwnerUserID:    suite.caller.UserID,
	}

	suite.mockOrderRepo.On("FindOrderByID", ctx, suite.organizationID, orderID).Return(order, nil).Once()

	_, err := suite.service.EditOrder(ctx, suite.caller, orderID, dto.EditOrderRequest{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "UpdateOrderWithItems", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestEditOrder_AbsentItemsLeaveItemSetUntouched() {
	ctx := context.Background()
	orderID := uuid.NewString()
	order := &domain.Order{
		OrderID:        orderID,
		OrganizationID: suite.organizationID,
		Status:         domain.OrderPending,
		OwnerUserID:    suite.caller.UserID,
		CustomerID:     suite.customer.CustomerID,
	}
	newCustomerID := uuid.NewString()
	newCustomer := domain.Customer{CustomerID: newCustomerID, OrganizationID: suite.organizationID}

	suite.mockOrderRepo.On("FindOrderByID", ctx, suite.organizationID, orderID).Return(order, nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.organizationID, newCustomerID).Return(&newCustomer, nil).Once()
	suite.mockOrderRepo.On("UpdateOrderWithItems", ctx, mock.MatchedBy(func(o domain.Order) bool {
		return o.OrderID == orderID && o.CustomerID == newCustomerID
	}), ([]portsrepo.ReservationLine)(nil)).Return(order, nil).Once()

	_, err := suite.service.EditOrder(ctx, suite.caller, orderID, dto.EditOrderRequest{CustomerID: &newCustomerID})

	suite.Require().NoError(err)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestEditOrder_ReplacesItems() {
	ctx := context.Background()
	orderID := uuid.NewString()
	order := &domain.Order{
		OrderID:        orderID,
		OrganizationID: suite.organizationID,
		Status:         domain.OrderPending,
		OwnerUserID:    suite.caller.UserID,
	}
	items := []dto.OrderLineRequest{{SKU: "SHIRT-BLUE-M", Quantity: 4}}

	suite.mockOrderRepo.On("FindOrderByID", ctx, suite.organizationID, orderID).Return(order, nil).Once()
	suite.mockOrderRepo.On("UpdateOrderWithItems", ctx, mock.AnythingOfType("domain.Order"),
		[]portsrepo.ReservationLine{{SKU: "SHIRT-BLUE-M", Quantity: 4}},
	).Return(order, nil).Once()

	_, err := suite.service.EditOrder(ctx, suite.caller, orderID, dto.EditOrderRequest{Items: &items})

	suite.Require().NoError(err)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestEditOrder_InvalidItemsRejectedBeforeAnyWrite() {
	ctx := context.Background()
	orderID := uuid.NewString()
	order := &domain.Order{
		OrderID:        orderID,
		OrganizationID: suite.organizationID,
		Status:         domain.OrderPending,
		OwnerUserID:    suite.caller.UserID,
		CustomerID:     suite.customer.CustomerID,
	}
	newCustomerID := uuid.NewString()
	empty := []dto.OrderLineRequest{}

	suite.mockOrderRepo.On("FindOrderByID", ctx, suite.organizationID, orderID).Return(order, nil).Once()

	_, err := suite.service.EditOrder(ctx, suite.caller, orderID, dto.EditOrderRequest{
		CustomerID: &newCustomerID,
		Items:      &empty,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	// A bad line set fails before the header merge, so nothing is written.
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "UpdateOrderWithItems", mock.Anything, mock.Anything, mock.Anything)
	suite.mockCustomerRepo.AssertNotCalled(suite.T(), "FindCustomerByID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestEditOrder_FailedReservationMakesNoPartialUpdate() {
	ctx := context.Background()
	orderID := uuid.NewString()
	order := &domain.Order{
		OrderID:        orderID,
		OrganizationID: suite.organizationID,
		Status:         domain.OrderPending,
		OwnerUserID:    suite.caller.UserID,
		CustomerID:     suite.customer.CustomerID,
	}
	newCustomerID := uuid.NewString()
	newCustomer := domain.Customer{CustomerID: newCustomerID, OrganizationID: suite.organizationID}
	items := []dto.OrderLineRequest{{SKU: "SHIRT-RED-XL", Quantity: 50}}

	suite.mockOrderRepo.On("FindOrderByID", ctx, suite.organizationID, orderID).Return(order, nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.organizationID, newCustomerID).Return(&newCustomer, nil).Once()
	suite.mockOrderRepo.On("UpdateOrderWithItems", ctx, mock.MatchedBy(func(o domain.Order) bool {
		return o.OrderID == orderID && o.CustomerID == newCustomerID
	}), []portsrepo.ReservationLine{{SKU: "SHIRT-RED-XL", Quantity: 50}}).
		Return(nil, apperrors.ErrInsufficientStock).Once()

	_, err := suite.service.EditOrder(ctx, suite.caller, orderID, dto.EditOrderRequest{
		CustomerID: &newCustomerID,
		Items:      &items,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientStock)
	// Header and item changes travel in the same repo call, so the failed
	// reservation cannot leave a committed customer change behind.
	suite.mockOrderRepo.AssertNumberOfCalls(suite.T(), "UpdateOrderWithItems", 1)
}

func (suite *OrderServiceTestSuite) TestApplyAction_UnknownAction() {
	ctx := context.Background()

	_, err := suite.service.ApplyAction(ctx, suite.caller, uuid.NewString(), portssvc.OrderAction("explode"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *OrderServiceTestSuite) TestApplyAction_AcceptSuccess() {
	ctx := context.Background()
	orderID := uuid.NewString()
	ownerID := uuid.NewString()
	accepted := &domain.Order{
		OrderID:        orderID,
		OrganizationID: suite.organizationID,
		Status:         domain.OrderAccepted,
		OwnerUserID:    ownerID,
	}

	suite.mockOrderRepo.On("AcceptOrder", ctx, suite.organizationID, orderID, suite.caller.UserID, suite.caller.AdminUserID, mock.AnythingOfType("time.Time")).Return(accepted, nil).Once()
	suite.mockNotifier.On("Notify", ctx, ownerID, mock.Anything, mock.Anything).Once()

	order, err := suite.service.ApplyAction(ctx, suite.caller, orderID, portssvc.ActionAccept)

	suite.Require().NoError(err)
	suite.Equal(domain.OrderAccepted, order.Status)
	suite.mockOrderRepo.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestApplyAction_PredicateMissIsNotFound() {
	ctx := context.Background()
	orderID := uuid.NewString()

	suite.mockOrderRepo.On("AcceptOrder", ctx, suite.organizationID, orderID, suite.caller.UserID, suite.caller.AdminUserID, mock.AnythingOfType("time.Time")).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ApplyAction(ctx, suite.caller, orderID, portssvc.ActionAccept)

	// Wrong state and foreign order are indistinguishable to the caller.
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *OrderServiceTestSuite) TestApplyAction_RejectAcceptedAlias() {
	ctx := context.Background()
	orderID := uuid.NewString()
	reverted := &domain.Order{
		OrderID:        orderID,
		OrganizationID: suite.organizationID,
		Status:         domain.OrderPending,
		OwnerUserID:    suite.caller.UserID,
	}

	suite.mockOrderRepo.On("DeclineAccepted", ctx, suite.organizationID, orderID, suite.caller.UserID, suite.caller.AdminUserID, mock.AnythingOfType("time.Time")).Return(reverted, nil).Once()

	order, err := suite.service.ApplyAction(ctx, suite.caller, orderID, portssvc.ActionRejectAccepted)

	suite.Require().NoError(err)
	suite.Equal(domain.OrderPending, order.Status)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCancelOrder_Success() {
	ctx := context.Background()
	orderID := uuid.NewString()
	order := &domain.Order{
		OrderID:        orderID,
		OrganizationID: suite.organizationID,
		Status:         domain.OrderPending,
		OwnerUserID:    suite.caller.UserID,
	}

	suite.mockOrderRepo.On("FindOrderByID", ctx, suite.organizationID, orderID).Return(order, nil).Once()
	suite.mockOrderRepo.On("CancelOrder", ctx, suite.organizationID, orderID, suite.caller.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.CancelOrder(ctx, suite.caller, orderID)

	suite.Require().NoError(err)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCancelOrder_AlreadyCancelled() {
	ctx := context.Background()
	orderID := uuid.NewString()
	order := &domain.Order{
		OrderID:        orderID,
		OrganizationID: suite.organizationID,
		Status:         domain.OrderCancelled,
		OwnerUserID:    suite.caller.UserID,
	}

	suite.mockOrderRepo.On("FindOrderByID", ctx, suite.organizationID, orderID).Return(order, nil).Once()

	err := suite.service.CancelOrder(ctx, suite.caller, orderID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "CancelOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestCancelOrder_CompletedConflicts() {
	ctx := context.Background()
	orderID := uuid.NewString()
	order := &domain.Order{
		OrderID:        orderID,
		OrganizationID: suite.organizationID,
		Status:         domain.OrderCompleted,
		OwnerUserID:    suite.caller.UserID,
	}

	suite.mockOrderRepo.On("FindOrderByID", ctx, suite.organizationID, orderID).Return(order, nil).Once()

	err := suite.service.CancelOrder(ctx, suite.caller, orderID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *OrderServiceTestSuite) TestListOrdersByView_PendingScopesToAdmin() {
	ctx := context.Background()
	adminID := uuid.NewString()
	staff := domain.User{
		UserID:         uuid.NewString(),
		OrganizationID: &suite.organizationID,
		AdminUserID:    &adminID,
		IsStaff:        true,
	}
	orders := []domain.Order{{OrderID: uuid.NewString(), Status: domain.OrderPending}}

	suite.mockOrderRepo.On("ListPendingForUser", ctx, suite.organizationID, staff.UserID, &adminID).Return(orders, nil).Once()

	got, err := suite.service.ListOrdersByView(ctx, staff, portssvc.ViewPending)

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestOrderService(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
