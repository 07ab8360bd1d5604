package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SellSage/biz_management_app/internal/apperrors"
	"github.com/SellSage/biz_management_app/internal/core/domain"
	portssvc "github.com/SellSage/biz_management_app/internal/core/ports/services"
	"github.com/SellSage/biz_management_app/internal/dto"
	"github.com/SellSage/biz_management_app/internal/middleware"
)

// --- Mock UserService (only the reader surface the auth middleware needs) ---
type MockUserReaderService struct {
	mock.Mock
}

var _ portssvc.UserReaderSvc = (*MockUserReaderService)(nil)

func (m *MockUserReaderService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserReaderService) ListOrganizationUsers(ctx context.Context, organizationID string, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, organizationID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// --- Mock OrderService ---
type MockOrderService struct {
	mock.Mock
}

var _ portssvc.OrderSvcFacade = (*MockOrderService)(nil)

func (m *MockOrderService) PlaceOrder(ctx context.Context, caller domain.User, req dto.PlaceOrderRequest) (*domain.Order, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderService) EditOrder(ctx context.Context, caller domain.User, orderID string, req dto.EditOrderRequest) (*domain.Order, error) {
	args := m.Called(ctx, caller, orderID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderService) GetOrder(ctx context.Context, caller domain.User, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, caller, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderService) ListOrders(ctx context.Context, caller domain.User, limit, offset int) ([]domain.Order, error) {
	args := m.Called(ctx, caller, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderService) ListOrdersByView(ctx context.Context, caller domain.User, view portssvc.OrderListView) ([]domain.Order, error) {
	args := m.Called(ctx, caller, view)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderService) ApplyAction(ctx context.Context, caller domain.User, orderID string, action portssvc.OrderAction) (*domain.Order, error) {
	args := m.Called(ctx, caller, orderID, action)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderService) CancelOrder(ctx context.Context, caller domain.User, orderID string) error {
	args := m.Called(ctx, caller, orderID)
	return args.Error(0)
}

// --- Test Suite ---
type OrderHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockUserService  *MockUserReaderService
	mockOrderService *MockOrderService
	jwtSecret        string
	caller           domain.User
	organizationID   string
}

func (suite *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockUserService = new(MockUserReaderService)
	suite.mockOrderService = new(MockOrderService)

	suite.organizationID = uuid.NewString()
	suite.caller = domain.User{
		UserID:         uuid.NewString(),
		OrganizationID: &suite.organizationID,
		Status:         domain.UserActive,
	}

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret, suite.mockUserService))
	v1 := suite.router.Group("/api/v1")
	registerOrderRoutes(v1, suite.mockOrderService, decimal.NewFromFloat(1.13))
}

// generateTestToken creates a signed JWT for the test caller.
func (suite *OrderHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "bma-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

// authedRequest builds a request carrying a valid token and wires the caller
// into the user service the middleware consults.
func (suite *OrderHandlerTestSuite) authedRequest(method, url string, body any) *http.Request {
	var buf *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		buf = bytes.NewBuffer(raw)
	} else {
		buf = bytes.NewBuffer(nil)
	}
	req, _ := http.NewRequest(method, url, buf)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.caller.UserID))
	req.Header.Set("Content-Type", "application/json")

	suite.mockUserService.On("GetUserByID", mock.Anything, suite.caller.UserID).Return(&suite.caller, nil).Once()
	return req
}

// --- Test Cases ---

func (suite *OrderHandlerTestSuite) TestPlaceOrder_AppliesTaxToResponse() {
	orderID := uuid.NewString()
	placed := &domain.Order{
		OrderID:        orderID,
		OrganizationID: suite.organizationID,
		Status:         domain.OrderPending,
		OwnerUserID:    suite.caller.UserID,
		CustomerID:     uuid.NewString(),
		Items: []domain.OrderItem{
			{SKU: "SHIRT-RED-XL", Quantity: 2, UnitPrice: decimal.NewFromInt(50)},
		},
	}

	suite.mockOrderService.On("PlaceOrder", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID == suite.caller.UserID
	}), mock.MatchedBy(func(req dto.PlaceOrderRequest) bool {
		return len(req.Items) == 1 && req.Items[0].SKU == "SHIRT-RED-XL"
	})).Return(placed, nil).Once()

	body := dto.PlaceOrderRequest{
		CustomerID: placed.CustomerID,
		Items:      []dto.OrderLineRequest{{SKU: "SHIRT-RED-XL", Quantity: 2}},
	}
	req := suite.authedRequest(http.MethodPost, "/api/v1/orders", body)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.OrderResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(orderID, resp.OrderID)
	suite.True(decimal.NewFromInt(100).Equal(resp.SubTotal), "sub total %s", resp.SubTotal)
	// Totals carry the tax multiplier; stored amounts never do.
	suite.True(decimal.NewFromInt(113).Equal(resp.Total), "total %s", resp.Total)
	suite.mockOrderService.AssertExpectations(suite.T())
}

func (suite *OrderHandlerTestSuite) TestGetOrder_NotFound() {
	orderID := uuid.NewString()

	suite.mockOrderService.On("GetOrder", mock.Anything, mock.AnythingOfType("domain.User"), orderID).Return(nil, apperrors.ErrNotFound).Once()

	req := suite.authedRequest(http.MethodGet, "/api/v1/orders/"+orderID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("resource not found", resp.Detail)
}

func (suite *OrderHandlerTestSuite) TestPlaceOrder_MissingToken() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/orders", bytes.NewBufferString("{}"))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockOrderService.AssertNotCalled(suite.T(), "PlaceOrder", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderHandlerTestSuite) TestApplyAction_PassesActionFromPath() {
	orderID := uuid.NewString()
	accepted := &domain.Order{
		OrderID:        orderID,
		OrganizationID: suite.organizationID,
		Status:         domain.OrderAccepted,
		OwnerUserID:    suite.caller.UserID,
	}

	suite.mockOrderService.On("ApplyAction", mock.Anything, mock.AnythingOfType("domain.User"), orderID, portssvc.ActionAccept).Return(accepted, nil).Once()

	req := suite.authedRequest(http.MethodPost, "/api/v1/orders/"+orderID+"/actions/accept", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.OrderResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(string(domain.OrderAccepted), resp.Status)
	suite.mockOrderService.AssertExpectations(suite.T())
}

func (suite *OrderHandlerTestSuite) TestCancelOrder_NoContent() {
	orderID := uuid.NewString()

	suite.mockOrderService.On("CancelOrder", mock.Anything, mock.AnythingOfType("domain.User"), orderID).Return(nil).Once()

	req := suite.authedRequest(http.MethodDelete, "/api/v1/orders/"+orderID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockOrderService.AssertExpectations(suite.T())
}

func (suite *OrderHandlerTestSuite) TestListPending_UsesPendingView() {
	orders := []domain.Order{
		{OrderID: uuid.NewString(), Status: domain.OrderPending, OwnerUserID: suite.caller.UserID},
	}

	suite.mockOrderService.On("ListOrdersByView", mock.Anything, mock.AnythingOfType("domain.User"), portssvc.ViewPending).Return(orders, nil).Once()

	req := suite.authedRequest(http.MethodGet, "/api/v1/orders/pending", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.OrderResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 1)
	suite.mockOrderService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestOrderHandler(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}
