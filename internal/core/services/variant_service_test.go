package services_test

import (
	"context"
	"strings"
	"testing"

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

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

var _ portsrepo.ProductRepositoryFacade = (*MockProductRepository)(nil)

func (m *MockProductRepository) FindProductByID(ctx context.Context, organizationID string, productID string) (*domain.Product, error) {
	args := m.Called(ctx, organizationID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProductsByOrganization(ctx context.Context, organizationID string, limit int, offset int) ([]domain.Product, error) {
	args := m.Called(ctx, organizationID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

// --- Mock VariantRepository ---
type MockVariantRepository struct {
	mock.Mock
}

var _ portsrepo.VariantRepositoryFacade = (*MockVariantRepository)(nil)

func (m *MockVariantRepository) FindVariantBySKU(ctx context.Context, organizationID string, sku string) (*domain.Variant, error) {
	args := m.Called(ctx, organizationID, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Variant), args.Error(1)
}

func (m *MockVariantRepository) ListVariantsByProduct(ctx context.Context, organizationID string, productID string) ([]domain.Variant, error) {
	args := m.Called(ctx, organizationID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Variant), args.Error(1)
}

func (m *MockVariantRepository) SKUExists(ctx context.Context, sku string) (bool, error) {
	args := m.Called(ctx, sku)
	return args.Bool(0), args.Error(1)
}

func (m *MockVariantRepository) FindFieldsByIDs(ctx context.Context, organizationID string, fieldIDs []string) ([]domain.VariantField, error) {
	args := m.Called(ctx, organizationID, fieldIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VariantField), args.Error(1)
}

func (m *MockVariantRepository) SaveVariant(ctx context.Context, variant domain.Variant) error {
	args := m.Called(ctx, variant)
	return args.Error(0)
}

func (m *MockVariantRepository) UpdateVariant(ctx context.Context, variant domain.Variant) error {
	args := m.Called(ctx, variant)
	return args.Error(0)
}

func (m *MockVariantRepository) SaveField(ctx context.Context, field domain.VariantField) error {
	args := m.Called(ctx, field)
	return args.Error(0)
}

// --- Test Suite Setup ---
type VariantServiceTestSuite struct {
	suite.Suite
	mockProductRepo *MockProductRepository
	mockVariantRepo *MockVariantRepository
	mockAuthorizer  *MockOrgAuthorizer
	service         portssvc.VariantSvcFacade
	organizationID  string
	caller          domain.User
	product         domain.Product
}

func (suite *VariantServiceTestSuite) SetupTest() {
	suite.mockProductRepo = new(MockProductRepository)
	suite.mockVariantRepo = new(MockVariantRepository)
	suite.mockAuthorizer = new(MockOrgAuthorizer)
	suite.service = services.NewVariantService(suite.mockProductRepo, suite.mockVariantRepo, suite.mockAuthorizer)

	suite.organizationID = uuid.NewString()
	suite.caller = domain.User{
		UserID:         uuid.NewString(),
		OrganizationID: &suite.organizationID,
	}
	suite.product = domain.Product{
		ProductID:      uuid.NewString(),
		OrganizationID: suite.organizationID,
		Name:           "Cotton Shirt",
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.caller, suite.organizationID, mock.Anything).Return(nil).Maybe()
}

// --- Test Cases ---

func (suite *VariantServiceTestSuite) TestCreateVariant_GeneratesSKUFromNameAndFields() {
	ctx := context.Background()
	req := dto.CreateVariantRequest{
		ProductID: suite.product.ProductID,
		Price:     decimal.NewFromInt(30),
		Quantity:  10,
		Fields: []dto.CreateVariantFieldRequest{
			{Name: "Color", Value: "Red"},
			{Name: "Size", Value: "XL"},
		},
	}

	suite.mockProductRepo.On("FindProductByID", ctx, suite.organizationID, suite.product.ProductID).Return(&suite.product, nil).Once()
	suite.mockVariantRepo.On("SaveField", ctx, mock.AnythingOfType("domain.VariantField")).Return(nil).Twice()
	suite.mockVariantRepo.On("SKUExists", ctx, "COTTON-SHIRT-RED-XL").Return(false, nil).Once()
	suite.mockVariantRepo.On("SaveVariant", ctx, mock.MatchedBy(func(v domain.Variant) bool {
		return v.SKU == "COTTON-SHIRT-RED-XL" &&
			v.ProductID == suite.product.ProductID &&
			v.IsActive &&
			v.Quantity == 10 &&
			len(v.Fields) == 2
	})).Return(nil).Once()

	variant, err := suite.service.CreateVariant(ctx, suite.organizationID, req, suite.caller)

	suite.Require().NoError(err)
	suite.Equal("COTTON-SHIRT-RED-XL", variant.SKU)
	suite.mockVariantRepo.AssertExpectations(suite.T())
}

func (suite *VariantServiceTestSuite) TestCreateVariant_SKUCollisionAddsSuffix() {
	ctx := context.Background()
	req := dto.CreateVariantRequest{
		ProductID: suite.product.ProductID,
		Price:     decimal.NewFromInt(30),
		Fields: []dto.CreateVariantFieldRequest{
			{Name: "Color", Value: "Red"},
		},
	}

	suite.mockProductRepo.On("FindProductByID", ctx, suite.organizationID, suite.product.ProductID).Return(&suite.product, nil).Once()
	suite.mockVariantRepo.On("SaveField", ctx, mock.AnythingOfType("domain.VariantField")).Return(nil).Once()
	suite.mockVariantRepo.On("SKUExists", ctx, "COTTON-SHIRT-RED").Return(true, nil).Once()
	suite.mockVariantRepo.On("SKUExists", ctx, mock.MatchedBy(func(sku string) bool {
		// Retry candidates carry a short random suffix on the same base.
		return strings.HasPrefix(sku, "COTTON-SHIRT-RED-") && len(sku) == len("COTTON-SHIRT-RED-")+5
	})).Return(false, nil).Once()
	suite.mockVariantRepo.On("SaveVariant", ctx, mock.MatchedBy(func(v domain.Variant) bool {
		return strings.HasPrefix(v.SKU, "COTTON-SHIRT-RED-")
	})).Return(nil).Once()

	variant, err := suite.service.CreateVariant(ctx, suite.organizationID, req, suite.caller)

	suite.Require().NoError(err)
	suite.NotEqual("COTTON-SHIRT-RED", variant.SKU)
	suite.mockVariantRepo.AssertExpectations(suite.T())
}

func (suite *VariantServiceTestSuite) TestCreateVariant_ProductMissing() {
	ctx := context.Background()
	req := dto.CreateVariantRequest{
		ProductID: uuid.NewString(),
		Price:     decimal.NewFromInt(30),
	}

	suite.mockProductRepo.On("FindProductByID", ctx, suite.organizationID, req.ProductID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateVariant(ctx, suite.organizationID, req, suite.caller)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockVariantRepo.AssertNotCalled(suite.T(), "SaveVariant", mock.Anything, mock.Anything)
}

func (suite *VariantServiceTestSuite) TestUpdateVariant_NegativePrice() {
	ctx := context.Background()
	sku := "COTTON-SHIRT-RED-XL"
	variant := &domain.Variant{
		VariantID:      uuid.NewString(),
		OrganizationID: suite.organizationID,
		SKU:            sku,
		Price:          decimal.NewFromInt(30),
	}
	negative := decimal.NewFromInt(-1)

	suite.mockVariantRepo.On("FindVariantBySKU", ctx, suite.organizationID, sku).Return(variant, nil).Once()

	_, err := suite.service.UpdateVariant(ctx, suite.organizationID, sku, dto.UpdateVariantRequest{Price: &negative}, suite.caller)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockVariantRepo.AssertNotCalled(suite.T(), "UpdateVariant", mock.Anything, mock.Anything)
}

func (suite *VariantServiceTestSuite) TestUpdateVariant_Success() {
	ctx := context.Background()
	sku := "COTTON-SHIRT-RED-XL"
	variant := &domain.Variant{
		VariantID:      uuid.NewString(),
		OrganizationID: suite.organizationID,
		SKU:            sku,
		Price:          decimal.NewFromInt(30),
		Quantity:       10,
		IsActive:       true,
	}
	newPrice := decimal.NewFromInt(35)
	newQuantity := int64(25)

	suite.mockVariantRepo.On("FindVariantBySKU", ctx, suite.organizationID, sku).Return(variant, nil).Once()
	suite.mockVariantRepo.On("UpdateVariant", ctx, mock.MatchedBy(func(v domain.Variant) bool {
		return v.SKU == sku && v.Price.Equal(newPrice) && v.Quantity == 25
	})).Return(nil).Once()

	updated, err := suite.service.UpdateVariant(ctx, suite.organizationID, sku, dto.UpdateVariantRequest{
		Price:    &newPrice,
		Quantity: &newQuantity,
	}, suite.caller)

	suite.Require().NoError(err)
	// The SKU never changes after creation.
	suite.Equal(sku, updated.SKU)
	suite.mockVariantRepo.AssertExpectations(suite.T())
}

func (suite *VariantServiceTestSuite) TestCreateField_TrimsWhitespace() {
	ctx := context.Background()
	req := dto.CreateVariantFieldRequest{Name: "  Color ", Value: " Navy Blue "}

	suite.mockVariantRepo.On("SaveField", ctx, mock.MatchedBy(func(f domain.VariantField) bool {
		return f.Name == "Color" && f.Value == "Navy Blue" && f.OrganizationID == suite.organizationID
	})).Return(nil).Once()

	field, err := suite.service.CreateField(ctx, suite.organizationID, req, suite.caller)

	suite.Require().NoError(err)
	suite.Equal("Color", field.Name)
	suite.mockVariantRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestVariantService(t *testing.T) {
	suite.Run(t, new(VariantServiceTestSuite))
}
