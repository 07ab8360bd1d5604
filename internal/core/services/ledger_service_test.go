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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) FindLedgerByID(ctx context.Context, organizationID string, ledgerID string) (*domain.Ledger, error) {
	args := m.Called(ctx, organizationID, ledgerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ledger), args.Error(1)
}

func (m *MockLedgerRepository) ListLedgersByOrganization(ctx context.Context, organizationID string, limit int, offset int) ([]domain.Ledger, error) {
	args := m.Called(ctx, organizationID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ledger), args.Error(1)
}

func (m *MockLedgerRepository) ListEntriesByLedger(ctx context.Context, organizationID string, ledgerID string) ([]domain.Entry, error) {
	args := m.Called(ctx, organizationID, ledgerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *MockLedgerRepository) SaveLedger(ctx context.Context, ledger domain.Ledger) error {
	args := m.Called(ctx, ledger)
	return args.Error(0)
}

func (m *MockLedgerRepository) PostEntry(ctx context.Context, entry domain.Entry) (*domain.Entry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

var _ portsrepo.CustomerRepositoryFacade = (*MockCustomerRepository)(nil)

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, organizationID string, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, organizationID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomersByOrganization(ctx context.Context, organizationID string, limit int, offset int) ([]domain.Customer, error) {
	args := m.Called(ctx, organizationID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

// --- Test Suite Setup ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo   *MockLedgerRepository
	mockCustomerRepo *MockCustomerRepository
	mockAuthorizer   *MockOrgAuthorizer
	service          portssvc.LedgerSvcFacade
	organizationID   string
	caller           domain.User
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockAuthorizer = new(MockOrgAuthorizer)
	suite.service = services.NewLedgerService(suite.mockLedgerRepo, suite.mockCustomerRepo, suite.mockAuthorizer)

	suite.organizationID = uuid.NewString()
	suite.caller = domain.User{
		UserID:         uuid.NewString(),
		OrganizationID: &suite.organizationID,
	}
}

func (suite *LedgerServiceTestSuite) allowCapability(capability domain.Capability) {
	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.caller, suite.organizationID, capability).Return(nil).Once()
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestCreateLedger_Success() {
	ctx := context.Background()
	opening := decimal.NewFromInt(1500)
	req := dto.CreateLedgerRequest{
		Name:           "Main Cash",
		LedgerType:     string(domain.LedgerCashAndBank),
		OpeningBalance: opening,
	}

	suite.allowCapability(domain.CapabilityEditor)
	suite.mockLedgerRepo.On("SaveLedger", ctx, mock.MatchedBy(func(l domain.Ledger) bool {
		return l.OrganizationID == suite.organizationID &&
			l.LedgerType == domain.LedgerCashAndBank &&
			l.OpeningBalance.Equal(opening) &&
			l.ClosingBalance.Equal(opening) &&
			l.Credit.IsZero() && l.Debit.IsZero()
	})).Return(nil).Once()

	ledger, err := suite.service.CreateLedger(ctx, suite.organizationID, req, suite.caller)

	suite.Require().NoError(err)
	suite.Require().NotNil(ledger)
	suite.NotEmpty(ledger.LedgerID)
	suite.True(ledger.ClosingBalance.Equal(opening))
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateLedger_UnknownLedgerType() {
	ctx := context.Background()
	req := dto.CreateLedgerRequest{
		Name:       "Bogus",
		LedgerType: "PIGGY_BANK",
	}

	suite.allowCapability(domain.CapabilityEditor)

	_, err := suite.service.CreateLedger(ctx, suite.organizationID, req, suite.caller)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveLedger", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateLedger_UnknownCustomer() {
	ctx := context.Background()
	customerID := uuid.NewString()
	req := dto.CreateLedgerRequest{
		Name:       "Customer Account",
		LedgerType: string(domain.LedgerCustomer),
		CustomerID: &customerID,
	}

	suite.allowCapability(domain.CapabilityEditor)
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.organizationID, customerID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateLedger(ctx, suite.organizationID, req, suite.caller)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveLedger", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPostTransaction_Success() {
	ctx := context.Background()
	ledgerID := uuid.NewString()
	isCredit := true
	req := dto.PostTransactionRequest{
		Amount:    decimal.NewFromInt(250),
		IsCredit:  &isCredit,
		EntryType: string(domain.EntryReceiptVoucher),
	}

	posted := &domain.Entry{
		EntryID:        uuid.NewString(),
		LedgerID:       ledgerID,
		OrganizationID: suite.organizationID,
		Amount:         req.Amount,
		IsCredit:       true,
		ClosingBalance: decimal.NewFromInt(1750),
		EntryType:      domain.EntryReceiptVoucher,
	}

	suite.allowCapability(domain.CapabilityEditor)
	suite.mockLedgerRepo.On("PostEntry", ctx, mock.MatchedBy(func(e domain.Entry) bool {
		return e.LedgerID == ledgerID &&
			e.OrganizationID == suite.organizationID &&
			e.Amount.Equal(req.Amount) &&
			e.IsCredit &&
			e.EntryType == domain.EntryReceiptVoucher &&
			e.CreatedBy == suite.caller.UserID
	})).Return(posted, nil).Once()

	entry, err := suite.service.PostTransaction(ctx, suite.organizationID, ledgerID, req, suite.caller)

	suite.Require().NoError(err)
	// The closing balance must be the snapshot the repository persisted.
	suite.True(entry.ClosingBalance.Equal(decimal.NewFromInt(1750)))
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestPostTransaction_NonPositiveAmount() {
	ctx := context.Background()
	isCredit := false
	req := dto.PostTransactionRequest{
		Amount:    decimal.NewFromInt(-5),
		IsCredit:  &isCredit,
		EntryType: string(domain.EntryPaymentVoucher),
	}

	suite.allowCapability(domain.CapabilityEditor)

	_, err := suite.service.PostTransaction(ctx, suite.organizationID, uuid.NewString(), req, suite.caller)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "PostEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPostTransaction_UnknownEntryType() {
	ctx := context.Background()
	isCredit := true
	req := dto.PostTransactionRequest{
		Amount:    decimal.NewFromInt(10),
		IsCredit:  &isCredit,
		EntryType: "CRYPTO_AIRDROP",
	}

	suite.allowCapability(domain.CapabilityEditor)

	_, err := suite.service.PostTransaction(ctx, suite.organizationID, uuid.NewString(), req, suite.caller)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "PostEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPostTransaction_MissingIsCredit() {
	ctx := context.Background()
	req := dto.PostTransactionRequest{
		Amount:    decimal.NewFromInt(10),
		EntryType: string(domain.EntryJournalVoucher),
	}

	suite.allowCapability(domain.CapabilityEditor)

	_, err := suite.service.PostTransaction(ctx, suite.organizationID, uuid.NewString(), req, suite.caller)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestPostTransaction_AuthorizationFail() {
	ctx := context.Background()
	isCredit := true
	req := dto.PostTransactionRequest{
		Amount:    decimal.NewFromInt(10),
		IsCredit:  &isCredit,
		EntryType: string(domain.EntrySalesInvoice),
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.caller, suite.organizationID, domain.CapabilityEditor).Return(apperrors.ErrForbidden).Once()

	_, err := suite.service.PostTransaction(ctx, suite.organizationID, uuid.NewString(), req, suite.caller)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "PostEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestListEntries_UnknownLedger() {
	ctx := context.Background()
	ledgerID := uuid.NewString()

	suite.allowCapability(domain.CapabilityStaff)
	suite.mockLedgerRepo.On("FindLedgerByID", ctx, suite.organizationID, ledgerID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ListEntries(ctx, suite.organizationID, ledgerID, suite.caller)

	// An unknown ledger must report not-found, never an empty trail.
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "ListEntriesByLedger", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestListEntries_Success() {
	ctx := context.Background()
	ledgerID := uuid.NewString()
	ledger := &domain.Ledger{LedgerID: ledgerID, OrganizationID: suite.organizationID}
	entries := []domain.Entry{
		{EntryID: uuid.NewString(), LedgerID: ledgerID, Amount: decimal.NewFromInt(100), IsCredit: true, CreatedAt: time.Now()},
		{EntryID: uuid.NewString(), LedgerID: ledgerID, Amount: decimal.NewFromInt(40), IsCredit: false, CreatedAt: time.Now()},
	}

	suite.allowCapability(domain.CapabilityStaff)
	suite.mockLedgerRepo.On("FindLedgerByID", ctx, suite.organizationID, ledgerID).Return(ledger, nil).Once()
	suite.mockLedgerRepo.On("ListEntriesByLedger", ctx, suite.organizationID, ledgerID).Return(entries, nil).Once()

	got, err := suite.service.ListEntries(ctx, suite.organizationID, ledgerID, suite.caller)

	suite.Require().NoError(err)
	suite.Len(got, 2)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestListLedgers_RepoError() {
	ctx := context.Background()
	repoErr := assert.AnError

	suite.allowCapability(domain.CapabilityStaff)
	suite.mockLedgerRepo.On("ListLedgersByOrganization", ctx, suite.organizationID, 50, 0).Return(nil, repoErr).Once()

	_, err := suite.service.ListLedgers(ctx, suite.organizationID, suite.caller, 50, 0)

	suite.Require().Error(err)
	suite.Contains(err.Error(), repoErr.Error())
}

// --- Run Test Suite ---
func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
