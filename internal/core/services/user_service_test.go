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
	"github.com/SellSage/biz_management_app/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

// Ensure MockUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUsersByOrganization(ctx context.Context, organizationID string, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, organizationID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserRemoved(ctx context.Context, userID string, removedAt time.Time, removedBy string) error {
	args := m.Called(ctx, userID, removedAt, removedBy)
	return args.Error(0)
}

// --- Mock OrganizationAuthorizer ---
type MockOrgAuthorizer struct {
	mock.Mock
}

var _ portssvc.OrganizationAuthorizerSvc = (*MockOrgAuthorizer)(nil)

func (m *MockOrgAuthorizer) AuthorizeUserAction(ctx context.Context, caller domain.User, organizationID string, capability domain.Capability) error {
	args := m.Called(ctx, caller, organizationID, capability)
	return args.Error(0)
}

// --- Test Suite Setup ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo   *MockUserRepository
	mockAuthorizer *MockOrgAuthorizer
	service        portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockAuthorizer = new(MockOrgAuthorizer)
	suite.service = services.NewUserService(suite.mockUserRepo, suite.mockAuthorizer)
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestRegisterUser_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:     "  New.User@Example.COM ",
		Password:  "super-secret-pw",
		FirstName: "New",
		LastName:  "User",
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "new.user@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "new.user@example.com" &&
			u.Status == domain.UserActive &&
			u.PasswordHash != req.Password &&
			utils.CheckPasswordHash(req.Password, u.PasswordHash)
	})).Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.Equal("new.user@example.com", user.Email)
	suite.Equal(user.UserID, user.CreatedBy)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateEmail() {
	ctx := context.Background()
	existing := &domain.User{UserID: uuid.NewString(), Email: "taken@example.com"}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "taken@example.com").Return(existing, nil).Once()

	_, err := suite.service.RegisterUser(ctx, dto.RegisterRequest{
		Email:    "taken@example.com",
		Password: "super-secret-pw",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-password")
	suite.Require().NoError(err)
	user := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "login@example.com",
		PasswordHash: hash,
		Status:       domain.UserActive,
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "login@example.com").Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, "Login@Example.com", "correct-password")

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-password")
	suite.Require().NoError(err)
	user := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "login@example.com",
		PasswordHash: hash,
		Status:       domain.UserActive,
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "login@example.com").Return(user, nil).Once()

	_, err = suite.service.AuthenticateUser(ctx, "login@example.com", "wrong-password")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownEmail() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AuthenticateUser(ctx, "nobody@example.com", "whatever")

	// Unknown emails must look identical to wrong passwords.
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.False(apperrors.IsNotFound(err))
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_RemovedAccount() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-password")
	suite.Require().NoError(err)
	user := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "gone@example.com",
		PasswordHash: hash,
		Status:       domain.UserRemoved,
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "gone@example.com").Return(user, nil).Once()

	_, err = suite.service.AuthenticateUser(ctx, "gone@example.com", "correct-password")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestUpdateUser_SelfSuccess() {
	ctx := context.Background()
	userID := uuid.NewString()
	caller := domain.User{UserID: userID}
	existing := &domain.User{UserID: userID, FirstName: "Old", LastName: "Name"}
	newFirst := "Updated"

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(existing, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID == userID && u.FirstName == "Updated" && u.LastName == "Name"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateUser(ctx, userID, dto.UpdateUserRequest{FirstName: &newFirst}, caller)

	suite.Require().NoError(err)
	suite.Equal("Updated", updated.FirstName)
	suite.mockUserRepo.AssertExpectations(suite.T())
	// Editing yourself never consults the authorizer.
	suite.mockAuthorizer.AssertNotCalled(suite.T(), "AuthorizeUserAction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestUpdateUser_OtherRequiresOwner() {
	ctx := context.Background()
	orgID := uuid.NewString()
	caller := domain.User{UserID: uuid.NewString(), OrganizationID: &orgID}
	targetID := uuid.NewString()
	target := &domain.User{UserID: targetID, OrganizationID: &orgID}
	newFirst := "Nope"

	suite.mockUserRepo.On("FindUserByID", ctx, targetID).Return(target, nil).Once()
	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, caller, orgID, domain.CapabilityOwner).Return(apperrors.ErrForbidden).Once()

	_, err := suite.service.UpdateUser(ctx, targetID, dto.UpdateUserRequest{FirstName: &newFirst}, caller)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestChangePassword_WrongCurrentPassword() {
	ctx := context.Background()
	userID := uuid.NewString()
	hash, err := utils.HashPassword("actual-password")
	suite.Require().NoError(err)
	user := &domain.User{UserID: userID, PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()

	err = suite.service.ChangePassword(ctx, userID, dto.ChangePasswordRequest{
		CurrentPassword: "guessed-wrong",
		NewPassword:     "new-password-123",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestDeleteUser_SelfMarksRemoved() {
	ctx := context.Background()
	userID := uuid.NewString()
	caller := domain.User{UserID: userID}
	user := &domain.User{UserID: userID}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockUserRepo.On("MarkUserRemoved", ctx, userID, mock.AnythingOfType("time.Time"), userID).Return(nil).Once()

	err := suite.service.DeleteUser(ctx, userID, caller)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUser_RepoError() {
	ctx := context.Background()
	userID := uuid.NewString()
	caller := domain.User{UserID: userID}
	repoErr := assert.AnError

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(nil, repoErr).Once()

	err := suite.service.DeleteUser(ctx, userID, caller)

	suite.Require().Error(err)
	suite.Contains(err.Error(), repoErr.Error())
}

// --- Run Test Suite ---
func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
