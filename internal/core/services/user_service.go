package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SellSage/biz_management_app/internal/apperrors"
	"github.com/SellSage/biz_management_app/internal/core/domain"
	portsrepo "github.com/SellSage/biz_management_app/internal/core/ports/repositories"
	portssvc "github.com/SellSage/biz_management_app/internal/core/ports/services"
	"github.com/SellSage/biz_management_app/internal/dto"
	"github.com/SellSage/biz_management_app/internal/utils"
)

// UserService implements user account operations.
type UserService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

var _ portssvc.UserSvcFacade = (*UserService)(nil)

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, authorizer portssvc.OrganizationAuthorizerSvc) *UserService {
	return &UserService{
		BaseService: BaseService{OrgAuthorizer: authorizer},
		userRepo:    userRepo,
	}
}

// RegisterUser creates a new user account with a hashed password.
func (s *UserService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil && !apperrors.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("%w: failed to hash password", apperrors.ErrInternal)
	}

	now := time.Now()
	newUserID := uuid.NewString()
	user := domain.User{
		UserID:       newUserID,
		Email:        email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Status:       domain.UserActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     newUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: newUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save new user")
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.LogInfo(ctx, "User registered", "user_id", user.UserID)
	return &user, nil
}

// AuthenticateUser authenticates a user with email and password. Credential
// failures are indistinguishable from unknown emails to the caller.
func (s *UserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrForbidden)
		}
		return nil, fmt.Errorf("failed to look up user for authentication: %w", err)
	}
	if user.Status == domain.UserRemoved || user.Status == domain.UserInactive {
		return nil, fmt.Errorf("%w: account is not active", apperrors.ErrForbidden)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrForbidden)
	}
	return user, nil
}

// GetUserByID retrieves a user by ID.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

// ListOrganizationUsers retrieves a paginated list of users in an organization.
func (s *UserService) ListOrganizationUsers(ctx context.Context, organizationID string, limit, offset int) ([]domain.User, error) {
	users, err := s.userRepo.FindUsersByOrganization(ctx, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list organization users: %w", err)
	}
	return users, nil
}

// UpdateUser updates a user's profile details. Callers may edit themselves;
// anyone else requires the owner capability in the target's organization.
func (s *UserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, caller domain.User) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user for update: %w", err)
	}

	if caller.UserID != userID {
		if user.OrganizationID == nil {
			return nil, fmt.Errorf("%w: cannot edit another user", apperrors.ErrForbidden)
		}
		if err := s.AuthorizeUser(ctx, caller, *user.OrganizationID, domain.CapabilityOwner); err != nil {
			return nil, err
		}
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = caller.UserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", "user_id", userID)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// ChangePassword verifies the current password and sets a new one.
func (s *UserService) ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to find user for password change: %w", err)
	}
	if !utils.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return fmt.Errorf("%w: current password is incorrect", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash new password")
		return fmt.Errorf("%w: failed to hash password", apperrors.ErrInternal)
	}
	user.PasswordHash = hash
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = userID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to persist password change", "user_id", userID)
		return fmt.Errorf("failed to change password: %w", err)
	}
	s.LogInfo(ctx, "Password changed", "user_id", userID)
	return nil
}

// DeleteUser marks a user as REMOVED. The row is kept so that audit
// references and order history stay resolvable.
func (s *UserService) DeleteUser(ctx context.Context, userID string, caller domain.User) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to find user for removal: %w", err)
	}

	if caller.UserID != userID {
		if user.OrganizationID == nil {
			return fmt.Errorf("%w: cannot remove another user", apperrors.ErrForbidden)
		}
		if err := s.AuthorizeUser(ctx, caller, *user.OrganizationID, domain.CapabilityOwner); err != nil {
			return err
		}
	}

	if err := s.userRepo.MarkUserRemoved(ctx, userID, time.Now(), caller.UserID); err != nil {
		s.LogError(ctx, err, "Failed to mark user removed", "user_id", userID)
		return fmt.Errorf("failed to remove user: %w", err)
	}
	s.LogInfo(ctx, "User removed", "user_id", userID, "removed_by", caller.UserID)
	return nil
}
