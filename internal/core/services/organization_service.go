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

const (
	joinCodeLength     = 6
	codeGenMaxAttempts = 5
)

// OrganizationService implements tenant and team operations. It also acts as
// the authorizer every other service consults for capability checks.
type OrganizationService struct {
	BaseService
	orgRepo  portsrepo.OrganizationRepositoryFacade
	userRepo portsrepo.UserRepositoryFacade
	notifier portssvc.Notifier
}

var _ portssvc.OrganizationSvcFacade = (*OrganizationService)(nil)

// NewOrganizationService creates a new OrganizationService.
func NewOrganizationService(orgRepo portsrepo.OrganizationRepositoryFacade, userRepo portsrepo.UserRepositoryFacade, notifier portssvc.Notifier) *OrganizationService {
	return &OrganizationService{
		orgRepo:  orgRepo,
		userRepo: userRepo,
		notifier: notifier,
	}
}

// AuthorizeUserAction checks whether the caller holds the capability in the
// organization. Non-members get ErrForbidden, not a hint the org exists.
func (s *OrganizationService) AuthorizeUserAction(ctx context.Context, caller domain.User, organizationID string, capability domain.Capability) error {
	org, err := s.orgRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		return fmt.Errorf("failed to load organization for authorization: %w", err)
	}

	isOwner := org.OwnerUserID == caller.UserID
	isMember := isOwner || caller.InOrganization(organizationID)

	switch capability {
	case domain.CapabilityOwner:
		if !isOwner {
			return fmt.Errorf("%w: owner capability required", apperrors.ErrForbidden)
		}
	case domain.CapabilityEditor:
		if !isOwner && !(isMember && !caller.IsStaff) {
			return fmt.Errorf("%w: editor capability required", apperrors.ErrForbidden)
		}
	case domain.CapabilityStaff:
		if !isMember {
			return fmt.Errorf("%w: not a member of this organization", apperrors.ErrForbidden)
		}
	default:
		return fmt.Errorf("%w: unknown capability %q", apperrors.ErrInternal, capability)
	}
	return nil
}

// GetOrganizationByID retrieves an organization.
func (s *OrganizationService) GetOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	org, err := s.orgRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return org, nil
}

// CreateOrganization creates an organization owned by the caller and moves
// the caller into it. A caller already belonging to an organization may not
// create a second one.
func (s *OrganizationService) CreateOrganization(ctx context.Context, req dto.CreateOrganizationRequest, caller domain.User) (*domain.Organization, error) {
	if caller.OrganizationID != nil {
		return nil, fmt.Errorf("%w: already a member of an organization", apperrors.ErrConflict)
	}

	code, err := s.generateUniqueCode(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	org := domain.Organization{
		OrganizationID: uuid.NewString(),
		Name:           req.Name,
		Description:    req.Description,
		OwnerUserID:    caller.UserID,
		Code:           code,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	if err := s.orgRepo.SaveOrganization(ctx, org); err != nil {
		s.LogError(ctx, err, "Failed to save organization")
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	caller.OrganizationID = &org.OrganizationID
	caller.LastUpdatedAt = now
	caller.LastUpdatedBy = caller.UserID
	if err := s.userRepo.UpdateUser(ctx, caller); err != nil {
		s.LogError(ctx, err, "Failed to attach owner to new organization", "organization_id", org.OrganizationID)
		return nil, fmt.Errorf("failed to attach owner to organization: %w", err)
	}

	s.LogInfo(ctx, "Organization created", "organization_id", org.OrganizationID, "owner_user_id", caller.UserID)
	return &org, nil
}

// UpdateOrganization updates name/description (owner only).
func (s *OrganizationService) UpdateOrganization(ctx context.Context, organizationID string, req dto.UpdateOrganizationRequest, caller domain.User) (*domain.Organization, error) {
	if err := s.AuthorizeUserAction(ctx, caller, organizationID, domain.CapabilityOwner); err != nil {
		return nil, err
	}

	org, err := s.orgRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to find organization for update: %w", err)
	}

	if req.Name != nil {
		org.Name = *req.Name
	}
	if req.Description != nil {
		org.Description = *req.Description
	}
	org.LastUpdatedAt = time.Now()
	org.LastUpdatedBy = caller.UserID

	if err := s.orgRepo.UpdateOrganization(ctx, *org); err != nil {
		s.LogError(ctx, err, "Failed to update organization", "organization_id", organizationID)
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}
	return org, nil
}

// CreateTeam creates a team under an organization with its own join code.
func (s *OrganizationService) CreateTeam(ctx context.Context, organizationID string, req dto.CreateTeamRequest, caller domain.User) (*domain.Team, error) {
	if err := s.AuthorizeUserAction(ctx, caller, organizationID, domain.CapabilityOwner); err != nil {
		return nil, err
	}

	if req.LeaderUserID != nil {
		leader, err := s.userRepo.FindUserByID(ctx, *req.LeaderUserID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve team leader: %w", err)
		}
		if !leader.InOrganization(organizationID) {
			return nil, fmt.Errorf("%w: team leader must belong to the organization", apperrors.ErrValidation)
		}
	}

	code, err := s.generateUniqueCode(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	team := domain.Team{
		TeamID:         uuid.NewString(),
		OrganizationID: organizationID,
		Name:           req.Name,
		Description:    req.Description,
		LeaderUserID:   req.LeaderUserID,
		Code:           code,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	if err := s.orgRepo.SaveTeam(ctx, team); err != nil {
		s.LogError(ctx, err, "Failed to save team", "organization_id", organizationID)
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	s.LogInfo(ctx, "Team created", "team_id", team.TeamID, "organization_id", organizationID)
	return &team, nil
}

// ListTeams retrieves all teams of an organization.
func (s *OrganizationService) ListTeams(ctx context.Context, organizationID string, caller domain.User) ([]domain.Team, error) {
	if err := s.AuthorizeUserAction(ctx, caller, organizationID, domain.CapabilityStaff); err != nil {
		return nil, err
	}
	teams, err := s.orgRepo.ListTeamsByOrganization(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// JoinByCode attaches the caller to whatever the code resolves to. Team codes
// are checked before organization codes; joining a team implies joining its
// organization as staff.
func (s *OrganizationService) JoinByCode(ctx context.Context, caller domain.User, code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	now := time.Now()

	team, err := s.orgRepo.FindTeamByCode(ctx, code)
	if err != nil && !apperrors.IsNotFound(err) {
		return fmt.Errorf("failed to resolve team code: %w", err)
	}
	if team != nil {
		if caller.OrganizationID != nil && *caller.OrganizationID != team.OrganizationID {
			return fmt.Errorf("%w: already a member of another organization", apperrors.ErrValidation)
		}
		caller.OrganizationID = &team.OrganizationID
		caller.TeamID = &team.TeamID
		caller.IsStaff = true
		caller.LastUpdatedAt = now
		caller.LastUpdatedBy = caller.UserID
		if err := s.userRepo.UpdateUser(ctx, caller); err != nil {
			s.LogError(ctx, err, "Failed to join team", "team_id", team.TeamID)
			return fmt.Errorf("failed to join team: %w", err)
		}
		s.notifyOwner(ctx, team.OrganizationID, caller, "joined team "+team.Name)
		return nil
	}

	org, err := s.orgRepo.FindOrganizationByCode(ctx, code)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return fmt.Errorf("%w: no team or organization matches this code", apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to resolve organization code: %w", err)
	}
	if caller.OrganizationID != nil && *caller.OrganizationID != org.OrganizationID {
		return fmt.Errorf("%w: already a member of another organization", apperrors.ErrValidation)
	}

	caller.OrganizationID = &org.OrganizationID
	caller.IsStaff = true
	caller.LastUpdatedAt = now
	caller.LastUpdatedBy = caller.UserID
	if err := s.userRepo.UpdateUser(ctx, caller); err != nil {
		s.LogError(ctx, err, "Failed to join organization", "organization_id", org.OrganizationID)
		return fmt.Errorf("failed to join organization: %w", err)
	}
	s.notifyOwner(ctx, org.OrganizationID, caller, "joined organization "+org.Name)
	return nil
}

func (s *OrganizationService) notifyOwner(ctx context.Context, organizationID string, joiner domain.User, what string) {
	if s.notifier == nil {
		return
	}
	org, err := s.orgRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve organization for join notification")
		return
	}
	s.notifier.Notify(ctx, org.OwnerUserID, "New member", joiner.FullName()+" "+what)
}

// generateUniqueCode draws random join codes until one is free. Codes are
// shared between organizations and teams, hence the combined existence check.
func (s *OrganizationService) generateUniqueCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < codeGenMaxAttempts; attempt++ {
		code, err := utils.GenerateJoinCode(joinCodeLength)
		if err != nil {
			return "", fmt.Errorf("%w: failed to generate join code", apperrors.ErrInternal)
		}
		exists, err := s.orgRepo.CodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check join code uniqueness: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w: could not allocate a unique join code", apperrors.ErrInternal)
}
