package services

import (
	"context"

	"github.com/SellSage/biz_management_app/internal/core/domain"
	"github.com/SellSage/biz_management_app/internal/dto"
)

// OrganizationAuthorizerSvc checks a caller's capability against an organization.
// Every tenant-scoped service routes its permission checks through this.
type OrganizationAuthorizerSvc interface {
	// AuthorizeUserAction returns ErrForbidden when the caller lacks the
	// capability for the organization, ErrNotFound when the organization
	// itself is not visible.
	AuthorizeUserAction(ctx context.Context, caller domain.User, organizationID string, capability domain.Capability) error
}

// OrganizationReaderSvc defines read operations for organizations and teams.
type OrganizationReaderSvc interface {
	// GetOrganizationByID retrieves an organization.
	GetOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error)

	// ListTeams retrieves all teams of an organization.
	ListTeams(ctx context.Context, organizationID string, caller domain.User) ([]domain.Team, error)
}

// OrganizationWriterSvc defines write operations for organizations and teams.
type OrganizationWriterSvc interface {
	// CreateOrganization creates an organization with the caller as owner and
	// a generated unique join code.
	CreateOrganization(ctx context.Context, req dto.CreateOrganizationRequest, caller domain.User) (*domain.Organization, error)

	// UpdateOrganization updates name/description (owner only).
	UpdateOrganization(ctx context.Context, organizationID string, req dto.UpdateOrganizationRequest, caller domain.User) (*domain.Organization, error)

	// CreateTeam creates a team under an organization with a generated code.
	CreateTeam(ctx context.Context, organizationID string, req dto.CreateTeamRequest, caller domain.User) (*domain.Team, error)

	// JoinByCode attaches the caller to the team or organization matching the
	// code; team codes take precedence over organization codes.
	JoinByCode(ctx context.Context, caller domain.User, code string) error
}

// OrganizationSvcFacade combines organization service interfaces.
type OrganizationSvcFacade interface {
	OrganizationAuthorizerSvc
	OrganizationReaderSvc
	OrganizationWriterSvc
}
