package repositories

import (
	"context"

	"github.com/SellSage/biz_management_app/internal/core/domain"
)

// OrganizationReader defines read operations for organization data.
type OrganizationReader interface {
	// FindOrganizationByID retrieves an organization by its ID.
	FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error)

	// FindOrganizationByCode retrieves an organization by its join code.
	FindOrganizationByCode(ctx context.Context, code string) (*domain.Organization, error)

	// CodeExists reports whether a join code is already taken by an organization or team.
	CodeExists(ctx context.Context, code string) (bool, error)
}

// OrganizationWriter defines write operations for organization data.
type OrganizationWriter interface {
	// SaveOrganization persists a new organization.
	SaveOrganization(ctx context.Context, org domain.Organization) error

	// UpdateOrganization updates an existing organization's details.
	UpdateOrganization(ctx context.Context, org domain.Organization) error
}

// TeamReader defines read operations for team data.
type TeamReader interface {
	// FindTeamByID retrieves a team by its ID.
	FindTeamByID(ctx context.Context, teamID string) (*domain.Team, error)

	// FindTeamByCode retrieves a team by its join code.
	FindTeamByCode(ctx context.Context, code string) (*domain.Team, error)

	// ListTeamsByOrganization retrieves all teams in an organization.
	ListTeamsByOrganization(ctx context.Context, organizationID string) ([]domain.Team, error)
}

// TeamWriter defines write operations for team data.
type TeamWriter interface {
	// SaveTeam persists a new team.
	SaveTeam(ctx context.Context, team domain.Team) error
}

// OrganizationRepositoryFacade combines organization and team repository interfaces.
type OrganizationRepositoryFacade interface {
	OrganizationReader
	OrganizationWriter
	TeamReader
	TeamWriter
}
