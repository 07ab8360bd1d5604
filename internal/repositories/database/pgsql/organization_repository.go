package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SellSage/biz_management_app/internal/apperrors"
	"github.com/SellSage/biz_management_app/internal/core/domain"
	portsrepo "github.com/SellSage/biz_management_app/internal/core/ports/repositories"
)

type PgxOrganizationRepository struct {
	BaseRepository
}

func newPgxOrganizationRepository(db *pgxpool.Pool) portsrepo.OrganizationRepositoryFacade {
	return &PgxOrganizationRepository{BaseRepository{Pool: db}}
}

// Ensure PgxOrganizationRepository implements portsrepo.OrganizationRepositoryFacade
var _ portsrepo.OrganizationRepositoryFacade = (*PgxOrganizationRepository)(nil)

const organizationColumns = `organization_id, name, description, owner_user_id, code,
	created_at, created_by, last_updated_at, last_updated_by, deleted_at`

const teamColumns = `team_id, organization_id, name, description, leader_user_id, code,
	created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanOrganization(row pgx.Row) (*domain.Organization, error) {
	var o domain.Organization
	err := row.Scan(
		&o.OrganizationID,
		&o.Name,
		&o.Description,
		&o.OwnerUserID,
		&o.Code,
		&o.CreatedAt,
		&o.CreatedBy,
		&o.LastUpdatedAt,
		&o.LastUpdatedBy,
		&o.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func scanTeam(row pgx.Row) (*domain.Team, error) {
	var t domain.Team
	err := row.Scan(
		&t.TeamID,
		&t.OrganizationID,
		&t.Name,
		&t.Description,
		&t.LeaderUserID,
		&t.Code,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
		&t.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PgxOrganizationRepository) SaveOrganization(ctx context.Context, org domain.Organization) error {
	query := `
		INSERT INTO organizations (organization_id, name, description, owner_user_id, code,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		org.OrganizationID,
		org.Name,
		org.Description,
		org.OwnerUserID,
		org.Code,
		org.CreatedAt,
		org.CreatedBy,
		org.LastUpdatedAt,
		org.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save organization: %w", mapWriteError(err))
	}
	return nil
}

func (r *PgxOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	query := `
		SELECT ` + organizationColumns + `
		FROM organizations
		WHERE organization_id = $1 AND deleted_at IS NULL;
	`
	org, err := scanOrganization(r.Pool.QueryRow(ctx, query, organizationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find organization by ID %s: %w", organizationID, err)
	}
	return org, nil
}

func (r *PgxOrganizationRepository) FindOrganizationByCode(ctx context.Context, code string) (*domain.Organization, error) {
	query := `
		SELECT ` + organizationColumns + `
		FROM organizations
		WHERE code = $1 AND deleted_at IS NULL;
	`
	org, err := scanOrganization(r.Pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find organization by code: %w", err)
	}
	return org, nil
}

func (r *PgxOrganizationRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM organizations WHERE code = $1)
			OR EXISTS (SELECT 1 FROM teams WHERE code = $1);
	`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, code).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check code existence: %w", err)
	}
	return exists, nil
}

func (r *PgxOrganizationRepository) UpdateOrganization(ctx context.Context, org domain.Organization) error {
	query := `
		UPDATE organizations SET
			name = $2,
			description = $3,
			last_updated_at = $4,
			last_updated_by = $5
		WHERE organization_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query,
		org.OrganizationID,
		org.Name,
		org.Description,
		org.LastUpdatedAt,
		org.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update organization %s: %w", org.OrganizationID, mapWriteError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxOrganizationRepository) SaveTeam(ctx context.Context, team domain.Team) error {
	query := `
		INSERT INTO teams (team_id, organization_id, name, description, leader_user_id, code,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		team.TeamID,
		team.OrganizationID,
		team.Name,
		team.Description,
		team.LeaderUserID,
		team.Code,
		team.CreatedAt,
		team.CreatedBy,
		team.LastUpdatedAt,
		team.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save team: %w", mapWriteError(err))
	}
	return nil
}

func (r *PgxOrganizationRepository) FindTeamByID(ctx context.Context, teamID string) (*domain.Team, error) {
	query := `
		SELECT ` + teamColumns + `
		FROM teams
		WHERE team_id = $1 AND deleted_at IS NULL;
	`
	team, err := scanTeam(r.Pool.QueryRow(ctx, query, teamID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find team by ID %s: %w", teamID, err)
	}
	return team, nil
}

func (r *PgxOrganizationRepository) FindTeamByCode(ctx context.Context, code string) (*domain.Team, error) {
	query := `
		SELECT ` + teamColumns + `
		FROM teams
		WHERE code = $1 AND deleted_at IS NULL;
	`
	team, err := scanTeam(r.Pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find team by code: %w", err)
	}
	return team, nil
}

func (r *PgxOrganizationRepository) ListTeamsByOrganization(ctx context.Context, organizationID string) ([]domain.Team, error) {
	query := `
		SELECT ` + teamColumns + `
		FROM teams
		WHERE organization_id = $1 AND deleted_at IS NULL
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer rows.Close()

	teams := []domain.Team{}
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team row: %w", err)
		}
		teams = append(teams, *team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating team rows: %w", err)
	}
	return teams, nil
}
