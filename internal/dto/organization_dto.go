package dto

import (
	"time"

	"github.com/SellSage/biz_management_app/internal/core/domain"
)

// CreateOrganizationRequest is the payload for creating an organization.
type CreateOrganizationRequest struct {
	Name        string `json:"name" binding:"required,max=120"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

// UpdateOrganizationRequest is the payload for updating an organization.
type UpdateOrganizationRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=120"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=500"`
}

// OrganizationResponse is the API representation of an organization.
type OrganizationResponse struct {
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	OwnerUserID    string    `json:"owner_user_id"`
	Code           string    `json:"code"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreateTeamRequest is the payload for creating a team.
type CreateTeamRequest struct {
	Name         string  `json:"name" binding:"required,max=120"`
	Description  string  `json:"description" binding:"omitempty,max=500"`
	LeaderUserID *string `json:"leader_user_id,omitempty"`
}

// TeamResponse is the API representation of a team.
type TeamResponse struct {
	TeamID         string    `json:"team_id"`
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	LeaderUserID   *string   `json:"leader_user_id,omitempty"`
	Code           string    `json:"code"`
	CreatedAt      time.Time `json:"created_at"`
}

// JoinByCodeRequest is the payload for joining a team or organization by code.
type JoinByCodeRequest struct {
	Code string `json:"code" binding:"required,len=6"`
}

// ToOrganizationResponse converts a domain organization.
func ToOrganizationResponse(o *domain.Organization) OrganizationResponse {
	return OrganizationResponse{
		OrganizationID: o.OrganizationID,
		Name:           o.Name,
		Description:    o.Description,
		OwnerUserID:    o.OwnerUserID,
		Code:           o.Code,
		CreatedAt:      o.CreatedAt,
	}
}

// ToTeamResponse converts a domain team.
func ToTeamResponse(t *domain.Team) TeamResponse {
	return TeamResponse{
		TeamID:         t.TeamID,
		OrganizationID: t.OrganizationID,
		Name:           t.Name,
		Description:    t.Description,
		LeaderUserID:   t.LeaderUserID,
		Code:           t.Code,
		CreatedAt:      t.CreatedAt,
	}
}

// ToTeamResponses converts a slice of domain teams.
func ToTeamResponses(teams []domain.Team) []TeamResponse {
	resp := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		resp = append(resp, ToTeamResponse(&teams[i]))
	}
	return resp
}
