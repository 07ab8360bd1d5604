package dto

import (
	"time"

	"github.com/SellSage/biz_management_app/internal/core/domain"
)

// UpdateUserRequest is the payload for partially updating a user profile.
// Nil fields are left untouched.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
}

// UserResponse is the API representation of a user.
type UserResponse struct {
	UserID         string    `json:"user_id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Phone          string    `json:"phone,omitempty"`
	Address        string    `json:"address,omitempty"`
	OrganizationID *string   `json:"organization_id,omitempty"`
	TeamID         *string   `json:"team_id,omitempty"`
	IsStaff        bool      `json:"is_staff"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// ToUserResponse converts a domain user to its API representation.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:         u.UserID,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Phone:          u.Phone,
		Address:        u.Address,
		OrganizationID: u.OrganizationID,
		TeamID:         u.TeamID,
		IsStaff:        u.IsStaff,
		Status:         string(u.Status),
		CreatedAt:      u.CreatedAt,
	}
}

// ToUserResponses converts a slice of domain users.
func ToUserResponses(users []domain.User) []UserResponse {
	resp := make([]UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, ToUserResponse(&users[i]))
	}
	return resp
}
