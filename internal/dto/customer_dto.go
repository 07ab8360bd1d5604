package dto

import (
	"time"

	"github.com/SellSage/biz_management_app/internal/core/domain"
)

// CreateCustomerRequest is the payload for creating a customer record.
type CreateCustomerRequest struct {
	Name      string   `json:"name" binding:"required,max=120"`
	Phone     string   `json:"phone" binding:"omitempty,max=20"`
	Address   string   `json:"address" binding:"omitempty,max=500"`
	Latitude  *float64 `json:"latitude,omitempty" binding:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude,omitempty" binding:"omitempty,min=-180,max=180"`
}

// UpdateCustomerRequest is the payload for partially updating a customer.
type UpdateCustomerRequest struct {
	Name      *string  `json:"name,omitempty" binding:"omitempty,max=120"`
	Phone     *string  `json:"phone,omitempty" binding:"omitempty,max=20"`
	Address   *string  `json:"address,omitempty" binding:"omitempty,max=500"`
	Latitude  *float64 `json:"latitude,omitempty" binding:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude,omitempty" binding:"omitempty,min=-180,max=180"`
}

// CustomerResponse is the API representation of a customer.
type CustomerResponse struct {
	CustomerID     string    `json:"customer_id"`
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone,omitempty"`
	Address        string    `json:"address,omitempty"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// ToCustomerResponse converts a domain customer.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:     c.CustomerID,
		OrganizationID: c.OrganizationID,
		Name:           c.Name,
		Phone:          c.Phone,
		Address:        c.Address,
		Latitude:       c.Latitude,
		Longitude:      c.Longitude,
		CreatedAt:      c.CreatedAt,
	}
}

// ToCustomerResponses converts a slice of domain customers.
func ToCustomerResponses(customers []domain.Customer) []CustomerResponse {
	resp := make([]CustomerResponse, 0, len(customers))
	for i := range customers {
		resp = append(resp, ToCustomerResponse(&customers[i]))
	}
	return resp
}
