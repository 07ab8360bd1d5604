package services

import (
	"context"

	"github.com/SellSage/biz_management_app/internal/core/domain"
	"github.com/SellSage/biz_management_app/internal/dto"
)

// CustomerSvcFacade defines operations for managing customer records.
type CustomerSvcFacade interface {
	// CreateCustomer creates a customer record in the organization.
	CreateCustomer(ctx context.Context, organizationID string, req dto.CreateCustomerRequest, caller domain.User) (*domain.Customer, error)

	// GetCustomerByID retrieves a customer scoped to the organization.
	GetCustomerByID(ctx context.Context, organizationID string, customerID string, caller domain.User) (*domain.Customer, error)

	// ListCustomers retrieves a paginated customer list.
	ListCustomers(ctx context.Context, organizationID string, caller domain.User, limit, offset int) ([]domain.Customer, error)

	// UpdateCustomer updates customer contact details.
	UpdateCustomer(ctx context.Context, organizationID string, customerID string, req dto.UpdateCustomerRequest, caller domain.User) (*domain.Customer, error)
}
