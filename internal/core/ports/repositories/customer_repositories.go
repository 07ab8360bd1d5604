package repositories

import (
	"context"

	"github.com/SellSage/biz_management_app/internal/core/domain"
)

// CustomerRepositoryFacade defines persistence operations for customers.
// Every method is scoped to an organization; there is no unscoped lookup.
type CustomerRepositoryFacade interface {
	// SaveCustomer persists a new customer.
	SaveCustomer(ctx context.Context, customer domain.Customer) error

	// FindCustomerByID retrieves a customer visible to the organization.
	FindCustomerByID(ctx context.Context, organizationID string, customerID string) (*domain.Customer, error)

	// ListCustomersByOrganization retrieves a paginated customer list.
	ListCustomersByOrganization(ctx context.Context, organizationID string, limit int, offset int) ([]domain.Customer, error)

	// UpdateCustomer updates an existing customer.
	UpdateCustomer(ctx context.Context, customer domain.Customer) error
}
