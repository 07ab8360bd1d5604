package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SellSage/biz_management_app/internal/core/domain"
	portsrepo "github.com/SellSage/biz_management_app/internal/core/ports/repositories"
	portssvc "github.com/SellSage/biz_management_app/internal/core/ports/services"
	"github.com/SellSage/biz_management_app/internal/dto"
)

// CustomerService implements customer record operations.
type CustomerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
}

var _ portssvc.CustomerSvcFacade = (*CustomerService)(nil)

// NewCustomerService creates a new CustomerService.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade, authorizer portssvc.OrganizationAuthorizerSvc) *CustomerService {
	return &CustomerService{
		BaseService:  BaseService{OrgAuthorizer: authorizer},
		customerRepo: customerRepo,
	}
}

// CreateCustomer creates a customer record in the organization.
func (s *CustomerService) CreateCustomer(ctx context.Context, organizationID string, req dto.CreateCustomerRequest, caller domain.User) (*domain.Customer, error) {
	if err := s.AuthorizeUser(ctx, caller, organizationID, domain.CapabilityStaff); err != nil {
		return nil, err
	}

	now := time.Now()
	customer := domain.Customer{
		CustomerID:     uuid.NewString(),
		OrganizationID: organizationID,
		Name:           req.Name,
		Phone:          req.Phone,
		Address:        req.Address,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		s.LogError(ctx, err, "Failed to save customer", "organization_id", organizationID)
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return &customer, nil
}

// GetCustomerByID retrieves a customer scoped to the organization.
func (s *CustomerService) GetCustomerByID(ctx context.Context, organizationID string, customerID string, caller domain.User) (*domain.Customer, error) {
	if err := s.AuthorizeUser(ctx, caller, organizationID, domain.CapabilityStaff); err != nil {
		return nil, err
	}
	customer, err := s.customerRepo.FindCustomerByID(ctx, organizationID, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return customer, nil
}

// ListCustomers retrieves a paginated customer list.
func (s *CustomerService) ListCustomers(ctx context.Context, organizationID string, caller domain.User, limit, offset int) ([]domain.Customer, error) {
	if err := s.AuthorizeUser(ctx, caller, organizationID, domain.CapabilityStaff); err != nil {
		return nil, err
	}
	customers, err := s.customerRepo.ListCustomersByOrganization(ctx, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

// UpdateCustomer updates customer contact details.
func (s *CustomerService) UpdateCustomer(ctx context.Context, organizationID string, customerID string, req dto.UpdateCustomerRequest, caller domain.User) (*domain.Customer, error) {
	if err := s.AuthorizeUser(ctx, caller, organizationID, domain.CapabilityStaff); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, organizationID, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find customer for update: %w", err)
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.Latitude != nil {
		customer.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		customer.Longitude = req.Longitude
	}
	customer.LastUpdatedAt = time.Now()
	customer.LastUpdatedBy = caller.UserID

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		s.LogError(ctx, err, "Failed to update customer", "customer_id", customerID)
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return customer, nil
}
