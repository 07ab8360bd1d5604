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

// ProductService implements catalog product operations.
type ProductService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
	variantRepo portsrepo.VariantRepositoryFacade
}

var _ portssvc.ProductSvcFacade = (*ProductService)(nil)

// NewProductService creates a new ProductService.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade, variantRepo portsrepo.VariantRepositoryFacade, authorizer portssvc.OrganizationAuthorizerSvc) *ProductService {
	return &ProductService{
		BaseService: BaseService{OrgAuthorizer: authorizer},
		productRepo: productRepo,
		variantRepo: variantRepo,
	}
}

// CreateProduct creates a product owned by the caller.
func (s *ProductService) CreateProduct(ctx context.Context, organizationID string, req dto.CreateProductRequest, caller domain.User) (*domain.Product, error) {
	if err := s.AuthorizeUser(ctx, caller, organizationID, domain.CapabilityEditor); err != nil {
		return nil, err
	}

	now := time.Now()
	product := domain.Product{
		ProductID:      uuid.NewString(),
		OrganizationID: organizationID,
		Name:           req.Name,
		Description:    req.Description,
		OwnerUserID:    caller.UserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to save product", "organization_id", organizationID)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.LogInfo(ctx, "Product created", "product_id", product.ProductID)
	return &product, nil
}

// GetProductByID retrieves a product and its variants.
func (s *ProductService) GetProductByID(ctx context.Context, organizationID string, productID string, caller domain.User) (*domain.Product, []domain.Variant, error) {
	if err := s.AuthorizeUser(ctx, caller, organizationID, domain.CapabilityStaff); err != nil {
		return nil, nil, err
	}
	product, err := s.productRepo.FindProductByID(ctx, organizationID, productID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get product: %w", err)
	}
	variants, err := s.variantRepo.ListVariantsByProduct(ctx, organizationID, productID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list product variants: %w", err)
	}
	return product, variants, nil
}

// ListProducts retrieves a paginated product list.
func (s *ProductService) ListProducts(ctx context.Context, organizationID string, caller domain.User, limit, offset int) ([]domain.Product, error) {
	if err := s.AuthorizeUser(ctx, caller, organizationID, domain.CapabilityStaff); err != nil {
		return nil, err
	}
	products, err := s.productRepo.ListProductsByOrganization(ctx, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// UpdateProduct updates name/description.
func (s *ProductService) UpdateProduct(ctx context.Context, organizationID string, productID string, req dto.UpdateProductRequest, caller domain.User) (*domain.Product, error) {
	if err := s.AuthorizeUser(ctx, caller, organizationID, domain.CapabilityEditor); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindProductByID(ctx, organizationID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product for update: %w", err)
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	product.LastUpdatedAt = time.Now()
	product.LastUpdatedBy = caller.UserID

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		s.LogError(ctx, err, "Failed to update product", "product_id", productID)
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}
