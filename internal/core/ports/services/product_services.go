package services

import (
	"context"

	"github.com/SellSage/biz_management_app/internal/core/domain"
	"github.com/SellSage/biz_management_app/internal/dto"
)

// ProductSvcFacade defines catalog product operations.
type ProductSvcFacade interface {
	// CreateProduct creates a product owned by the caller.
	CreateProduct(ctx context.Context, organizationID string, req dto.CreateProductRequest, caller domain.User) (*domain.Product, error)

	// GetProductByID retrieves a product and its variants.
	GetProductByID(ctx context.Context, organizationID string, productID string, caller domain.User) (*domain.Product, []domain.Variant, error)

	// ListProducts retrieves a paginated product list.
	ListProducts(ctx context.Context, organizationID string, caller domain.User, limit, offset int) ([]domain.Product, error)

	// UpdateProduct updates name/description.
	UpdateProduct(ctx context.Context, organizationID string, productID string, req dto.UpdateProductRequest, caller domain.User) (*domain.Product, error)
}

// VariantSvcFacade defines variant operations including SKU generation.
type VariantSvcFacade interface {
	// CreateVariant creates a variant, resolving or creating its attribute
	// fields, and generates its unique SKU before the variant is exposed for
	// ordering.
	CreateVariant(ctx context.Context, organizationID string, req dto.CreateVariantRequest, caller domain.User) (*domain.Variant, error)

	// GetVariantBySKU retrieves a variant by its SKU.
	GetVariantBySKU(ctx context.Context, organizationID string, sku string, caller domain.User) (*domain.Variant, error)

	// ListVariantsByProduct retrieves all variants of a product.
	ListVariantsByProduct(ctx context.Context, organizationID string, productID string, caller domain.User) ([]domain.Variant, error)

	// UpdateVariant updates price, stock adjustment flags and image.
	UpdateVariant(ctx context.Context, organizationID string, sku string, req dto.UpdateVariantRequest, caller domain.User) (*domain.Variant, error)

	// CreateField creates a standalone variant field (name/value pair).
	CreateField(ctx context.Context, organizationID string, req dto.CreateVariantFieldRequest, caller domain.User) (*domain.VariantField, error)
}
