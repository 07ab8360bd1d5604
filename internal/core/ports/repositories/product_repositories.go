package repositories

import (
	"context"

	"github.com/SellSage/biz_management_app/internal/core/domain"
)

// ProductReader defines read operations for catalog products.
type ProductReader interface {
	// FindProductByID retrieves a product visible to the organization.
	FindProductByID(ctx context.Context, organizationID string, productID string) (*domain.Product, error)

	// ListProductsByOrganization retrieves a paginated product list.
	ListProductsByOrganization(ctx context.Context, organizationID string, limit int, offset int) ([]domain.Product, error)
}

// ProductWriter defines write operations for catalog products.
type ProductWriter interface {
	// SaveProduct persists a new product.
	SaveProduct(ctx context.Context, product domain.Product) error

	// UpdateProduct updates an existing product.
	UpdateProduct(ctx context.Context, product domain.Product) error
}

// ProductRepositoryFacade combines product repository interfaces.
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}

// VariantReader defines read operations for variants.
type VariantReader interface {
	// FindVariantBySKU retrieves a variant by its SKU within an organization.
	FindVariantBySKU(ctx context.Context, organizationID string, sku string) (*domain.Variant, error)

	// ListVariantsByProduct retrieves all variants of a product with their fields.
	ListVariantsByProduct(ctx context.Context, organizationID string, productID string) ([]domain.Variant, error)

	// SKUExists reports whether any variant already carries the given SKU.
	// The check is system-wide: SKUs are globally unique.
	SKUExists(ctx context.Context, sku string) (bool, error)

	// FindFieldsByIDs retrieves variant fields visible to the organization.
	FindFieldsByIDs(ctx context.Context, organizationID string, fieldIDs []string) ([]domain.VariantField, error)
}

// VariantWriter defines write operations for variants.
type VariantWriter interface {
	// SaveVariant persists a new variant together with its field associations.
	SaveVariant(ctx context.Context, variant domain.Variant) error

	// UpdateVariant updates price, flags and image of an existing variant.
	UpdateVariant(ctx context.Context, variant domain.Variant) error

	// SaveField persists a variant field, creating its field name on demand.
	SaveField(ctx context.Context, field domain.VariantField) error
}

// VariantRepositoryFacade combines variant repository interfaces.
type VariantRepositoryFacade interface {
	VariantReader
	VariantWriter
}
