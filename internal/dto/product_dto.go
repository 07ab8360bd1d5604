package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SellSage/biz_management_app/internal/core/domain"
)

// CreateProductRequest is the payload for creating a product.
type CreateProductRequest struct {
	Name        string `json:"name" binding:"required,max=120"`
	Description string `json:"description" binding:"omitempty,max=1000"`
}

// UpdateProductRequest is the payload for partially updating a product.
type UpdateProductRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=120"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=1000"`
}

// ProductResponse is the API representation of a product. Price and image
// are derived from the default variant when one exists.
type ProductResponse struct {
	ProductID      string            `json:"product_id"`
	OrganizationID string            `json:"organization_id"`
	Name           string            `json:"name"`
	Description    string            `json:"description,omitempty"`
	OwnerUserID    string            `json:"owner_user_id"`
	Price          *decimal.Decimal  `json:"price,omitempty"`
	ImageURL       *string           `json:"image_url,omitempty"`
	Variants       []VariantResponse `json:"variants,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

// ToProductResponse converts a domain product, deriving the display price
// and image from the default variant.
func ToProductResponse(p *domain.Product, variants []domain.Variant) ProductResponse {
	resp := ProductResponse{
		ProductID:      p.ProductID,
		OrganizationID: p.OrganizationID,
		Name:           p.Name,
		Description:    p.Description,
		OwnerUserID:    p.OwnerUserID,
		Variants:       ToVariantResponses(variants),
		CreatedAt:      p.CreatedAt,
	}
	if dv := domain.DefaultVariant(variants); dv != nil {
		price := dv.Price
		resp.Price = &price
		resp.ImageURL = dv.ImageURL
	}
	return resp
}
