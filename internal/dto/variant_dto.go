package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SellSage/biz_management_app/internal/core/domain"
)

// CreateVariantFieldRequest names one attribute of a variant.
type CreateVariantFieldRequest struct {
	Name  string `json:"name" binding:"required,max=60"`
	Value string `json:"value" binding:"required,max=60"`
}

// CreateVariantRequest is the payload for creating a variant. The SKU is
// generated server-side and never accepted from the client.
type CreateVariantRequest struct {
	ProductID string                      `json:"product_id" binding:"required"`
	Price     decimal.Decimal             `json:"price" binding:"required"`
	Quantity  int64                       `json:"quantity" binding:"omitempty,min=0"`
	ImageURL  *string                     `json:"image_url,omitempty"`
	IsDefault bool                        `json:"is_default"`
	Fields    []CreateVariantFieldRequest `json:"fields" binding:"omitempty,dive"`
}

// UpdateVariantRequest is the payload for partially updating a variant.
type UpdateVariantRequest struct {
	Price     *decimal.Decimal `json:"price,omitempty"`
	Quantity  *int64           `json:"quantity,omitempty" binding:"omitempty,min=0"`
	ImageURL  *string          `json:"image_url,omitempty"`
	IsDefault *bool            `json:"is_default,omitempty"`
	IsActive  *bool            `json:"is_active,omitempty"`
}

// VariantFieldResponse is the API representation of a variant field.
type VariantFieldResponse struct {
	FieldID string `json:"field_id"`
	Name    string `json:"name"`
	Value   string `json:"value"`
}

// VariantResponse is the API representation of a variant.
type VariantResponse struct {
	VariantID string                 `json:"variant_id"`
	ProductID string                 `json:"product_id"`
	SKU       string                 `json:"sku"`
	Price     decimal.Decimal        `json:"price"`
	Quantity  int64                  `json:"quantity"`
	ImageURL  *string                `json:"image_url,omitempty"`
	IsDefault bool                   `json:"is_default"`
	IsActive  bool                   `json:"is_active"`
	Fields    []VariantFieldResponse `json:"fields,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// ToVariantFieldResponse converts a domain variant field.
func ToVariantFieldResponse(f *domain.VariantField) VariantFieldResponse {
	return VariantFieldResponse{
		FieldID: f.FieldID,
		Name:    f.Name,
		Value:   f.Value,
	}
}

// ToVariantResponse converts a domain variant.
func ToVariantResponse(v *domain.Variant) VariantResponse {
	fields := make([]VariantFieldResponse, 0, len(v.Fields))
	for i := range v.Fields {
		fields = append(fields, ToVariantFieldResponse(&v.Fields[i]))
	}
	return VariantResponse{
		VariantID: v.VariantID,
		ProductID: v.ProductID,
		SKU:       v.SKU,
		Price:     v.Price,
		Quantity:  v.Quantity,
		ImageURL:  v.ImageURL,
		IsDefault: v.IsDefault,
		IsActive:  v.IsActive,
		Fields:    fields,
		CreatedAt: v.CreatedAt,
	}
}

// ToVariantResponses converts a slice of domain variants.
func ToVariantResponses(variants []domain.Variant) []VariantResponse {
	resp := make([]VariantResponse, 0, len(variants))
	for i := range variants {
		resp = append(resp, ToVariantResponse(&variants[i]))
	}
	return resp
}
