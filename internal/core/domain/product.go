package domain

import "github.com/shopspring/decimal"

// Product is a named catalog item. Purchasable units are its variants.
type Product struct {
	ProductID      string `json:"productID"` // Primary key (UUID)
	OrganizationID string `json:"organizationID"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	OwnerUserID    string `json:"ownerUserID"`
	AuditFields
}

// VariantField is a named attribute/value pair attached to a variant,
// e.g. name "Color", value "Red".
type VariantField struct {
	FieldID        string `json:"fieldID"`
	OrganizationID string `json:"organizationID"`
	Name           string `json:"name"`
	Value          string `json:"value"`
}

// Variant is a concrete purchasable SKU of a product: a specific attribute
// combination with its own price and stock quantity. SKU is unique across
// the system and doubles as the variant's alternate lookup key.
type Variant struct {
	VariantID      string          `json:"variantID"` // Primary key (UUID)
	ProductID      string          `json:"productID"`
	OrganizationID string          `json:"organizationID"`
	Price          decimal.Decimal `json:"price"`
	Quantity       int64           `json:"quantity"` // On-hand stock, never negative
	SKU            string          `json:"sku"`
	ImageURL       *string         `json:"imageURL,omitempty"`
	IsDefault      bool            `json:"isDefault"`
	IsActive       bool            `json:"isActive"`
	Fields         []VariantField  `json:"fields,omitempty"`
	AuditFields
}

// DefaultVariant scans variants for the one flagged as default.
// Returns nil when no default exists; never an error.
func DefaultVariant(variants []Variant) *Variant {
	for i := range variants {
		if variants[i].IsDefault {
			return &variants[i]
		}
	}
	return nil
}
