package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SellSage/biz_management_app/internal/core/domain"
)

// OrderLineRequest identifies one variant and quantity within an order payload.
type OrderLineRequest struct {
	SKU      string `json:"sku" binding:"required"`
	Quantity int64  `json:"quantity" binding:"required,min=1"`
}

// PlaceOrderRequest is the payload for placing an order.
type PlaceOrderRequest struct {
	CustomerID   string             `json:"customer_id" binding:"required"`
	AssignedToID *string            `json:"assigned_to_id,omitempty"`
	Items        []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
}

// EditOrderRequest is the payload for editing an order. Items is a pointer
// to a slice so that an absent key leaves the item set untouched while an
// empty array is rejected as invalid.
type EditOrderRequest struct {
	CustomerID   *string             `json:"customer_id,omitempty"`
	AssignedToID *string             `json:"assigned_to_id,omitempty"`
	Items        *[]OrderLineRequest `json:"items,omitempty" binding:"omitempty,dive"`
}

// OrderItemResponse is the API representation of one order line.
type OrderItemResponse struct {
	SKU       string          `json:"sku"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// OrderResponse is the API representation of an order, with totals computed
// from the snapshotted unit prices.
type OrderResponse struct {
	OrderID      string              `json:"order_id"`
	Status       string              `json:"status"`
	OwnerUserID  string              `json:"owner_user_id"`
	CustomerID   string              `json:"customer_id"`
	AssignedToID *string             `json:"assigned_to_id,omitempty"`
	Items        []OrderItemResponse `json:"items"`
	SubTotal     decimal.Decimal     `json:"sub_total"`
	Total        decimal.Decimal     `json:"total"`
	OrderedAt    time.Time           `json:"ordered_at"`
	CompletedAt  *time.Time          `json:"completed_at,omitempty"`
}

// ToOrderResponse converts a domain order, computing the tax-inclusive total.
func ToOrderResponse(o *domain.Order, taxRate decimal.Decimal) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for i := range o.Items {
		it := &o.Items[i]
		items = append(items, OrderItemResponse{
			SKU:       it.SKU,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			LineTotal: it.LineTotal(),
		})
	}
	return OrderResponse{
		OrderID:      o.OrderID,
		Status:       string(o.Status),
		OwnerUserID:  o.OwnerUserID,
		CustomerID:   o.CustomerID,
		AssignedToID: o.AssignedUserID,
		Items:        items,
		SubTotal:     o.SubTotal(),
		Total:        o.TotalWithTax(taxRate),
		OrderedAt:    o.OrderedAt,
		CompletedAt:  o.CompletedAt,
	}
}

// ToOrderResponses converts a slice of domain orders.
func ToOrderResponses(orders []domain.Order, taxRate decimal.Decimal) []OrderResponse {
	resp := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		resp = append(resp, ToOrderResponse(&orders[i], taxRate))
	}
	return resp
}
