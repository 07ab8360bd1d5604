package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the order state machine:
// PENDING -> ACCEPTED -> (PROCESSING -> COMPLETED) | CANCELLED, with
// ACCEPTED -> PENDING on decline-accepted. Orders are never hard-deleted;
// CANCELLED represents deletion.
type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderAccepted   OrderStatus = "ACCEPTED"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderCompleted  OrderStatus = "COMPLETED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

// OrderItem is a quantity of one variant attached to an order. UnitPrice is
// snapshotted from the variant at reservation time so later price edits never
// rewrite historical totals.
type OrderItem struct {
	OrderItemID    string          `json:"orderItemID"`
	OrderID        string          `json:"orderID"`
	VariantID      string          `json:"variantID"`
	SKU            string          `json:"sku"`
	Quantity       int64           `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	OrganizationID string          `json:"organizationID"`
}

// LineTotal returns quantity times the snapshotted unit price.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Quantity))
}

// Order is a customer order fulfilled through the assignment workflow.
// OwnerUserID is the user who placed it, CustomerID the ordering customer,
// AssignedUserID the staff member fulfilling it (nil until assigned).
type Order struct {
	OrderID        string      `json:"orderID"` // Public invoice key (UUID)
	OrganizationID string      `json:"organizationID"`
	Status         OrderStatus `json:"status"`
	OwnerUserID    string      `json:"ownerUserID"`
	CustomerID     string      `json:"customerID"`
	AssignedUserID *string     `json:"assignedUserID,omitempty"`
	Items          []OrderItem `json:"items,omitempty"`
	OrderedAt      time.Time   `json:"orderedAt"`
	CompletedAt    *time.Time  `json:"completedAt,omitempty"`
	AuditFields
}

// SubTotal sums the line totals of all items.
func (o Order) SubTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// TotalWithTax applies the tax multiplier to the sub total.
func (o Order) TotalWithTax(taxRate decimal.Decimal) decimal.Decimal {
	return o.SubTotal().Mul(taxRate)
}
