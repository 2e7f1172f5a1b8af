package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of a customer order.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusProcessing     OrderStatus = "processing"
	OrderStatusShipped        OrderStatus = "shipped"
	OrderStatusReadyForPickup OrderStatus = "ready_for_pickup"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCompleted      OrderStatus = "completed"
	OrderStatusCancelled      OrderStatus = "cancelled"
	OrderStatusRefunded       OrderStatus = "refunded"
)

// OrderStatuses lists every status in funnel order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusReadyForPickup,
	OrderStatusDelivered,
	OrderStatusCompleted,
	OrderStatusCancelled,
	OrderStatusRefunded,
}

// IsValid reports whether s is a known status.
func (s OrderStatus) IsValid() bool {
	for _, st := range OrderStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// IsCompleted reports whether the order counts towards realized revenue.
func (s OrderStatus) IsCompleted() bool {
	return s == OrderStatusCompleted || s == OrderStatusDelivered
}

// IsVoid reports whether the order was cancelled or refunded.
func (s OrderStatus) IsVoid() bool {
	return s == OrderStatusCancelled || s == OrderStatusRefunded
}

// IsSold reports whether stock for the order has left inventory.
func (s OrderStatus) IsSold() bool {
	return s != OrderStatusPending && !s.IsVoid()
}

// Order represents the customer_order table
type Order struct {
	ID           int             `db:"id"`
	UUID         string          `db:"uuid"`
	Status       OrderStatus     `db:"status"`
	Total        decimal.Decimal `db:"total"`
	Subtotal     decimal.Decimal `db:"subtotal"`
	Discount     decimal.Decimal `db:"discount"`
	ShippingFee  decimal.Decimal `db:"shipping_fee"`
	CreatedAt    time.Time       `db:"created_at"`
	UserID       *string         `db:"user_id"`
	DeliveryType string          `db:"delivery_type"`
}

// HasCustomer reports whether the order belongs to a registered customer.
func (o *Order) HasCustomer() bool {
	return o.UserID != nil && *o.UserID != ""
}

// CustomerID returns the customer id or an empty string for guest orders.
func (o *Order) CustomerID() string {
	if o.UserID == nil {
		return ""
	}
	return *o.UserID
}

// OrderItem represents the order_item table
type OrderItem struct {
	ID          int             `db:"id"`
	OrderID     int             `db:"order_id"`
	ProductID   int             `db:"product_id"`
	ProductName string          `db:"product_name"`
	Category    string          `db:"category"`
	Brand       string          `db:"brand"`
	Quantity    int             `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	Total       decimal.Decimal `db:"total"`
}

// LineTotal returns the stored line total, falling back to unit price times quantity.
func (oi *OrderItem) LineTotal() decimal.Decimal {
	if !oi.Total.IsZero() {
		return oi.Total
	}
	return oi.UnitPrice.Mul(decimal.NewFromInt(int64(oi.Quantity)))
}
