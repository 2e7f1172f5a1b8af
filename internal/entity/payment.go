package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodGCash        PaymentMethod = "gcash"
	PaymentMethodCOD          PaymentMethod = "cod"
	PaymentMethodPayPal       PaymentMethod = "paypal"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodOther        PaymentMethod = "other"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// Payment represents the payment table, at most one row per order.
type Payment struct {
	ID      int             `db:"id"`
	OrderID int             `db:"order_id"`
	Method  PaymentMethod   `db:"payment_method"`
	Status  PaymentStatus   `db:"payment_status"`
	Amount  decimal.Decimal `db:"amount"`
	PaidAt  *time.Time      `db:"paid_at"`
}

// IsCollected reports whether the payment has been received.
func (p *Payment) IsCollected() bool {
	return p.Status == PaymentStatusPaid && p.PaidAt != nil
}
