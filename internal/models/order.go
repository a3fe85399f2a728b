package models

import "time"

type Order struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	OpenedAt        time.Time        `json:"opened_at"`
	ClosedAt        *time.Time       `json:"closed_at,omitempty"`
	Items           []OrderItem      `json:"items"`
	Status          OrderStatus      `json:"status"`
	Total           float64          `json:"total"`
	Discount        float64          `json:"discount,omitempty"`
	PaymentMethod   PaymentMethod    `json:"payment_method,omitempty"`
	PartialPayments []PartialPayment `json:"partial_payments,omitempty"`
}

type OrderStatus string

const (
	OrderOpen      OrderStatus = "open"
	OrderPaid      OrderStatus = "paid"
	OrderCancelled OrderStatus = "cancelled"
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentPix  PaymentMethod = "pix"
	PaymentCard PaymentMethod = "card"
)

// ValidPaymentMethod reports whether m is one of the accepted methods.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentCash, PaymentPix, PaymentCard:
		return true
	}
	return false
}

// Subtotal sums the totals of the non-cancelled items.
func (o *Order) Subtotal() float64 {
	var sum float64
	for _, item := range o.Items {
		if !item.Cancelled {
			sum += item.Total
		}
	}
	return sum
}

// PaidAmount sums the partial payments recorded against the order.
func (o *Order) PaidAmount() float64 {
	var sum float64
	for _, p := range o.PartialPayments {
		sum += p.Amount
	}
	return sum
}

// RemainingBalance is the part of the total not yet covered by partial
// payments, never negative. The total itself is payment-independent.
func (o *Order) RemainingBalance() float64 {
	remaining := o.Total - o.PaidAmount()
	if remaining < 0 {
		return 0
	}
	return remaining
}

// RecomputeTotal derives the order total from its active items and discount.
func (o *Order) RecomputeTotal() {
	total := o.Subtotal() - o.Discount
	if total < 0 {
		total = 0
	}
	o.Total = total
}

// ClosedDay returns the calendar day the order was settled on, falling back
// to the opening time for records without a close timestamp.
func (o *Order) ClosedDay() time.Time {
	if o.ClosedAt != nil {
		return *o.ClosedAt
	}
	return o.OpenedAt
}
