package models

import "time"

// PartialPayment settles part of an order's total ahead of the final close.
// It never changes the order total; it only reduces the remaining balance.
type PartialPayment struct {
	ID     string        `json:"id"`
	Amount float64       `json:"amount"`
	Method PaymentMethod `json:"method"`
	PaidAt time.Time     `json:"paid_at"`
}
