package models

// Report shapes consumed by the analytics and history views.

type DailySummary struct {
	Date       string  `json:"date"`
	TotalSales float64 `json:"total_sales"`
	OrderCount int     `json:"order_count"`
}

type PaymentMethodTotal struct {
	Method PaymentMethod `json:"method"`
	Total  float64       `json:"total"`
}

type ProductSales struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}

type DailyConference struct {
	Date       string  `json:"date"`
	Orders     []Order `json:"orders"`
	PaidTotal  float64 `json:"paid_total"`
	PaidCount  int     `json:"paid_count"`
	OrderCount int     `json:"order_count"`
}

// Receipt is the printable view of an order, from either collection.
type Receipt struct {
	Order            Order   `json:"order"`
	PaidAmount       float64 `json:"paid_amount"`
	RemainingBalance float64 `json:"remaining_balance"`
}

// KitchenTicket carries the active kitchen items of an open order.
type KitchenTicket struct {
	OrderID   string      `json:"order_id"`
	OrderName string      `json:"order_name"`
	Items     []OrderItem `json:"items"`
}
