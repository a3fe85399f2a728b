package models

// OrderItem is one line of an order. ProductName and UnitPrice are captured
// when the line is added; later catalog edits never rewrite past lines.
type OrderItem struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
	Cancelled   bool    `json:"cancelled"`
}
