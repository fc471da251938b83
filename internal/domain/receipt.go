package domain

import "time"

// ReceiptLine is one purchased line as it appears on the receipt.
type ReceiptLine struct {
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	LineTotal   float64 `json:"line_total"`
}

// Receipt is the structured result of a successful checkout. Lines keep the
// cart's insertion order. Rendering is up to the caller.
type Receipt struct {
	ID          string        `json:"receipt_id"`
	CustomerID  string        `json:"customer_id"`
	Lines       []ReceiptLine `json:"lines"`
	Subtotal    float64       `json:"subtotal"`
	ShippingFee float64       `json:"shipping_fee"`
	Total       float64       `json:"total"`
	CompletedAt time.Time     `json:"completed_at"`
}
