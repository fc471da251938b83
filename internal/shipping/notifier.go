package shipping

import "context"

// ShipmentLine is one shippable cart line handed to the carrier:
// product name, purchased quantity and the line's total weight.
type ShipmentLine struct {
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	TotalWeight float64 `json:"total_weight"`
}

// Shipment is the shippable subset of a checkout, in cart order.
type Shipment struct {
	CheckoutID string         `json:"checkout_id"`
	Lines      []ShipmentLine `json:"lines"`
}

// TotalWeight sums the line weights. The sum stays real-valued; weights are
// not truncated to whole units.
func (s Shipment) TotalWeight() float64 {
	var total float64
	for _, line := range s.Lines {
		total += line.TotalWeight
	}
	return total
}

// Notifier is the carrier-facing collaborator. Checkout calls it with the
// shippable lines and does not depend on the outcome.
type Notifier interface {
	Ship(ctx context.Context, shipment Shipment) error
}
