package shipping

import (
	"context"
	"log"
)

// LogNotifier renders the shipment notice to the process log. Used when no
// carrier broker is configured.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Ship(_ context.Context, shipment Shipment) error {
	log.Printf("** Shipment Notice ** checkout=%s", shipment.CheckoutID)
	for _, line := range shipment.Lines {
		log.Printf("%dx %s        %v", line.Quantity, line.ProductName, line.TotalWeight)
	}
	log.Printf("Total package weight: %v", shipment.TotalWeight())
	return nil
}
