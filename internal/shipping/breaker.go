package shipping

import (
	"context"
	"time"

	"github.com/sony/gobreaker/v2"
)

// BreakerNotifier wraps a Notifier with a circuit breaker so a dead carrier
// endpoint stops eating the notify timeout on every checkout.
type BreakerNotifier struct {
	next Notifier
	cb   *gobreaker.CircuitBreaker[any]
}

func NewBreakerNotifier(next Notifier) *BreakerNotifier {
	settings := gobreaker.Settings{
		Name:    "shipping-notifier",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}
	return &BreakerNotifier{
		next: next,
		cb:   gobreaker.NewCircuitBreaker[any](settings),
	}
}

func (n *BreakerNotifier) Ship(ctx context.Context, shipment Shipment) error {
	_, err := n.cb.Execute(func() (any, error) {
		return nil, n.next.Ship(ctx, shipment)
	})
	return err
}
