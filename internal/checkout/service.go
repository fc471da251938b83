package checkout

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Mohamed-Amiir/RiseJourny/internal/domain"
	"github.com/Mohamed-Amiir/RiseJourny/internal/shipping"
	"github.com/google/uuid"
)

// Shipping fee: 15 currency units per 10 weight units, charged
// proportionally on the exact line weight.
const (
	feePerBracket  = 15.0
	bracketWeight  = 10.0
	notifyDeadline = 5 * time.Second
)

// Service runs the checkout pipeline: validate every line, price the cart,
// then commit (debit, stock decrement, carrier notice, cart clear) as one
// all-or-nothing step. The carrier notifier is injected so the pipeline is
// testable without a real shipping side effect.
type Service struct {
	notifier shipping.Notifier
}

func NewService(notifier shipping.Notifier) *Service {
	return &Service{notifier: notifier}
}

// Checkout validates the cart against the given account and, if every check
// passes, debits the account, decrements product stock, notifies the carrier
// about the shippable lines and clears the cart. On any validation failure
// it returns the error with no state mutated anywhere: no partial debit, no
// partial stock decrement, cart intact.
//
// Validation fully re-runs here even though AddProduct screened each line at
// add time: stock and expiry can change in between (another line consuming
// the same product, the clock passing the expiry date), so this pass is the
// single source of truth.
func (s *Service) Checkout(ctx context.Context, cart *domain.Cart, account *domain.Account) (*domain.Receipt, error) {
	if cart.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}

	lines := cart.Lines()

	var (
		subtotal    float64
		shippingFee float64
		shippables  []domain.CartLine
		requested   = make(map[int64]int) // cumulative draw per product across lines
	)

	for _, line := range lines {
		if line.IsExpired() {
			return nil, fmt.Errorf("%s: %w", line.Product.Name, domain.ErrExpiredProduct)
		}
		requested[line.Product.ID] += line.Quantity
		if requested[line.Product.ID] > line.Product.Stock {
			return nil, fmt.Errorf("%s: %w", line.Product.Name, domain.ErrInsufficientStock)
		}

		subtotal += line.LineTotal()

		if line.IsShippable() {
			shippingFee += line.LineWeight() / bracketWeight * feePerBracket
			shippables = append(shippables, line)
		}
	}

	total := subtotal + shippingFee

	if account.Balance < total {
		return nil, fmt.Errorf("total %v exceeds balance %v: %w", total, account.Balance, domain.ErrInsufficientFunds)
	}

	// Commit phase. Every check has passed; from here on the pipeline
	// mutates state and must not abort.
	if err := account.Debit(total); err != nil {
		return nil, fmt.Errorf("debit account %s: %w", account.ID, err)
	}

	for _, line := range lines {
		if err := line.Product.DecreaseStock(line.Quantity); err != nil {
			// Unreachable after the cumulative validation pass in the
			// single-session model; would need re-validation under a
			// per-product lock if carts ever share a catalog concurrently.
			return nil, fmt.Errorf("decrease stock of %s: %w", line.Product.Name, err)
		}
	}

	receipt := &domain.Receipt{
		ID:          uuid.NewString(),
		CustomerID:  account.ID,
		Lines:       make([]domain.ReceiptLine, len(lines)),
		Subtotal:    subtotal,
		ShippingFee: shippingFee,
		Total:       total,
		CompletedAt: time.Now().UTC(),
	}
	for i, line := range lines {
		receipt.Lines[i] = domain.ReceiptLine{
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name,
			Quantity:    line.Quantity,
			LineTotal:   line.LineTotal(),
		}
	}

	if len(shippables) > 0 {
		s.notify(ctx, receipt.ID, shippables)
	}

	cart.Clear()

	return receipt, nil
}

// notify hands the shippable lines to the carrier. The checkout outcome does
// not depend on the carrier, so failures are logged and swallowed.
func (s *Service) notify(ctx context.Context, checkoutID string, shippables []domain.CartLine) {
	shipment := shipping.Shipment{
		CheckoutID: checkoutID,
		Lines:      make([]shipping.ShipmentLine, len(shippables)),
	}
	for i, line := range shippables {
		shipment.Lines[i] = shipping.ShipmentLine{
			ProductName: line.Product.Name,
			Quantity:    line.Quantity,
			TotalWeight: line.LineWeight(),
		}
	}

	notifyCtx, cancel := context.WithTimeout(ctx, notifyDeadline)
	defer cancel()
	if err := s.notifier.Ship(notifyCtx, shipment); err != nil {
		log.Printf("shipping notifier failed for checkout %s: %v", checkoutID, err)
	}
}
