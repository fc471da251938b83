package http

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/Mohamed-Amiir/RiseJourny/internal/accounts"
	"github.com/Mohamed-Amiir/RiseJourny/internal/archive"
	"github.com/Mohamed-Amiir/RiseJourny/internal/carts"
	"github.com/Mohamed-Amiir/RiseJourny/internal/checkout"
)

// CheckoutHandler rehydrates the customer's stored cart against the live
// catalog, runs the checkout pipeline and, on success, clears the stored
// cart and hands the receipt to the archive publisher.
type CheckoutHandler struct {
	carts     *carts.Service
	accounts  accounts.Store
	checkout  *checkout.Service
	publisher archive.Publisher // optional
	timeout   time.Duration
}

func NewCheckoutHandler(
	cartService *carts.Service,
	accountStore accounts.Store,
	checkoutService *checkout.Service,
	publisher archive.Publisher,
	timeout time.Duration,
) *CheckoutHandler {
	return &CheckoutHandler{
		carts:     cartService,
		accounts:  accountStore,
		checkout:  checkoutService,
		publisher: publisher,
		timeout:   timeout,
	}
}

// POST /api/v1/checkout
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	customerID := getCustomerIDFromContext(r.Context())
	if customerID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing customer identity")
		return
	}

	account, err := h.accounts.Get(customerID)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	cart, err := h.carts.Materialize(ctx, customerID)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	receipt, err := h.checkout.Checkout(ctx, cart, account)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	// The domain cart cleared itself; drop the stored copy too. The
	// checkout already committed, so a failure here only risks a stale
	// stored cart, not a double charge.
	if err := h.carts.Clear(ctx, customerID); err != nil {
		log.Printf("failed to clear stored cart for %s after checkout %s: %v", customerID, receipt.ID, err)
	}

	if h.publisher != nil {
		if err := h.publisher.PublishReceipt(ctx, receipt); err != nil {
			log.Printf("failed to publish receipt %s: %v", receipt.ID, err)
		}
	}

	respondJSON(w, http.StatusCreated, receipt)
}
