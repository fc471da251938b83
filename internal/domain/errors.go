package domain

import "errors"

// Validation failures surfaced by products, carts, accounts and checkout.
// All are recoverable: the failed operation leaves state untouched and the
// caller decides how to report it.
var (
	ErrInvalidValue      = errors.New("invalid value")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrExpiredProduct    = errors.New("product is expired")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrEmptyCart         = errors.New("cart is empty, nothing to checkout")
)
