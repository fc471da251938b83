package domain

import "fmt"

// CartLine pairs a product reference with the quantity requested at
// add time. The quantity is fixed at creation; adding the same product
// again creates a second independent line, lines are never merged.
type CartLine struct {
	Product  *Product
	Quantity int
}

// LineTotal is the unit price times the requested quantity.
func (l CartLine) LineTotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}

// LineWeight is the shipped weight of the line. Non-shippable products
// weigh nothing here by definition, not by error.
func (l CartLine) LineWeight() float64 {
	if !l.Product.IsShippable() {
		return 0
	}
	return *l.Product.UnitWeight * float64(l.Quantity)
}

func (l CartLine) IsShippable() bool {
	return l.Product.IsShippable()
}

func (l CartLine) IsExpired() bool {
	return l.Product.IsExpired()
}

// Cart accumulates lines in insertion order. The order is preserved all the
// way into the receipt. Only a successful checkout clears it.
type Cart struct {
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// AddProduct appends a line after an advisory screen of stock and expiry.
// The screen is a UX guard only: stock and expiry can change between add
// time and checkout time, so checkout re-validates every line and is the
// single source of truth.
func (c *Cart) AddProduct(product *Product, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity %d: %w", quantity, ErrInvalidValue)
	}
	if quantity > product.Stock {
		return fmt.Errorf("%s: %w", product.Name, ErrInsufficientStock)
	}
	if product.IsExpired() {
		return fmt.Errorf("%s: %w", product.Name, ErrExpiredProduct)
	}
	c.lines = append(c.lines, CartLine{Product: product, Quantity: quantity})
	return nil
}

// AppendLine appends a line without the advisory screen. Used when
// rehydrating a stored cart: checkout is the authoritative validator, and a
// stored line must reach it even if stock or expiry changed since add time.
func (c *Cart) AppendLine(line CartLine) {
	c.lines = append(c.lines, line)
}

// Lines returns the cart content in insertion order.
func (c *Cart) Lines() []CartLine {
	return c.lines
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// Clear empties the cart. Called by checkout once the commit phase is done.
func (c *Cart) Clear() {
	c.lines = nil
}
