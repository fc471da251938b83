package domain

import (
	"fmt"
	"time"
)

// Product is a catalog entry with two orthogonal optional capabilities:
// a product that can expire carries ExpiresAt, a product that ships
// physically carries UnitWeight. Both may be set, either, or neither.
type Product struct {
	ID    int64
	Name  string
	Price float64
	Stock int

	ExpiresAt  *time.Time // nil = never expires
	UnitWeight *float64   // nil = not shippable, no weight
}

// NewProduct creates a non-expirable, non-shippable product.
func NewProduct(id int64, name string, price float64, stock int) *Product {
	return &Product{ID: id, Name: name, Price: price, Stock: stock}
}

// WithExpiry marks the product as expirable.
func (p *Product) WithExpiry(expiresAt time.Time) *Product {
	p.ExpiresAt = &expiresAt
	return p
}

// WithWeight marks the product as shippable.
func (p *Product) WithWeight(unitWeight float64) *Product {
	p.UnitWeight = &unitWeight
	return p
}

func (p *Product) IsShippable() bool {
	return p.UnitWeight != nil
}

// IsExpired reports whether today is strictly after the expiry date.
// Comparison is date-granular: a product expiring today is still sellable.
func (p *Product) IsExpired() bool {
	if p.ExpiresAt == nil {
		return false
	}
	return dateOf(time.Now()).After(dateOf(*p.ExpiresAt))
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SetPrice rejects negative prices without mutating.
func (p *Product) SetPrice(price float64) error {
	if price < 0 {
		return fmt.Errorf("price %v: %w", price, ErrInvalidValue)
	}
	p.Price = price
	return nil
}

// IncreaseStock adds to the available quantity. Non-positive amounts are
// rejected.
func (p *Product) IncreaseStock(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("increase stock by %d: %w", amount, ErrInvalidValue)
	}
	p.Stock += amount
	return nil
}

// DecreaseStock removes from the available quantity. The stock never goes
// negative: over-drawing fails with ErrInsufficientStock and leaves the
// quantity unchanged.
func (p *Product) DecreaseStock(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("decrease stock by %d: %w", amount, ErrInvalidValue)
	}
	if amount > p.Stock {
		return fmt.Errorf("%s: %w", p.Name, ErrInsufficientStock)
	}
	p.Stock -= amount
	return nil
}
