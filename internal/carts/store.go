package carts

import (
	"context"
	"errors"
	"time"
)

var ErrCartNotFound = errors.New("cart not found")

// Line is one stored cart entry. Carts persist product references by ID;
// prices and stock are resolved against the catalog at read and checkout
// time, never copied into the stored cart.
type Line struct {
	ProductID int64     `json:"product_id"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// Cart is a customer's stored cart. Lines keep insertion order.
type Cart struct {
	CustomerID string    `json:"customer_id"`
	Lines      []Line    `json:"lines"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Store persists carts between API calls.
type Store interface {
	Get(ctx context.Context, customerID string) (*Cart, error)
	Save(ctx context.Context, cart *Cart) error
	Delete(ctx context.Context, customerID string) error
}
