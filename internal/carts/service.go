package carts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Mohamed-Amiir/RiseJourny/internal/catalog"
	"github.com/Mohamed-Amiir/RiseJourny/internal/domain"
	"golang.org/x/sync/singleflight"
)

// Service is the cart session layer: it persists line items between API
// calls and applies the advisory add-time screen against the catalog. The
// screen is not authoritative — checkout re-validates every line.
type Service struct {
	store   Store
	catalog catalog.Store
	sfg     singleflight.Group // collapses concurrent reads of the same cart
}

func NewService(store Store, cat catalog.Store) *Service {
	return &Service{store: store, catalog: cat}
}

// Get returns the customer's cart, or a fresh empty cart if none is stored.
func (s *Service) Get(ctx context.Context, customerID string) (*Cart, error) {
	v, err, _ := s.sfg.Do(customerID, func() (interface{}, error) {
		cart, err := s.store.Get(ctx, customerID)
		if errors.Is(err, ErrCartNotFound) {
			now := time.Now()
			return &Cart{
				CustomerID: customerID,
				Lines:      nil,
				CreatedAt:  now,
				UpdatedAt:  now,
			}, nil
		}
		if err != nil {
			return nil, err
		}
		return cart, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Cart), nil
}

// AddLine appends a new line after screening stock and expiry. Re-adding a
// product appends a second independent line; lines are never merged.
func (s *Service) AddLine(ctx context.Context, customerID string, productID int64, quantity int) (*Cart, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity %d: %w", quantity, domain.ErrInvalidValue)
	}

	product, err := s.catalog.Get(productID)
	if err != nil {
		return nil, err
	}
	if quantity > product.Stock {
		return nil, fmt.Errorf("%s: %w", product.Name, domain.ErrInsufficientStock)
	}
	if product.IsExpired() {
		return nil, fmt.Errorf("%s: %w", product.Name, domain.ErrExpiredProduct)
	}

	cart, err := s.Get(ctx, customerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	cart.Lines = append(cart.Lines, Line{ProductID: productID, Quantity: quantity, AddedAt: now})
	cart.UpdatedAt = now

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveLines drops every line holding the given product.
func (s *Service) RemoveLines(ctx context.Context, customerID string, productID int64) (*Cart, error) {
	cart, err := s.Get(ctx, customerID)
	if err != nil {
		return nil, err
	}

	kept := cart.Lines[:0]
	for _, line := range cart.Lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	cart.Lines = kept
	cart.UpdatedAt = time.Now()

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear deletes the stored cart.
func (s *Service) Clear(ctx context.Context, customerID string) error {
	return s.store.Delete(ctx, customerID)
}

// Materialize resolves the stored cart into a domain cart with live product
// references, preserving line order. Unknown products fail the whole cart:
// a stored line must never silently disappear from a checkout.
func (s *Service) Materialize(ctx context.Context, customerID string) (*domain.Cart, error) {
	stored, err := s.Get(ctx, customerID)
	if err != nil {
		return nil, err
	}

	cart := domain.NewCart()
	for _, line := range stored.Lines {
		product, err := s.catalog.Get(line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %d in stored cart: %w", line.ProductID, err)
		}
		cart.AppendLine(domain.CartLine{Product: product, Quantity: line.Quantity})
	}
	return cart, nil
}
