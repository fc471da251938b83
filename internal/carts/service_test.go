package carts

import (
	"context"
	"testing"
	"time"

	"github.com/Mohamed-Amiir/RiseJourny/internal/catalog"
	"github.com/Mohamed-Amiir/RiseJourny/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) (*Service, catalog.Store) {
	cat := catalog.NewMemoryStore()
	require.NoError(t, cat.Add(domain.NewProduct(1, "Cheese", 50.0, 10).WithExpiry(time.Now().AddDate(0, 0, 14)).WithWeight(2.0)))
	require.NoError(t, cat.Add(domain.NewProduct(2, "Old Milk", 5.0, 3).WithExpiry(time.Now().AddDate(0, 0, -1))))
	require.NoError(t, cat.Add(domain.NewProduct(3, "Smart TV", 500.0, 2).WithWeight(15.0)))

	return NewService(NewMemoryStore(), cat), cat
}

func TestService_Get_FreshCartWhenNoneStored(t *testing.T) {
	svc, _ := setupService(t)

	cart, err := svc.Get(context.Background(), "cust-1")
	require.NoError(t, err)
	assert.Equal(t, "cust-1", cart.CustomerID)
	assert.Empty(t, cart.Lines)
}

func TestService_AddLine(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	cart, err := svc.AddLine(ctx, "cust-1", 1, 2)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(1), cart.Lines[0].ProductID)
	assert.Equal(t, 2, cart.Lines[0].Quantity)

	// re-adding appends a second line, never merges
	cart, err = svc.AddLine(ctx, "cust-1", 1, 3)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 2)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, 3, cart.Lines[1].Quantity)

	// persisted across reads
	stored, err := svc.Get(ctx, "cust-1")
	require.NoError(t, err)
	assert.Len(t, stored.Lines, 2)
}

func TestService_AddLine_Screening(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.AddLine(ctx, "cust-1", 1, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidValue)

	_, err = svc.AddLine(ctx, "cust-1", 1, 11)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	_, err = svc.AddLine(ctx, "cust-1", 2, 1)
	assert.ErrorIs(t, err, domain.ErrExpiredProduct)

	_, err = svc.AddLine(ctx, "cust-1", 999, 1)
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)

	// all rejected adds left the cart empty
	cart, err := svc.Get(ctx, "cust-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}

func TestService_RemoveLines(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.AddLine(ctx, "cust-1", 1, 2)
	require.NoError(t, err)
	_, err = svc.AddLine(ctx, "cust-1", 3, 1)
	require.NoError(t, err)
	_, err = svc.AddLine(ctx, "cust-1", 1, 1)
	require.NoError(t, err)

	// removes every line of the product
	cart, err := svc.RemoveLines(ctx, "cust-1", 1)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(3), cart.Lines[0].ProductID)
}

func TestService_Clear(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.AddLine(ctx, "cust-1", 1, 2)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, "cust-1"))

	cart, err := svc.Get(ctx, "cust-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}

func TestService_Materialize(t *testing.T) {
	svc, cat := setupService(t)
	ctx := context.Background()

	_, err := svc.AddLine(ctx, "cust-1", 1, 2)
	require.NoError(t, err)
	_, err = svc.AddLine(ctx, "cust-1", 3, 1)
	require.NoError(t, err)

	cart, err := svc.Materialize(ctx, "cust-1")
	require.NoError(t, err)
	require.Equal(t, 2, cart.Len())

	lines := cart.Lines()
	assert.Equal(t, "Cheese", lines[0].Product.Name)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "Smart TV", lines[1].Product.Name)

	// lines reference the live catalog products
	cheese, err := cat.Get(1)
	require.NoError(t, err)
	assert.Same(t, cheese, lines[0].Product)
}

func TestService_Materialize_EmptyCart(t *testing.T) {
	svc, _ := setupService(t)

	cart, err := svc.Materialize(context.Background(), "cust-1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestService_Materialize_CarriesStaleLines(t *testing.T) {
	// A line whose product expired or lost stock after add time still
	// materializes; checkout is the validator, not the cart store.
	cat := catalog.NewMemoryStore()
	milk := domain.NewProduct(2, "Milk", 5.0, 3).WithExpiry(time.Now().AddDate(0, 0, 2))
	require.NoError(t, cat.Add(milk))
	svc := NewService(NewMemoryStore(), cat)
	ctx := context.Background()

	_, err := svc.AddLine(ctx, "cust-1", 2, 1)
	require.NoError(t, err)

	// the product expires after the line was added
	expired := time.Now().AddDate(0, 0, -1)
	milk.ExpiresAt = &expired

	cart, err := svc.Materialize(ctx, "cust-1")
	require.NoError(t, err)
	require.Equal(t, 1, cart.Len())
	assert.True(t, cart.Lines()[0].IsExpired())
}
