package carts

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a miniredis server and returns a RedisStore instance
func setupTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis, func()) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	store := NewRedisStore(client)

	cleanup := func() {
		client.Close()
		mr.Close()
	}

	return store, mr, cleanup
}

func TestRedisGet_Success(t *testing.T) {
	store, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	customerID := "cust-123"

	cart := &Cart{
		CustomerID: customerID,
		Lines: []Line{
			{ProductID: 1, Quantity: 2, AddedAt: time.Now()},
			{ProductID: 3, Quantity: 1, AddedAt: time.Now()},
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	cartJSON, _ := json.Marshal(cart)
	mr.Set(cartKey(customerID), string(cartJSON))

	result, err := store.Get(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, customerID, result.CustomerID)
	assert.Len(t, result.Lines, 2)
	assert.Equal(t, int64(1), result.Lines[0].ProductID)
	assert.Equal(t, 2, result.Lines[0].Quantity)
}

func TestRedisGet_NotFound(t *testing.T) {
	store, _, cleanup := setupTestRedis(t)
	defer cleanup()

	result, err := store.Get(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrCartNotFound)
	assert.Nil(t, result)
}

func TestRedisGet_InvalidJSON(t *testing.T) {
	store, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	customerID := "cust-123"
	cart := &Cart{
		CustomerID: customerID,
		Lines:      []Line{{ProductID: 1, Quantity: 2}},
	}
	cartJSON, err := json.Marshal(cart)
	require.NoError(t, err)
	require.NoError(t, mr.Set(cartKey(customerID), string(cartJSON[0:10])))

	_, getErr := store.Get(context.Background(), customerID)
	require.ErrorContains(t, getErr, "unmarshal cart failed")
}

func TestRedisSave_Success(t *testing.T) {
	store, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	customerID := "cust-456"

	cart := &Cart{
		CustomerID: customerID,
		Lines:      []Line{{ProductID: 10, Quantity: 5, AddedAt: time.Now()}},
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	require.NoError(t, store.Save(ctx, cart))

	// stored value round-trips
	stored, err := mr.Get(cartKey(customerID))
	require.NoError(t, err)

	var decoded Cart
	require.NoError(t, json.Unmarshal([]byte(stored), &decoded))
	assert.Equal(t, customerID, decoded.CustomerID)
	require.Len(t, decoded.Lines, 1)
	assert.Equal(t, int64(10), decoded.Lines[0].ProductID)

	// abandoned-cart TTL is base + jitter of up to an hour
	ttl := mr.TTL(cartKey(customerID))
	assert.GreaterOrEqual(t, ttl, 24*time.Hour)
	assert.LessOrEqual(t, ttl, 25*time.Hour)
}

func TestRedisSave_Overwrites(t *testing.T) {
	store, _, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	cart := &Cart{
		CustomerID: "cust-1",
		Lines:      []Line{{ProductID: 1, Quantity: 1}},
	}
	require.NoError(t, store.Save(ctx, cart))

	cart.Lines = append(cart.Lines, Line{ProductID: 2, Quantity: 3})
	require.NoError(t, store.Save(ctx, cart))

	result, err := store.Get(ctx, "cust-1")
	require.NoError(t, err)
	assert.Len(t, result.Lines, 2)
}

func TestRedisDelete(t *testing.T) {
	store, _, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	cart := &Cart{
		CustomerID: "cust-1",
		Lines:      []Line{{ProductID: 1, Quantity: 1}},
	}
	require.NoError(t, store.Save(ctx, cart))

	require.NoError(t, store.Delete(ctx, "cust-1"))

	_, err := store.Get(ctx, "cust-1")
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestRedisDelete_MissingCartIsNoError(t *testing.T) {
	store, _, cleanup := setupTestRedis(t)
	defer cleanup()

	assert.NoError(t, store.Delete(context.Background(), "nonexistent"))
}
