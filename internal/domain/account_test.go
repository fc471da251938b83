package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebit(t *testing.T) {
	a := NewAccount("cust-1", "Amr", 100.0)

	require.NoError(t, a.Debit(40.0))
	assert.Equal(t, 60.0, a.Balance)

	err := a.Debit(60.01)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, 60.0, a.Balance, "failed debit must not mutate")

	// exact balance is spendable
	require.NoError(t, a.Debit(60.0))
	assert.Equal(t, 0.0, a.Balance)
}

func TestCredit(t *testing.T) {
	a := NewAccount("cust-1", "Amr", 0.0)

	require.NoError(t, a.Credit(250.0))
	assert.Equal(t, 250.0, a.Balance)

	err := a.Credit(0)
	assert.ErrorIs(t, err, ErrInvalidValue)

	err = a.Credit(-10)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Equal(t, 250.0, a.Balance)
}
