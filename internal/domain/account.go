package domain

import "fmt"

// Account holds a customer's balance. The balance never goes negative:
// a debit larger than the balance fails without mutating.
type Account struct {
	ID      string
	Name    string
	Balance float64
}

func NewAccount(id, name string, balance float64) *Account {
	return &Account{ID: id, Name: name, Balance: balance}
}

// Debit removes amount from the balance iff it is covered.
func (a *Account) Debit(amount float64) error {
	if amount > a.Balance {
		return fmt.Errorf("debit %v from balance %v: %w", amount, a.Balance, ErrInsufficientFunds)
	}
	a.Balance -= amount
	return nil
}

// Credit adds a positive amount to the balance.
func (a *Account) Credit(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("credit %v: %w", amount, ErrInvalidValue)
	}
	a.Balance += amount
	return nil
}
