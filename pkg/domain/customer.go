// Package domain holds the ledger model: customers, their statement history and the
// rules derived from it (balance, same-day filtering, overdraft checks).
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer is a ledger account keyed by its cpf.
//
// Invariants:
//   - Cpf is unique across the store holding the customer.
//   - Statements is append-only and ordered by insertion.
//   - The balance folded from Statements never goes negative.
type Customer struct {
	ID         uuid.UUID   `json:"id"`
	Cpf        string      `json:"cpf"`
	Name       string      `json:"name"`
	Statements []Statement `json:"statements"`
}

// NewCustomer creates a customer with a fresh id and an empty history.
func NewCustomer(cpf, name string) *Customer {
	return &Customer{
		ID:         uuid.New(),
		Cpf:        cpf,
		Name:       name,
		Statements: []Statement{},
	}
}

// Clone returns a deep copy so callers never share the statement backing array.
func (c *Customer) Clone() *Customer {
	if c == nil {
		return nil
	}
	cp := *c
	cp.Statements = make([]Statement, len(c.Statements))
	copy(cp.Statements, c.Statements)
	return &cp
}

// Balance folds the statement history: credits add, debits subtract.
func (c *Customer) Balance() decimal.Decimal {
	return Balance(c.Statements)
}

// StatementsOn returns the statements created on the same calendar day as date.
// Days are compared in date's location. The result is never nil.
func (c *Customer) StatementsOn(date time.Time) []Statement {
	return StatementsOn(c.Statements, date)
}

// ValidateWithdraw reports whether amount can be debited from the current history.
func (c *Customer) ValidateWithdraw(amount decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if amount.GreaterThan(c.Balance()) {
		return ErrInsufficientFunds
	}
	return nil
}

// Deposit appends a credit statement.
func (c *Customer) Deposit(description string, amount decimal.Decimal, at time.Time) (Statement, error) {
	st, err := NewStatement(Credit, description, amount, at)
	if err != nil {
		return Statement{}, err
	}
	c.Statements = append(c.Statements, st)
	return st, nil
}

// Withdraw appends a debit statement if the balance covers it.
func (c *Customer) Withdraw(amount decimal.Decimal, at time.Time) (Statement, error) {
	if err := c.ValidateWithdraw(amount); err != nil {
		return Statement{}, err
	}
	st, err := NewStatement(Debit, "", amount, at)
	if err != nil {
		return Statement{}, err
	}
	c.Statements = append(c.Statements, st)
	return st, nil
}
