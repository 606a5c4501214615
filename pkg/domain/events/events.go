// Package events defines the domain events emitted by the account service after a
// ledger mutation has been committed.
package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event is implemented by every domain event.
type Event interface {
	Type() string
	// CustomerCpf identifies the customer the event belongs to.
	CustomerCpf() string
}

const (
	AccountCreatedType     = "AccountCreated"
	AccountUpdatedType     = "AccountUpdated"
	DepositedType          = "Deposited"
	WithdrawnType          = "Withdrawn"
	WithdrawalRejectedType = "WithdrawalRejected"
)

// Types lists every ledger event type.
func Types() []string {
	return []string{
		AccountCreatedType,
		AccountUpdatedType,
		DepositedType,
		WithdrawnType,
		WithdrawalRejectedType,
	}
}

// AccountCreated is emitted once a customer has been added to the store.
type AccountCreated struct {
	CustomerID uuid.UUID `json:"customer_id"`
	Cpf        string    `json:"cpf"`
	Timestamp  time.Time `json:"timestamp"`
}

func (AccountCreated) Type() string          { return AccountCreatedType }
func (e AccountCreated) CustomerCpf() string { return e.Cpf }

// AccountUpdated is emitted after a customer's name changed.
type AccountUpdated struct {
	Cpf       string    `json:"cpf"`
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
}

func (AccountUpdated) Type() string          { return AccountUpdatedType }
func (e AccountUpdated) CustomerCpf() string { return e.Cpf }

// Deposited is emitted after a credit statement was appended.
type Deposited struct {
	Cpf         string          `json:"cpf"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Timestamp   time.Time       `json:"timestamp"`
}

func (Deposited) Type() string          { return DepositedType }
func (e Deposited) CustomerCpf() string { return e.Cpf }

// Withdrawn is emitted after a debit statement was appended.
type Withdrawn struct {
	Cpf       string          `json:"cpf"`
	Amount    decimal.Decimal `json:"amount"`
	Balance   decimal.Decimal `json:"balance"`
	Timestamp time.Time       `json:"timestamp"`
}

func (Withdrawn) Type() string          { return WithdrawnType }
func (e Withdrawn) CustomerCpf() string { return e.Cpf }

// WithdrawalRejected is emitted when a withdrawal was refused for lack of funds.
type WithdrawalRejected struct {
	Cpf       string          `json:"cpf"`
	Amount    decimal.Decimal `json:"amount"`
	Balance   decimal.Decimal `json:"balance"`
	Timestamp time.Time       `json:"timestamp"`
}

func (WithdrawalRejected) Type() string          { return WithdrawalRejectedType }
func (e WithdrawalRejected) CustomerCpf() string { return e.Cpf }
