package domain

import "errors"

// Ledger domain errors
var (
	// ErrCustomerNotFound is returned when no customer is registered under the given cpf.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrDuplicateAccount is returned when a cpf is already registered.
	ErrDuplicateAccount = errors.New("customer already exists")
	// ErrInsufficientFunds is returned when a withdrawal exceeds the current balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInvalidAmount is returned when a statement amount is negative or does not
	// fit the ledger precision (see ValidateAmount).
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidDate is returned when a statement date is not formatted as YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")
)
