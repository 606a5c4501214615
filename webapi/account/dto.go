package account

import (
	"github.com/amirasaad/finledger/pkg/domain"
	"github.com/shopspring/decimal"
)

//revive:disable

// CreateAccountRequest represents the request body for registering a customer.
type CreateAccountRequest struct {
	Cpf  string `json:"cpf" validate:"required,max=32"`
	Name string `json:"name" validate:"required,max=255"`
}

// UpdateAccountRequest represents the request body for renaming a customer.
type UpdateAccountRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// DepositRequest represents the request body for depositing funds.
type DepositRequest struct {
	Description string           `json:"description" validate:"max=255"`
	Amount      *decimal.Decimal `json:"amount" validate:"required" swaggertype:"number"`
}

// WithdrawRequest represents the request body for withdrawing funds.
type WithdrawRequest struct {
	Amount *decimal.Decimal `json:"amount" validate:"required" swaggertype:"number"`
}

// StatementsResponse wraps the full statement history.
type StatementsResponse struct {
	Statements []domain.Statement `json:"statements"`
}

// BalanceResponse carries the folded balance.
type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance" swaggertype:"number"`
}
