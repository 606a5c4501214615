package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are encoded as JSON numbers everywhere they leave the process.
	decimal.MarshalJSONWithoutQuotes = true
}

// StatementType tells whether a statement adds to or subtracts from the balance.
type StatementType string

const (
	Credit StatementType = "credit"
	Debit  StatementType = "debit"
)

// Valid reports whether t is a known statement type.
func (t StatementType) Valid() bool {
	return t == Credit || t == Debit
}

// Statement is one credit or debit event. It is never modified once appended.
type Statement struct {
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
	Type        StatementType   `json:"type"`
}

// Ledger precision, matching the decimal(20,8) statement column.
const (
	AmountScale         = 8
	AmountIntegerDigits = 12
)

// ValidateAmount rejects negative amounts and amounts that do not fit the ledger
// precision. Only the exponent and coefficient length are inspected, so an
// out-of-range exponent is refused without rescaling the value.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}
	exp := int(amount.Exponent())
	if exp < -AmountScale || exp > AmountIntegerDigits {
		return ErrInvalidAmount
	}
	if amount.NumDigits()+exp > AmountIntegerDigits {
		return ErrInvalidAmount
	}
	return nil
}

// NewStatement builds a statement, rejecting invalid amounts and unknown types.
func NewStatement(t StatementType, description string, amount decimal.Decimal, at time.Time) (Statement, error) {
	if !t.Valid() {
		return Statement{}, fmt.Errorf("unknown statement type %q", t)
	}
	if err := ValidateAmount(amount); err != nil {
		return Statement{}, err
	}
	return Statement{
		Description: description,
		Amount:      amount,
		CreatedAt:   at,
		Type:        t,
	}, nil
}

// Signed returns the amount with the sign it contributes to the balance.
func (s Statement) Signed() decimal.Decimal {
	if s.Type == Debit {
		return s.Amount.Neg()
	}
	return s.Amount
}

// Balance folds statements in order starting from zero.
func Balance(statements []Statement) decimal.Decimal {
	balance := decimal.Zero
	for _, st := range statements {
		balance = balance.Add(st.Signed())
	}
	return balance
}

// StatementsOn keeps the statements whose creation day matches date's day,
// ignoring time of day. Both sides are compared in date's location.
func StatementsOn(statements []Statement, date time.Time) []Statement {
	y, m, d := date.Date()
	out := make([]Statement, 0)
	for _, st := range statements {
		sy, sm, sd := st.CreatedAt.In(date.Location()).Date()
		if sy == y && sm == m && sd == d {
			out = append(out, st)
		}
	}
	return out
}

// DateLayout is the calendar date format accepted by statement date queries.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD value as midnight in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return t, nil
}
