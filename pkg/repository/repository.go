package repository

import (
	"context"

	"github.com/amirasaad/finledger/pkg/domain"
)

// CustomerRepository defines the Ledger Store operations.
// Implementations return domain.ErrCustomerNotFound and domain.ErrDuplicateAccount
// (possibly wrapped) so callers can use errors.Is.
type CustomerRepository interface {
	// FindByCpf returns a copy of the customer registered under cpf.
	FindByCpf(ctx context.Context, cpf string) (*domain.Customer, error)
	Exists(ctx context.Context, cpf string) (bool, error)
	// Add stores a new customer; the duplicate check and the insert are atomic.
	Add(ctx context.Context, customer *domain.Customer) error
	UpdateName(ctx context.Context, cpf, name string) error
	AppendStatement(ctx context.Context, cpf string, statement domain.Statement) error
}
