package repository

import (
	"context"
)

// UnitOfWork defines the transaction boundary and repository access.
//
// Do runs fn exclusively with respect to every other Do on the same store, so a
// read-check-write sequence inside fn (such as a balance check followed by a debit)
// cannot interleave with another mutation. If fn returns an error, its writes are
// rolled back.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error
	CustomerRepository() (CustomerRepository, error)
}
