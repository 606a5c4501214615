package repository

import (
	"context"

	"github.com/amirasaad/finledger/pkg/repository"
	"gorm.io/gorm"
)

// UoW provides the transaction boundary and repository access over gorm.
// Repositories obtained inside Do share the transaction session and lock the
// customer rows they read.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs fn in a database transaction. A nested Do joins the outer transaction.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if u.tx != nil {
		return fn(u)
	}
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

// CustomerRepository returns a repository bound to the current session.
func (u *UoW) CustomerRepository() (repository.CustomerRepository, error) {
	if u.tx != nil {
		return &customerRepository{db: u.tx, forUpdate: true}, nil
	}
	return NewCustomerRepository(u.db), nil
}

var _ repository.UnitOfWork = (*UoW)(nil)
