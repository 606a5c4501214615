// Package memory is the default, non-persistent Ledger Store. Customers live in an
// ordered slice indexed by cpf and every read hands out a copy.
package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/amirasaad/finledger/pkg/domain"
	"github.com/amirasaad/finledger/pkg/repository"
)

// Store holds customers in insertion order.
type Store struct {
	mu        sync.RWMutex
	customers []*domain.Customer
	index     map[string]int
	logger    *slog.Logger
}

// New creates an empty store.
func New(logger *slog.Logger) *Store {
	return &Store{
		customers: make([]*domain.Customer, 0),
		index:     make(map[string]int),
		logger:    logger.With("store", "memory"),
	}
}

// Len returns the number of registered customers.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.customers)
}

// Do runs fn while holding the store's write lock. Writes made through the
// UnitOfWork passed to fn are undone in reverse order if fn fails.
func (s *Store) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &txn{store: s}
	if err := fn(tx); err != nil {
		undone := len(tx.undo)
		tx.rollback()
		s.logger.Debug("unit of work rolled back", "error", err, "undone", undone)
		return err
	}
	return nil
}

// CustomerRepository returns a repository that locks the store per call.
func (s *Store) CustomerRepository() (repository.CustomerRepository, error) {
	return &customerRepository{store: s}, nil
}

func (s *Store) find(cpf string) (*domain.Customer, bool) {
	i, ok := s.index[cpf]
	if !ok {
		return nil, false
	}
	return s.customers[i], true
}

func (s *Store) add(c *domain.Customer) (undo func(), err error) {
	if _, ok := s.index[c.Cpf]; ok {
		return nil, domain.ErrDuplicateAccount
	}
	s.customers = append(s.customers, c.Clone())
	s.index[c.Cpf] = len(s.customers) - 1
	return func() {
		delete(s.index, c.Cpf)
		s.customers = s.customers[:len(s.customers)-1]
	}, nil
}

func (s *Store) updateName(cpf, name string) (undo func(), err error) {
	c, ok := s.find(cpf)
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	prev := c.Name
	c.Name = name
	return func() { c.Name = prev }, nil
}

func (s *Store) appendStatement(cpf string, st domain.Statement) (undo func(), err error) {
	c, ok := s.find(cpf)
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	n := len(c.Statements)
	c.Statements = append(c.Statements, st)
	return func() { c.Statements = c.Statements[:n] }, nil
}

var _ repository.UnitOfWork = (*Store)(nil)
