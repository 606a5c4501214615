package memory

import (
	"context"

	"github.com/amirasaad/finledger/pkg/domain"
	"github.com/amirasaad/finledger/pkg/repository"
)

// customerRepository is used outside a unit of work; each call takes the lock.
type customerRepository struct {
	store *Store
}

func (r *customerRepository) FindByCpf(ctx context.Context, cpf string) (*domain.Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	c, ok := r.store.find(cpf)
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	return c.Clone(), nil
}

func (r *customerRepository) Exists(ctx context.Context, cpf string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	_, ok := r.store.find(cpf)
	return ok, nil
}

func (r *customerRepository) Add(ctx context.Context, customer *domain.Customer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	_, err := r.store.add(customer)
	return err
}

func (r *customerRepository) UpdateName(ctx context.Context, cpf, name string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	_, err := r.store.updateName(cpf, name)
	return err
}

func (r *customerRepository) AppendStatement(ctx context.Context, cpf string, st domain.Statement) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	_, err := r.store.appendStatement(cpf, st)
	return err
}

// txn is the UnitOfWork handed to Store.Do callbacks. The store lock is already
// held, so its repository never locks; it journals undo steps instead.
type txn struct {
	store *Store
	undo  []func()
}

func (t *txn) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return fn(t)
}

func (t *txn) CustomerRepository() (repository.CustomerRepository, error) {
	return (*txnRepository)(t), nil
}

func (t *txn) record(undo func(), err error) error {
	if err != nil {
		return err
	}
	t.undo = append(t.undo, undo)
	return nil
}

func (t *txn) rollback() {
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
}

type txnRepository txn

func (r *txnRepository) FindByCpf(ctx context.Context, cpf string) (*domain.Customer, error) {
	c, ok := r.store.find(cpf)
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	return c.Clone(), nil
}

func (r *txnRepository) Exists(ctx context.Context, cpf string) (bool, error) {
	_, ok := r.store.find(cpf)
	return ok, nil
}

func (r *txnRepository) Add(ctx context.Context, customer *domain.Customer) error {
	return (*txn)(r).record(r.store.add(customer))
}

func (r *txnRepository) UpdateName(ctx context.Context, cpf, name string) error {
	return (*txn)(r).record(r.store.updateName(cpf, name))
}

func (r *txnRepository) AppendStatement(ctx context.Context, cpf string, st domain.Statement) error {
	return (*txn)(r).record(r.store.appendStatement(cpf, st))
}

var (
	_ repository.CustomerRepository = (*customerRepository)(nil)
	_ repository.CustomerRepository = (*txnRepository)(nil)
	_ repository.UnitOfWork         = (*txn)(nil)
)
