// Package account implements the Account Service: every ledger operation a
// customer can perform, enforcing the domain rules (no duplicate cpf, no
// overdraft) against a repository.UnitOfWork.
//
// All operations except CreateAccount and GetAccount take a customer that the
// caller already resolved through GetAccount.
package account

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/amirasaad/finledger/pkg/domain"
	"github.com/amirasaad/finledger/pkg/domain/events"
	"github.com/amirasaad/finledger/pkg/eventbus"
	"github.com/amirasaad/finledger/pkg/repository"
	"github.com/shopspring/decimal"
)

// Service provides the account operations.
type Service struct {
	bus    eventbus.Bus
	uow    repository.UnitOfWork
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a Service. bus may be nil.
func NewService(bus eventbus.Bus, uow repository.UnitOfWork, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		bus:    bus,
		uow:    uow,
		logger: logger.With("service", "account"),
		now:    time.Now,
	}
}

// WithClock replaces the clock used to stamp statements.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// CreateAccount registers a customer with an empty statement history.
func (s *Service) CreateAccount(ctx context.Context, cpf, name string) (*domain.Customer, error) {
	c := domain.NewCustomer(cpf, name)
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.CustomerRepository()
		if err != nil {
			return err
		}
		exists, err := repo.Exists(ctx, cpf)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrDuplicateAccount
		}
		return repo.Add(ctx, c)
	})
	if err != nil {
		s.logFailure("create account", cpf, err)
		return nil, err
	}
	s.logger.Info("Account created", "cpf", cpf, "id", c.ID)
	s.emit(ctx, events.AccountCreated{CustomerID: c.ID, Cpf: cpf, Timestamp: s.now()})
	return c, nil
}

// GetAccount resolves a customer by cpf. It returns domain.ErrCustomerNotFound
// when nobody is registered under cpf.
func (s *Service) GetAccount(ctx context.Context, cpf string) (*domain.Customer, error) {
	repo, err := s.uow.CustomerRepository()
	if err != nil {
		return nil, err
	}
	return repo.FindByCpf(ctx, cpf)
}

// UpdateAccount renames the customer.
func (s *Service) UpdateAccount(ctx context.Context, customer *domain.Customer, name string) error {
	repo, err := s.uow.CustomerRepository()
	if err != nil {
		return err
	}
	if err := repo.UpdateName(ctx, customer.Cpf, name); err != nil {
		s.logFailure("update account", customer.Cpf, err)
		return err
	}
	customer.Name = name
	s.emit(ctx, events.AccountUpdated{Cpf: customer.Cpf, Name: name, Timestamp: s.now()})
	return nil
}

// GetStatements returns the customer's full history in insertion order.
func (s *Service) GetStatements(customer *domain.Customer) []domain.Statement {
	out := make([]domain.Statement, len(customer.Statements))
	copy(out, customer.Statements)
	return out
}

// GetStatementsByDate returns the statements created on date's calendar day.
// No match yields an empty slice, not an error.
func (s *Service) GetStatementsByDate(customer *domain.Customer, date time.Time) []domain.Statement {
	return customer.StatementsOn(date)
}

// Balance returns credits minus debits over the customer's history.
func (s *Service) Balance(customer *domain.Customer) decimal.Decimal {
	return customer.Balance()
}

// Deposit appends a credit statement stamped with the current instant.
func (s *Service) Deposit(ctx context.Context, customer *domain.Customer, description string, amount decimal.Decimal) error {
	st, err := domain.NewStatement(domain.Credit, description, amount, s.now())
	if err != nil {
		return err
	}
	repo, err := s.uow.CustomerRepository()
	if err != nil {
		return err
	}
	if err := repo.AppendStatement(ctx, customer.Cpf, st); err != nil {
		s.logFailure("deposit", customer.Cpf, err)
		return err
	}
	customer.Statements = append(customer.Statements, st)
	s.logger.Info("Deposit recorded", "cpf", customer.Cpf, "amount", amount.String())
	s.emit(ctx, events.Deposited{
		Cpf:         customer.Cpf,
		Description: description,
		Amount:      amount,
		Timestamp:   st.CreatedAt,
	})
	return nil
}

// Withdraw appends a debit statement if the balance covers amount. The balance
// check and the append run inside one unit of work against a fresh read of the
// customer, so concurrent withdrawals cannot both spend the same funds.
func (s *Service) Withdraw(ctx context.Context, customer *domain.Customer, amount decimal.Decimal) error {
	var (
		balance decimal.Decimal
		current *domain.Customer
		debit   domain.Statement
	)
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.CustomerRepository()
		if err != nil {
			return err
		}
		current, err = repo.FindByCpf(ctx, customer.Cpf)
		if err != nil {
			return err
		}
		balance = current.Balance()
		debit, err = current.Withdraw(amount, s.now())
		if err != nil {
			return err
		}
		return repo.AppendStatement(ctx, customer.Cpf, debit)
	})
	if errors.Is(err, domain.ErrInsufficientFunds) {
		s.logger.Warn("Withdrawal rejected", "cpf", customer.Cpf, "amount", amount.String(), "balance", balance.String())
		s.emit(ctx, events.WithdrawalRejected{Cpf: customer.Cpf, Amount: amount, Balance: balance, Timestamp: s.now()})
		return err
	}
	if err != nil {
		s.logFailure("withdraw", customer.Cpf, err)
		return err
	}
	customer.Statements = current.Statements
	s.logger.Info("Withdrawal recorded", "cpf", customer.Cpf, "amount", amount.String())
	s.emit(ctx, events.Withdrawn{
		Cpf:       customer.Cpf,
		Amount:    amount,
		Balance:   balance.Sub(amount),
		Timestamp: debit.CreatedAt,
	})
	return nil
}

func (s *Service) emit(ctx context.Context, event events.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Emit(ctx, event); err != nil {
		s.logger.Error("Failed to emit event", "type", event.Type(), "error", err)
	}
}

// logFailure logs unexpected errors; domain rule violations are the caller's
// business and only logged at debug level.
func (s *Service) logFailure(op, cpf string, err error) {
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrDuplicateAccount),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrInvalidAmount):
		s.logger.Debug("Operation refused", "op", op, "cpf", cpf, "error", err)
	default:
		s.logger.Error("Operation failed", "op", op, "cpf", cpf, "error", err)
	}
}
