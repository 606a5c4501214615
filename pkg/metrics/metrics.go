// Package metrics exposes ledger activity as Prometheus counters fed by the
// domain event bus.
package metrics

import (
	"context"
	"errors"

	"github.com/amirasaad/finledger/pkg/domain"
	"github.com/amirasaad/finledger/pkg/domain/events"
	"github.com/amirasaad/finledger/pkg/eventbus"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "finledger"

// Ledger holds the ledger counters.
type Ledger struct {
	AccountsCreated     prometheus.Counter
	AccountsUpdated     prometheus.Counter
	Statements          *prometheus.CounterVec
	WithdrawalsRejected prometheus.Counter
}

// New registers the ledger counters on reg. Counters already registered on reg
// by an earlier call are reused, so several apps built on the same registry
// report into the same series. A nil reg leaves the counters unregistered.
func New(reg prometheus.Registerer) *Ledger {
	return &Ledger{
		AccountsCreated: register(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "accounts_created_total",
			Help:      "Total number of accounts created",
		})),
		AccountsUpdated: register(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "accounts_updated_total",
			Help:      "Total number of account updates",
		})),
		Statements: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "statements_total",
			Help:      "Total number of statements appended, by type",
		}, []string{"type"})),
		WithdrawalsRejected: register(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "withdrawals_rejected_total",
			Help:      "Total number of withdrawals refused for insufficient funds",
		})),
	}
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) T {
	if reg == nil {
		return c
	}
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

// Subscribe wires the counters to the bus.
func (m *Ledger) Subscribe(bus eventbus.Bus) {
	count := func(c prometheus.Counter) eventbus.HandlerFunc {
		return func(context.Context, events.Event) error {
			c.Inc()
			return nil
		}
	}
	bus.Register(events.AccountCreatedType, count(m.AccountsCreated))
	bus.Register(events.AccountUpdatedType, count(m.AccountsUpdated))
	bus.Register(events.DepositedType, count(m.Statements.WithLabelValues(string(domain.Credit))))
	bus.Register(events.WithdrawnType, count(m.Statements.WithLabelValues(string(domain.Debit))))
	bus.Register(events.WithdrawalRejectedType, count(m.WithdrawalsRejected))
}
