// Package app assembles the account service and the event bus subscribers
// from the process dependencies.
package app

import (
	"context"
	"log/slog"

	"github.com/amirasaad/finledger/pkg/domain/events"
	"github.com/amirasaad/finledger/pkg/eventbus"
	"github.com/amirasaad/finledger/pkg/metrics"
)

// setupEventBus registers all event handlers with the provided event Bus.
func (a *App) setupEventBus() {
	bus := a.Deps.EventBus
	if bus == nil {
		return
	}
	a.Deps.subscribeOnce.Do(func() {
		metrics.New(a.Deps.Registry).Subscribe(bus)
		a.setupAuditHandlers(bus, a.Deps.Logger)
	})
}

// setupAuditHandlers logs every committed ledger mutation at debug level.
func (a *App) setupAuditHandlers(bus eventbus.Bus, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("handler", "audit")
	audit := func(ctx context.Context, e events.Event) error {
		logger.DebugContext(ctx, "ledger event", "type", e.Type(), "event", e)
		return nil
	}
	for _, t := range events.Types() {
		bus.Register(t, audit)
	}
}
