package app

import (
	"log/slog"
	"sync"

	"github.com/amirasaad/finledger/pkg/config"
	"github.com/amirasaad/finledger/pkg/eventbus"
	"github.com/amirasaad/finledger/pkg/repository"
	"github.com/amirasaad/finledger/pkg/service/account"
	"github.com/prometheus/client_golang/prometheus"
)

// Deps contains all the dependencies needed to build the App
type Deps struct {
	Uow      repository.UnitOfWork
	EventBus eventbus.Bus
	Logger   *slog.Logger
	// Registry receives the ledger metrics and is served on /metrics.
	Registry *prometheus.Registry
	// Close releases the store and the event sink, if they hold resources.
	Close func() error

	subscribeOnce sync.Once
}

type App struct {
	Deps           *Deps
	Config         *config.App
	AccountService *account.Service
}

// New builds the App. Event subscribers are registered on deps.EventBus only by
// the first New for a given Deps.
func New(deps *Deps, cfg *config.App) *App {
	if deps.Registry == nil {
		deps.Registry = prometheus.NewRegistry()
	}
	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	app.setupEventBus()
	app.AccountService = account.NewService(deps.EventBus, deps.Uow, deps.Logger)
	return app
}
