package initializer

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/amirasaad/finledger/infra"
	infra_eventbus "github.com/amirasaad/finledger/infra/eventbus"
	infra_repository "github.com/amirasaad/finledger/infra/repository"
	"github.com/amirasaad/finledger/infra/repository/memory"
	"github.com/amirasaad/finledger/pkg/app"
	"github.com/amirasaad/finledger/pkg/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// InitializeDependencies initializes all the application dependencies
func InitializeDependencies(cfg *config.App) (*app.Deps, error) {
	return initialize(cfg, os.Stderr)
}

func initialize(cfg *config.App, logOutput io.Writer) (deps *app.Deps, err error) {
	deps = &app.Deps{Close: func() error { return nil }}
	logger := setupLogger(cfg.Log, logOutput)
	deps.Logger = logger

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	deps.Registry = registry

	// Initialize the ledger store
	switch cfg.Store.Driver {
	case config.StoreMemory:
		deps.Uow = memory.New(logger)
	case config.StoreSQLite, config.StorePostgres:
		db, err := infra.NewDBConnection(cfg)
		if err != nil {
			logger.Error("Failed to initialize database", "error", err)
			return nil, err
		}
		deps.Uow = infra_repository.NewUoW(db)
		deps.Close = func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		}
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
	logger.Info("Ledger store ready", "driver", cfg.Store.Driver)

	// Initialize event bus
	bus := infra_eventbus.NewWithMemory(logger)
	deps.EventBus = bus

	sink, err := newSink(cfg.Events, logger)
	if err != nil {
		logger.Error("Failed to initialize event sink", "error", err)
		_ = deps.Close()
		return nil, err
	}
	if sink != nil {
		infra_eventbus.Forward(bus, sink)
		closeStore := deps.Close
		deps.Close = func() error {
			return errors.Join(sink.Close(), closeStore())
		}
		logger.Info("Event sink ready", "sink", cfg.Events.Sink)
	}
	return deps, nil
}

func newSink(cfg *config.Events, logger *slog.Logger) (infra_eventbus.Sink, error) {
	if cfg == nil {
		return nil, nil
	}
	switch cfg.Sink {
	case config.SinkNone:
		return nil, nil
	case config.SinkRedis:
		return infra_eventbus.NewRedisStreamSink(cfg.RedisURL, cfg.Stream, logger)
	case config.SinkKafka:
		return infra_eventbus.NewKafkaSink(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
	default:
		return nil, fmt.Errorf("unsupported event sink %q", cfg.Sink)
	}
}
