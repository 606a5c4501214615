package infra

import (
	"fmt"
	"time"

	"github.com/amirasaad/finledger/infra/repository"
	"github.com/amirasaad/finledger/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultSQLiteDSN keeps the whole database in process memory.
const DefaultSQLiteDSN = "file::memory:?cache=shared"

// NewDBConnection opens the gorm database for the configured store driver and
// migrates the ledger tables.
func NewDBConnection(cfg *config.App) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Store.Driver {
	case config.StoreSQLite:
		dsn := cfg.DB.Url
		if dsn == "" {
			dsn = DefaultSQLiteDSN
		}
		dialector = sqlite.Open(dsn)
	case config.StorePostgres:
		if cfg.DB.Url == "" {
			return nil, fmt.Errorf("DATABASE_URL is not set")
		}
		dialector = postgres.Open(cfg.DB.Url)
	default:
		return nil, fmt.Errorf("store driver %q has no database", cfg.Store.Driver)
	}

	logMode := logger.Silent
	if cfg.Env == "development" {
		logMode = logger.Info
	}

	connection, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	if cfg.Store.Driver == config.StoreSQLite {
		// one connection: the in-memory database lives as long as it does and
		// writers are serialized.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetConnMaxLifetime(0)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(25)
		sqlDB.SetConnMaxLifetime(1 * time.Hour)
	}

	if err := connection.AutoMigrate(repository.Models()...); err != nil {
		return nil, fmt.Errorf("failed to migrate ledger tables: %w", err)
	}
	return connection, nil
}
