package config

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads the first environment file found among envFilePath (searched upward
// from the working directory), falls back to ./.env, then processes the
// environment into an App.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()
	logger.Info("Loading environment variables")

	for _, path := range envFilePath {
		logger.Debug("Looking for environment file", "path", path)
		foundPath, err := FindEnvFile(path)
		if err != nil {
			logger.Debug("Environment file not found", "path", path, "error", err)
			continue
		}

		logger.Info("Loading environment from file", "path", foundPath)
		if err := godotenv.Load(foundPath); err != nil {
			logger.Error("Failed to load environment file", "path", foundPath, "error", err)
			continue
		}
		return loadFromEnv()
	}

	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found in current directory")
	}
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Default().Info("App config loaded",
		"env", cfg.Env,
		"port", cfg.Server.Port,
		"store_driver", cfg.Store.Driver,
		"db", maskValue(cfg.DB.Url),
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
		"events_sink", cfg.Events.Sink,
	)
	return &cfg, nil
}

// Validate checks the values envconfig cannot.
func (a *App) Validate() error {
	switch a.Store.Driver {
	case StoreMemory, StoreSQLite:
	case StorePostgres:
		if a.DB.Url == "" {
			return fmt.Errorf("DATABASE_URL is required for store driver %q", a.Store.Driver)
		}
	default:
		return fmt.Errorf("unknown store driver %q", a.Store.Driver)
	}
	if a.Events != nil {
		switch a.Events.Sink {
		case SinkNone:
		case SinkRedis:
			if a.Events.RedisURL == "" {
				return fmt.Errorf("EVENTS_REDIS_URL is required for event sink %q", a.Events.Sink)
			}
		case SinkKafka:
			if len(a.Events.KafkaBrokers) == 0 {
				return fmt.Errorf("EVENTS_KAFKA_BROKERS is required for event sink %q", a.Events.Sink)
			}
		default:
			return fmt.Errorf("unknown event sink %q", a.Events.Sink)
		}
	}
	if a.Server.Port <= 0 || a.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", a.Server.Port)
	}
	return nil
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func maskValue(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 6 {
		return "****"
	}
	return key[:2] + "****" + key[len(key)-4:]
}
