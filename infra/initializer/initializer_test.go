package initializer

import (
	"bytes"
	"context"
	"testing"

	"github.com/amirasaad/finledger/infra/repository/memory"
	"github.com/amirasaad/finledger/pkg/app"
	"github.com/amirasaad/finledger/pkg/config"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(driver string) *config.App {
	return &config.App{
		Env:       "test",
		Server:    &config.Server{Scheme: "http", Host: "127.0.0.1", Port: 3333},
		Log:       &config.Log{Level: 0, Format: "text", TimeFormat: "15:04:05", Prefix: "[test]"},
		Store:     &config.Store{Driver: driver},
		DB:        &config.DB{},
		RateLimit: &config.RateLimit{},
	}
}

func TestInitialize_MemoryStore(t *testing.T) {
	var out bytes.Buffer
	deps, err := initialize(testConfig(config.StoreMemory), &out)
	require.NoError(t, err)

	assert.IsType(t, &memory.Store{}, deps.Uow)
	assert.NotNil(t, deps.EventBus)
	assert.NotNil(t, deps.Registry)
	assert.NoError(t, deps.Close())
	assert.Contains(t, out.String(), "Ledger store ready")
}

func TestInitialize_UnknownDriver(t *testing.T) {
	var out bytes.Buffer
	_, err := initialize(testConfig("mongo"), &out)
	assert.ErrorContains(t, err, "unsupported store driver")
}

func TestInitialize_EventSinks(t *testing.T) {
	t.Run("kafka", func(t *testing.T) {
		var out bytes.Buffer
		cfg := testConfig(config.StoreMemory)
		cfg.Events = &config.Events{Sink: config.SinkKafka, KafkaBrokers: []string{"127.0.0.1:9092"}, KafkaTopic: "finledger.events"}
		deps, err := initialize(cfg, &out)
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Event sink ready")
		assert.NoError(t, deps.Close())
	})

	t.Run("kafka without brokers", func(t *testing.T) {
		var out bytes.Buffer
		cfg := testConfig(config.StoreMemory)
		cfg.Events = &config.Events{Sink: config.SinkKafka, KafkaTopic: "finledger.events"}
		_, err := initialize(cfg, &out)
		assert.ErrorContains(t, err, "brokers and topic are required")
	})

	t.Run("unknown", func(t *testing.T) {
		var out bytes.Buffer
		cfg := testConfig(config.StoreMemory)
		cfg.Events = &config.Events{Sink: "nats"}
		_, err := initialize(cfg, &out)
		assert.ErrorContains(t, err, "unsupported event sink")
	})
}

func TestInitialize_PostgresWithoutURL(t *testing.T) {
	var out bytes.Buffer
	_, err := initialize(testConfig(config.StorePostgres), &out)
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestInitialize_MetricsFollowEvents(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(config.StoreMemory)
	deps, err := initialize(cfg, &out)
	require.NoError(t, err)

	a := app.New(deps, cfg)
	_, err = a.AccountService.CreateAccount(context.Background(), "111", "Alice")
	require.NoError(t, err)

	n, err := testutil.GatherAndCount(deps.Registry, "finledger_accounts_created_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
