package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 3333, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:3333", cfg.Server.Addr())
	assert.Equal(t, StoreMemory, cfg.Store.Driver)
	assert.Equal(t, 100, cfg.RateLimit.MaxRequests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, SinkNone, cfg.Events.Sink)
	assert.Equal(t, "finledger:events", cfg.Events.Stream)
	assert.Equal(t, "finledger.events", cfg.Events.KafkaTopic)
}

func TestLoad_EventSinks(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("EVENTS_SINK", "kafka")
	t.Setenv("EVENTS_KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, SinkKafka, cfg.Events.Sink)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Events.KafkaBrokers)
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "0")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, StoreSQLite, cfg.Store.Driver)
	assert.Equal(t, 0, cfg.RateLimit.MaxRequests)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.test"), []byte("APP_ENV=test\nSERVER_PORT=4444\n"), 0o600))
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	chdir(t, nested)
	// godotenv does not override variables that are already set.
	t.Setenv("APP_ENV", "")
	require.NoError(t, os.Unsetenv("APP_ENV"))
	t.Setenv("SERVER_PORT", "")
	require.NoError(t, os.Unsetenv("SERVER_PORT"))

	cfg, err := Load(".env.test")
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, 4444, cfg.Server.Port)
}

func TestLoad_Invalid(t *testing.T) {
	chdir(t, t.TempDir())

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "mongo")
		_, err := Load()
		assert.ErrorContains(t, err, "unknown store driver")
	})

	t.Run("postgres without url", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "postgres")
		_, err := Load()
		assert.ErrorContains(t, err, "DATABASE_URL")
	})

	t.Run("redis sink without url", func(t *testing.T) {
		t.Setenv("EVENTS_SINK", "redis")
		_, err := Load()
		assert.ErrorContains(t, err, "EVENTS_REDIS_URL")
	})

	t.Run("kafka sink without brokers", func(t *testing.T) {
		t.Setenv("EVENTS_SINK", "kafka")
		_, err := Load()
		assert.ErrorContains(t, err, "EVENTS_KAFKA_BROKERS")
	})

	t.Run("unknown sink", func(t *testing.T) {
		t.Setenv("EVENTS_SINK", "nats")
		_, err := Load()
		assert.ErrorContains(t, err, "unknown event sink")
	})

	t.Run("bad port", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "70000")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "", maskValue(""))
	assert.Equal(t, "****", maskValue("short"))
	assert.Equal(t, "po****/db1", maskValue("postgres://u:p@host/db1"))
}

func TestFindEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"), []byte("X=1\n"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".env.dir"), 0o755))
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	chdir(t, nested)

	found, err := FindEnvFile(".env.local")
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(filepath.Join(dir, ".env.local"))
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(found)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = FindEnvFile(".env.dir")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = FindEnvFile(".env.missing")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
