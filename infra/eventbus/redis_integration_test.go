//go:build integration

package eventbus

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/amirasaad/finledger/pkg/domain/events"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startRedis starts a Redis container and returns its URL.
func startRedis(tb testing.TB) string {
	tb.Helper()
	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7.0.5",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(tb, err)
	tb.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(tb, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(tb, err)
	return "redis://" + host + ":" + port.Port()
}

func TestRedisStreamSink_Integration(t *testing.T) {
	url := startRedis(t)
	ctx := context.Background()

	sink, err := NewRedisStreamSink(url, "finledger:events", discardLogger())
	require.NoError(t, err)
	defer func() { _ = sink.Close() }()

	bus := NewWithMemory(discardLogger())
	Forward(bus, sink)
	require.NoError(t, bus.Emit(ctx, events.Deposited{Cpf: "111", Amount: decimal.NewFromInt(100)}))
	require.NoError(t, bus.Emit(ctx, events.Withdrawn{Cpf: "111", Amount: decimal.NewFromInt(40)}))

	opt, err := redis.ParseURL(url)
	require.NoError(t, err)
	client := redis.NewClient(opt)
	defer func() { _ = client.Close() }()

	msgs, err := client.XRange(ctx, "finledger:events", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(msgs[1].Values["event"].(string)), &env))
	assert.Equal(t, events.WithdrawnType, env.Type)
	assert.Equal(t, "111", env.Cpf)
}
