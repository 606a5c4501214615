package eventbus

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/finledger/pkg/domain/events"
	"github.com/redis/go-redis/v9"
)

// DefaultStreamMaxLen caps the Redis stream; older entries are trimmed approximately.
const DefaultStreamMaxLen = 100_000

type streamAdder interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// RedisStreamSink appends ledger events to a Redis stream.
type RedisStreamSink struct {
	client streamAdder
	closer func() error
	stream string
	logger *slog.Logger
}

// NewRedisStreamSink connects to url (e.g. "redis://localhost:6379/0") and
// publishes to stream.
func NewRedisStreamSink(url, stream string, logger *slog.Logger) (*RedisStreamSink, error) {
	if url == "" || stream == "" {
		return nil, fmt.Errorf("redis sink: url and stream are required")
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis sink: invalid URL: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis sink: connection failed: %w", err)
	}
	sink := newRedisStreamSink(client, stream, logger)
	sink.closer = client.Close
	return sink, nil
}

func newRedisStreamSink(client streamAdder, stream string, logger *slog.Logger) *RedisStreamSink {
	return &RedisStreamSink{
		client: client,
		closer: func() error { return nil },
		stream: stream,
		logger: logger.With("sink", "redis", "stream", stream),
	}
}

// Publish appends event to the stream.
func (s *RedisStreamSink) Publish(ctx context.Context, event events.Event) error {
	data, err := encode(event)
	if err != nil {
		return fmt.Errorf("redis sink: %w", err)
	}
	id, err := s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		MaxLen: DefaultStreamMaxLen,
		Approx: true,
		Values: map[string]any{"type": event.Type(), "event": string(data)},
	}).Result()
	if err != nil {
		s.logger.Error("failed to publish event", "type", event.Type(), "error", err)
		return fmt.Errorf("redis sink: publish failed: %w", err)
	}
	s.logger.Debug("event published", "type", event.Type(), "id", id)
	return nil
}

// Close closes the Redis client.
func (s *RedisStreamSink) Close() error {
	return s.closer()
}

var _ Sink = (*RedisStreamSink)(nil)
