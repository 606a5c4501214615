package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/amirasaad/finledger/pkg/domain/events"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeStream struct {
	mu   sync.Mutex
	args []*redis.XAddArgs
	err  error
}

func (f *fakeStream) XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.args = append(f.args, a)
	return redis.NewStringResult("1-0", f.err)
}

type fakeWriter struct {
	mu     sync.Mutex
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func decodeEnvelope(t *testing.T, data []byte) Envelope {
	t.Helper()
	env, err := DecodeEnvelope(data)
	require.NoError(t, err)
	return env
}

func TestEncode(t *testing.T) {
	data, err := encode(events.Deposited{
		Cpf:         "111",
		Description: "salary",
		Amount:      decimal.RequireFromString("10.50"),
	})
	require.NoError(t, err)

	env := decodeEnvelope(t, data)
	assert.Equal(t, events.DepositedType, env.Type)
	assert.Equal(t, "111", env.Cpf)

	var payload events.Deposited
	require.NoError(t, json.Unmarshal(env.Payload, &payload))
	assert.Equal(t, "salary", payload.Description)
	assert.True(t, payload.Amount.Equal(decimal.RequireFromString("10.5")))

	id := uuid.New()
	data, err = encode(events.AccountCreated{CustomerID: id, Cpf: "111"})
	require.NoError(t, err)
	var created map[string]any
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, data).Payload, &created))
	assert.Equal(t, id.String(), created["customer_id"])
}

func TestDecodeEnvelope_Invalid(t *testing.T) {
	_, err := DecodeEnvelope([]byte("{"))
	assert.Error(t, err)
	_, err = DecodeEnvelope([]byte(`{"cpf":"111"}`))
	assert.ErrorContains(t, err, "missing type")
}

func TestRedisStreamSink_Publish(t *testing.T) {
	stream := &fakeStream{}
	sink := newRedisStreamSink(stream, "finledger:events", discardLogger())

	require.NoError(t, sink.Publish(context.Background(), events.Withdrawn{Cpf: "111", Amount: decimal.NewFromInt(5)}))

	require.Len(t, stream.args, 1)
	args := stream.args[0]
	assert.Equal(t, "finledger:events", args.Stream)
	assert.True(t, args.Approx)
	assert.EqualValues(t, DefaultStreamMaxLen, args.MaxLen)

	values, ok := args.Values.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, events.WithdrawnType, values["type"])
	env := decodeEnvelope(t, []byte(values["event"].(string)))
	assert.Equal(t, "111", env.Cpf)
	assert.NoError(t, sink.Close())
}

func TestRedisStreamSink_PublishError(t *testing.T) {
	stream := &fakeStream{err: errors.New("connection refused")}
	sink := newRedisStreamSink(stream, "s", discardLogger())

	err := sink.Publish(context.Background(), events.AccountCreated{Cpf: "111"})
	assert.ErrorContains(t, err, "connection refused")
}

func TestNewRedisStreamSink_InvalidURL(t *testing.T) {
	_, err := NewRedisStreamSink("not-a-url", "s", discardLogger())
	assert.ErrorContains(t, err, "invalid URL")

	_, err = NewRedisStreamSink("", "s", discardLogger())
	assert.Error(t, err)
}

func TestKafkaSink_Publish(t *testing.T) {
	w := &fakeWriter{}
	sink := newKafkaSink(w, discardLogger())

	require.NoError(t, sink.Publish(context.Background(), events.AccountUpdated{Cpf: "222", Name: "Bob"}))

	require.Len(t, w.msgs, 1)
	msg := w.msgs[0]
	assert.Equal(t, []byte("222"), msg.Key)
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "type", msg.Headers[0].Key)
	assert.Equal(t, events.AccountUpdatedType, string(msg.Headers[0].Value))
	assert.Equal(t, events.AccountUpdatedType, decodeEnvelope(t, msg.Value).Type)

	require.NoError(t, sink.Close())
	assert.True(t, w.closed)
}

func TestKafkaSink_PublishError(t *testing.T) {
	sink := newKafkaSink(&fakeWriter{err: errors.New("leader not available")}, discardLogger())
	err := sink.Publish(context.Background(), events.Deposited{Cpf: "111"})
	assert.ErrorContains(t, err, "leader not available")
}

func TestNewKafkaSink_RequiresBrokers(t *testing.T) {
	_, err := NewKafkaSink(nil, "topic", discardLogger())
	assert.Error(t, err)

	sink, err := NewKafkaSink([]string{"127.0.0.1:9092"}, "topic", discardLogger())
	require.NoError(t, err)
	assert.NoError(t, sink.Close())
}

func TestForward_PublishesEveryType(t *testing.T) {
	bus := NewWithMemory(discardLogger())
	w := &fakeWriter{}
	Forward(bus, newKafkaSink(w, discardLogger()))

	ctx := context.Background()
	require.NoError(t, bus.Emit(ctx, events.AccountCreated{Cpf: "1"}))
	require.NoError(t, bus.Emit(ctx, events.AccountUpdated{Cpf: "1"}))
	require.NoError(t, bus.Emit(ctx, events.Deposited{Cpf: "1"}))
	require.NoError(t, bus.Emit(ctx, events.Withdrawn{Cpf: "1"}))
	require.NoError(t, bus.Emit(ctx, events.WithdrawalRejected{Cpf: "1"}))

	assert.Len(t, w.msgs, len(events.Types()))
}

func TestForward_SinkErrorReachesEmitter(t *testing.T) {
	bus := NewWithMemory(discardLogger())
	Forward(bus, newKafkaSink(&fakeWriter{err: errors.New("down")}, discardLogger()))

	err := bus.Emit(context.Background(), events.Deposited{Cpf: "1"})
	assert.ErrorContains(t, err, "down")
}
