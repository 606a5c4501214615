package eventbus

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/finledger/pkg/domain/events"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaSink writes ledger events to a Kafka topic, keyed by cpf so one
// customer's events stay ordered within a partition.
type KafkaSink struct {
	writer messageWriter
	logger *slog.Logger
}

// NewKafkaSink creates a sink writing to topic on brokers.
func NewKafkaSink(brokers []string, topic string, logger *slog.Logger) (*KafkaSink, error) {
	if len(brokers) == 0 || topic == "" {
		return nil, fmt.Errorf("kafka sink: brokers and topic are required")
	}
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireOne,
		Balancer:               &kafka.Hash{},
		WriteTimeout:           5 * time.Second,
	}
	return newKafkaSink(writer, logger.With("topic", topic)), nil
}

func newKafkaSink(writer messageWriter, logger *slog.Logger) *KafkaSink {
	return &KafkaSink{writer: writer, logger: logger.With("sink", "kafka")}
}

// Publish writes event synchronously.
func (s *KafkaSink) Publish(ctx context.Context, event events.Event) error {
	data, err := encode(event)
	if err != nil {
		return fmt.Errorf("kafka sink: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(event.CustomerCpf()),
		Value: data,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type())},
		},
	}
	if err := s.writer.WriteMessages(ctx, msg); err != nil {
		s.logger.Error("failed to publish event", "type", event.Type(), "error", err)
		return fmt.Errorf("kafka sink: publish failed: %w", err)
	}
	s.logger.Debug("event published", "type", event.Type())
	return nil
}

// Close flushes and closes the writer.
func (s *KafkaSink) Close() error {
	return s.writer.Close()
}

var _ Sink = (*KafkaSink)(nil)
