package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	infra_eventbus "github.com/amirasaad/finledger/infra/eventbus"
	"github.com/segmentio/kafka-go"
)

// Tail consumes the ledger event topic and logs every envelope until ctx is done.
func Tail(ctx context.Context, logger *slog.Logger) error {
	brokers := strings.TrimSpace(os.Getenv("EVENTS_KAFKA_BROKERS"))
	if brokers == "" {
		brokers = "localhost:9092"
	}
	topic := strings.TrimSpace(os.Getenv("EVENTS_KAFKA_TOPIC"))
	if topic == "" {
		topic = "finledger.events"
	}
	groupID := strings.TrimSpace(os.Getenv("GROUP_ID"))
	if groupID == "" {
		groupID = "finledger-tail"
	}

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     strings.Split(brokers, ","),
		GroupID:     groupID,
		Topic:       topic,
		StartOffset: kafka.FirstOffset,
		MinBytes:    1,
		MaxBytes:    10e6,
		MaxWait:     500 * time.Millisecond,
	})
	defer func() { _ = r.Close() }()

	logger.Info("tailing ledger events", "brokers", brokers, "topic", topic, "group", groupID)
	for {
		msg, err := r.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			logger.Error("fetch failed", "error", err)
			return err
		}
		env, err := infra_eventbus.DecodeEnvelope(msg.Value)
		if err != nil {
			logger.Warn("skipping malformed message", "offset", msg.Offset, "error", err)
		} else {
			logger.Info("event",
				"type", env.Type,
				"cpf", env.Cpf,
				"partition", msg.Partition,
				"offset", msg.Offset,
				"payload", string(env.Payload),
			)
		}
		if err := r.CommitMessages(ctx, msg); err != nil {
			logger.Error("commit failed", "error", err)
			return err
		}
	}
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := Tail(ctx, logger); err != nil {
		os.Exit(1)
	}
}
