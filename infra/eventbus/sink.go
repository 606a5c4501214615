package eventbus

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/amirasaad/finledger/pkg/domain/events"
	"github.com/amirasaad/finledger/pkg/eventbus"
)

// Sink publishes committed ledger events to an external stream.
type Sink interface {
	Publish(ctx context.Context, event events.Event) error
	Close() error
}

// Envelope is the wire form of an event on external streams.
type Envelope struct {
	Type    string          `json:"type"`
	Cpf     string          `json:"cpf"`
	Payload json.RawMessage `json:"payload"`
}

func encode(event events.Event) ([]byte, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", event.Type(), err)
	}
	return json.Marshal(Envelope{Type: event.Type(), Cpf: event.CustomerCpf(), Payload: payload})
}

// DecodeEnvelope parses data written by a sink.
func DecodeEnvelope(data []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	if env.Type == "" {
		return Envelope{}, fmt.Errorf("decode envelope: missing type")
	}
	return env, nil
}

// Forward registers sink on bus for every ledger event type.
func Forward(bus eventbus.Bus, sink Sink) {
	for _, t := range events.Types() {
		bus.Register(t, sink.Publish)
	}
}
