// Package events publishes registration lifecycle events to a message
// broker so downstream consumers (notifications, analytics) can react
// without coupling to the request path.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/elite-arena/apiserver/config"
	"github.com/elite-arena/apiserver/types"
)

// Backend delivers an encoded event to the named channel.
type Backend interface {
	Publish(ctx context.Context, channel string, data []byte, attrs map[string]string) error
	Close() error
}

// Publisher wraps a broker backend with the typed event API used by the
// registration workflow.
type Publisher struct {
	backend Backend
	channel string
}

// NewPublisher constructs a Publisher for the backend named in cfg, or nil
// when the backend is "none". A nil Publisher is safe to call.
func NewPublisher(ctx context.Context, cfg config.EventsConfig) (*Publisher, error) {
	var backend Backend
	var err error

	switch cfg.Backend {
	case "", "none":
		return nil, nil
	case "rabbitmq":
		backend, err = NewRabbitMQBackend(cfg.RabbitMQ)
	case "pubsub":
		backend, err = NewPubSubBackend(ctx, cfg.PubSub)
	default:
		return nil, fmt.Errorf("unknown events backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}

	return &Publisher{backend: backend, channel: cfg.Channel}, nil
}

// Publish wraps the registration in an event envelope and sends it.
// The event type is attached as a message attribute so consumers can filter
// without decoding the payload.
func (p *Publisher) Publish(ctx context.Context, eventType string, reg types.Registration, previous types.Status) error {
	if p == nil {
		return nil
	}

	event := types.RegistrationEvent{
		ID:             uuid.NewString(),
		Type:           eventType,
		Registration:   reg,
		PreviousStatus: previous,
		OccurredAt:     time.Now(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	attrs := map[string]string{"type": eventType}
	if err := p.backend.Publish(ctx, p.channel, data, attrs); err != nil {
		return fmt.Errorf("publish %s: %w", eventType, err)
	}
	return nil
}

// Close closes the underlying backend.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.backend.Close()
}
