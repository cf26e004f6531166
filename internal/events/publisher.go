package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=publisher.go -destination=../mocks/publisher_mocks.go -package=mocks

// Publisher broadcasts domain events to interested consumers. Publishing is
// best-effort: callers log failures and carry on.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload interface{}) error
	Close()
}

// NATSConfig holds connection settings for the NATS publisher
type NATSConfig struct {
	URL           string
	MaxReconnects int
	ReconnectWait time.Duration
}

// DefaultNATSConfig returns settings suitable for a local NATS server
func DefaultNATSConfig() NATSConfig {
	return NATSConfig{
		URL:           nats.DefaultURL,
		MaxReconnects: -1,
		ReconnectWait: 2 * time.Second,
	}
}

// NATSPublisher publishes JSON-encoded events on NATS subjects
type NATSPublisher struct {
	nc *nats.Conn
}

// NewNATSPublisher connects to NATS and returns a publisher
func NewNATSPublisher(cfg NATSConfig) (*NATSPublisher, error) {
	opts := []nats.Option{
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logrus.WithError(err).Warn("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logrus.WithField("url", nc.ConnectedUrl()).Info("NATS reconnected")
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	return &NATSPublisher{nc: nc}, nil
}

// Publish JSON-encodes the payload and publishes it on the topic
func (p *NATSPublisher) Publish(ctx context.Context, topic string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := p.nc.Publish(topic, data); err != nil {
		return fmt.Errorf("publish to NATS: %w", err)
	}
	return nil
}

// Close drains the connection
func (p *NATSPublisher) Close() {
	if p.nc != nil {
		_ = p.nc.Drain()
	}
}
