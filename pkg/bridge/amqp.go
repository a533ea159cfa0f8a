package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/wanderlabs/pushkit/pkg/richpush"
)

// AMQPSourceConfig configures the queue-backed delivery source.
type AMQPSourceConfig struct {
	URL           string `env:"AMQP_URL,required"`
	Queue         string `env:"AMQP_PUSH_QUEUE" envDefault:"push.envelopes"`
	PrefetchCount int    `env:"AMQP_PREFETCH" envDefault:"8"`
}

// AMQPSource consumes push envelopes from a queue and feeds them into the
// bridge's background path. It is the out-of-focus execution context of
// this rendition: a separate consumer process sharing the same normalizer
// and store code instead of duplicating them.
type AMQPSource struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	logger  *slog.Logger
}

// AMQPOption configures an AMQPSource.
type AMQPOption func(*AMQPSource)

// WithAMQPLogger sets the logger for the AMQPSource.
func WithAMQPLogger(logger *slog.Logger) AMQPOption {
	return func(s *AMQPSource) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewAMQPSource dials the broker, opens a channel with the configured
// prefetch, and declares the durable envelope queue.
func NewAMQPSource(cfg AMQPSourceConfig, opts ...AMQPOption) (*AMQPSource, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	if err := ch.Qos(cfg.PrefetchCount, 0, false); err != nil {
		_ = conn.Close()
		return nil, err
	}

	if _, err := ch.QueueDeclare(cfg.Queue, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, err
	}

	s := &AMQPSource{
		conn:    conn,
		channel: ch,
		queue:   cfg.Queue,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Consume blocks, feeding queued envelopes into the bridge's background
// path until ctx is cancelled or the delivery channel closes.
//
// Undecodable message bodies and malformed rich payloads are rejected
// without requeue; anything else is acked, including storage-degraded
// saves, which the inbox already logged.
func (s *AMQPSource) Consume(ctx context.Context, b *Bridge) error {
	deliveries, err := s.channel.Consume(s.queue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}
			s.handle(ctx, b, d)
		}
	}
}

func (s *AMQPSource) handle(ctx context.Context, b *Bridge, d amqp.Delivery) {
	var env richpush.Envelope
	if err := json.Unmarshal(d.Body, &env); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "rejecting undecodable envelope",
			slog.Any("error", err),
		)
		_ = d.Nack(false, false)
		return
	}

	if _, err := b.Background(ctx, env); err != nil {
		if errors.Is(err, richpush.ErrMalformedPayload) {
			_ = d.Nack(false, false)
			return
		}
		s.logger.LogAttrs(ctx, slog.LevelError, "background delivery failed",
			slog.Any("error", err),
		)
		_ = d.Nack(false, true)
		return
	}
	_ = d.Ack(false)
}

// Close shuts down the channel and connection.
func (s *AMQPSource) Close() error {
	if err := s.channel.Close(); err != nil {
		_ = s.conn.Close()
		return err
	}
	return s.conn.Close()
}
