// Package rabbitmq publishes consent events to a topic exchange.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/dtroode/rewards-server/internal/logger"
	"github.com/dtroode/rewards-server/internal/model"
)

const (
	// RoutingKeyConsentGranted is used when consent becomes active.
	RoutingKeyConsentGranted = "consent.granted"
	// RoutingKeyConsentWithdrawn is used when consent is withdrawn.
	RoutingKeyConsentWithdrawn = "consent.withdrawn"
)

var _ model.EventPublisher = (*Producer)(nil)

type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type connection interface {
	channel() (channel, error)
	Close() error
}

type amqpConnection struct {
	*amqp.Connection
}

func (c amqpConnection) channel() (channel, error) {
	ch, err := c.Connection.Channel()
	if err != nil {
		return nil, err
	}
	return ch, nil
}

// Producer publishes events to one durable topic exchange.
type Producer struct {
	mu       sync.Mutex
	conn     connection
	ch       channel
	exchange string
	logger   *logger.Logger
}

// NewProducer dials the broker and declares the exchange.
func NewProducer(amqpURL, exchange string, logger *logger.Logger) (*Producer, error) {
	cleanURL, err := sanitizeURL(amqpURL)
	if err != nil {
		return nil, err
	}

	conn, err := amqp.DialConfig(cleanURL, amqp.Config{Dial: amqp.DefaultDial(10 * time.Second)})
	if err != nil {
		return nil, fmt.Errorf("failed to dial amqp: %w", err)
	}

	p, err := newProducer(amqpConnection{conn}, exchange, logger)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return p, nil
}

func newProducer(conn connection, exchange string, logger *logger.Logger) (*Producer, error) {
	p := &Producer{
		conn:     conn,
		exchange: exchange,
		logger:   logger,
	}
	if err := p.openChannel(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Producer) openChannel() error {
	ch, err := p.conn.channel()
	if err != nil {
		return fmt.Errorf("failed to open amqp channel: %w", err)
	}
	if err := ch.ExchangeDeclare(p.exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return fmt.Errorf("failed to declare exchange %q: %w", p.exchange, err)
	}
	p.ch = ch
	return nil
}

// PublishConsentChanged sends the event as JSON. A closed channel is reopened once.
func (p *Producer) PublishConsentChanged(ctx context.Context, event model.ConsentChanged) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode consent event: %w", err)
	}

	routingKey := RoutingKeyConsentWithdrawn
	if event.ConsentGiven {
		routingKey = RoutingKeyConsentGranted
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID.String(),
		Timestamp:    event.OccurredAt,
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg)
	if errors.Is(err, amqp.ErrClosed) {
		p.logger.Warn("amqp channel closed, reopening", "exchange", p.exchange)
		if reopenErr := p.openChannel(); reopenErr != nil {
			return reopenErr
		}
		err = p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg)
	}
	if err != nil {
		return fmt.Errorf("failed to publish consent event: %w", err)
	}

	p.logger.Debug("consent event published", "exchange", p.exchange, "routing_key", routingKey, "event_id", event.EventID)
	return nil
}

func (p *Producer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	if p.ch != nil {
		errs = append(errs, p.ch.Close())
	}
	if p.conn != nil {
		errs = append(errs, p.conn.Close())
	}
	return errors.Join(errs...)
}

// Fallback drops events. It stands in when the broker is not configured or unreachable.
type Fallback struct {
	logger *logger.Logger
}

var _ model.EventPublisher = (*Fallback)(nil)

func NewFallback(logger *logger.Logger) *Fallback {
	return &Fallback{logger: logger}
}

func (f *Fallback) PublishConsentChanged(_ context.Context, event model.ConsentChanged) error {
	f.logger.Debug("event broker disabled, dropping consent event", "event_id", event.EventID)
	return nil
}

func sanitizeURL(raw string) (string, error) {
	clean := strings.Trim(strings.TrimSpace(raw), "\"'")
	parsed, err := url.Parse(clean)
	if err != nil {
		return "", fmt.Errorf("failed to parse amqp url: %w", err)
	}
	if parsed.Scheme != "amqp" && parsed.Scheme != "amqps" {
		return "", errors.New("amqp url scheme must be amqp:// or amqps://")
	}
	return clean, nil
}
