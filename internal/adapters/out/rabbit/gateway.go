// Package rabbit provides the RabbitMQ gateway for the parcel processing
// pipeline: topology declaration, persistent publishing and consumer channel
// setup over one shared connection.
package rabbit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"parcels/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Broker topology names. These are part of the wire contract shared with any
// other producer or consumer of the pipeline.
const (
	ExchangeName         = "package_exchange"
	QueueParcelCreate    = "package_create_queue"
	QueueParcelCalculate = "package_calculate_queue"
)

// Gateway owns one RabbitMQ connection and channel, declares the pipeline
// topology and publishes pipeline messages. It implements
// ports.MessagePublisher.
//
// The gateway is created on startup and closed on shutdown; handlers receive
// it by interface and never dial the broker themselves. Publishing is safe
// for concurrent use; a broken connection is re-dialed lazily on the next
// publish.
type Gateway struct {
	url    string
	logger *slog.Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewGateway dials the broker and declares the pipeline topology.
// Declaration is idempotent: re-declaring existing durable exchanges and
// queues with the same parameters is a no-op on the broker.
func NewGateway(url string, logger *slog.Logger) (*Gateway, error) {
	g := &Gateway{
		url:    url,
		logger: logger,
	}

	if err := g.connect(); err != nil {
		return nil, err
	}

	return g, nil
}

// connect dials, opens a channel and declares the topology.
// Callers must hold no lock; connect takes it.
func (g *Gateway) connect() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.connectLocked()
}

func (g *Gateway) connectLocked() error {
	conn, err := amqp.Dial(g.url)
	if err != nil {
		return fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("open rabbitmq channel: %w", err)
	}

	if err = declareTopology(ch); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return err
	}

	g.conn = conn
	g.ch = ch
	return nil
}

// declareTopology declares the direct exchange and both durable queues, and
// binds each queue under its routing key.
func declareTopology(ch *amqp.Channel) error {
	err := ch.ExchangeDeclare(
		ExchangeName,
		amqp.ExchangeDirect,
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare exchange %s: %w", ExchangeName, err)
	}

	bindings := []struct {
		queue      string
		routingKey string
	}{
		{QueueParcelCreate, ports.RoutingKeyParcelCreate},
		{QueueParcelCalculate, ports.RoutingKeyParcelCalculate},
	}

	for _, b := range bindings {
		_, err = ch.QueueDeclare(
			b.queue,
			true,  // durable
			false, // autoDelete
			false, // exclusive
			false, // noWait
			nil,
		)
		if err != nil {
			return fmt.Errorf("declare queue %s: %w", b.queue, err)
		}

		if err = ch.QueueBind(b.queue, b.routingKey, ExchangeName, false, nil); err != nil {
			return fmt.Errorf("bind queue %s: %w", b.queue, err)
		}
	}

	return nil
}

// Publish marshals the message and publishes it persistently under its
// routing key. A closed connection is re-dialed once before giving up.
func (g *Gateway) Publish(ctx context.Context, msg ports.Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal %s message: %w", msg.RoutingKey(), err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.conn == nil || g.conn.IsClosed() {
		g.logger.WarnContext(ctx, "rabbitmq connection lost, reconnecting")
		if err = g.connectLocked(); err != nil {
			return err
		}
	}

	err = g.ch.PublishWithContext(ctx,
		ExchangeName,
		msg.RoutingKey(),
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s: %w", msg.RoutingKey(), err)
	}

	return nil
}

// Consume opens a dedicated channel delivering messages from the named queue
// with manual acknowledgment. Each consumer gets its own channel so a
// consumer-side channel error cannot break publishing.
func (g *Gateway) Consume(queue string) (<-chan amqp.Delivery, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.conn == nil || g.conn.IsClosed() {
		if err := g.connectLocked(); err != nil {
			return nil, err
		}
	}

	ch, err := g.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open consumer channel for %s: %w", queue, err)
	}

	// One in-flight message per consumer keeps redelivery ordering simple.
	if err = ch.Qos(1, 0, false); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("set qos for %s: %w", queue, err)
	}

	deliveries, err := ch.Consume(
		queue,
		"",    // consumer tag, broker-generated
		false, // autoAck
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("consume %s: %w", queue, err)
	}

	return deliveries, nil
}

// Close shuts the channel and connection down.
func (g *Gateway) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.ch != nil {
		_ = g.ch.Close()
		g.ch = nil
	}
	if g.conn != nil {
		err := g.conn.Close()
		g.conn = nil
		return err
	}

	return nil
}
