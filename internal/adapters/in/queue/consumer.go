// Package queue contains the broker-facing consumer for the parcel
// processing pipeline. It decodes deliveries into the closed message union,
// dispatches them to command handlers and applies the acknowledgment policy.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

// errUnknownRoutingKey marks deliveries that no pipeline stage understands.
var errUnknownRoutingKey = errors.New("unknown routing key")

// deliverySource opens a manual-ack delivery stream for a queue.
// Implemented by the rabbit gateway.
type deliverySource interface {
	Consume(queue string) (<-chan amqp.Delivery, error)
}

// CreateParcelHandler handles decoded parcel creation payloads.
// Implemented by commands.CreateParcelCommandHandler.
type CreateParcelHandler interface {
	Handle(ctx context.Context, cmd commands.CreateParcelCommand) error
}

// CalculateCostHandler handles decoded costing payloads.
// Implemented by commands.CalculateShippingCostCommandHandler.
type CalculateCostHandler interface {
	Handle(ctx context.Context, cmd commands.CalculateShippingCostCommand) error
}

// Consumer drains both pipeline queues and routes each delivery to its
// command handler.
//
// Acknowledgment policy:
//   - malformed payloads and unknown routing keys are acked and dropped;
//     redelivery cannot fix them
//   - payloads referencing missing sessions or parcels are acked and
//     dropped for the same reason
//   - transient handler failures are nacked with requeue once; a redelivered
//     message that fails again is acked and dropped so a poison message
//     cannot wedge the queue
type Consumer struct {
	source           deliverySource
	createHandler    CreateParcelHandler
	calculateHandler CalculateCostHandler
	logger           *slog.Logger

	createQueue    string
	calculateQueue string
}

// NewConsumer creates a pipeline consumer reading from the two named queues.
func NewConsumer(
	source deliverySource,
	createHandler CreateParcelHandler,
	calculateHandler CalculateCostHandler,
	createQueue string,
	calculateQueue string,
	logger *slog.Logger,
) *Consumer {
	return &Consumer{
		source:           source,
		createHandler:    createHandler,
		calculateHandler: calculateHandler,
		createQueue:      createQueue,
		calculateQueue:   calculateQueue,
		logger:           logger,
	}
}

// Run consumes both queues until the context is canceled or the broker
// closes the delivery streams. It blocks; callers run it in a goroutine.
func (c *Consumer) Run(ctx context.Context) error {
	createDeliveries, err := c.source.Consume(c.createQueue)
	if err != nil {
		return fmt.Errorf("consume %s: %w", c.createQueue, err)
	}

	calculateDeliveries, err := c.source.Consume(c.calculateQueue)
	if err != nil {
		return fmt.Errorf("consume %s: %w", c.calculateQueue, err)
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		c.drain(ctx, createDeliveries)
	}()
	go func() {
		defer wg.Done()
		c.drain(ctx, calculateDeliveries)
	}()

	wg.Wait()
	return ctx.Err()
}

func (c *Consumer) drain(ctx context.Context, deliveries <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-deliveries:
			if !ok {
				return
			}
			c.HandleDelivery(ctx, d)
		}
	}
}

// HandleDelivery processes one delivery end to end, including its
// acknowledgment. Exported for direct use in tests.
func (c *Consumer) HandleDelivery(ctx context.Context, d amqp.Delivery) {
	msg, err := decodeMessage(d.RoutingKey, d.Body)
	if err != nil {
		c.logger.ErrorContext(ctx, "dropping undecodable delivery",
			slog.String("routing_key", d.RoutingKey),
			slog.Any("error", err))
		c.ack(ctx, d)
		return
	}

	err = c.dispatch(ctx, msg)
	switch {
	case err == nil:
		c.ack(ctx, d)

	case errors.Is(err, commands.ErrSessionNotFound),
		errors.Is(err, commands.ErrParcelNotFound):
		// The referenced row does not exist; retrying cannot create it.
		c.logger.ErrorContext(ctx, "dropping delivery with broken reference",
			slog.String("routing_key", d.RoutingKey),
			slog.Any("error", err))
		c.ack(ctx, d)

	case d.Redelivered:
		c.logger.ErrorContext(ctx, "dropping delivery after failed retry",
			slog.String("routing_key", d.RoutingKey),
			slog.Any("error", err))
		c.ack(ctx, d)

	default:
		c.logger.WarnContext(ctx, "requeueing failed delivery",
			slog.String("routing_key", d.RoutingKey),
			slog.Any("error", err))
		if nackErr := d.Nack(false, true); nackErr != nil {
			c.logger.ErrorContext(ctx, "failed to nack delivery", slog.Any("error", nackErr))
		}
	}
}

// dispatch routes a decoded message to its handler. The type switch is
// exhaustive over the message union; decodeMessage cannot produce anything
// else.
func (c *Consumer) dispatch(ctx context.Context, msg ports.Message) error {
	switch m := msg.(type) {
	case ports.CreateParcelMessage:
		cmd, err := buildCreateCommand(m)
		if err != nil {
			c.logger.ErrorContext(ctx, "dropping invalid creation payload", slog.Any("error", err))
			return nil
		}
		return c.createHandler.Handle(ctx, cmd)

	case ports.CalculateCostMessage:
		cmd, err := buildCalculateCommand(m)
		if err != nil {
			c.logger.ErrorContext(ctx, "dropping invalid costing payload", slog.Any("error", err))
			return nil
		}
		return c.calculateHandler.Handle(ctx, cmd)

	default:
		return fmt.Errorf("%w: no handler for %T", errUnknownRoutingKey, msg)
	}
}

func (c *Consumer) ack(ctx context.Context, d amqp.Delivery) {
	if err := d.Ack(false); err != nil {
		c.logger.ErrorContext(ctx, "failed to ack delivery", slog.Any("error", err))
	}
}

// decodeMessage maps a routing key to its message type and unmarshals the
// payload. Unknown keys and malformed JSON are permanent errors.
func decodeMessage(routingKey string, body []byte) (ports.Message, error) {
	switch routingKey {
	case ports.RoutingKeyParcelCreate:
		var msg ports.CreateParcelMessage
		if err := json.Unmarshal(body, &msg); err != nil {
			return nil, fmt.Errorf("decode %s payload: %w", routingKey, err)
		}
		return msg, nil

	case ports.RoutingKeyParcelCalculate:
		var msg ports.CalculateCostMessage
		if err := json.Unmarshal(body, &msg); err != nil {
			return nil, fmt.Errorf("decode %s payload: %w", routingKey, err)
		}
		return msg, nil

	default:
		return nil, fmt.Errorf("%w: %s", errUnknownRoutingKey, routingKey)
	}
}

// buildCreateCommand validates wire identifiers and assembles the creation
// command with a freshly generated parcel identifier.
func buildCreateCommand(msg ports.CreateParcelMessage) (commands.CreateParcelCommand, error) {
	typeID, err := kernel.UUIDFromString(msg.PackageData.PackageTypeID)
	if err != nil {
		return commands.CreateParcelCommand{}, fmt.Errorf("package_type_id: %w", err)
	}

	sessionID, err := kernel.UUIDFromString(msg.PackageData.UserSessionID)
	if err != nil {
		return commands.CreateParcelCommand{}, fmt.Errorf("user_session_id: %w", err)
	}

	return commands.NewCreateParcelCommand(
		kernel.NewUUID(),
		msg.PackageData.Name,
		msg.PackageData.Weight,
		msg.PackageData.PriceUSD,
		typeID,
		sessionID,
	)
}

func buildCalculateCommand(msg ports.CalculateCostMessage) (commands.CalculateShippingCostCommand, error) {
	parcelID, err := kernel.UUIDFromString(msg.PackageID)
	if err != nil {
		return commands.CalculateShippingCostCommand{}, fmt.Errorf("package_id: %w", err)
	}

	return commands.NewCalculateShippingCostCommand(parcelID)
}
