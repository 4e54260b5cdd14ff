package commands

import (
	"context"
	"errors"
	"log/slog"

	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/ports"
	"parcels/internal/pkg/errs"
)

// ErrSessionNotFound is returned when the session referenced by a creation
// payload does not exist. Such payloads cannot ever succeed and are dropped
// by the consumer.
var ErrSessionNotFound = errors.New("user session not found")

// CreateParcelCommandHandler handles the consumer-side creation of a parcel
// row from a broker payload, then chains a costing request for it.
//
// The chained publish is deliberately fire-and-forget: the parcel row is
// already committed, and losing the costing message only delays the cost
// until the reconciliation sweep re-enqueues it.
type CreateParcelCommandHandler struct {
	uowFactory CreateParcelUoWFactory
	publisher  ports.MessagePublisher
	logger     *slog.Logger
}

// NewCreateParcelCommandHandler creates a handler for parcel creation.
// Requires a CreateParcelUoWFactory for transactional persistence, a
// MessagePublisher for chaining the costing request, and a logger for
// reporting publish failures that are absorbed rather than returned.
func NewCreateParcelCommandHandler(
	uowFactory CreateParcelUoWFactory,
	publisher ports.MessagePublisher,
	logger *slog.Logger,
) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the parcel creation command.
// Resolves the owning session, persists the new parcel in uncosted state and
// publishes a costing request for it. Returns ErrSessionNotFound when the
// referenced session is unknown. A failure to publish the costing request is
// logged and absorbed; the committed row stays and the sweep picks it up.
func (h CreateParcelCommandHandler) Handle(ctx context.Context, command CreateParcelCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sessionRepo := uow.SessionRepository()
	parcelRepo := uow.ParcelRepository()

	_, err := sessionRepo.Get(ctx, command.SessionID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrSessionNotFound
	}
	if err != nil {
		return err
	}

	newParcel, err := parcel.NewParcel(
		command.ParcelID(),
		command.Name(),
		command.Weight(),
		command.PriceUSD(),
		command.TypeID(),
		command.SessionID(),
	)
	if err != nil {
		return err
	}

	if err = parcelRepo.Add(ctx, newParcel); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	msg := ports.CalculateCostMessage{PackageID: command.ParcelID().String()}
	if err = h.publisher.Publish(ctx, msg); err != nil {
		h.logger.WarnContext(ctx, "failed to publish costing request, sweep will retry",
			slog.String("parcel_id", command.ParcelID().String()),
			slog.Any("error", err))
	}

	return nil
}
