package commands

import (
	"context"
	"errors"
	"fmt"

	"parcels/internal/core/ports"
	"parcels/internal/pkg/errs"
)

// ErrParcelTypeNotFound is returned when the requested parcel type does not
// exist in the reference data.
var ErrParcelTypeNotFound = errors.New("parcel type not found")

// RegisterParcelCommandHandler handles the synchronous half of parcel
// registration. It verifies the requested parcel type exists and publishes the
// registration payload to the broker; the row itself is created later by the
// consumer. A successful Handle therefore means "accepted for processing",
// not "stored".
//
// Example:
//
//	handler := NewRegisterParcelCommandHandler(uowFactory, publisher)
//	cmd, _ := NewRegisterParcelCommand("Laptop", 2.5, 1200, typeID, sessionID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrParcelTypeNotFound):
//	    // reject with 404
//	case err != nil:
//	    // broker or storage failure, reject with 500
//	default:
//	    // accepted, parcel will appear shortly
//	}
type RegisterParcelCommandHandler struct {
	uowFactory ParcelTypeUoWFactory
	publisher  ports.MessagePublisher
}

// NewRegisterParcelCommandHandler creates a handler for parcel registration.
// Requires a ParcelTypeUoWFactory for the type existence check and a
// MessagePublisher for handing the registration to the processing pipeline.
func NewRegisterParcelCommandHandler(
	uowFactory ParcelTypeUoWFactory,
	publisher ports.MessagePublisher,
) RegisterParcelCommandHandler {
	return RegisterParcelCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the parcel registration command.
// Checks that the requested parcel type exists, then publishes the
// registration data under the creation routing key. Returns
// ErrParcelTypeNotFound when the type is unknown; a publish failure is
// returned as-is so the caller can reject the request.
func (h RegisterParcelCommandHandler) Handle(ctx context.Context, command RegisterParcelCommand) error {
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

	typeRepo := uow.ParcelTypeRepository()

	_, err := typeRepo.Get(ctx, command.TypeID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrParcelTypeNotFound
	}
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	msg := ports.CreateParcelMessage{
		PackageData: ports.ParcelData{
			Name:          command.Name(),
			Weight:        command.Weight(),
			PriceUSD:      command.PriceUSD(),
			PackageTypeID: command.TypeID().String(),
			UserSessionID: command.SessionID().String(),
		},
	}

	if err = h.publisher.Publish(ctx, msg); err != nil {
		return fmt.Errorf("publish parcel registration: %w", err)
	}

	return nil
}
