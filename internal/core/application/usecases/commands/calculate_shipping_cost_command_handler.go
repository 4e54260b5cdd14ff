package commands

import (
	"context"
	"errors"
	"log/slog"

	"parcels/internal/core/domain/services"
	"parcels/internal/core/ports"
	"parcels/internal/pkg/errs"
)

// ErrParcelNotFound is returned when a costing request references a parcel
// that does not exist.
var ErrParcelNotFound = errors.New("parcel not found")

// CalculateShippingCostCommandHandler computes the shipping cost for a parcel
// and stores it through a set-once conditional update.
//
// The rate is fetched before the transaction opens; RateProvider never fails,
// so a costing request always produces a number. If the parcel turns out to
// be costed already, the handler succeeds without touching the row, which
// makes redelivered and sweep-duplicated requests harmless.
type CalculateShippingCostCommandHandler struct {
	uowFactory   ParcelUoWFactory
	rateProvider ports.RateProvider
	calculator   services.ShippingCostCalculator
	logger       *slog.Logger
}

// NewCalculateShippingCostCommandHandler creates a handler for shipping cost
// calculation. Requires a ParcelUoWFactory for transactional persistence and
// a RateProvider for the current USD to RUB rate.
func NewCalculateShippingCostCommandHandler(
	uowFactory ParcelUoWFactory,
	rateProvider ports.RateProvider,
	logger *slog.Logger,
) CalculateShippingCostCommandHandler {
	return CalculateShippingCostCommandHandler{
		uowFactory:   uowFactory,
		rateProvider: rateProvider,
		calculator:   services.NewShippingCostCalculator(),
		logger:       logger,
	}
}

// Handle processes the shipping cost calculation command.
// Loads the parcel, computes the cost from the current rate and stores it if
// the parcel is still uncosted. Returns ErrParcelNotFound when the parcel
// does not exist.
func (h CalculateShippingCostCommandHandler) Handle(ctx context.Context, command CalculateShippingCostCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	rate := h.rateProvider.Rate(ctx)

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()

	p, err := parcelRepo.Get(ctx, command.ParcelID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrParcelNotFound
	}
	if err != nil {
		return err
	}

	cost := h.calculator.Calculate(p.Weight(), p.PriceUSD(), rate)

	updated, err := parcelRepo.SetShippingCost(ctx, command.ParcelID(), cost)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if !updated {
		h.logger.DebugContext(ctx, "parcel already costed, skipping",
			slog.String("parcel_id", command.ParcelID().String()))
	}

	return nil
}
