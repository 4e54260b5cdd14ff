package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrCalculateShippingCostCommandIsNotConstructed = errors.New(
	"CalculateShippingCostCommand must be created via NewCalculateShippingCostCommand constructor",
)

// CalculateShippingCostCommand represents a request to compute and store the
// shipping cost for an existing parcel. Triggered by the costing queue and by
// the reconciliation sweep.
type CalculateShippingCostCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCalculateShippingCostCommand creates a command to cost the given parcel.
// Validates that the parcel identifier is valid.
func NewCalculateShippingCostCommand(parcelID kernel.UUID) (CalculateShippingCostCommand, error) {
	calculateCommand := CalculateShippingCostCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := calculateCommand.setParcelID(parcelID); err != nil {
		return CalculateShippingCostCommand{}, err
	}

	return calculateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCalculateShippingCostCommandIsNotConstructed if validation fails.
func (c CalculateShippingCostCommand) Validate() error {
	return c.guard.Validate(ErrCalculateShippingCostCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to cost.
func (c CalculateShippingCostCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c *CalculateShippingCostCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}
