package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// CreateParcelCommand represents a consumer-side request to create a parcel
// row from broker payload data. The caller supplies the identifier the new
// parcel will carry, so the chained costing message can reference the row
// without reading it back. The identifier is minted per delivery; a payload
// redelivered after a failed acknowledgment creates a second row, which
// at-least-once delivery accepts.
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	name      string
	weight    float64
	priceUSD  float64
	typeID    kernel.UUID
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to materialize a parcel from
// broker payload data. Field validation mirrors NewRegisterParcelCommand,
// plus the pre-assigned parcel identifier must be valid.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	name string,
	weight float64,
	priceUSD float64,
	typeID kernel.UUID,
	sessionID kernel.UUID,
) (CreateParcelCommand, error) {
	createCommand := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		createCommand.setParcelID(parcelID),
		createCommand.setName(name),
		createCommand.setWeight(weight),
		createCommand.setPriceUSD(priceUSD),
		createCommand.setTypeID(typeID),
		createCommand.setSessionID(sessionID),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return createCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateParcelCommandIsNotConstructed if validation fails.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier the created parcel will carry.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Name returns the descriptive parcel name.
func (c CreateParcelCommand) Name() string {
	return c.name
}

// Weight returns the parcel weight in kilograms.
func (c CreateParcelCommand) Weight() float64 {
	return c.weight
}

// PriceUSD returns the declared value of the contents in US dollars.
func (c CreateParcelCommand) PriceUSD() float64 {
	return c.priceUSD
}

// TypeID returns the identifier of the requested parcel type.
func (c CreateParcelCommand) TypeID() kernel.UUID {
	return c.typeID
}

// SessionID returns the identifier of the owning user session.
func (c CreateParcelCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c *CreateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *CreateParcelCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateParcelCommand) setWeight(weight float64) error {
	if weight <= 0 {
		return ErrWeightIsInvalid
	}

	c.weight = weight
	return nil
}

func (c *CreateParcelCommand) setPriceUSD(priceUSD float64) error {
	if priceUSD < 0 {
		return ErrPriceIsInvalid
	}

	c.priceUSD = priceUSD
	return nil
}

func (c *CreateParcelCommand) setTypeID(typeID kernel.UUID) error {
	if err := typeID.Validate(); err != nil {
		return err
	}

	c.typeID = typeID
	return nil
}

func (c *CreateParcelCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
