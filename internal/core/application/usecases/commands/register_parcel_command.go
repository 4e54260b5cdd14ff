package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var (
	ErrRegisterParcelCommandIsNotConstructed = errors.New(
		"RegisterParcelCommand must be created via NewRegisterParcelCommand constructor",
	)
	ErrNameIsRequired  = errors.New("name is required")
	ErrWeightIsInvalid = errors.New("weight must be greater than 0")
	ErrPriceIsInvalid  = errors.New("price_usd must not be negative")
)

// RegisterParcelCommand represents a request to register a new parcel for
// processing. It carries the registration form plus the identifier of the
// user session that owns the parcel.
//
// Example:
//
//	cmd, err := NewRegisterParcelCommand("Laptop", 2.5, 1200, typeID, sessionID)
//	if err != nil {
//	    return fmt.Errorf("invalid registration data: %w", err)
//	}
//
//	handler := NewRegisterParcelCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register parcel: %w", err)
//	}
type RegisterParcelCommand struct { //nolint:recvcheck //using for validation
	name      string
	weight    float64
	priceUSD  float64
	typeID    kernel.UUID
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRegisterParcelCommand creates a command to register a new parcel.
// Validates that the name is present, the weight is positive, the declared
// value is non-negative and both identifiers are valid.
func NewRegisterParcelCommand(
	name string,
	weight float64,
	priceUSD float64,
	typeID kernel.UUID,
	sessionID kernel.UUID,
) (RegisterParcelCommand, error) {
	registerCommand := RegisterParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		registerCommand.setName(name),
		registerCommand.setWeight(weight),
		registerCommand.setPriceUSD(priceUSD),
		registerCommand.setTypeID(typeID),
		registerCommand.setSessionID(sessionID),
	); err != nil {
		return RegisterParcelCommand{}, err
	}

	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterParcelCommandIsNotConstructed if validation fails.
func (c RegisterParcelCommand) Validate() error {
	return c.guard.Validate(ErrRegisterParcelCommandIsNotConstructed)
}

// Name returns the descriptive parcel name.
func (c RegisterParcelCommand) Name() string {
	return c.name
}

// Weight returns the parcel weight in kilograms.
func (c RegisterParcelCommand) Weight() float64 {
	return c.weight
}

// PriceUSD returns the declared value of the contents in US dollars.
func (c RegisterParcelCommand) PriceUSD() float64 {
	return c.priceUSD
}

// TypeID returns the identifier of the requested parcel type.
func (c RegisterParcelCommand) TypeID() kernel.UUID {
	return c.typeID
}

// SessionID returns the identifier of the owning user session.
func (c RegisterParcelCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c *RegisterParcelCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterParcelCommand) setWeight(weight float64) error {
	if weight <= 0 {
		return ErrWeightIsInvalid
	}

	c.weight = weight
	return nil
}

func (c *RegisterParcelCommand) setPriceUSD(priceUSD float64) error {
	if priceUSD < 0 {
		return ErrPriceIsInvalid
	}

	c.priceUSD = priceUSD
	return nil
}

func (c *RegisterParcelCommand) setTypeID(typeID kernel.UUID) error {
	if err := typeID.Validate(); err != nil {
		return err
	}

	c.typeID = typeID
	return nil
}

func (c *RegisterParcelCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
