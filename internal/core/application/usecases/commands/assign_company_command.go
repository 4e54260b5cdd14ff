package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrAssignCompanyCommandIsNotConstructed = errors.New(
	"AssignCompanyCommand must be created via NewAssignCompanyCommand constructor",
)

// AssignCompanyCommand represents a shipping company's attempt to claim a
// parcel. Claims are first-come and final; competing claims for the same
// parcel are resolved by the handler.
type AssignCompanyCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	companyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignCompanyCommand creates a command for a company to claim a parcel.
// Validates that both identifiers are valid.
func NewAssignCompanyCommand(parcelID, companyID kernel.UUID) (AssignCompanyCommand, error) {
	assignCommand := AssignCompanyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setParcelID(parcelID),
		assignCommand.setCompanyID(companyID),
	); err != nil {
		return AssignCompanyCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignCompanyCommandIsNotConstructed if validation fails.
func (c AssignCompanyCommand) Validate() error {
	return c.guard.Validate(ErrAssignCompanyCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel being claimed.
func (c AssignCompanyCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// CompanyID returns the identifier of the claiming shipping company.
func (c AssignCompanyCommand) CompanyID() kernel.UUID {
	return c.companyID
}

func (c *AssignCompanyCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *AssignCompanyCommand) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}

	c.companyID = companyID
	return nil
}
