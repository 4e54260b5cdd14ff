package queries

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrGetParcelTypeQueryIsNotConstructed = errors.New(
	"GetParcelTypeQuery must be created via NewGetParcelTypeQuery constructor",
)

// GetParcelTypeQuery retrieves a single parcel type by identifier.
type GetParcelTypeQuery struct {
	typeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetParcelTypeQuery creates a query for one parcel type.
// Validates that the identifier is valid.
func NewGetParcelTypeQuery(typeID kernel.UUID) (GetParcelTypeQuery, error) {
	if err := typeID.Validate(); err != nil {
		return GetParcelTypeQuery{}, err
	}

	return GetParcelTypeQuery{
		typeID: typeID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetParcelTypeQueryIsNotConstructed if validation fails.
func (q GetParcelTypeQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelTypeQueryIsNotConstructed)
}

// TypeID returns the identifier of the requested parcel type.
func (q GetParcelTypeQuery) TypeID() kernel.UUID {
	return q.typeID
}
