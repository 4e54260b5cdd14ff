package queries

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrGetParcelTypesQueryIsNotConstructed = errors.New(
	"GetParcelTypesQuery must be created via NewGetParcelTypesQuery constructor",
)

// GetParcelTypesQuery retrieves the parcel type reference data.
// This is a parameterless query that fetches the complete type list.
type GetParcelTypesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetParcelTypesQuery creates a query to retrieve all parcel types.
func NewGetParcelTypesQuery() GetParcelTypesQuery {
	return GetParcelTypesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetParcelTypesQueryIsNotConstructed if validation fails.
func (q GetParcelTypesQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelTypesQueryIsNotConstructed)
}

// GetParcelTypesQueryResponse represents one parcel type in the read model.
type GetParcelTypesQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Description *string
}
