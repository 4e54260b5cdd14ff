// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrGetParcelQueryIsNotConstructed = errors.New(
	"GetParcelQuery must be created via NewGetParcelQuery constructor",
)

// GetParcelQuery retrieves one parcel belonging to a user session.
// The session identifier scopes the lookup: a parcel registered by another
// session is reported as not found, not as forbidden.
type GetParcelQuery struct {
	parcelID  kernel.UUID
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetParcelQuery creates a query for a single parcel within a session.
// Validates that both identifiers are valid.
func NewGetParcelQuery(parcelID, sessionID kernel.UUID) (GetParcelQuery, error) {
	if err := errors.Join(parcelID.Validate(), sessionID.Validate()); err != nil {
		return GetParcelQuery{}, err
	}

	return GetParcelQuery{
		parcelID:  parcelID,
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetParcelQueryIsNotConstructed if validation fails.
func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}

// ParcelID returns the identifier of the requested parcel.
func (q GetParcelQuery) ParcelID() kernel.UUID {
	return q.parcelID
}

// SessionID returns the identifier of the session scoping the lookup.
func (q GetParcelQuery) SessionID() kernel.UUID {
	return q.sessionID
}

// GetParcelQueryResponse is the detailed read model for one parcel.
// ShippingCost carries a display string: either a formatted ruble amount or
// the fixed "not calculated yet" sentinel while costing is pending.
type GetParcelQueryResponse struct {
	ID           kernel.UUID
	Name         string
	Weight       float64
	PriceUSD     float64
	TypeID       kernel.UUID
	TypeName     string
	ShippingCost string
	CompanyID    *kernel.UUID
}
