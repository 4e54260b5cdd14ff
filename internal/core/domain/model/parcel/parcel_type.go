package parcel

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
)

// ErrParcelTypeIsNotConstructed is returned when a ParcelType instance was not
// created through NewParcelType.
var ErrParcelTypeIsNotConstructed = errors.New("ParcelType must be created via NewParcelType")

// ParcelType is reference data describing a kind of parcel (documents,
// clothing, electronics, ...). Types are seeded out of band and read-only from
// the core's perspective.
type ParcelType struct {
	id          kernel.UUID
	name        string
	description *string

	isConstructed bool
}

// NewParcelType creates a parcel type. The name is required and unique across
// types; the description is optional.
func NewParcelType(id kernel.UUID, name string, description *string) (*ParcelType, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	t := &ParcelType{
		id:            id,
		name:          name,
		isConstructed: true,
	}
	if description != nil {
		d := *description
		t.description = &d
	}

	return t, nil
}

// Validate ensures the ParcelType was created through the constructor.
func (t *ParcelType) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrParcelTypeIsNotConstructed
	}
	return nil
}

// ID returns the type's unique identifier.
func (t *ParcelType) ID() kernel.UUID {
	return t.id
}

// Name returns the unique type name.
func (t *ParcelType) Name() string {
	return t.name
}

// Description returns the optional human-readable description.
func (t *ParcelType) Description() *string {
	return t.description
}
