package ports

import (
	"context"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
)

// ParcelTypeRepository defines the persistence contract for parcel type
// reference data. Types are seeded out of band; the core only reads them.
type ParcelTypeRepository interface {
	// Add persists a parcel type. Used by seeding tooling and tests.
	Add(ctx context.Context, aggregate *parcel.ParcelType) error

	// Get retrieves a parcel type by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.ParcelType, error)

	// GetAll retrieves all parcel types ordered by name.
	GetAll(ctx context.Context) ([]*parcel.ParcelType, error)
}
