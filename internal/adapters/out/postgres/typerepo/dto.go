// Package typerepo provides data transfer objects and mapping functions for
// parcel type reference data.
package typerepo

import (
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelTypeDTO represents the database structure for parcel type rows.
// The table keeps the external "package_types" name from the wire contract.
type ParcelTypeDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"uniqueIndex;not null"`
	Description *string
}

// TableName specifies the database table name for parcel type entities.
func (ParcelTypeDTO) TableName() string {
	return "package_types"
}

func fromDomain(aggregate *parcel.ParcelType) ParcelTypeDTO {
	return ParcelTypeDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
	}
}

func toDomain(dto ParcelTypeDTO) (*parcel.ParcelType, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return parcel.NewParcelType(id, dto.Name, dto.Description)
}
