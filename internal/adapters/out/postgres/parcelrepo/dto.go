// Package parcelrepo provides data transfer objects and mapping functions for
// parcel persistence. This package implements the repository pattern for the
// parcel domain aggregate, handling the conversion between domain entities and
// database representations.
package parcelrepo

import (
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
// The costed flag is stored alongside the cost so the conditional costing
// update and the listing filter work off an indexed boolean instead of a
// NULL check.
type ParcelDTO struct {
	ID                       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name                     string     `gorm:"not null"`
	Weight                   float64    `gorm:"not null"`
	PriceUSD                 float64    `gorm:"column:price_usd;not null"`
	PackageTypeID            uuid.UUID  `gorm:"type:uuid;index;not null"`
	UserSessionID            uuid.UUID  `gorm:"type:uuid;index;not null"`
	ShippingCostRub          *float64   `gorm:"column:shipping_cost_rub"`
	IsShippingCostCalculated bool       `gorm:"index;not null;default:false"`
	ShippingCompanyID        *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt                time.Time  `gorm:"index"`
	UpdatedAt                time.Time  `gorm:"not null"`
}

// TableName specifies the database table name for parcel entities.
// The table keeps the external "packages" name from the wire contract.
func (ParcelDTO) TableName() string {
	return "packages"
}

// fromDomain converts a parcel domain aggregate to its database representation.
// The timestamps are left zero; GORM stamps CreatedAt on insert and refreshes
// UpdatedAt on every write.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	var companyID *uuid.UUID
	if id := aggregate.Company(); id != nil {
		raw := id.Bytes()
		companyID = &raw
	}

	return ParcelDTO{
		ID:                       aggregate.ID().Bytes(),
		Name:                     aggregate.Name(),
		Weight:                   aggregate.Weight(),
		PriceUSD:                 aggregate.PriceUSD(),
		PackageTypeID:            aggregate.TypeID().Bytes(),
		UserSessionID:            aggregate.SessionID().Bytes(),
		ShippingCostRub:          aggregate.ShippingCost(),
		IsShippingCostCalculated: aggregate.IsCostCalculated(),
		ShippingCompanyID:        companyID,
	}
}

// toDomain converts a database DTO to a parcel domain aggregate.
// Reconstructs the complete aggregate including costing and assignment state
// using RestoreParcel.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	typeID, err := kernel.UUIDFromBytes(dto.PackageTypeID[:])
	if err != nil {
		return nil, err
	}

	sessionID, err := kernel.UUIDFromBytes(dto.UserSessionID[:])
	if err != nil {
		return nil, err
	}

	var companyID *kernel.UUID
	if dto.ShippingCompanyID != nil {
		cID, companyErr := kernel.UUIDFromBytes((*dto.ShippingCompanyID)[:])
		if companyErr != nil {
			return nil, companyErr
		}

		companyID = &cID
	}

	return parcel.RestoreParcel(
		id,
		dto.Name,
		dto.Weight,
		dto.PriceUSD,
		typeID,
		sessionID,
		dto.ShippingCostRub,
		companyID,
	)
}
