package typerepo

import (
	"context"
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormParcelTypeRepository implements ParcelTypeRepository using GORM.
type GormParcelTypeRepository struct {
	db *gorm.DB
}

// NewGormParcelTypeRepository creates a new GORM parcel type repository.
// Types are reference data, so no aggregate tracking is involved.
func NewGormParcelTypeRepository(db *gorm.DB) *GormParcelTypeRepository {
	return &GormParcelTypeRepository{db: db}
}

// Add saves a new parcel type to the database.
func (r *GormParcelTypeRepository) Add(ctx context.Context, aggregate *parcel.ParcelType) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a parcel type by ID.
func (r *GormParcelTypeRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.ParcelType, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelTypeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcelType", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all parcel types ordered by name.
func (r *GormParcelTypeRepository) GetAll(ctx context.Context) ([]*parcel.ParcelType, error) {
	var dtos []ParcelTypeDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	types := make([]*parcel.ParcelType, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}

	return types, nil
}
