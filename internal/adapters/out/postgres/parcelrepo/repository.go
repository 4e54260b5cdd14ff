package parcelrepo

import (
	"context"
	"errors"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormParcelRepository implements ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new parcel to the database.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a parcel by ID.
func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// SetShippingCost stores the computed cost for a still-uncosted parcel.
// The costed flag is part of the predicate, so the update is a no-op when the
// cost was already written. The affected row count, not a prior read, decides
// the return value.
func (r *GormParcelRepository) SetShippingCost(
	ctx context.Context,
	id kernel.UUID,
	cost float64,
) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}
	if cost < 0 {
		return false, errs.NewValueIsInvalidError("cost")
	}

	result := r.db.WithContext(ctx).Model(&ParcelDTO{}).
		Where("id = ? AND is_shipping_cost_calculated = ?", id.Bytes(), false).
		Updates(map[string]any{
			"shipping_cost_rub":           cost,
			"is_shipping_cost_calculated": true,
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

// AssignCompany claims the parcel for a company with a single conditional
// update. Under concurrent claims the database serializes the writes and
// exactly one caller observes an affected row.
func (r *GormParcelRepository) AssignCompany(
	ctx context.Context,
	id kernel.UUID,
	companyID kernel.UUID,
) (bool, error) {
	if err := errors.Join(id.Validate(), companyID.Validate()); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Model(&ParcelDTO{}).
		Where("id = ? AND shipping_company_id IS NULL", id.Bytes()).
		Update("shipping_company_id", companyID.Bytes())
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

// GetUncostedOlderThan returns identifiers of parcels registered before the
// cutoff that still have no shipping cost.
func (r *GormParcelRepository) GetUncostedOlderThan(
	ctx context.Context,
	cutoff time.Time,
) ([]kernel.UUID, error) {
	var rawIDs []uuid.UUID
	err := r.db.WithContext(ctx).Model(&ParcelDTO{}).
		Where("is_shipping_cost_calculated = ? AND created_at < ?", false, cutoff).
		Order("created_at").
		Pluck("id", &rawIDs).Error
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, idErr := kernel.UUIDFromBytes(raw[:])
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, id)
	}

	return ids, nil
}
