package queries

import (
	"context"
	"database/sql"
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/services"
	"parcels/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetParcelQueryHandler retrieves one parcel with its resolved type name.
// Reads directly from the database, bypassing the aggregate, since the read
// model includes joined reference data the aggregate does not carry.
type GetParcelQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelQueryHandler creates a handler for single-parcel lookups.
// Requires a GORM database connection for query execution.
func NewGetParcelQueryHandler(db *gorm.DB) GetParcelQueryHandler {
	return GetParcelQueryHandler{db: db}
}

// Handle executes the query for one parcel scoped to its owning session.
// Returns errs.ErrObjectNotFound when no matching row exists, including the
// case where the parcel belongs to a different session.
func (h GetParcelQueryHandler) Handle(
	ctx context.Context,
	query GetParcelQuery,
) (GetParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetParcelQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.name,
			p.weight,
			p.price_usd,
			p.package_type_id,
			t.name,
			p.shipping_cost_rub,
			p.shipping_company_id
		FROM packages p
		JOIN package_types t ON t.id = p.package_type_id
		WHERE p.id = ? AND p.user_session_id = ?
	`, query.ParcelID().String(), query.SessionID().String()).Row()

	var (
		id        uuid.UUID
		typeID    uuid.UUID
		resp      GetParcelQueryResponse
		cost      sql.NullFloat64
		companyID uuid.NullUUID
	)

	err := row.Scan(
		&id,
		&resp.Name,
		&resp.Weight,
		&resp.PriceUSD,
		&typeID,
		&resp.TypeName,
		&cost,
		&companyID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetParcelQueryResponse{}, errs.NewObjectNotFoundError("parcel", query.ParcelID())
	}
	if err != nil {
		return GetParcelQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetParcelQueryResponse{}, err
	}
	if resp.TypeID, err = kernel.UUIDFromBytes(typeID[:]); err != nil {
		return GetParcelQueryResponse{}, err
	}

	if cost.Valid {
		resp.ShippingCost = services.FormatDisplay(&cost.Float64)
	} else {
		resp.ShippingCost = services.FormatDisplay(nil)
	}

	if companyID.Valid {
		company, idErr := kernel.UUIDFromBytes(companyID.UUID[:])
		if idErr != nil {
			return GetParcelQueryResponse{}, idErr
		}
		resp.CompanyID = &company
	}

	return resp, nil
}
