package queries

import (
	"context"
	"database/sql"
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetParcelTypeQueryHandler retrieves a single parcel type by identifier.
type GetParcelTypeQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelTypeQueryHandler creates a handler for single parcel type lookups.
// Requires a GORM database connection for query execution.
func NewGetParcelTypeQueryHandler(db *gorm.DB) GetParcelTypeQueryHandler {
	return GetParcelTypeQueryHandler{db: db}
}

// Handle executes the single-type lookup.
// Returns errs.ErrObjectNotFound when the type does not exist.
func (h GetParcelTypeQueryHandler) Handle(
	ctx context.Context,
	query GetParcelTypeQuery,
) (GetParcelTypesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetParcelTypesQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description
		FROM package_types
		WHERE id = ?
	`, query.TypeID().String()).Row()

	var typeResp GetParcelTypesQueryResponse
	var id uuid.UUID
	var description sql.NullString

	err := row.Scan(&id, &typeResp.Name, &description)
	if errors.Is(err, sql.ErrNoRows) {
		return GetParcelTypesQueryResponse{}, errs.NewObjectNotFoundError("parcelType", query.TypeID())
	}
	if err != nil {
		return GetParcelTypesQueryResponse{}, err
	}

	typeID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return GetParcelTypesQueryResponse{}, idErr
	}
	typeResp.ID = typeID

	if description.Valid {
		d := description.String
		typeResp.Description = &d
	}

	return typeResp, nil
}
