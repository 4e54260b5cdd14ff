package queries

import (
	"context"
	"database/sql"

	"parcels/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetParcelTypesQueryHandler retrieves parcel type reference data.
type GetParcelTypesQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelTypesQueryHandler creates a handler for parcel type queries.
// Requires a GORM database connection for query execution.
func NewGetParcelTypesQueryHandler(db *gorm.DB) GetParcelTypesQueryHandler {
	return GetParcelTypesQueryHandler{db: db}
}

// Handle executes the query to retrieve all parcel types ordered by name.
func (h GetParcelTypesQueryHandler) Handle(
	ctx context.Context,
	query GetParcelTypesQuery,
) ([]GetParcelTypesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	types := make([]GetParcelTypesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description
		FROM package_types
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var typeResp GetParcelTypesQueryResponse
		var id uuid.UUID
		var description sql.NullString

		err = rows.Scan(&id, &typeResp.Name, &description)
		if err != nil {
			return nil, err
		}

		typeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		typeResp.ID = typeID

		if description.Valid {
			d := description.String
			typeResp.Description = &d
		}

		types = append(types, typeResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return types, nil
}
