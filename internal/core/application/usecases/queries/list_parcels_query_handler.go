package queries

import (
	"context"
	"database/sql"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListParcelsQueryHandler retrieves pages of a session's parcels.
// Filters are applied in SQL so the count and the page stay consistent with
// each other under the same predicate.
type ListParcelsQueryHandler struct {
	db *gorm.DB
}

// NewListParcelsQueryHandler creates a handler for parcel listing queries.
// Requires a GORM database connection for query execution.
func NewListParcelsQueryHandler(db *gorm.DB) ListParcelsQueryHandler {
	return ListParcelsQueryHandler{db: db}
}

// Handle executes the listing query.
// Returns the requested page ordered by registration time, newest first,
// together with the total number of rows matching the filters.
func (h ListParcelsQueryHandler) Handle(
	ctx context.Context,
	query ListParcelsQuery,
) (ListParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListParcelsQueryResponse{}, err
	}

	where := "p.user_session_id = ?"
	args := []any{query.SessionID().String()}

	if query.TypeID() != nil {
		where += " AND p.package_type_id = ?"
		args = append(args, query.TypeID().String())
	}
	if query.Costed() != nil {
		where += " AND p.is_shipping_cost_calculated = ?"
		args = append(args, *query.Costed())
	}

	var total int64
	err := h.db.WithContext(ctx).Raw(
		"SELECT COUNT(*) FROM packages p WHERE "+where, args...,
	).Scan(&total).Error
	if err != nil {
		return ListParcelsQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.Size()
	pageArgs := append(args, query.Size(), offset)

	rows, err := h.db.WithContext(ctx).Raw(`
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
		WHERE `+where+`
		ORDER BY p.created_at DESC, p.id
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
	if err != nil {
		return ListParcelsQueryResponse{}, err
	}
	defer rows.Close()

	items := make([]ListParcelsItem, 0, query.Size())

	for rows.Next() {
		var (
			item      ListParcelsItem
			id        uuid.UUID
			typeID    uuid.UUID
			cost      sql.NullFloat64
			companyID uuid.NullUUID
		)

		err = rows.Scan(
			&id,
			&item.Name,
			&item.Weight,
			&item.PriceUSD,
			&typeID,
			&item.TypeName,
			&cost,
			&companyID,
		)
		if err != nil {
			return ListParcelsQueryResponse{}, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return ListParcelsQueryResponse{}, err
		}
		if item.TypeID, err = kernel.UUIDFromBytes(typeID[:]); err != nil {
			return ListParcelsQueryResponse{}, err
		}

		if cost.Valid {
			item.ShippingCost = services.FormatDisplay(&cost.Float64)
		} else {
			item.ShippingCost = services.FormatDisplay(nil)
		}

		if companyID.Valid {
			company, idErr := kernel.UUIDFromBytes(companyID.UUID[:])
			if idErr != nil {
				return ListParcelsQueryResponse{}, idErr
			}
			item.CompanyID = &company
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return ListParcelsQueryResponse{}, err
	}

	return ListParcelsQueryResponse{
		Items: items,
		Total: total,
		Page:  query.Page(),
		Size:  query.Size(),
	}, nil
}
