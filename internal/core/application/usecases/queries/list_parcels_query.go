package queries

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var (
	ErrListParcelsQueryIsNotConstructed = errors.New(
		"ListParcelsQuery must be created via NewListParcelsQuery constructor",
	)
	ErrPageIsInvalid = errors.New("page must be greater than 0")
	ErrSizeIsInvalid = errors.New("size must be between 1 and 100")
)

// MaxPageSize caps the page size to keep list responses bounded.
const MaxPageSize = 100

// ListParcelsQuery retrieves a page of parcels belonging to a user session,
// optionally filtered by parcel type and by costing state.
//
// Example:
//
//	costed := true
//	query, err := NewListParcelsQuery(sessionID, 1, 20, &typeID, &costed)
//	if err != nil {
//	    return err
//	}
//	page, err := NewListParcelsQueryHandler(db).Handle(ctx, query)
type ListParcelsQuery struct {
	sessionID kernel.UUID
	page      int
	size      int
	typeID    *kernel.UUID
	costed    *bool

	guard guard.ConstructorGuard
}

// NewListParcelsQuery creates a paginated parcel listing query.
// Page numbering starts at 1. The type and costed filters are optional; nil
// means no filtering on that attribute.
func NewListParcelsQuery(
	sessionID kernel.UUID,
	page int,
	size int,
	typeID *kernel.UUID,
	costed *bool,
) (ListParcelsQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return ListParcelsQuery{}, err
	}
	if page < 1 {
		return ListParcelsQuery{}, ErrPageIsInvalid
	}
	if size < 1 || size > MaxPageSize {
		return ListParcelsQuery{}, ErrSizeIsInvalid
	}
	if typeID != nil {
		if err := typeID.Validate(); err != nil {
			return ListParcelsQuery{}, err
		}
	}

	return ListParcelsQuery{
		sessionID: sessionID,
		page:      page,
		size:      size,
		typeID:    typeID,
		costed:    costed,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListParcelsQueryIsNotConstructed if validation fails.
func (q ListParcelsQuery) Validate() error {
	return q.guard.Validate(ErrListParcelsQueryIsNotConstructed)
}

// SessionID returns the identifier of the session whose parcels are listed.
func (q ListParcelsQuery) SessionID() kernel.UUID {
	return q.sessionID
}

// Page returns the 1-based page number.
func (q ListParcelsQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q ListParcelsQuery) Size() int {
	return q.size
}

// TypeID returns the optional parcel type filter.
func (q ListParcelsQuery) TypeID() *kernel.UUID {
	return q.typeID
}

// Costed returns the optional costing state filter.
func (q ListParcelsQuery) Costed() *bool {
	return q.costed
}

// ListParcelsQueryResponse is one page of the parcel listing read model.
type ListParcelsQueryResponse struct {
	Items []ListParcelsItem
	Total int64
	Page  int
	Size  int
}

// ListParcelsItem is one parcel row in the listing.
type ListParcelsItem struct {
	ID           kernel.UUID
	Name         string
	Weight       float64
	PriceUSD     float64
	TypeID       kernel.UUID
	TypeName     string
	ShippingCost string
	CompanyID    *kernel.UUID
}
