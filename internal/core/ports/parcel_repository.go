package ports

import (
	"context"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
//
// Besides plain aggregate storage it carries the two conditional updates that
// the costing and assignment flows rely on for correctness. Both return
// whether the row was actually modified; callers must treat that result, not
// a prior read, as the source of truth, since competing consumers and
// claimants run concurrently against the same rows.
type ParcelRepository interface {
	// Add persists a new parcel aggregate.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// SetShippingCost stores the computed cost and marks the parcel costed,
	// only if the cost has not been set before. Returns false without error
	// when the parcel was already costed, which makes redelivered costing
	// messages harmless.
	SetShippingCost(ctx context.Context, id kernel.UUID, cost float64) (bool, error)

	// AssignCompany claims the parcel for a shipping company, only if no
	// company holds it yet. Returns true iff this call won the claim. This
	// single conditional update is the arbiter for concurrent claims; callers
	// must not pre-check and then write.
	AssignCompany(ctx context.Context, id kernel.UUID, companyID kernel.UUID) (bool, error)

	// GetUncostedOlderThan returns identifiers of parcels registered before
	// the cutoff whose shipping cost is still pending. Used by the
	// reconciliation sweep to re-enqueue stuck parcels.
	GetUncostedOlderThan(ctx context.Context, cutoff time.Time) ([]kernel.UUID, error)
}
