package parcel

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not
	// created through NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel")

	// ErrShippingCostAlreadySet is returned when a second attempt is made to
	// set the shipping cost. The cost is computed exactly once.
	ErrShippingCostAlreadySet = errors.New("shipping cost is already calculated")

	// ErrCompanyAlreadyAssigned is returned when a parcel already belongs to a
	// shipping company. The assignment is first-come and final.
	ErrCompanyAlreadyAssigned = errors.New("parcel is already assigned to a shipping company")
)

// Parcel is the aggregate root for a registered package awaiting costing and
// company assignment.
//
// Invariants:
//   - IsCostCalculated() is true iff ShippingCost() is non-nil
//   - the shipping cost transitions at most once from unset to a value
//   - the company reference transitions at most once from nil to a value
type Parcel struct {
	id        kernel.UUID
	name      string
	weight    float64
	priceUSD  float64
	typeID    kernel.UUID
	sessionID kernel.UUID

	shippingCost *float64
	companyID    *kernel.UUID

	isConstructed bool
}

// NewParcel creates a new uncosted, unassigned Parcel.
// Validates that the identifiers are constructed, the name is present,
// the weight is positive and the declared value is non-negative.
func NewParcel(
	id kernel.UUID,
	name string,
	weight float64,
	priceUSD float64,
	typeID kernel.UUID,
	sessionID kernel.UUID,
) (*Parcel, error) {
	p := &Parcel{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setWeight(weight),
		p.setPriceUSD(priceUSD),
		p.setTypeID(typeID),
		p.setSessionID(sessionID),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a Parcel from persistence, including its costing
// and assignment state. The same field validation as NewParcel applies.
func RestoreParcel(
	id kernel.UUID,
	name string,
	weight float64,
	priceUSD float64,
	typeID kernel.UUID,
	sessionID kernel.UUID,
	shippingCost *float64,
	companyID *kernel.UUID,
) (*Parcel, error) {
	p, err := NewParcel(id, name, weight, priceUSD, typeID, sessionID)
	if err != nil {
		return nil, err
	}

	if shippingCost != nil {
		cost := *shippingCost
		p.shippingCost = &cost
	}
	if companyID != nil {
		company := *companyID
		if err = company.Validate(); err != nil {
			return nil, err
		}
		p.companyID = &company
	}

	return p, nil
}

// Validate ensures the Parcel was created through a constructor.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares two parcels by identity.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// Name returns the descriptive parcel name.
func (p *Parcel) Name() string {
	return p.name
}

// Weight returns the parcel weight in kilograms.
func (p *Parcel) Weight() float64 {
	return p.weight
}

// PriceUSD returns the declared value of the contents in US dollars.
func (p *Parcel) PriceUSD() float64 {
	return p.priceUSD
}

// TypeID returns the identifier of the parcel's reference type.
func (p *Parcel) TypeID() kernel.UUID {
	return p.typeID
}

// SessionID returns the identifier of the owning user session.
func (p *Parcel) SessionID() kernel.UUID {
	return p.sessionID
}

// ShippingCost returns the computed shipping cost, or nil while uncosted.
func (p *Parcel) ShippingCost() *float64 {
	return p.shippingCost
}

// IsCostCalculated reports whether the shipping cost has been computed.
func (p *Parcel) IsCostCalculated() bool {
	return p.shippingCost != nil
}

// Company returns the assigned shipping company's ID, or nil while unassigned.
func (p *Parcel) Company() *kernel.UUID {
	return p.companyID
}

// SetShippingCost records the computed shipping cost.
// Returns ErrShippingCostAlreadySet if the cost was already computed, so the
// costed state never reverts and is never overwritten.
func (p *Parcel) SetShippingCost(cost float64) error {
	if p.shippingCost != nil {
		return ErrShippingCostAlreadySet
	}
	if cost < 0 {
		return errs.NewValueIsInvalidError("shippingCost")
	}

	p.shippingCost = &cost
	return nil
}

// AssignCompany claims the parcel for a shipping company.
// Returns ErrCompanyAlreadyAssigned if any company already holds the claim.
// The datastore-level conditional update is the concurrency-bearing twin of
// this rule; this method keeps the in-memory aggregate honest.
func (p *Parcel) AssignCompany(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}
	if p.companyID != nil {
		return ErrCompanyAlreadyAssigned
	}

	p.companyID = &companyID
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Parcel) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidError("weight")
	}
	p.weight = weight
	return nil
}

func (p *Parcel) setPriceUSD(priceUSD float64) error {
	if priceUSD < 0 {
		return errs.NewValueIsInvalidError("priceUSD")
	}
	p.priceUSD = priceUSD
	return nil
}

func (p *Parcel) setTypeID(typeID kernel.UUID) error {
	if err := typeID.Validate(); err != nil {
		return err
	}
	p.typeID = typeID
	return nil
}

func (p *Parcel) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}
	p.sessionID = sessionID
	return nil
}
