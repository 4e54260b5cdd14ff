package commands

import (
	"context"
	"errors"
	"fmt"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
)

// AssignmentOutcome describes how a company's claim on a parcel resolved.
type AssignmentOutcome int

const (
	// AssignmentGranted means this claim won: the parcel now belongs to the
	// requesting company.
	AssignmentGranted AssignmentOutcome = iota

	// AssignmentConflict means another company already holds the parcel.
	AssignmentConflict

	// AssignmentNotFound means the parcel does not exist.
	AssignmentNotFound
)

// AssignCompanyResult reports the outcome of a claim. CurrentCompanyID is set
// only for AssignmentConflict and names the company that holds the parcel.
type AssignCompanyResult struct {
	Outcome          AssignmentOutcome
	CurrentCompanyID *kernel.UUID
}

// AssignCompanyCommandHandler resolves competing claims for a parcel.
//
// The decision is made by a single conditional update in the repository, not
// by read-then-write: under concurrent claims for the same parcel exactly one
// caller sees AssignmentGranted and every other caller sees
// AssignmentConflict. The handler re-reads the row only after losing, to tell
// a conflict apart from a missing parcel and to name the winner.
//
// Example:
//
//	handler := NewAssignCompanyCommandHandler(uowFactory)
//	cmd, _ := NewAssignCompanyCommand(parcelID, companyID)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	switch result.Outcome {
//	case commands.AssignmentGranted:
//	    // 200, claim succeeded
//	case commands.AssignmentConflict:
//	    // 409, result.CurrentCompanyID holds the winner
//	case commands.AssignmentNotFound:
//	    // 404
//	}
type AssignCompanyCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewAssignCompanyCommandHandler creates a handler for company claim operations.
// Requires a ParcelUoWFactory for transactional persistence.
func NewAssignCompanyCommandHandler(uowFactory ParcelUoWFactory) AssignCompanyCommandHandler {
	return AssignCompanyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the company claim command.
// Issues the conditional assignment and, when it does not take effect,
// re-reads the parcel to report either the holding company or a missing
// parcel. The returned error covers infrastructure failures only; business
// outcomes are carried in the result.
func (h AssignCompanyCommandHandler) Handle(
	ctx context.Context,
	command AssignCompanyCommand,
) (AssignCompanyResult, error) {
	if err := command.Validate(); err != nil {
		return AssignCompanyResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignCompanyResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()

	granted, err := parcelRepo.AssignCompany(ctx, command.ParcelID(), command.CompanyID())
	if err != nil {
		return AssignCompanyResult{}, err
	}

	if granted {
		if err = uow.Commit(ctx); err != nil {
			return AssignCompanyResult{}, err
		}
		return AssignCompanyResult{Outcome: AssignmentGranted}, nil
	}

	p, err := parcelRepo.Get(ctx, command.ParcelID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return AssignCompanyResult{Outcome: AssignmentNotFound}, nil
	}
	if err != nil {
		return AssignCompanyResult{}, err
	}

	holder := p.Company()
	if holder == nil {
		// The update claimed zero rows but the parcel exists unassigned.
		// Should not happen; surface it instead of guessing.
		return AssignCompanyResult{}, fmt.Errorf(
			"assignment of parcel %s changed no rows yet parcel is unassigned", command.ParcelID())
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignCompanyResult{}, err
	}

	return AssignCompanyResult{Outcome: AssignmentConflict, CurrentCompanyID: holder}, nil
}
