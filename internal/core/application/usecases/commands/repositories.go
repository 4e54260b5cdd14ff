// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"parcels/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// SessionRepoFactory provides access to the session repository within a transaction.
	SessionRepoFactory interface {
		SessionRepository() ports.SessionRepository
	}

	// ParcelTypeRepoFactory provides access to the parcel type repository within a transaction.
	ParcelTypeRepoFactory interface {
		ParcelTypeRepository() ports.ParcelTypeRepository
	}

	// ParcelUoW manages transactions for parcel-only operations.
	// Used by the costing and company assignment commands.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// ParcelTypeUoW manages transactions for parcel type reference reads.
	ParcelTypeUoW interface {
		TxManager
		ParcelTypeRepoFactory
	}

	// ParcelTypeUoWFactory creates new parcel type unit of work instances.
	ParcelTypeUoWFactory interface {
		Create() ParcelTypeUoW
	}

	// CreateParcelUoW manages transactions spanning session and parcel
	// aggregates. Used by the consumer-side parcel creation command, which
	// resolves the owning session and inserts the parcel row atomically.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   sessionRepo := uow.SessionRepository()
	//   parcelRepo := uow.ParcelRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	CreateParcelUoW interface {
		TxManager
		SessionRepoFactory
		ParcelRepoFactory
	}

	// CreateParcelUoWFactory creates new unit of work instances for parcel creation.
	CreateParcelUoWFactory interface {
		Create() CreateParcelUoW
	}
)
