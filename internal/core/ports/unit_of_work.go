package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// One handler invocation equals one transaction: handlers begin, perform their
// repository operations, and commit; a deferred rollback covers error paths.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ParcelRepository returns a ParcelRepository bound to the current
	// transaction started by Begin().
	ParcelRepository() ParcelRepository

	// SessionRepository returns a SessionRepository bound to the current
	// transaction started by Begin().
	SessionRepository() SessionRepository

	// ParcelTypeRepository returns a ParcelTypeRepository bound to the current
	// transaction started by Begin().
	ParcelTypeRepository() ParcelTypeRepository
}
