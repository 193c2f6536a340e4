// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"
	"time"

	"dotrack/internal/core/ports"
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

	// DeliveryOrderRepoFactory provides access to the delivery order
	// repository within a transaction.
	DeliveryOrderRepoFactory interface {
		DeliveryOrderRepository() ports.DeliveryOrderRepository
	}

	// HistoryRepoFactory provides access to the ledger repository within a
	// transaction.
	HistoryRepoFactory interface {
		HistoryRepository() ports.HistoryRepository
	}

	// PartyRepoFactory provides access to the party repository within a
	// transaction.
	PartyRepoFactory interface {
		PartyRepository() ports.PartyRepository
	}

	// UserRepoFactory provides access to the user repository within a
	// transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// ResetTokenRepoFactory provides access to the reset token repository
	// within a transaction.
	ResetTokenRepoFactory interface {
		ResetTokenRepository() ports.ResetTokenRepository
	}

	// WorkflowUoW manages transactions spanning a delivery order mutation and
	// its ledger entry. Every workflow command uses this pairing: the state
	// change and the history record commit or roll back together.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   doRepo := uow.DeliveryOrderRepository()
	//   ledger := uow.HistoryRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	WorkflowUoW interface {
		TxManager
		DeliveryOrderRepoFactory
		HistoryRepoFactory
	}

	// WorkflowUoWFactory creates new workflow unit of work instances.
	WorkflowUoWFactory interface {
		Create() WorkflowUoW
	}

	// PartyUoW manages transactions for party-only operations.
	PartyUoW interface {
		TxManager
		PartyRepoFactory
	}

	// PartyUoWFactory creates new party unit of work instances.
	PartyUoWFactory interface {
		Create() PartyUoW
	}

	// UserUoW manages transactions for user-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// TokenUoW manages transactions for reset token maintenance.
	TokenUoW interface {
		TxManager
		ResetTokenRepoFactory
	}

	// TokenUoWFactory creates new token unit of work instances.
	TokenUoWFactory interface {
		Create() TokenUoW
	}
)

// Clock supplies the current time to command handlers, so transition
// timestamps are controllable in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by the wall clock.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
