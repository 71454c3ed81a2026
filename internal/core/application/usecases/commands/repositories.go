// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"partsflow/internal/core/ports"
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

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// LedgerRepoFactory provides access to ledger repository within a transaction.
	LedgerRepoFactory interface {
		LedgerRepository() ports.LedgerRepository
	}

	// RotationRepoFactory provides access to rotation repository within a transaction.
	RotationRepoFactory interface {
		RotationRepository() ports.RotationRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// LedgerUoW manages transactions for ledger-only operations.
	// Used when commands only modify refund ledger entries.
	LedgerUoW interface {
		TxManager
		LedgerRepoFactory
	}

	// LedgerUoWFactory creates new ledger unit of work instances.
	LedgerUoWFactory interface {
		Create() LedgerUoW
	}

	// OrderLedgerUoW manages transactions spanning orders and the refund
	// ledger. Used for vendor cancellation, where the demoted order and its
	// new refund obligation must commit together.
	OrderLedgerUoW interface {
		TxManager
		OrderRepoFactory
		LedgerRepoFactory
	}

	// OrderLedgerUoWFactory creates new order+ledger unit of work instances.
	OrderLedgerUoWFactory interface {
		Create() OrderLedgerUoW
	}

	// OrderRotationUoW manages transactions spanning orders and the agent
	// rotation. Used for lead assignment, where the assigned order and the
	// advanced rotation cursor must commit together.
	OrderRotationUoW interface {
		TxManager
		OrderRepoFactory
		RotationRepoFactory
	}

	// OrderRotationUoWFactory creates new order+rotation unit of work instances.
	OrderRotationUoWFactory interface {
		Create() OrderRotationUoW
	}

	// RotationUoW manages transactions for rotation-only operations.
	RotationUoW interface {
		TxManager
		RotationRepoFactory
	}

	// RotationUoWFactory creates new rotation unit of work instances.
	RotationUoWFactory interface {
		Create() RotationUoW
	}
)
