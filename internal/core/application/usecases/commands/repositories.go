// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"freight/internal/core/ports"
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

	// AccountRepoFactory provides access to the carrier account repository within a transaction.
	AccountRepoFactory interface {
		CarrierAccountRepository() ports.CarrierAccountRepository
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// MetaRepoFactory provides access to the carrier meta repository within a transaction.
	MetaRepoFactory interface {
		CarrierMetaRepository() ports.CarrierMetaRepository
	}

	// AccountUoW manages transactions for account-only operations.
	// Used when commands only modify carrier account aggregates.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// TrackingUoW manages transactions for tracking refresh operations,
	// which touch shipments and their carrier meta rows but not accounts.
	TrackingUoW interface {
		TxManager
		ShipmentRepoFactory
		MetaRepoFactory
	}

	// TrackingUoWFactory creates new tracking unit of work instances.
	TrackingUoWFactory interface {
		Create() TrackingUoW
	}

	// UoW manages transactions across accounts, shipments and carrier meta.
	// Used for rate shopping and booking, which coordinate all three.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   accountRepo := uow.CarrierAccountRepository()
	//   metaRepo := uow.CarrierMetaRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		AccountRepoFactory
		ShipmentRepoFactory
		MetaRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
