// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence; every handler is exactly one atomic unit of work.
package commands

import (
	"context"

	"shipping/internal/core/ports"
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

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// PackageRepoFactory provides access to the package repository within a transaction.
	PackageRepoFactory interface {
		PackageRepository() ports.PackageRepository
	}

	// ItemRepoFactory provides access to the item repository within a transaction.
	ItemRepoFactory interface {
		ItemRepository() ports.ItemRepository
	}

	// StockRepoFactory provides access to the stock repository within a transaction.
	StockRepoFactory interface {
		StockRepository() ports.StockRepository
	}

	// ShipmentUoW manages transactions for shipment-only operations.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// PackageUoW manages transactions for package-only operations.
	PackageUoW interface {
		TxManager
		PackageRepoFactory
	}

	// PackageUoWFactory creates new package unit of work instances.
	PackageUoWFactory interface {
		Create() PackageUoW
	}

	// ShipmentPackageUoW manages transactions that touch both the shipment
	// and its member packages (adding/removing packages, shipping).
	ShipmentPackageUoW interface {
		TxManager
		ShipmentRepoFactory
		PackageRepoFactory
	}

	// ShipmentPackageUoWFactory creates new shipment+package unit of work instances.
	ShipmentPackageUoWFactory interface {
		Create() ShipmentPackageUoW
	}

	// LineEditUoW manages transactions for package content edits, which need
	// the package, its parent shipment (edit lock), the item catalog, and
	// the stock figures (reservation check) in one transaction.
	LineEditUoW interface {
		TxManager
		PackageRepoFactory
		ShipmentRepoFactory
		ItemRepoFactory
		StockRepoFactory
	}

	// LineEditUoWFactory creates new line-edit unit of work instances.
	LineEditUoWFactory interface {
		Create() LineEditUoW
	}
)
