// Package ports defines repository interfaces for the fulfillment domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// with their complete state including vendor quotes and notes.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The write is guarded by optimistic concurrency control on the order's
	// version: a competing write since the aggregate was loaded fails the
	// update with a ConflictError instead of silently overwriting.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with all vendor quotes, notes, shipment
	// details and the procurement checklist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByStatus retrieves all orders currently in the given status.
	GetAllByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetAllUnassigned retrieves all orders that have no agent assigned yet.
	// Used by the lead assignment workflow.
	GetAllUnassigned(ctx context.Context) ([]*order.Order, error)
}
