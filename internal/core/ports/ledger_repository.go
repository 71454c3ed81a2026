package ports

import (
	"context"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/core/domain/model/ledger"
)

// LedgerRepository defines the persistence contract for refund ledger entries.
type LedgerRepository interface {
	// Add persists a new ledger entry.
	// The entry must be valid and not already exist in the repository.
	Add(ctx context.Context, entry *ledger.Entry) error

	// Update persists changes to an existing ledger entry.
	Update(ctx context.Context, entry *ledger.Entry) error

	// Get retrieves a ledger entry by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*ledger.Entry, error)

	// GetAllByOrder retrieves all entries recorded against the given order.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*ledger.Entry, error)

	// GetAllPending retrieves all entries still awaiting a vendor refund.
	GetAllPending(ctx context.Context) ([]*ledger.Entry, error)
}
