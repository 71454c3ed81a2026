package ports

import (
	"context"

	"partsflow/internal/core/domain/model/order"
)

// EventPublisher delivers order status change notifications to interested
// parties after the transaction that produced them has committed.
// Publication is best-effort: a failed publish is logged by the caller and
// never rolls back the state change.
type EventPublisher interface {
	// PublishStatusChanged delivers a single status change notification.
	PublishStatusChanged(ctx context.Context, event order.StatusChangedEvent) error
}
