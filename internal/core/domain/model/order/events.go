package order

import (
	"time"

	"partsflow/internal/core/domain/model/kernel"
)

// StatusChangedEvent is the domain event recorded by the aggregate on every
// successful order status transition. It is published to the notification
// collaborator after the surrounding transaction commits; publication is
// best-effort and never rolls back the state change.
type StatusChangedEvent struct {
	OrderID        kernel.UUID
	PreviousStatus Status
	NewStatus      Status
	OccurredAt     time.Time
}
