package ports

import (
	"context"

	"partsflow/internal/core/domain/model/rotation"
)

// RotationRepository defines the persistence contract for the agent rotation.
// The system keeps a single rotation aggregate; the repository hides that
// detail behind Get and Update.
type RotationRepository interface {
	// Add persists a new rotation aggregate.
	Add(ctx context.Context, aggregate *rotation.AgentRotation) error

	// Update persists changes to the rotation. Like order updates, the write
	// is guarded by optimistic concurrency control on the rotation's version.
	Update(ctx context.Context, aggregate *rotation.AgentRotation) error

	// Get retrieves the rotation aggregate.
	Get(ctx context.Context) (*rotation.AgentRotation, error)
}
