package services

import (
	"errors"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/core/domain/model/order"
	"partsflow/internal/core/domain/model/rotation"
)

// ErrAgentNotFound is returned when no agent is available for assignment.
// This occurs when the rotation has no agents in its pool.
var ErrAgentNotFound = errors.New("agent not found")

// LeadDistributor is a domain service responsible for assigning incoming
// orders to sales agents in strict round-robin order.
//
// Business rules:
//   - The order must be valid before assignment
//   - The rotation's cursor advances exactly once per assignment
//   - Assignment is atomic: either both the order and the rotation change,
//     or neither does
//
// Example usage:
//
//	distributor := NewLeadDistributor()
//	agentID, err := distributor.Distribute(o, r)
//	if errors.Is(err, ErrAgentNotFound) {
//	    // Rotation pool is empty
//	    return
//	}
type LeadDistributor struct{}

// NewLeadDistributor creates a new LeadDistributor instance.
func NewLeadDistributor() LeadDistributor {
	return LeadDistributor{}
}

// Distribute assigns the next agent in the rotation to the order.
// Returns the assigned agent's ID.
func (d LeadDistributor) Distribute(o *order.Order, r *rotation.AgentRotation) (kernel.UUID, error) {
	if err := o.Validate(); err != nil {
		return kernel.UUID{}, err
	}
	if err := r.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	agentID, err := r.Next()
	if err != nil {
		return kernel.UUID{}, errors.Join(ErrAgentNotFound, err)
	}

	if err := o.AssignAgent(agentID); err != nil {
		return kernel.UUID{}, err
	}

	return agentID, nil
}
