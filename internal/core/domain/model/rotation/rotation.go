// Package rotation implements round-robin distribution of incoming orders
// across sales agents. The rotation is a small aggregate of its own so the
// cursor advances under the same optimistic concurrency control as orders:
// two concurrent assignments cannot hand the same slot to both.
package rotation

import (
	"errors"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/pkg/errs"
	"partsflow/internal/pkg/guard"
)

// Domain errors for rotation operations.
var (
	// ErrNoAgentsInRotation is returned when taking the next agent from an empty rotation.
	ErrNoAgentsInRotation = errs.NewValueIsInvalidError("rotation has no agents")
	// ErrRotationIsNotConstructed is returned when using an improperly initialized AgentRotation.
	ErrRotationIsNotConstructed = errors.New("AgentRotation must be created via NewAgentRotation constructor")
)

// AgentRotation is the ordered pool of agents new orders are assigned to.
// The cursor always points at the agent who receives the next order and
// advances monotonically with wraparound. The version field backs optimistic
// concurrency control in the repository.
type AgentRotation struct {
	id      kernel.UUID
	agents  []kernel.UUID
	cursor  int
	version int

	guard guard.ConstructorGuard
}

// NewAgentRotation creates a rotation over the given agents with the cursor at
// the start. An empty agent list is legal; Next fails until agents are added.
func NewAgentRotation(id kernel.UUID, agents []kernel.UUID) (*AgentRotation, error) {
	rotation := &AgentRotation{
		guard: guard.NewConstructorGuard(),
	}

	if err := rotation.setID(id); err != nil {
		return nil, err
	}
	for _, agentID := range agents {
		if err := agentID.Validate(); err != nil {
			return nil, err
		}
	}

	rotation.agents = make([]kernel.UUID, len(agents))
	copy(rotation.agents, agents)

	return rotation, nil
}

// RestoreAgentRotation reconstructs a rotation from persistent storage.
// A cursor beyond the agent list is normalized by wraparound so shrinking the
// pool out-of-band never breaks assignment.
func RestoreAgentRotation(id kernel.UUID, agents []kernel.UUID, cursor, version int) (*AgentRotation, error) {
	rotation, err := NewAgentRotation(id, agents)
	if err != nil {
		return nil, err
	}
	if cursor < 0 {
		return nil, errs.NewValueIsInvalidError("cursor must not be negative")
	}

	if len(rotation.agents) > 0 {
		cursor %= len(rotation.agents)
	} else {
		cursor = 0
	}
	rotation.cursor = cursor
	rotation.version = version

	return rotation, nil
}

// Validate ensures the rotation was properly constructed.
func (r *AgentRotation) Validate() error {
	if r == nil {
		return ErrRotationIsNotConstructed
	}
	return r.guard.Validate(ErrRotationIsNotConstructed)
}

// ID returns the rotation's unique identifier.
func (r *AgentRotation) ID() kernel.UUID { return r.id }

// Agents returns a copy of the ordered agent pool.
func (r *AgentRotation) Agents() []kernel.UUID {
	out := make([]kernel.UUID, len(r.agents))
	copy(out, r.agents)
	return out
}

// Cursor returns the index of the agent who receives the next order.
func (r *AgentRotation) Cursor() int { return r.cursor }

// Version returns the optimistic concurrency version loaded from storage.
func (r *AgentRotation) Version() int { return r.version }

// Next returns the agent at the cursor and advances it with wraparound.
func (r *AgentRotation) Next() (kernel.UUID, error) {
	if len(r.agents) == 0 {
		return kernel.UUID{}, ErrNoAgentsInRotation
	}

	agentID := r.agents[r.cursor]
	r.cursor = (r.cursor + 1) % len(r.agents)
	return agentID, nil
}

// AddAgent appends an agent to the end of the rotation.
// Adding an agent already in the pool is rejected.
func (r *AgentRotation) AddAgent(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	for _, existing := range r.agents {
		if existing.IsEqual(agentID) {
			return errs.NewAlreadySetError("agent in rotation")
		}
	}

	r.agents = append(r.agents, agentID)
	return nil
}

// RemoveAgent drops an agent from the rotation, keeping the cursor pointed at
// the same next recipient where possible.
func (r *AgentRotation) RemoveAgent(agentID kernel.UUID) error {
	for i, existing := range r.agents {
		if !existing.IsEqual(agentID) {
			continue
		}

		r.agents = append(r.agents[:i], r.agents[i+1:]...)
		if i < r.cursor {
			r.cursor--
		}
		if len(r.agents) == 0 {
			r.cursor = 0
		} else {
			r.cursor %= len(r.agents)
		}
		return nil
	}
	return errs.NewObjectNotFoundError("agentID", agentID)
}

func (r *AgentRotation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}
