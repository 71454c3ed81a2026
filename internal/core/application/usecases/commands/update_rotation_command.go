package commands

import (
	"errors"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/pkg/guard"
)

var (
	ErrUpdateRotationCommandIsNotConstructed = errors.New(
		"UpdateRotationCommand must be created via NewUpdateRotationCommand constructor",
	)
	ErrRotationActionIsInvalid = errors.New("rotation action must be add or remove")
)

// RotationAction is an agent pool mutation.
type RotationAction string

const (
	// RotationAdd appends an agent to the rotation.
	RotationAdd RotationAction = "add"

	// RotationRemove drops an agent from the rotation.
	RotationRemove RotationAction = "remove"
)

// UpdateRotationCommand represents adding or removing an agent from the
// round-robin rotation.
type UpdateRotationCommand struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID
	action  RotationAction

	guard guard.ConstructorGuard
}

// NewUpdateRotationCommand creates a command to mutate the agent rotation.
func NewUpdateRotationCommand(agentID kernel.UUID, action RotationAction) (UpdateRotationCommand, error) {
	if err := agentID.Validate(); err != nil {
		return UpdateRotationCommand{}, err
	}
	if action != RotationAdd && action != RotationRemove {
		return UpdateRotationCommand{}, ErrRotationActionIsInvalid
	}

	return UpdateRotationCommand{
		agentID: agentID,
		action:  action,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRotationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRotationCommandIsNotConstructed)
}

// AgentID returns the agent to add or remove.
func (c UpdateRotationCommand) AgentID() kernel.UUID { return c.agentID }

// Action returns the pool mutation to perform.
func (c UpdateRotationCommand) Action() RotationAction { return c.action }
