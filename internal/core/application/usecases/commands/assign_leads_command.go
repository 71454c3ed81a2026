package commands

import (
	"errors"

	"partsflow/internal/pkg/guard"
)

var ErrAssignLeadsCommandIsNotConstructed = errors.New(
	"AssignLeadsCommand must be created via NewAssignLeadsCommand constructor",
)

// AssignLeadsCommand represents a sweep that assigns every unassigned order to
// the next agent in the rotation. Carries no parameters; triggered by the
// scheduler or manually.
type AssignLeadsCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewAssignLeadsCommand creates a command to run the lead assignment sweep.
func NewAssignLeadsCommand() AssignLeadsCommand {
	return AssignLeadsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c AssignLeadsCommand) Validate() error {
	return c.guard.Validate(ErrAssignLeadsCommandIsNotConstructed)
}
