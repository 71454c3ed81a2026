package commands

import (
	"errors"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/pkg/guard"
)

var (
	ErrCloseReplacementCommandIsNotConstructed = errors.New(
		"CloseReplacementCommand must be created via NewCloseReplacementCommand constructor",
	)
	ErrReplacementOutcomeIsInvalid = errors.New("replacement outcome must be completed or cancelled")
)

// ReplacementOutcome is how a replacement negotiation ended.
type ReplacementOutcome string

const (
	// ReplacementCompleted means the yard delivered a replacement part and the
	// order returns to Delivered.
	ReplacementCompleted ReplacementOutcome = "completed"

	// ReplacementCancelledOutcome means negotiation failed; the order ends in
	// the terminal ReplacementCancelled state.
	ReplacementCancelledOutcome ReplacementOutcome = "cancelled"
)

// CloseReplacementCommand represents ending a replacement negotiation, either
// successfully or by giving up.
type CloseReplacementCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	outcome ReplacementOutcome

	guard guard.ConstructorGuard
}

// NewCloseReplacementCommand creates a command to close the replacement branch.
func NewCloseReplacementCommand(orderID kernel.UUID, outcome ReplacementOutcome) (CloseReplacementCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CloseReplacementCommand{}, err
	}
	if outcome != ReplacementCompleted && outcome != ReplacementCancelledOutcome {
		return CloseReplacementCommand{}, ErrReplacementOutcomeIsInvalid
	}

	return CloseReplacementCommand{
		orderID: orderID,
		outcome: outcome,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseReplacementCommand) Validate() error {
	return c.guard.Validate(ErrCloseReplacementCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c CloseReplacementCommand) OrderID() kernel.UUID { return c.orderID }

// Outcome returns how the negotiation ended.
func (c CloseReplacementCommand) Outcome() ReplacementOutcome { return c.outcome }
