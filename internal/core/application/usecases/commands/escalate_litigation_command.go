package commands

import (
	"errors"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/pkg/guard"
)

var ErrEscalateLitigationCommandIsNotConstructed = errors.New(
	"EscalateLitigationCommand must be created via NewEscalateLitigationCommand constructor",
)

// EscalateLitigationCommand represents escalating a dispute to the terminal
// litigation state. A mandatory reason is recorded as a procurement note.
type EscalateLitigationCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewEscalateLitigationCommand creates a command to escalate an order to litigation.
func NewEscalateLitigationCommand(orderID kernel.UUID, reason string) (EscalateLitigationCommand, error) {
	if err := orderID.Validate(); err != nil {
		return EscalateLitigationCommand{}, err
	}
	if reason == "" {
		return EscalateLitigationCommand{}, errors.New("litigation reason is required")
	}

	return EscalateLitigationCommand{
		orderID: orderID,
		reason:  reason,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c EscalateLitigationCommand) Validate() error {
	return c.guard.Validate(ErrEscalateLitigationCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c EscalateLitigationCommand) OrderID() kernel.UUID { return c.orderID }

// Reason returns the operator-supplied escalation reason.
func (c EscalateLitigationCommand) Reason() string { return c.reason }
