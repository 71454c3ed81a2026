package commands

import (
	"errors"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/pkg/guard"
)

var ErrOpenReplacementCommandIsNotConstructed = errors.New(
	"OpenReplacementCommand must be created via NewOpenReplacementCommand constructor",
)

// OpenReplacementCommand represents starting replacement negotiation with the
// yard after a defective delivery.
type OpenReplacementCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewOpenReplacementCommand creates a command to open the replacement branch.
func NewOpenReplacementCommand(orderID kernel.UUID) (OpenReplacementCommand, error) {
	if err := orderID.Validate(); err != nil {
		return OpenReplacementCommand{}, err
	}

	return OpenReplacementCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenReplacementCommand) Validate() error {
	return c.guard.Validate(ErrOpenReplacementCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c OpenReplacementCommand) OrderID() kernel.UUID { return c.orderID }
