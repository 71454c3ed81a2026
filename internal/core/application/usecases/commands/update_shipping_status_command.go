package commands

import (
	"errors"
	"fmt"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/core/domain/model/order"
	"partsflow/internal/pkg/guard"
)

var ErrUpdateShippingStatusCommandIsNotConstructed = errors.New(
	"UpdateShippingStatusCommand must be created via NewUpdateShippingStatusCommand constructor",
)

// UpdateShippingStatusCommand represents a carrier progress update: the part
// left the yard, is in transit, or was delivered. The target status is one of
// ShipOut, Intransit or Delivered; which hops are legal from the current
// status is decided by the domain.
type UpdateShippingStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewUpdateShippingStatusCommand creates a command to advance shipping progress.
func NewUpdateShippingStatusCommand(orderID kernel.UUID, target order.Status) (UpdateShippingStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateShippingStatusCommand{}, err
	}
	switch target {
	case order.ShipOut, order.Intransit, order.Delivered:
	default:
		return UpdateShippingStatusCommand{}, fmt.Errorf("%s is not a shipping progress status", target)
	}

	return UpdateShippingStatusCommand{
		orderID: orderID,
		target:  target,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShippingStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShippingStatusCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UpdateShippingStatusCommand) OrderID() kernel.UUID { return c.orderID }

// Target returns the shipping status to advance to.
func (c UpdateShippingStatusCommand) Target() order.Status { return c.target }
