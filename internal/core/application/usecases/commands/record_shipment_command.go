package commands

import (
	"errors"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/core/domain/model/order"
	"partsflow/internal/pkg/guard"
)

var ErrRecordShipmentCommandIsNotConstructed = errors.New(
	"RecordShipmentCommand must be created via NewRecordShipmentCommand constructor",
)

// RecordShipmentCommand represents recording carrier and physical details for
// an order shipment. Resubmitting identical details is an idempotent no-op at
// the domain level, so retries from flaky clients are safe.
type RecordShipmentCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	shipment order.Shipment

	guard guard.ConstructorGuard
}

// NewRecordShipmentCommand creates a command to record shipment details.
// Shipment field validation happens in the Shipment value object.
func NewRecordShipmentCommand(
	orderID kernel.UUID,
	weight, height, width float64,
	carrierName, trackingNumber, bolNumber, trackingLink string,
) (RecordShipmentCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RecordShipmentCommand{}, err
	}

	shipment, err := order.NewShipment(weight, height, width, carrierName, trackingNumber, bolNumber, trackingLink)
	if err != nil {
		return RecordShipmentCommand{}, err
	}

	return RecordShipmentCommand{
		orderID:  orderID,
		shipment: shipment,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordShipmentCommand) Validate() error {
	return c.guard.Validate(ErrRecordShipmentCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c RecordShipmentCommand) OrderID() kernel.UUID { return c.orderID }

// Shipment returns the shipment details to record.
func (c RecordShipmentCommand) Shipment() order.Shipment { return c.shipment }
