package commands

import (
	"errors"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/pkg/guard"
)

var (
	ErrUpdateVendorCommandIsNotConstructed = errors.New(
		"UpdateVendorCommand must be created via NewUpdateVendorCommand constructor",
	)
	ErrNothingToUpdate = errors.New("at least one update section is required")
)

// VendorContactUpdate carries replacement identity and contact fields.
type VendorContactUpdate struct {
	BusinessName string
	AgentName    string
	PhoneNumber  string
	Email        string
}

// VendorCostsUpdate carries replacement cost inputs in cents.
type VendorCostsUpdate struct {
	CostPriceCents    int64
	ShippingCostCents int64
	CorePriceCents    int64
}

// VendorDetailsUpdate carries replacement descriptive fields.
type VendorDetailsUpdate struct {
	Rating   int
	Warranty string
	Mileage  int
}

// UpdateVendorCommand represents a request to edit a vendor quote. The three
// sections are independently optional; a nil section leaves that group of
// fields untouched. Which edits are legal depends on the quote's PO status
// and is decided by the domain, not here.
type UpdateVendorCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	vendorID kernel.UUID

	contact *VendorContactUpdate
	costs   *VendorCostsUpdate
	details *VendorDetailsUpdate

	guard guard.ConstructorGuard
}

// NewUpdateVendorCommand creates a command to edit a vendor quote.
// At least one section must be present.
func NewUpdateVendorCommand(
	orderID, vendorID kernel.UUID,
	contact *VendorContactUpdate,
	costs *VendorCostsUpdate,
	details *VendorDetailsUpdate,
) (UpdateVendorCommand, error) {
	command := UpdateVendorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(orderID.Validate(), vendorID.Validate()); err != nil {
		return UpdateVendorCommand{}, err
	}
	if contact == nil && costs == nil && details == nil {
		return UpdateVendorCommand{}, ErrNothingToUpdate
	}
	if costs != nil {
		if err := errors.Join(
			validateCents(costs.CostPriceCents),
			validateCents(costs.ShippingCostCents),
			validateCents(costs.CorePriceCents),
		); err != nil {
			return UpdateVendorCommand{}, err
		}
	}

	command.orderID = orderID
	command.vendorID = vendorID
	command.contact = contact
	command.costs = costs
	command.details = details

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateVendorCommand) Validate() error {
	return c.guard.Validate(ErrUpdateVendorCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UpdateVendorCommand) OrderID() kernel.UUID { return c.orderID }

// VendorID returns the target vendor quote's identifier.
func (c UpdateVendorCommand) VendorID() kernel.UUID { return c.vendorID }

// Contact returns the contact section, or nil if untouched.
func (c UpdateVendorCommand) Contact() *VendorContactUpdate { return c.contact }

// Costs returns the costs section, or nil if untouched.
func (c UpdateVendorCommand) Costs() *VendorCostsUpdate { return c.costs }

// Details returns the details section, or nil if untouched.
func (c UpdateVendorCommand) Details() *VendorDetailsUpdate { return c.details }
