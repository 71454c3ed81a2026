package commands

import (
	"errors"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/pkg/guard"
)

var (
	ErrAttachVendorCommandIsNotConstructed = errors.New(
		"AttachVendorCommand must be created via NewAttachVendorCommand constructor",
	)
	ErrVendorBusinessNameIsRequired = errors.New("vendor business name is required")
)

// AttachVendorCommand represents a request to attach a vendor quote to an
// order during sourcing. Carries the vendor's identity, contact details and
// initial cost inputs; the derived total is computed by the domain.
type AttachVendorCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	vendorID kernel.UUID

	businessName string
	agentName    string
	phoneNumber  string
	email        string

	costPriceCents    int64
	shippingCostCents int64
	corePriceCents    int64

	guard guard.ConstructorGuard
}

// NewAttachVendorCommand creates a command to attach a vendor quote.
func NewAttachVendorCommand(
	orderID, vendorID kernel.UUID,
	businessName, agentName, phoneNumber, email string,
	costPriceCents, shippingCostCents, corePriceCents int64,
) (AttachVendorCommand, error) {
	command := AttachVendorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setIDs(orderID, vendorID),
		command.setBusinessName(businessName),
		command.setCosts(costPriceCents, shippingCostCents, corePriceCents),
	); err != nil {
		return AttachVendorCommand{}, err
	}

	command.agentName = agentName
	command.phoneNumber = phoneNumber
	command.email = email

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachVendorCommand) Validate() error {
	return c.guard.Validate(ErrAttachVendorCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AttachVendorCommand) OrderID() kernel.UUID { return c.orderID }

// VendorID returns the identifier for the new vendor quote.
func (c AttachVendorCommand) VendorID() kernel.UUID { return c.vendorID }

// BusinessName returns the vendor's business name.
func (c AttachVendorCommand) BusinessName() string { return c.businessName }

// AgentName returns the vendor-side contact person.
func (c AttachVendorCommand) AgentName() string { return c.agentName }

// PhoneNumber returns the vendor contact phone number.
func (c AttachVendorCommand) PhoneNumber() string { return c.phoneNumber }

// Email returns the vendor contact email.
func (c AttachVendorCommand) Email() string { return c.email }

// CostPriceCents returns the quoted part cost in cents.
func (c AttachVendorCommand) CostPriceCents() int64 { return c.costPriceCents }

// ShippingCostCents returns the quoted shipping cost in cents.
func (c AttachVendorCommand) ShippingCostCents() int64 { return c.shippingCostCents }

// CorePriceCents returns the informational core charge in cents.
func (c AttachVendorCommand) CorePriceCents() int64 { return c.corePriceCents }

func (c *AttachVendorCommand) setIDs(orderID, vendorID kernel.UUID) error {
	if err := errors.Join(orderID.Validate(), vendorID.Validate()); err != nil {
		return err
	}

	c.orderID = orderID
	c.vendorID = vendorID
	return nil
}

func (c *AttachVendorCommand) setBusinessName(businessName string) error {
	if businessName == "" {
		return ErrVendorBusinessNameIsRequired
	}

	c.businessName = businessName
	return nil
}

func (c *AttachVendorCommand) setCosts(costPriceCents, shippingCostCents, corePriceCents int64) error {
	if err := errors.Join(
		validateCents(costPriceCents),
		validateCents(shippingCostCents),
		validateCents(corePriceCents),
	); err != nil {
		return err
	}

	c.costPriceCents = costPriceCents
	c.shippingCostCents = shippingCostCents
	c.corePriceCents = corePriceCents
	return nil
}

func validateCents(cents int64) error {
	_, err := kernel.NewMoneyFromCents(cents)
	return err
}
