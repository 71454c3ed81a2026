package commands

import (
	"errors"
	"time"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/core/domain/model/order"
	"partsflow/internal/pkg/guard"
)

var (
	ErrUpdateChecklistCommandIsNotConstructed = errors.New(
		"UpdateChecklistCommand must be created via NewUpdateChecklistCommand constructor",
	)
	ErrChecklistUpdateIsEmpty = errors.New("at least one checklist field is required")
)

// ChecklistFields is the wire-level partial update for the procurement
// checklist. Nil fields leave the current value untouched. Cost fields are
// cent amounts.
type ChecklistFields struct {
	VendorInformedDate       *time.Time
	ReplacementPartReadyDate *time.Time

	SentPicturesToVendor          *bool
	SentDiagnosticReportToVendor  *bool
	YardAgreedReturnShipping      *bool
	YardAgreedReplacement         *bool
	YardAgreedReplacementShipping *bool

	AdditionalCostReplacementPartCents     *int64
	AdditionalCostReplacementShippingCents *int64
}

func (f ChecklistFields) isEmpty() bool {
	return f.VendorInformedDate == nil &&
		f.ReplacementPartReadyDate == nil &&
		f.SentPicturesToVendor == nil &&
		f.SentDiagnosticReportToVendor == nil &&
		f.YardAgreedReturnShipping == nil &&
		f.YardAgreedReplacement == nil &&
		f.YardAgreedReplacementShipping == nil &&
		f.AdditionalCostReplacementPartCents == nil &&
		f.AdditionalCostReplacementShippingCents == nil
}

// UpdateChecklistCommand represents a partial update to the replacement
// procurement checklist.
type UpdateChecklistCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	fields  ChecklistFields

	guard guard.ConstructorGuard
}

// NewUpdateChecklistCommand creates a command to update the procurement checklist.
func NewUpdateChecklistCommand(orderID kernel.UUID, fields ChecklistFields) (UpdateChecklistCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateChecklistCommand{}, err
	}
	if fields.isEmpty() {
		return UpdateChecklistCommand{}, ErrChecklistUpdateIsEmpty
	}
	if fields.AdditionalCostReplacementPartCents != nil {
		if err := validateCents(*fields.AdditionalCostReplacementPartCents); err != nil {
			return UpdateChecklistCommand{}, err
		}
	}
	if fields.AdditionalCostReplacementShippingCents != nil {
		if err := validateCents(*fields.AdditionalCostReplacementShippingCents); err != nil {
			return UpdateChecklistCommand{}, err
		}
	}

	return UpdateChecklistCommand{
		orderID: orderID,
		fields:  fields,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateChecklistCommand) Validate() error {
	return c.guard.Validate(ErrUpdateChecklistCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UpdateChecklistCommand) OrderID() kernel.UUID { return c.orderID }

// Fields returns the partial update payload.
func (c UpdateChecklistCommand) Fields() ChecklistFields { return c.fields }

// toDomain converts the cent amounts to Money and maps onto the domain update.
func (c UpdateChecklistCommand) toDomain() order.ChecklistUpdate {
	update := order.ChecklistUpdate{
		VendorInformedDate:            c.fields.VendorInformedDate,
		ReplacementPartReadyDate:      c.fields.ReplacementPartReadyDate,
		SentPicturesToVendor:          c.fields.SentPicturesToVendor,
		SentDiagnosticReportToVendor:  c.fields.SentDiagnosticReportToVendor,
		YardAgreedReturnShipping:      c.fields.YardAgreedReturnShipping,
		YardAgreedReplacement:         c.fields.YardAgreedReplacement,
		YardAgreedReplacementShipping: c.fields.YardAgreedReplacementShipping,
	}

	if cents := c.fields.AdditionalCostReplacementPartCents; cents != nil {
		cost := kernel.MustMoneyFromCents(*cents)
		update.AdditionalCostReplacementPart = &cost
	}
	if cents := c.fields.AdditionalCostReplacementShippingCents; cents != nil {
		cost := kernel.MustMoneyFromCents(*cents)
		update.AdditionalCostReplacementShipping = &cost
	}

	return update
}
