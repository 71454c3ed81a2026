package commands

import (
	"errors"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/pkg/guard"
)

var (
	ErrAddNoteCommandIsNotConstructed = errors.New(
		"AddNoteCommand must be created via NewAddNoteCommand constructor",
	)
	ErrNoteTextIsRequired = errors.New("note text is required")
)

// AddNoteCommand represents appending a note to an order or, when a vendor ID
// is supplied, to one of its vendor quotes. Order-level notes land in the
// customer-visible stream unless marked internal, which routes them to the
// procurement stream instead.
type AddNoteCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	vendorID *kernel.UUID
	text     string
	internal bool

	guard guard.ConstructorGuard
}

// NewAddNoteCommand creates a command to append a note.
func NewAddNoteCommand(orderID kernel.UUID, vendorID *kernel.UUID, text string, internal bool) (AddNoteCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AddNoteCommand{}, err
	}
	if vendorID != nil {
		if err := vendorID.Validate(); err != nil {
			return AddNoteCommand{}, err
		}
	}
	if text == "" {
		return AddNoteCommand{}, ErrNoteTextIsRequired
	}

	return AddNoteCommand{
		orderID:  orderID,
		vendorID: vendorID,
		text:     text,
		internal: internal,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddNoteCommand) Validate() error {
	return c.guard.Validate(ErrAddNoteCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AddNoteCommand) OrderID() kernel.UUID { return c.orderID }

// VendorID returns the target vendor quote, or nil for an order-level note.
func (c AddNoteCommand) VendorID() *kernel.UUID { return c.vendorID }

// Text returns the note body.
func (c AddNoteCommand) Text() string { return c.text }

// Internal reports whether an order-level note goes to the procurement stream.
func (c AddNoteCommand) Internal() bool { return c.internal }
