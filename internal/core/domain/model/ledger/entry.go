// Package ledger holds the vendor refund ledger. When an operator cancels a
// vendor whose purchase order was already confirmed, the money paid or
// committed to that vendor must come back; each such cancellation produces one
// immutable ledger entry that tracks the refund from pending to paid.
package ledger

import (
	"errors"
	"time"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/core/domain/model/order"
	"partsflow/internal/pkg/errs"
	"partsflow/internal/pkg/guard"
)

// Domain errors for ledger operations.
var (
	// ErrVendorNameIsRequired is returned when creating an entry without the vendor snapshot name.
	ErrVendorNameIsRequired = errs.NewValueIsRequiredError("vendorBusinessName")
	// ErrReasonIsRequired is returned when creating an entry without a cancellation reason.
	ErrReasonIsRequired = errs.NewValueIsRequiredError("cancellationReason")
	// ErrEntryIsNotConstructed is returned when using an improperly initialized Entry.
	ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")
)

// PaymentStatus tracks whether the vendor refund has been received.
type PaymentStatus int

const (
	// PaymentStatusUnknown represents an invalid or undefined payment status.
	PaymentStatusUnknown PaymentStatus = iota

	// RefundPending indicates the refund is owed but not yet received.
	RefundPending

	// RefundPaid indicates the refund was received. This state is final.
	RefundPaid
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentStatusUnknown: "Unknown",
		RefundPending:        "RefundPending",
		RefundPaid:           "RefundPaid",
	}
}

// Validate checks if the PaymentStatus is one of the defined values.
func (s PaymentStatus) Validate() error {
	if s == PaymentStatusUnknown {
		return errs.NewValueIsInvalidError("payment status is invalid")
	}
	if _, ok := getPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("payment status is invalid")
	}
	return nil
}

// String returns the human-readable name of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Entry is a refund obligation created by canceling a confirmed vendor.
// The vendor fields are a snapshot taken at cancellation time: later edits to
// the order or its quotes never touch the ledger. The only mutation an entry
// supports is the one-way move from RefundPending to RefundPaid.
type Entry struct {
	id       kernel.UUID
	orderID  kernel.UUID
	vendorID kernel.UUID

	vendorBusinessName string
	amount             kernel.Money
	cancellationReason string

	paymentStatus PaymentStatus
	createdAt     time.Time
	paidAt        *time.Time

	guard guard.ConstructorGuard
}

// NewEntry creates a pending refund entry from a vendor snapshot.
// Amount is the canceled vendor's derived total cost at cancellation time.
func NewEntry(
	id, orderID, vendorID kernel.UUID,
	vendorBusinessName string,
	amount kernel.Money,
	cancellationReason string,
) (*Entry, error) {
	entry := &Entry{
		paymentStatus: RefundPending,
		createdAt:     time.Now().UTC(),
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entry.setIDs(id, orderID, vendorID),
		entry.setVendorBusinessName(vendorBusinessName),
		entry.setCancellationReason(cancellationReason),
	); err != nil {
		return nil, err
	}

	entry.amount = amount

	return entry, nil
}

// SnapshotVendor creates a pending refund entry from a canceled vendor quote.
func SnapshotVendor(orderID kernel.UUID, vendor *order.VendorQuote, cancellationReason string) (*Entry, error) {
	if err := vendor.Validate(); err != nil {
		return nil, err
	}
	return NewEntry(
		kernel.NewUUID(),
		orderID,
		vendor.ID(),
		vendor.BusinessName(),
		vendor.TotalCost(),
		cancellationReason,
	)
}

// RestoreEntry reconstructs a ledger entry from persistent storage.
func RestoreEntry(
	id, orderID, vendorID kernel.UUID,
	vendorBusinessName string,
	amount kernel.Money,
	cancellationReason string,
	paymentStatus PaymentStatus,
	createdAt time.Time,
	paidAt *time.Time,
) (*Entry, error) {
	entry := &Entry{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entry.setIDs(id, orderID, vendorID),
		entry.setVendorBusinessName(vendorBusinessName),
		entry.setCancellationReason(cancellationReason),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	entry.amount = amount
	entry.paymentStatus = paymentStatus
	entry.createdAt = createdAt
	entry.paidAt = paidAt

	return entry, nil
}

// Validate ensures the entry was properly constructed.
func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID { return e.id }

// OrderID returns the order the canceled vendor belonged to.
func (e *Entry) OrderID() kernel.UUID { return e.orderID }

// VendorID returns the canceled vendor quote's identifier.
func (e *Entry) VendorID() kernel.UUID { return e.vendorID }

// VendorBusinessName returns the vendor name snapshot.
func (e *Entry) VendorBusinessName() string { return e.vendorBusinessName }

// Amount returns the refund amount snapshot.
func (e *Entry) Amount() kernel.Money { return e.amount }

// CancellationReason returns the operator-supplied cancellation reason.
func (e *Entry) CancellationReason() string { return e.cancellationReason }

// PaymentStatus returns the refund payment status.
func (e *Entry) PaymentStatus() PaymentStatus { return e.paymentStatus }

// CreatedAt returns the entry creation time.
func (e *Entry) CreatedAt() time.Time { return e.createdAt }

// PaidAt returns when the refund was received, or nil while pending.
func (e *Entry) PaidAt() *time.Time { return e.paidAt }

// MarkPaid records receipt of the refund. The move is one-way; marking a paid
// entry again trips the idempotency guard.
func (e *Entry) MarkPaid() error {
	if e.paymentStatus == RefundPaid {
		return errs.NewAlreadySetError("refund payment status")
	}

	now := time.Now().UTC()
	e.paymentStatus = RefundPaid
	e.paidAt = &now
	return nil
}

func (e *Entry) setIDs(id, orderID, vendorID kernel.UUID) error {
	if err := errors.Join(id.Validate(), orderID.Validate(), vendorID.Validate()); err != nil {
		return err
	}
	e.id = id
	e.orderID = orderID
	e.vendorID = vendorID
	return nil
}

func (e *Entry) setVendorBusinessName(vendorBusinessName string) error {
	if vendorBusinessName == "" {
		return ErrVendorNameIsRequired
	}
	e.vendorBusinessName = vendorBusinessName
	return nil
}

func (e *Entry) setCancellationReason(cancellationReason string) error {
	if cancellationReason == "" {
		return ErrReasonIsRequired
	}
	e.cancellationReason = cancellationReason
	return nil
}
