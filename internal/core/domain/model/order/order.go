package order

import (
	"errors"
	"fmt"
	"time"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/pkg/errs"
	"partsflow/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrCustomerNameIsRequired is returned when creating an order without a customer name.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customerName")
	// ErrCancellationReasonIsRequired is returned when canceling a vendor without a reason.
	ErrCancellationReasonIsRequired = errs.NewValueIsRequiredError("cancellationReason")
	// ErrOrderIsNotConstructed is returned when using an improperly initialized Order.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the fulfillment aggregate root. It owns the vendor quotes attached
// during sourcing and is the single writer of both the order status and every
// vendor's PO sub-status, which keeps the two machines consistent under the
// aggregate invariant: whenever the status requires an active vendor, exactly
// one attached quote is active (POConfirmed and operator-confirmed), and
// otherwise none is.
//
// Every successful status transition appends an audit note and records a
// StatusChangedEvent for post-commit publication. The version field backs
// optimistic concurrency control in the repository.
type Order struct {
	id           kernel.UUID
	customerName string
	amount       kernel.Money

	status  Status
	vendors []*VendorQuote

	shipment *Shipment

	picturesReceivedFromYard bool
	picturesSentToCustomer   bool

	notes            []Note
	procurementNotes []Note
	checklist        *ProcurementChecklist

	agentID *kernel.UUID

	version int

	events []StatusChangedEvent

	guard guard.ConstructorGuard
}

// NewOrder creates an order in LocatePending status with no vendors attached.
// Amount is the sale price agreed with the customer.
func NewOrder(id kernel.UUID, customerName string, amount kernel.Money) (*Order, error) {
	order := &Order{
		status: LocatePending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerName(customerName),
	); err != nil {
		return nil, err
	}

	order.amount = amount

	return order, nil
}

// RestoreOrder reconstructs an order from persistent storage. The restored
// aggregate must already satisfy the active-vendor invariant; a violation
// means the stored row is corrupt and the load fails.
func RestoreOrder(
	id kernel.UUID,
	customerName string,
	amount kernel.Money,
	status Status,
	vendors []*VendorQuote,
	shipment *Shipment,
	picturesReceivedFromYard, picturesSentToCustomer bool,
	notes, procurementNotes []Note,
	checklist *ProcurementChecklist,
	agentID *kernel.UUID,
	version int,
) (*Order, error) {
	order := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerName(customerName),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	order.amount = amount
	order.status = status
	order.vendors = make([]*VendorQuote, len(vendors))
	copy(order.vendors, vendors)
	order.shipment = shipment
	order.picturesReceivedFromYard = picturesReceivedFromYard
	order.picturesSentToCustomer = picturesSentToCustomer
	order.notes = make([]Note, len(notes))
	copy(order.notes, notes)
	order.procurementNotes = make([]Note, len(procurementNotes))
	copy(order.procurementNotes, procurementNotes)
	order.checklist = checklist
	order.agentID = agentID
	order.version = version

	if err := order.checkActiveVendorInvariant(); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the order was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// CustomerName returns the customer the part is being sourced for.
func (o *Order) CustomerName() string { return o.customerName }

// Amount returns the sale price agreed with the customer.
func (o *Order) Amount() kernel.Money { return o.amount }

// Status returns the current order status.
func (o *Order) Status() Status { return o.status }

// Vendors returns a copy of the attached vendor quote list. The quotes
// themselves remain aggregate-owned; callers must not mutate them directly.
func (o *Order) Vendors() []*VendorQuote {
	out := make([]*VendorQuote, len(o.vendors))
	copy(out, o.vendors)
	return out
}

// Shipment returns the recorded shipment details, or nil before any were recorded.
func (o *Order) Shipment() *Shipment { return o.shipment }

// PicturesReceivedFromYard reports whether part pictures arrived from the yard.
func (o *Order) PicturesReceivedFromYard() bool { return o.picturesReceivedFromYard }

// PicturesSentToCustomer reports whether part pictures were forwarded to the customer.
func (o *Order) PicturesSentToCustomer() bool { return o.picturesSentToCustomer }

// Notes returns a copy of the order's append-only note history.
func (o *Order) Notes() []Note {
	out := make([]Note, len(o.notes))
	copy(out, o.notes)
	return out
}

// ProcurementNotes returns a copy of the internal procurement note history.
func (o *Order) ProcurementNotes() []Note {
	out := make([]Note, len(o.procurementNotes))
	copy(out, o.procurementNotes)
	return out
}

// Checklist returns the replacement procurement checklist, or nil if the order
// never entered the Replacement branch.
func (o *Order) Checklist() *ProcurementChecklist { return o.checklist }

// AgentID returns the assigned agent, or nil if unassigned.
func (o *Order) AgentID() *kernel.UUID { return o.agentID }

// Version returns the optimistic concurrency version loaded from storage.
func (o *Order) Version() int { return o.version }

// Events returns the status change events recorded since the aggregate was
// created or restored.
func (o *Order) Events() []StatusChangedEvent {
	out := make([]StatusChangedEvent, len(o.events))
	copy(out, o.events)
	return out
}

// ClearEvents drops recorded events. Called by the unit of work after
// publishing them post-commit.
func (o *Order) ClearEvents() {
	o.events = nil
}

// ActiveVendor returns the single active vendor quote, or nil while sourcing.
func (o *Order) ActiveVendor() *VendorQuote {
	for _, vendor := range o.vendors {
		if vendor.IsActive() {
			return vendor
		}
	}
	return nil
}

// VendorByID finds an attached vendor quote by its identifier.
func (o *Order) VendorByID(vendorID kernel.UUID) (*VendorQuote, error) {
	for _, vendor := range o.vendors {
		if vendor.ID().IsEqual(vendorID) {
			return vendor, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("vendorID", vendorID)
}

// ProfitMargin returns the profit fraction of the sale amount against the
// active vendor's derived total cost. The second return value is false while
// no vendor is active or the sale amount is zero.
func (o *Order) ProfitMargin() (float64, bool) {
	active := o.ActiveVendor()
	if active == nil || o.amount.IsZero() {
		return 0, false
	}

	profit := o.amount.Cents() - active.TotalCost().Cents()
	return float64(profit) / float64(o.amount.Cents()), true
}

// AssignAgent assigns or reassigns the agent responsible for the order.
func (o *Order) AssignAgent(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	o.agentID = &agentID
	return nil
}

// AttachVendor adds a vendor quote to the order during sourcing.
// The first attached vendor moves the order from LocatePending to POPending.
// Attaching a quote with an already-used identifier is rejected.
func (o *Order) AttachVendor(quote *VendorQuote) error {
	if err := quote.Validate(); err != nil {
		return err
	}
	if !o.status.isSourcing() {
		return errs.NewInvalidStateError("attach vendor",
			o.status.String(), "LocatePending, POPending or POSent")
	}
	for _, vendor := range o.vendors {
		if vendor.ID().IsEqual(quote.ID()) {
			return errs.NewConflictError("vendor quote",
				fmt.Sprintf("vendor %s is already attached", quote.ID()))
		}
	}

	o.vendors = append(o.vendors, quote)
	if o.status == LocatePending {
		o.changeStatus(POPending)
	}
	return nil
}

// UpdateVendorContact updates a vendor's identity and contact details.
// The vendor-level PO status gate applies.
func (o *Order) UpdateVendorContact(vendorID kernel.UUID, businessName, agentName, phoneNumber, email string) error {
	vendor, err := o.VendorByID(vendorID)
	if err != nil {
		return err
	}
	return vendor.UpdateContact(businessName, agentName, phoneNumber, email)
}

// UpdateVendorCosts updates a vendor's cost inputs. The derived total is
// recomputed inside the quote.
func (o *Order) UpdateVendorCosts(vendorID kernel.UUID, costPrice, shippingCost, corePrice kernel.Money) error {
	vendor, err := o.VendorByID(vendorID)
	if err != nil {
		return err
	}
	return vendor.UpdateCosts(costPrice, shippingCost, corePrice)
}

// UpdateVendorDetails updates a vendor's descriptive fields.
func (o *Order) UpdateVendorDetails(vendorID kernel.UUID, rating int, warranty string, mileage int) error {
	vendor, err := o.VendorByID(vendorID)
	if err != nil {
		return err
	}
	return vendor.UpdateDetails(rating, warranty, mileage)
}

// AddVendorNote appends a note to a vendor quote's history.
func (o *Order) AddVendorNote(vendorID kernel.UUID, text string) error {
	vendor, err := o.VendorByID(vendorID)
	if err != nil {
		return err
	}
	return vendor.AddNote(text)
}

// SendPO records that a purchase order went out to the vendor.
// The vendor moves POPending -> POSent; the first sent PO moves the order
// from POPending to POSent. Additional POs can be sent to other pending
// vendors while the order is already in POSent.
func (o *Order) SendPO(vendorID kernel.UUID) error {
	if o.status != POPending && o.status != POSent {
		return errs.NewInvalidStateError("send purchase order",
			o.status.String(), fmt.Sprintf("%s or %s", POPending, POSent))
	}

	vendor, err := o.VendorByID(vendorID)
	if err != nil {
		return err
	}
	if err := vendor.markSent(); err != nil {
		return err
	}

	if o.status == POPending {
		o.changeStatus(POSent)
	}
	return nil
}

// ConfirmVendor promotes the vendor to the order's single active slot.
// The vendor must have a sent PO, and no other vendor may already hold the
// slot; a second confirmation attempt is a conflict, not an invalid state,
// because it usually means two operators raced.
func (o *Order) ConfirmVendor(vendorID kernel.UUID) error {
	// The conflict check runs before the status gate: once a vendor holds the
	// slot the order has left the sourcing statuses, and a losing racer must
	// still see the conflict rather than an invalid state.
	if active := o.ActiveVendor(); active != nil {
		return errs.NewConflictError("active vendor",
			fmt.Sprintf("vendor %s is already confirmed", active.ID()))
	}
	if !o.status.isSourcing() {
		return errs.NewInvalidStateError("confirm vendor",
			o.status.String(), "LocatePending, POPending or POSent")
	}

	vendor, err := o.VendorByID(vendorID)
	if err != nil {
		return err
	}
	if err := vendor.markConfirmed(); err != nil {
		return err
	}

	o.changeStatus(POConfirmed)
	return o.checkActiveVendorInvariant()
}

// RequestVendorPayment marks payment to the active vendor as initiated.
func (o *Order) RequestVendorPayment() error {
	if o.status != POConfirmed {
		return errs.NewInvalidStateError("request vendor payment",
			o.status.String(), POConfirmed.String())
	}

	o.changeStatus(VendorPaymentPending)
	return nil
}

// ConfirmVendorPayment records settled payment to the active vendor and moves
// the order to VendorPaymentConfirmed. The intermediate VendorPaymentPending
// step is optional; confirmation directly from POConfirmed is legal.
func (o *Order) ConfirmVendorPayment() error {
	if o.status != POConfirmed && o.status != VendorPaymentPending {
		return errs.NewInvalidStateError("confirm vendor payment",
			o.status.String(), fmt.Sprintf("%s or %s", POConfirmed, VendorPaymentPending))
	}

	active := o.ActiveVendor()
	if active == nil {
		return errs.NewInvalidStateError("confirm vendor payment",
			o.status.String(), "an active vendor")
	}
	if err := active.confirmPayment(); err != nil {
		return err
	}

	o.changeStatus(VendorPaymentConfirmed)
	return nil
}

// RecordShipment stores the shipment details. The first record moves the
// order from VendorPaymentConfirmed to ShippingPending; corrections may be
// recorded while still in ShippingPending. Submitting identical details again
// is an idempotent no-op.
func (o *Order) RecordShipment(shipment Shipment) error {
	if o.shipment != nil && o.shipment.IsEqual(shipment) {
		return nil
	}
	if o.status != VendorPaymentConfirmed && o.status != ShippingPending {
		return errs.NewInvalidStateError("record shipment",
			o.status.String(), fmt.Sprintf("%s or %s", VendorPaymentConfirmed, ShippingPending))
	}

	o.shipment = &shipment
	if o.status == VendorPaymentConfirmed {
		o.changeStatus(ShippingPending)
	}
	return nil
}

// MarkShipOut records that the part left the yard.
func (o *Order) MarkShipOut() error {
	if o.status != ShippingPending {
		return errs.NewInvalidStateError("mark ship out",
			o.status.String(), ShippingPending.String())
	}

	o.changeStatus(ShipOut)
	return nil
}

// MarkInTransit records that the carrier has the part. ShipOut may be skipped
// when tracking starts reporting before the dispatch confirmation arrives.
func (o *Order) MarkInTransit() error {
	if o.status != ShippingPending && o.status != ShipOut {
		return errs.NewInvalidStateError("mark in transit",
			o.status.String(), fmt.Sprintf("%s or %s", ShippingPending, ShipOut))
	}

	o.changeStatus(Intransit)
	return nil
}

// MarkDelivered records customer receipt of the part.
func (o *Order) MarkDelivered() error {
	if o.status != Intransit {
		return errs.NewInvalidStateError("mark delivered",
			o.status.String(), Intransit.String())
	}

	o.changeStatus(Delivered)
	return nil
}

// EscalateLitigation moves the order to the terminal dispute state. Permitted
// from any state past PO confirmation up to and including Delivered.
func (o *Order) EscalateLitigation() error {
	if !o.status.CanEscalateToLitigation() {
		return errs.NewInvalidStateError("escalate litigation",
			o.status.String(), "any status from POConfirmed through Delivered")
	}

	o.changeStatus(Litigation)
	return nil
}

// OpenReplacement starts the post-delivery replacement negotiation with the
// yard. The procurement checklist is created on first entry and survives
// subsequent replacement cycles.
func (o *Order) OpenReplacement() error {
	if o.status != Delivered {
		return errs.NewInvalidStateError("open replacement",
			o.status.String(), Delivered.String())
	}

	if o.checklist == nil {
		o.checklist = NewProcurementChecklist()
	}
	o.changeStatus(Replacement)
	return nil
}

// CancelReplacement ends the replacement negotiation without a part. Terminal.
func (o *Order) CancelReplacement() error {
	if o.status != Replacement {
		return errs.NewInvalidStateError("cancel replacement",
			o.status.String(), Replacement.String())
	}

	o.changeStatus(ReplacementCancelled)
	return nil
}

// CompleteReplacement records that the yard delivered the replacement part,
// returning the order to Delivered so a further dispute cycle remains possible.
func (o *Order) CompleteReplacement() error {
	if o.status != Replacement {
		return errs.NewInvalidStateError("complete replacement",
			o.status.String(), Replacement.String())
	}

	o.changeStatus(Delivered)
	return nil
}

// UpdateChecklist applies a partial update to the procurement checklist.
// Only legal while the order is in the Replacement branch.
func (o *Order) UpdateChecklist(update ChecklistUpdate) error {
	if o.status != Replacement {
		return errs.NewInvalidStateError("update procurement checklist",
			o.status.String(), Replacement.String())
	}

	o.checklist.Apply(update)
	return nil
}

// MarkPicturesReceived records that part pictures arrived from the yard.
// The flag is monotonic; setting it twice trips the idempotency guard.
func (o *Order) MarkPicturesReceived() error {
	if o.picturesReceivedFromYard {
		return errs.NewAlreadySetError("picturesReceivedFromYard")
	}

	o.picturesReceivedFromYard = true
	return nil
}

// MarkPicturesSent records that pictures were forwarded to the customer.
// Requires pictures to have arrived from the yard first.
func (o *Order) MarkPicturesSent() error {
	if !o.picturesReceivedFromYard {
		return errs.NewInvalidStateError("mark pictures sent",
			"pictures not received from yard", "pictures received from yard")
	}
	if o.picturesSentToCustomer {
		return errs.NewAlreadySetError("picturesSentToCustomer")
	}

	o.picturesSentToCustomer = true
	return nil
}

// AddNote appends a customer-visible note to the order.
func (o *Order) AddNote(text string) error {
	note, err := NewNote(text)
	if err != nil {
		return err
	}

	o.notes = append(o.notes, note)
	return nil
}

// AddProcurementNote appends an internal procurement note to the order.
func (o *Order) AddProcurementNote(text string) error {
	note, err := NewNote(text)
	if err != nil {
		return err
	}

	o.procurementNotes = append(o.procurementNotes, note)
	return nil
}

// CancelVendor cancels a vendor quote with a mandatory reason.
//
// Canceling a non-confirmed quote simply freezes it. Canceling the active
// vendor additionally demotes the order back into sourcing: the status is
// recomputed from the surviving quotes (any sent PO keeps POSent, any pending
// quote keeps POPending, otherwise LocatePending). The returned flag reports
// whether the cancellation creates a vendor refund obligation, which is true
// exactly when the canceled PO was confirmed; the caller records the ledger
// entry in the same transaction.
//
// Cancellation of the active vendor is only permitted before shipping starts.
func (o *Order) CancelVendor(vendorID kernel.UUID, reason string) (bool, error) {
	if reason == "" {
		return false, ErrCancellationReasonIsRequired
	}

	vendor, err := o.VendorByID(vendorID)
	if err != nil {
		return false, err
	}

	if vendor.IsActive() {
		switch o.status {
		case POConfirmed, VendorPaymentPending, VendorPaymentConfirmed:
		default:
			return false, errs.NewInvalidStateError("cancel active vendor",
				o.status.String(), "POConfirmed, VendorPaymentPending or VendorPaymentConfirmed")
		}
	}

	refundDue := vendor.POStatus().GeneratesRefundObligation()
	if err := vendor.markCanceled(); err != nil {
		return false, err
	}
	if noteErr := vendor.AddNote("canceled: " + reason); noteErr != nil {
		return false, noteErr
	}

	if o.status.RequiresActiveVendor() {
		o.changeStatus(o.recomputeSourcingStatus())
	}
	if err := o.checkActiveVendorInvariant(); err != nil {
		return false, err
	}
	return refundDue, nil
}

// recomputeSourcingStatus derives the sourcing status from the surviving
// non-canceled quotes after the active vendor was canceled.
func (o *Order) recomputeSourcingStatus() Status {
	hasSent, hasPending := false, false
	for _, vendor := range o.vendors {
		switch vendor.POStatus() {
		case POStatusSent:
			hasSent = true
		case POStatusPending:
			hasPending = true
		}
	}

	switch {
	case hasSent:
		return POSent
	case hasPending:
		return POPending
	default:
		return LocatePending
	}
}

// checkActiveVendorInvariant verifies the aggregate-wide consistency rule:
// statuses past PO confirmation require exactly one active vendor, sourcing
// statuses require none.
func (o *Order) checkActiveVendorInvariant() error {
	activeCount := 0
	for _, vendor := range o.vendors {
		if vendor.IsActive() {
			activeCount++
		}
	}

	if activeCount > 1 {
		return errs.NewConflictError("active vendor",
			fmt.Sprintf("%d vendors are confirmed at once", activeCount))
	}
	if o.status.RequiresActiveVendor() && activeCount == 0 {
		return errs.NewInvalidStateError("active vendor check",
			o.status.String(), "exactly one confirmed vendor")
	}
	if o.status.isSourcing() && activeCount != 0 {
		return errs.NewInvalidStateError("active vendor check",
			o.status.String(), "no confirmed vendor while sourcing")
	}
	return nil
}

// changeStatus performs the transition, appends the audit note and records the
// domain event. All status writes go through here.
func (o *Order) changeStatus(newStatus Status) {
	previous := o.status
	o.status = newStatus

	note, err := NewNote("status changed to " + newStatus.String())
	if err == nil {
		o.notes = append(o.notes, note)
	}

	o.events = append(o.events, StatusChangedEvent{
		OrderID:        o.id,
		PreviousStatus: previous,
		NewStatus:      newStatus,
		OccurredAt:     time.Now().UTC(),
	})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}
	o.customerName = customerName
	return nil
}
