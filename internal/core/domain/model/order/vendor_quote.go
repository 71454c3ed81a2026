package order

import (
	"errors"
	"fmt"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/pkg/errs"
	"partsflow/internal/pkg/guard"
)

const (
	ratingMin = 0
	ratingMax = 5
)

// Domain errors for vendor quote operations.
var (
	// ErrBusinessNameIsRequired is returned when attaching a quote without a vendor business name.
	ErrBusinessNameIsRequired = errs.NewValueIsRequiredError("businessName")
	// ErrMileageIsInvalid is returned for negative mileage.
	ErrMileageIsInvalid = errs.NewValueIsInvalidError("mileage must not be negative")
	// ErrVendorQuoteIsNotConstructed is returned when using an improperly initialized VendorQuote.
	ErrVendorQuoteIsNotConstructed = errors.New("VendorQuote must be created via NewVendorQuote constructor")
)

// VendorQuote is a per-order, per-vendor record of commercial terms and its
// own purchase-order sub-status. It is a sub-entity of the Order aggregate:
// all mutations flow through Order methods so the active-vendor invariant and
// the order status derivation can never be bypassed.
//
// Business rules:
//   - Identity and contact fields are editable only while the PO is pending.
//   - totalCost is derived (costPrice + shippingCost, core price excluded) and
//     recomputed synchronously on every cost edit; it is never accepted as input.
//   - Rating, warranty and mileage are descriptive and never affect transitions.
//   - paymentConfirmed is settable only once the quote is operator-confirmed.
//   - A canceled quote is frozen.
type VendorQuote struct {
	id kernel.UUID

	businessName string
	agentName    string
	phoneNumber  string
	email        string

	costPrice    kernel.Money
	shippingCost kernel.Money
	corePrice    kernel.Money
	totalCost    kernel.Money

	rating   int
	warranty string
	mileage  int

	poStatus         POStatus
	isConfirmed      bool
	paymentConfirmed bool

	notes []Note

	guard guard.ConstructorGuard
}

// NewVendorQuote creates a vendor quote in POPending state.
// Business name is required; agent name, phone and email are optional contact
// details. The derived total is computed from the cost and shipping inputs.
func NewVendorQuote(
	id kernel.UUID,
	businessName, agentName, phoneNumber, email string,
	costPrice, shippingCost, corePrice kernel.Money,
) (*VendorQuote, error) {
	quote := &VendorQuote{
		poStatus: POStatusPending,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		quote.setID(id),
		quote.setBusinessName(businessName),
	); err != nil {
		return nil, err
	}

	quote.agentName = agentName
	quote.phoneNumber = phoneNumber
	quote.email = email
	quote.setCosts(costPrice, shippingCost, corePrice)

	return quote, nil
}

// RestoreVendorQuote reconstructs a vendor quote from persistent storage,
// including its sub-status, confirmation flags and note history. The derived
// total is recomputed rather than trusted from storage.
func RestoreVendorQuote(
	id kernel.UUID,
	businessName, agentName, phoneNumber, email string,
	costPrice, shippingCost, corePrice kernel.Money,
	rating int,
	warranty string,
	mileage int,
	poStatus POStatus,
	isConfirmed, paymentConfirmed bool,
	notes []Note,
) (*VendorQuote, error) {
	quote := &VendorQuote{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		quote.setID(id),
		quote.setBusinessName(businessName),
		quote.setRating(rating),
		quote.setMileage(mileage),
		poStatus.Validate(),
	); err != nil {
		return nil, err
	}

	quote.agentName = agentName
	quote.phoneNumber = phoneNumber
	quote.email = email
	quote.setCosts(costPrice, shippingCost, corePrice)
	quote.warranty = warranty
	quote.poStatus = poStatus
	quote.isConfirmed = isConfirmed
	quote.paymentConfirmed = paymentConfirmed
	quote.notes = make([]Note, len(notes))
	copy(quote.notes, notes)

	return quote, nil
}

// Validate ensures the quote was properly constructed.
func (v *VendorQuote) Validate() error {
	if v == nil {
		return ErrVendorQuoteIsNotConstructed
	}
	return v.guard.Validate(ErrVendorQuoteIsNotConstructed)
}

// ID returns the quote's unique identifier.
func (v *VendorQuote) ID() kernel.UUID { return v.id }

// BusinessName returns the vendor's business name.
func (v *VendorQuote) BusinessName() string { return v.businessName }

// AgentName returns the vendor-side contact person.
func (v *VendorQuote) AgentName() string { return v.agentName }

// PhoneNumber returns the vendor contact phone number.
func (v *VendorQuote) PhoneNumber() string { return v.phoneNumber }

// Email returns the vendor contact email.
func (v *VendorQuote) Email() string { return v.email }

// CostPrice returns the part cost quoted by the vendor.
func (v *VendorQuote) CostPrice() kernel.Money { return v.costPrice }

// ShippingCost returns the shipping cost quoted by the vendor.
func (v *VendorQuote) ShippingCost() kernel.Money { return v.shippingCost }

// CorePrice returns the informational core charge. It is excluded from the
// derived total.
func (v *VendorQuote) CorePrice() kernel.Money { return v.corePrice }

// TotalCost returns the derived total, always equal to costPrice + shippingCost.
func (v *VendorQuote) TotalCost() kernel.Money { return v.totalCost }

// Rating returns the 0-5 vendor rating.
func (v *VendorQuote) Rating() int { return v.rating }

// Warranty returns the free-text warranty description.
func (v *VendorQuote) Warranty() string { return v.warranty }

// Mileage returns the quoted part mileage.
func (v *VendorQuote) Mileage() int { return v.mileage }

// POStatus returns the purchase-order sub-status.
func (v *VendorQuote) POStatus() POStatus { return v.poStatus }

// IsConfirmed reports whether the operator explicitly confirmed this quote.
// Kept distinct from POStatus so "sent but not yet confirmed" is trackable
// without ambiguity.
func (v *VendorQuote) IsConfirmed() bool { return v.isConfirmed }

// PaymentConfirmed reports whether payment to this vendor is settled.
func (v *VendorQuote) PaymentConfirmed() bool { return v.paymentConfirmed }

// Notes returns a copy of the append-only note history.
func (v *VendorQuote) Notes() []Note {
	out := make([]Note, len(v.notes))
	copy(out, v.notes)
	return out
}

// IsActive reports whether this quote is the order's active vendor: PO
// confirmed and operator-confirmed. At most one quote per order may be active.
func (v *VendorQuote) IsActive() bool {
	return v.poStatus == POStatusConfirmed && v.isConfirmed
}

// UpdateContact replaces the identity and contact fields.
// Permitted only while the PO is pending; once sent, identity is frozen.
func (v *VendorQuote) UpdateContact(businessName, agentName, phoneNumber, email string) error {
	if v.poStatus != POStatusPending {
		return errs.NewInvalidStateError("update vendor contact",
			v.poStatus.String(), POStatusPending.String())
	}
	if err := v.setBusinessName(businessName); err != nil {
		return err
	}

	v.agentName = agentName
	v.phoneNumber = phoneNumber
	v.email = email
	return nil
}

// UpdateCosts replaces the cost inputs and synchronously recomputes the
// derived total. Permitted while the quote is pending or sent; a confirmed or
// canceled quote's commercial terms are frozen.
func (v *VendorQuote) UpdateCosts(costPrice, shippingCost, corePrice kernel.Money) error {
	if v.poStatus != POStatusPending && v.poStatus != POStatusSent {
		return errs.NewInvalidStateError("update vendor costs",
			v.poStatus.String(), fmt.Sprintf("%s or %s", POStatusPending, POStatusSent))
	}

	v.setCosts(costPrice, shippingCost, corePrice)
	return nil
}

// UpdateDetails replaces the descriptive fields. These never touch the derived
// total or affect state transitions. Rejected only for canceled quotes.
func (v *VendorQuote) UpdateDetails(rating int, warranty string, mileage int) error {
	if v.poStatus == POStatusCanceled {
		return errs.NewInvalidStateError("update vendor details",
			v.poStatus.String(), "any non-canceled PO status")
	}
	if err := errors.Join(v.setRating(rating), v.setMileage(mileage)); err != nil {
		return err
	}

	v.warranty = warranty
	return nil
}

// AddNote appends a note to the quote's history.
func (v *VendorQuote) AddNote(text string) error {
	note, err := NewNote(text)
	if err != nil {
		return err
	}

	v.notes = append(v.notes, note)
	return nil
}

// markSent transitions POPending -> POSent. Called by the aggregate when the
// operator confirms the PO email went out.
func (v *VendorQuote) markSent() error {
	if v.poStatus != POStatusPending {
		return errs.NewInvalidStateError("send purchase order",
			v.poStatus.String(), POStatusPending.String())
	}

	v.poStatus = POStatusSent
	return nil
}

// markConfirmed transitions POSent -> POConfirmed and records the operator's
// explicit confirmation. The aggregate performs the active-vendor uniqueness
// check before calling this.
func (v *VendorQuote) markConfirmed() error {
	if v.poStatus != POStatusSent {
		return errs.NewInvalidStateError("confirm vendor",
			v.poStatus.String(), POStatusSent.String())
	}

	v.poStatus = POStatusConfirmed
	v.isConfirmed = true
	return nil
}

// markCanceled transitions the quote to POCanceled and strips the confirmation
// flags so a canceled quote can never satisfy the active-vendor predicate.
func (v *VendorQuote) markCanceled() error {
	if !v.poStatus.CanCancel() {
		return errs.NewInvalidStateError("cancel vendor",
			v.poStatus.String(), "POPending, POSent or POConfirmed")
	}

	v.poStatus = POStatusCanceled
	v.isConfirmed = false
	return nil
}

// confirmPayment records settled payment for the vendor.
// Requires operator confirmation first.
func (v *VendorQuote) confirmPayment() error {
	if !v.isConfirmed {
		return errs.NewInvalidStateError("confirm vendor payment",
			v.poStatus.String(), "operator-confirmed "+POStatusConfirmed.String())
	}

	v.paymentConfirmed = true
	return nil
}

func (v *VendorQuote) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *VendorQuote) setBusinessName(businessName string) error {
	if businessName == "" {
		return ErrBusinessNameIsRequired
	}
	v.businessName = businessName
	return nil
}

// setCosts writes the cost inputs and recomputes the derived total before the
// write is considered complete. Money values are non-negative by construction.
func (v *VendorQuote) setCosts(costPrice, shippingCost, corePrice kernel.Money) {
	v.costPrice = costPrice
	v.shippingCost = shippingCost
	v.corePrice = corePrice
	v.totalCost = costPrice.Add(shippingCost)
}

func (v *VendorQuote) setRating(rating int) error {
	if rating < ratingMin || rating > ratingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, ratingMin, ratingMax)
	}
	v.rating = rating
	return nil
}

func (v *VendorQuote) setMileage(mileage int) error {
	if mileage < 0 {
		return ErrMileageIsInvalid
	}
	v.mileage = mileage
	return nil
}
