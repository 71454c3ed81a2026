package order

import (
	"time"

	"partsflow/internal/core/domain/model/kernel"
)

// ProcurementChecklist records yard negotiation facts while an order is in the
// Replacement branch. Fields are independently settable with no temporal
// ordering among them; this is deliberate free-form bookkeeping, not a
// sub-state-machine. The aggregate creates the checklist lazily when the order
// enters Replacement.
//
// Additional costs are modeled as optional cent amounts rather than free text.
type ProcurementChecklist struct {
	vendorInformedDate       *time.Time
	replacementPartReadyDate *time.Time

	sentPicturesToVendor          bool
	sentDiagnosticReportToVendor  bool
	yardAgreedReturnShipping      bool
	yardAgreedReplacement         bool
	yardAgreedReplacementShipping bool

	additionalCostReplacementPart     *kernel.Money
	additionalCostReplacementShipping *kernel.Money
}

// NewProcurementChecklist creates an empty checklist.
func NewProcurementChecklist() *ProcurementChecklist {
	return &ProcurementChecklist{}
}

// RestoreProcurementChecklist reconstructs a checklist from persistence.
func RestoreProcurementChecklist(
	vendorInformedDate, replacementPartReadyDate *time.Time,
	sentPicturesToVendor, sentDiagnosticReportToVendor bool,
	yardAgreedReturnShipping, yardAgreedReplacement, yardAgreedReplacementShipping bool,
	additionalCostReplacementPart, additionalCostReplacementShipping *kernel.Money,
) *ProcurementChecklist {
	return &ProcurementChecklist{
		vendorInformedDate:                vendorInformedDate,
		replacementPartReadyDate:          replacementPartReadyDate,
		sentPicturesToVendor:              sentPicturesToVendor,
		sentDiagnosticReportToVendor:      sentDiagnosticReportToVendor,
		yardAgreedReturnShipping:          yardAgreedReturnShipping,
		yardAgreedReplacement:             yardAgreedReplacement,
		yardAgreedReplacementShipping:     yardAgreedReplacementShipping,
		additionalCostReplacementPart:     additionalCostReplacementPart,
		additionalCostReplacementShipping: additionalCostReplacementShipping,
	}
}

// ChecklistUpdate is a partial update applied to a checklist. Nil fields leave
// the current value untouched; boolean fields are pointers for the same
// reason.
type ChecklistUpdate struct {
	VendorInformedDate       *time.Time
	ReplacementPartReadyDate *time.Time

	SentPicturesToVendor          *bool
	SentDiagnosticReportToVendor  *bool
	YardAgreedReturnShipping      *bool
	YardAgreedReplacement         *bool
	YardAgreedReplacementShipping *bool

	AdditionalCostReplacementPart     *kernel.Money
	AdditionalCostReplacementShipping *kernel.Money
}

// Apply merges the update into the checklist.
func (c *ProcurementChecklist) Apply(update ChecklistUpdate) {
	if update.VendorInformedDate != nil {
		c.vendorInformedDate = update.VendorInformedDate
	}
	if update.ReplacementPartReadyDate != nil {
		c.replacementPartReadyDate = update.ReplacementPartReadyDate
	}
	if update.SentPicturesToVendor != nil {
		c.sentPicturesToVendor = *update.SentPicturesToVendor
	}
	if update.SentDiagnosticReportToVendor != nil {
		c.sentDiagnosticReportToVendor = *update.SentDiagnosticReportToVendor
	}
	if update.YardAgreedReturnShipping != nil {
		c.yardAgreedReturnShipping = *update.YardAgreedReturnShipping
	}
	if update.YardAgreedReplacement != nil {
		c.yardAgreedReplacement = *update.YardAgreedReplacement
	}
	if update.YardAgreedReplacementShipping != nil {
		c.yardAgreedReplacementShipping = *update.YardAgreedReplacementShipping
	}
	if update.AdditionalCostReplacementPart != nil {
		c.additionalCostReplacementPart = update.AdditionalCostReplacementPart
	}
	if update.AdditionalCostReplacementShipping != nil {
		c.additionalCostReplacementShipping = update.AdditionalCostReplacementShipping
	}
}

// VendorInformedDate returns the date the yard was informed, if set.
func (c *ProcurementChecklist) VendorInformedDate() *time.Time { return c.vendorInformedDate }

// ReplacementPartReadyDate returns the date the replacement part is ready, if set.
func (c *ProcurementChecklist) ReplacementPartReadyDate() *time.Time {
	return c.replacementPartReadyDate
}

// SentPicturesToVendor reports whether pictures were sent to the yard.
func (c *ProcurementChecklist) SentPicturesToVendor() bool { return c.sentPicturesToVendor }

// SentDiagnosticReportToVendor reports whether a diagnostic report was sent to the yard.
func (c *ProcurementChecklist) SentDiagnosticReportToVendor() bool {
	return c.sentDiagnosticReportToVendor
}

// YardAgreedReturnShipping reports whether the yard agreed to pay return shipping.
func (c *ProcurementChecklist) YardAgreedReturnShipping() bool { return c.yardAgreedReturnShipping }

// YardAgreedReplacement reports whether the yard agreed to provide a replacement part.
func (c *ProcurementChecklist) YardAgreedReplacement() bool { return c.yardAgreedReplacement }

// YardAgreedReplacementShipping reports whether the yard agreed to pay replacement shipping.
func (c *ProcurementChecklist) YardAgreedReplacementShipping() bool {
	return c.yardAgreedReplacementShipping
}

// AdditionalCostReplacementPart returns the extra cost for the replacement part, if set.
func (c *ProcurementChecklist) AdditionalCostReplacementPart() *kernel.Money {
	return c.additionalCostReplacementPart
}

// AdditionalCostReplacementShipping returns the extra shipping cost, if set.
func (c *ProcurementChecklist) AdditionalCostReplacementShipping() *kernel.Money {
	return c.additionalCostReplacementShipping
}
