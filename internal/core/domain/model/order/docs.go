// Package order contains the Order aggregate, the root entity of the
// fulfillment domain, together with its vendor quote sub-entities, shipment
// and note value objects, the procurement checklist, and the two status state
// machines (order status and per-vendor PO status).
//
// The aggregate is the single writer of both status fields: order status is
// derived exclusively from vendor sub-state transitions and is never settable
// by callers. The central invariant, enforced on every transition, is that at
// most one vendor quote is "active" (PO confirmed and operator-confirmed) per
// order, and that every status from POConfirmed through Delivered implies an
// active vendor exists.
//
// Every method that changes order status appends a system-generated audit note
// and records a status-changed domain event for best-effort publication after
// the surrounding transaction commits.
package order
