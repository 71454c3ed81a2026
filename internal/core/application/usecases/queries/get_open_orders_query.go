package queries

import (
	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/core/domain/model/order"
)

// GetOpenOrdersQuery lists all orders that have not reached a terminal
// status. Parameterless; always constructed valid.
type GetOpenOrdersQuery struct{}

func NewGetOpenOrdersQuery() GetOpenOrdersQuery {
	return GetOpenOrdersQuery{}
}

// OpenOrderResponse is one row of the work queue listing.
type OpenOrderResponse struct {
	ID           kernel.UUID
	CustomerName string
	AmountCents  int64
	Status       order.Status
	AgentID      *kernel.UUID

	ActiveVendorName string
}

// GetOpenOrdersQueryResponse wraps the open order listing.
type GetOpenOrdersQueryResponse struct {
	Orders []OpenOrderResponse
}
