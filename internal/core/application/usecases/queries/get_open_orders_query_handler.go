package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/core/domain/model/order"
)

// GetOpenOrdersQueryHandler lists the agents' work queue.
type GetOpenOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOpenOrdersQueryHandler(db *gorm.DB) GetOpenOrdersQueryHandler {
	return GetOpenOrdersQueryHandler{db: db}
}

func (h GetOpenOrdersQueryHandler) Handle(
	ctx context.Context, _ GetOpenOrdersQuery,
) (GetOpenOrdersQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT o.id, o.customer_name, o.amount_cents, o.status, o.agent_id,
		       COALESCE(v.business_name, '')
		FROM orders o
		LEFT JOIN vendor_quotes v
		  ON v.order_id = o.id AND v.is_confirmed AND v.po_status = ?
		WHERE o.status NOT IN (?, ?)
		ORDER BY o.created_at`,
		int(order.POStatusConfirmed),
		int(order.Litigation), int(order.ReplacementCancelled)).Rows()
	if err != nil {
		return GetOpenOrdersQueryResponse{}, err
	}
	defer rows.Close()

	var response GetOpenOrdersQueryResponse
	for rows.Next() {
		var (
			row OpenOrderResponse

			id      uuid.UUID
			status  int
			agentID sql.NullString
		)
		err = rows.Scan(
			&id, &row.CustomerName, &row.AmountCents, &status,
			&agentID, &row.ActiveVendorName,
		)
		if err != nil {
			return GetOpenOrdersQueryResponse{}, err
		}
		row.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return GetOpenOrdersQueryResponse{}, err
		}
		row.Status = order.Status(status)
		if agentID.Valid {
			agent, err := kernel.UUIDFromString(agentID.String)
			if err != nil {
				return GetOpenOrdersQueryResponse{}, err
			}
			row.AgentID = &agent
		}
		response.Orders = append(response.Orders, row)
	}

	return response, rows.Err()
}
