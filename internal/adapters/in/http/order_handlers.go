package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"partsflow/internal/core/application/usecases/commands"
	"partsflow/internal/core/application/usecases/queries"
	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/core/domain/model/order"
)

// shippingStatusNames maps wire-level status names onto the subset of order
// statuses a carrier progress update may target.
var shippingStatusNames = map[string]order.Status{
	"ShipOut":   order.ShipOut,
	"Intransit": order.Intransit,
	"Delivered": order.Delivered,
}

// CreateOrder handles POST /api/v1/orders - opens a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, request.CustomerName, request.AmountCents)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err := s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:orderId - retrieves one order in full.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	response, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(response))
}

// GetOpenOrders handles GET /api/v1/orders - lists all non-terminal orders.
func (s *Server) GetOpenOrders(ctx echo.Context) error {
	response, err := s.queries.GetOpenOrders.Handle(
		ctx.Request().Context(), queries.NewGetOpenOrdersQuery(),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	orders := make([]OpenOrder, len(response.Orders))
	for i, row := range response.Orders {
		orders[i] = OpenOrder{
			ID:               row.ID.String(),
			CustomerName:     row.CustomerName,
			AmountCents:      row.AmountCents,
			Status:           row.Status.String(),
			AgentID:          uuidPtrToString(row.AgentID),
			ActiveVendorName: row.ActiveVendorName,
		}
	}

	return ctx.JSON(http.StatusOK, orders)
}

// RecordShipment handles POST /api/v1/orders/:orderId/shipment - records
// shipment details after vendor payment is confirmed.
func (s *Server) RecordShipment(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	var request RecordShipmentRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRecordShipmentCommand(
		orderID,
		request.Weight, request.Height, request.Width,
		request.CarrierName, request.TrackingNumber, request.BOLNumber, request.TrackingLink,
	)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err := s.commands.RecordShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// UpdateShippingStatus handles PATCH /api/v1/orders/:orderId/shipping-status -
// advances the order through ShipOut, Intransit and Delivered.
func (s *Server) UpdateShippingStatus(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	var request UpdateShippingStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewUpdateShippingStatusCommand(orderID, shippingStatusNames[request.Status])
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err := s.commands.UpdateShippingStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// EscalateLitigation handles POST /api/v1/orders/:orderId/litigation -
// escalates a disputed order to the terminal litigation state.
func (s *Server) EscalateLitigation(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	var request EscalateLitigationRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewEscalateLitigationCommand(orderID, request.Reason)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err := s.commands.EscalateLitigation.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// OpenReplacement handles POST /api/v1/orders/:orderId/replacement - starts
// the replacement negotiation branch on a delivered order.
func (s *Server) OpenReplacement(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewOpenReplacementCommand(orderID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err := s.commands.OpenReplacement.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CloseReplacement handles POST /api/v1/orders/:orderId/replacement/closure -
// resolves the replacement branch as completed or cancelled.
func (s *Server) CloseReplacement(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	var request CloseReplacementRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCloseReplacementCommand(orderID, commands.ReplacementOutcome(request.Outcome))
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err := s.commands.CloseReplacement.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// UpdateChecklist handles PATCH /api/v1/orders/:orderId/replacement/checklist -
// applies a partial update to the procurement checklist.
func (s *Server) UpdateChecklist(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	var request UpdateChecklistRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewUpdateChecklistCommand(orderID, commands.ChecklistFields{
		VendorInformedDate:       request.VendorInformedDate,
		ReplacementPartReadyDate: request.ReplacementPartReadyDate,

		SentPicturesToVendor:          request.SentPicturesToVendor,
		SentDiagnosticReportToVendor:  request.SentDiagnosticReportToVendor,
		YardAgreedReturnShipping:      request.YardAgreedReturnShipping,
		YardAgreedReplacement:         request.YardAgreedReplacement,
		YardAgreedReplacementShipping: request.YardAgreedReplacementShipping,

		AdditionalCostReplacementPartCents:     request.AdditionalCostReplacementPartCents,
		AdditionalCostReplacementShippingCents: request.AdditionalCostReplacementShippingCents,
	})
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err := s.commands.UpdateChecklist.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// MarkPictures handles POST /api/v1/orders/:orderId/pictures - records a
// picture exchange stage during replacement.
func (s *Server) MarkPictures(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	var request MarkPicturesRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewMarkPicturesCommand(orderID, commands.PictureStage(request.Stage))
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err := s.commands.MarkPictures.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// AddNote handles POST /api/v1/orders/:orderId/notes - appends a note to the
// order or to one of its vendor quotes.
func (s *Server) AddNote(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	var request AddNoteRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	var vendorID *kernel.UUID
	if request.VendorID != nil {
		id, err := kernel.UUIDFromString(*request.VendorID)
		if err != nil {
			return respondBadRequest(ctx, "invalid vendor id")
		}
		vendorID = &id
	}

	cmd, err := commands.NewAddNoteCommand(orderID, vendorID, request.Text, request.Internal)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err := s.commands.AddNote.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}
