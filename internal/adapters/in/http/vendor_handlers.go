package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"partsflow/internal/core/application/usecases/commands"
	"partsflow/internal/core/application/usecases/queries"
	"partsflow/internal/core/domain/model/kernel"
)

// AttachVendor handles POST /api/v1/orders/:orderId/vendors - attaches a new
// vendor quote to an order still in the sourcing phase.
func (s *Server) AttachVendor(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	var request AttachVendorRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	vendorID := kernel.NewUUID()
	cmd, err := commands.NewAttachVendorCommand(
		orderID, vendorID,
		request.BusinessName, request.AgentName, request.PhoneNumber, request.Email,
		request.CostPriceCents, request.ShippingCostCents, request.CorePriceCents,
	)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err := s.commands.AttachVendor.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": vendorID.String()})
}

// UpdateVendor handles PATCH /api/v1/orders/:orderId/vendors/:vendorId -
// edits a vendor quote's contact, cost or detail sections.
func (s *Server) UpdateVendor(ctx echo.Context) error {
	orderID, vendorID, err := orderVendorIDs(ctx)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	var request UpdateVendorRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	var contact *commands.VendorContactUpdate
	if request.Contact != nil {
		contact = &commands.VendorContactUpdate{
			BusinessName: request.Contact.BusinessName,
			AgentName:    request.Contact.AgentName,
			PhoneNumber:  request.Contact.PhoneNumber,
			Email:        request.Contact.Email,
		}
	}
	var costs *commands.VendorCostsUpdate
	if request.Costs != nil {
		costs = &commands.VendorCostsUpdate{
			CostPriceCents:    request.Costs.CostPriceCents,
			ShippingCostCents: request.Costs.ShippingCostCents,
			CorePriceCents:    request.Costs.CorePriceCents,
		}
	}
	var details *commands.VendorDetailsUpdate
	if request.Details != nil {
		details = &commands.VendorDetailsUpdate{
			Rating:   request.Details.Rating,
			Warranty: request.Details.Warranty,
			Mileage:  request.Details.Mileage,
		}
	}

	cmd, err := commands.NewUpdateVendorCommand(orderID, vendorID, contact, costs, details)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err := s.commands.UpdateVendor.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// SendPO handles POST /api/v1/orders/:orderId/vendors/:vendorId/po - sends
// the purchase order to a vendor.
func (s *Server) SendPO(ctx echo.Context) error {
	orderID, vendorID, err := orderVendorIDs(ctx)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewSendPOCommand(orderID, vendorID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err := s.commands.SendPO.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetPOPreview handles GET /api/v1/orders/:orderId/vendors/:vendorId/po/preview -
// renders the purchase order document without changing state.
func (s *Server) GetPOPreview(ctx echo.Context) error {
	orderID, vendorID, err := orderVendorIDs(ctx)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	query, err := queries.NewGetPOPreviewQuery(orderID, vendorID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	response, err := s.queries.GetPOPreview.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, POPreview{
		PONumber: response.PONumber,

		OrderID:      response.OrderID.String(),
		CustomerName: response.CustomerName,

		VendorID:           response.VendorID.String(),
		VendorBusinessName: response.VendorBusinessName,
		VendorAgentName:    response.VendorAgentName,
		VendorPhoneNumber:  response.VendorPhoneNumber,
		VendorEmail:        response.VendorEmail,

		CostPriceCents:    response.CostPriceCents,
		ShippingCostCents: response.ShippingCostCents,
		CorePriceCents:    response.CorePriceCents,
		TotalCostCents:    response.TotalCostCents,

		Warranty: response.Warranty,
		Mileage:  response.Mileage,
	})
}

// ConfirmVendor handles POST /api/v1/orders/:orderId/vendors/:vendorId/confirmation -
// confirms the purchase order, making this vendor the active one.
func (s *Server) ConfirmVendor(ctx echo.Context) error {
	orderID, vendorID, err := orderVendorIDs(ctx)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewConfirmVendorCommand(orderID, vendorID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err := s.commands.ConfirmVendor.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CancelVendor handles POST /api/v1/orders/:orderId/vendors/:vendorId/cancellation -
// cancels a vendor quote, recording a refund obligation when money changed hands.
func (s *Server) CancelVendor(ctx echo.Context) error {
	orderID, vendorID, err := orderVendorIDs(ctx)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	var request CancelVendorRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCancelVendorCommand(orderID, vendorID, request.Reason)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err := s.commands.CancelVendor.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RequestVendorPayment handles POST /api/v1/orders/:orderId/payment/request -
// initiates payment to the active vendor.
func (s *Server) RequestVendorPayment(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewRequestVendorPaymentCommand(orderID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err := s.commands.RequestVendorPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ConfirmVendorPayment handles POST /api/v1/orders/:orderId/payment/confirmation -
// marks payment to the active vendor as settled.
func (s *Server) ConfirmVendorPayment(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewConfirmVendorPaymentCommand(orderID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err := s.commands.ConfirmVendorPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetActiveVendor handles GET /api/v1/orders/:orderId/vendors/active -
// retrieves the confirmed vendor with profitability figures.
func (s *Server) GetActiveVendor(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetActiveVendorQuery(orderID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	response, err := s.queries.GetActiveVendor.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ActiveVendor{
		OrderID:          response.OrderID.String(),
		OrderAmountCents: response.OrderAmountCents,
		Vendor:           vendorToResponse(response.Vendor),
		ProfitCents:      response.ProfitCents,
		ProfitMargin:     response.ProfitMargin,
	})
}

// GetCanceledVendors handles GET /api/v1/orders/:orderId/vendors/canceled -
// lists canceled vendor quotes with their refund ledger state.
func (s *Server) GetCanceledVendors(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetCanceledVendorsQuery(orderID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	response, err := s.queries.GetCanceledVendors.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	vendors := make([]CanceledVendor, len(response.Vendors))
	for i, row := range response.Vendors {
		vendors[i] = CanceledVendor{
			VendorID:       row.VendorID.String(),
			BusinessName:   row.BusinessName,
			TotalCostCents: row.TotalCostCents,
			RefundEntryID:  uuidPtrToString(row.RefundEntryID),
			RefundStatus:   row.RefundStatus,
			RefundReason:   row.RefundReason,
		}
	}

	return ctx.JSON(http.StatusOK, vendors)
}

// orderVendorIDs parses the order and vendor UUID path parameters.
func orderVendorIDs(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errInvalidOrderID
	}
	vendorID, err := pathUUID(ctx, "vendorId")
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errInvalidVendorID
	}
	return orderID, vendorID, nil
}
