// Package http is the inbound HTTP adapter. Handlers bind and validate
// request payloads, translate them into application commands and queries, and
// map application errors onto HTTP status codes.
package http

import (
	"github.com/labstack/echo/v4"

	"partsflow/internal/core/application/usecases/commands"
	"partsflow/internal/core/application/usecases/queries"
	"partsflow/internal/core/domain/model/kernel"
)

// CommandHandlers bundles every write-side handler the server exposes.
type CommandHandlers struct {
	CreateOrder          commands.CreateOrderCommandHandler
	AttachVendor         commands.AttachVendorCommandHandler
	UpdateVendor         commands.UpdateVendorCommandHandler
	SendPO               commands.SendPOCommandHandler
	ConfirmVendor        commands.ConfirmVendorCommandHandler
	CancelVendor         commands.CancelVendorCommandHandler
	RequestVendorPayment commands.RequestVendorPaymentCommandHandler
	ConfirmVendorPayment commands.ConfirmVendorPaymentCommandHandler
	RecordShipment       commands.RecordShipmentCommandHandler
	UpdateShippingStatus commands.UpdateShippingStatusCommandHandler
	EscalateLitigation   commands.EscalateLitigationCommandHandler
	OpenReplacement      commands.OpenReplacementCommandHandler
	CloseReplacement     commands.CloseReplacementCommandHandler
	UpdateChecklist      commands.UpdateChecklistCommandHandler
	MarkPictures         commands.MarkPicturesCommandHandler
	AddNote              commands.AddNoteCommandHandler
	ConfirmRefund        commands.ConfirmRefundCommandHandler
	UpdateRotation       commands.UpdateRotationCommandHandler
	AssignLeads          commands.AssignLeadsCommandHandler
}

// QueryHandlers bundles every read-side handler the server exposes.
type QueryHandlers struct {
	GetOrder           queries.GetOrderQueryHandler
	GetOpenOrders      queries.GetOpenOrdersQueryHandler
	GetActiveVendor    queries.GetActiveVendorQueryHandler
	GetCanceledVendors queries.GetCanceledVendorsQueryHandler
	GetPOPreview       queries.GetPOPreviewQueryHandler
	GetPendingRefunds  queries.GetPendingRefundsQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
	}
}

// RegisterRoutes mounts every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOpenOrders)
	api.GET("/orders/:orderId", s.GetOrder)

	api.POST("/orders/:orderId/vendors", s.AttachVendor)
	api.GET("/orders/:orderId/vendors/active", s.GetActiveVendor)
	api.GET("/orders/:orderId/vendors/canceled", s.GetCanceledVendors)
	api.PATCH("/orders/:orderId/vendors/:vendorId", s.UpdateVendor)
	api.POST("/orders/:orderId/vendors/:vendorId/po", s.SendPO)
	api.GET("/orders/:orderId/vendors/:vendorId/po/preview", s.GetPOPreview)
	api.POST("/orders/:orderId/vendors/:vendorId/confirmation", s.ConfirmVendor)
	api.POST("/orders/:orderId/vendors/:vendorId/cancellation", s.CancelVendor)

	api.POST("/orders/:orderId/payment/request", s.RequestVendorPayment)
	api.POST("/orders/:orderId/payment/confirmation", s.ConfirmVendorPayment)

	api.POST("/orders/:orderId/shipment", s.RecordShipment)
	api.PATCH("/orders/:orderId/shipping-status", s.UpdateShippingStatus)

	api.POST("/orders/:orderId/litigation", s.EscalateLitigation)
	api.POST("/orders/:orderId/replacement", s.OpenReplacement)
	api.POST("/orders/:orderId/replacement/closure", s.CloseReplacement)
	api.PATCH("/orders/:orderId/replacement/checklist", s.UpdateChecklist)

	api.POST("/orders/:orderId/pictures", s.MarkPictures)
	api.POST("/orders/:orderId/notes", s.AddNote)

	api.GET("/refunds/pending", s.GetPendingRefunds)
	api.POST("/refunds/:entryId/confirmation", s.ConfirmRefund)

	api.POST("/rotation/agents", s.UpdateRotation)
	api.POST("/rotation/assignments", s.AssignLeads)
}

// pathUUID parses a UUID path parameter.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}
