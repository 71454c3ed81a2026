package cmd

import (
	"log/slog"
	"os"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	httpin "partsflow/internal/adapters/in/http"
	"partsflow/internal/adapters/out/eventlog"
	"partsflow/internal/adapters/out/postgres"
	"partsflow/internal/core/application/usecases/commands"
	"partsflow/internal/core/application/usecases/queries"
	"partsflow/internal/jobs"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	publisher := eventlog.NewPublisher(zerolog.New(os.Stdout).With().Timestamp().Logger())
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB, publisher),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAttachVendorCommandHandler() commands.AttachVendorCommandHandler {
	return commands.NewAttachVendorCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateVendorCommandHandler() commands.UpdateVendorCommandHandler {
	return commands.NewUpdateVendorCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSendPOCommandHandler() commands.SendPOCommandHandler {
	return commands.NewSendPOCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmVendorCommandHandler() commands.ConfirmVendorCommandHandler {
	return commands.NewConfirmVendorCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelVendorCommandHandler() commands.CancelVendorCommandHandler {
	var f commands.OrderLedgerUoWFactory = FuncOrderLedgerUoWFactory(func() commands.OrderLedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelVendorCommandHandler(f)
}

func (c *CompositionRoot) CreateRequestVendorPaymentCommandHandler() commands.RequestVendorPaymentCommandHandler {
	return commands.NewRequestVendorPaymentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmVendorPaymentCommandHandler() commands.ConfirmVendorPaymentCommandHandler {
	return commands.NewConfirmVendorPaymentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRecordShipmentCommandHandler() commands.RecordShipmentCommandHandler {
	return commands.NewRecordShipmentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateShippingStatusCommandHandler() commands.UpdateShippingStatusCommandHandler {
	return commands.NewUpdateShippingStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateEscalateLitigationCommandHandler() commands.EscalateLitigationCommandHandler {
	return commands.NewEscalateLitigationCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateOpenReplacementCommandHandler() commands.OpenReplacementCommandHandler {
	return commands.NewOpenReplacementCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCloseReplacementCommandHandler() commands.CloseReplacementCommandHandler {
	return commands.NewCloseReplacementCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateChecklistCommandHandler() commands.UpdateChecklistCommandHandler {
	return commands.NewUpdateChecklistCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkPicturesCommandHandler() commands.MarkPicturesCommandHandler {
	return commands.NewMarkPicturesCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddNoteCommandHandler() commands.AddNoteCommandHandler {
	return commands.NewAddNoteCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmRefundCommandHandler() commands.ConfirmRefundCommandHandler {
	var f commands.LedgerUoWFactory = FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmRefundCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateRotationCommandHandler() commands.UpdateRotationCommandHandler {
	var f commands.RotationUoWFactory = FuncRotationUoWFactory(func() commands.RotationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateRotationCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignLeadsCommandHandler() commands.AssignLeadsCommandHandler {
	var f commands.OrderRotationUoWFactory = FuncOrderRotationUoWFactory(func() commands.OrderRotationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignLeadsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOpenOrdersQueryHandler() queries.GetOpenOrdersQueryHandler {
	return queries.NewGetOpenOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveVendorQueryHandler() queries.GetActiveVendorQueryHandler {
	return queries.NewGetActiveVendorQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCanceledVendorsQueryHandler() queries.GetCanceledVendorsQueryHandler {
	return queries.NewGetCanceledVendorsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPOPreviewQueryHandler() queries.GetPOPreviewQueryHandler {
	return queries.NewGetPOPreviewQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingRefundsQueryHandler() queries.GetPendingRefundsQueryHandler {
	return queries.NewGetPendingRefundsQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every handler into the inbound HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		httpin.CommandHandlers{
			CreateOrder:          c.CreateCreateOrderCommandHandler(),
			AttachVendor:         c.CreateAttachVendorCommandHandler(),
			UpdateVendor:         c.CreateUpdateVendorCommandHandler(),
			SendPO:               c.CreateSendPOCommandHandler(),
			ConfirmVendor:        c.CreateConfirmVendorCommandHandler(),
			CancelVendor:         c.CreateCancelVendorCommandHandler(),
			RequestVendorPayment: c.CreateRequestVendorPaymentCommandHandler(),
			ConfirmVendorPayment: c.CreateConfirmVendorPaymentCommandHandler(),
			RecordShipment:       c.CreateRecordShipmentCommandHandler(),
			UpdateShippingStatus: c.CreateUpdateShippingStatusCommandHandler(),
			EscalateLitigation:   c.CreateEscalateLitigationCommandHandler(),
			OpenReplacement:      c.CreateOpenReplacementCommandHandler(),
			CloseReplacement:     c.CreateCloseReplacementCommandHandler(),
			UpdateChecklist:      c.CreateUpdateChecklistCommandHandler(),
			MarkPictures:         c.CreateMarkPicturesCommandHandler(),
			AddNote:              c.CreateAddNoteCommandHandler(),
			ConfirmRefund:        c.CreateConfirmRefundCommandHandler(),
			UpdateRotation:       c.CreateUpdateRotationCommandHandler(),
			AssignLeads:          c.CreateAssignLeadsCommandHandler(),
		},
		httpin.QueryHandlers{
			GetOrder:           c.CreateGetOrderQueryHandler(),
			GetOpenOrders:      c.CreateGetOpenOrdersQueryHandler(),
			GetActiveVendor:    c.CreateGetActiveVendorQueryHandler(),
			GetCanceledVendors: c.CreateGetCanceledVendorsQueryHandler(),
			GetPOPreview:       c.CreateGetPOPreviewQueryHandler(),
			GetPendingRefunds:  c.CreateGetPendingRefundsQueryHandler(),
		},
	)
}

// CreateJobManager wires the scheduled jobs.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateAssignLeadsCommandHandler(),
		c.CreateGetPendingRefundsQueryHandler(),
		logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncLedgerUoWFactory func() commands.LedgerUoW

func (f FuncLedgerUoWFactory) Create() commands.LedgerUoW {
	return f()
}

type FuncOrderLedgerUoWFactory func() commands.OrderLedgerUoW

func (f FuncOrderLedgerUoWFactory) Create() commands.OrderLedgerUoW {
	return f()
}

type FuncOrderRotationUoWFactory func() commands.OrderRotationUoW

func (f FuncOrderRotationUoWFactory) Create() commands.OrderRotationUoW {
	return f()
}

type FuncRotationUoWFactory func() commands.RotationUoW

func (f FuncRotationUoWFactory) Create() commands.RotationUoW {
	return f()
}
