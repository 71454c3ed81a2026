package queries_test

import (
	"context"
	"testing"
	"time"

	"partsflow/internal/adapters/out/postgres/ledgerrepo"
	"partsflow/internal/adapters/out/postgres/orderrepo"
	"partsflow/internal/core/application/usecases/queries"
	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/core/domain/model/ledger"
	"partsflow/internal/core/domain/model/order"
	"partsflow/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for seeding test data through the
// repositories.
type mockAggregateTracker struct{}

func (mockAggregateTracker) TrackAggregate(kernel.UUID, any) {}

// QueryHandlersIntegrationTestSuite verifies the read side against a real
// PostgreSQL instance, seeding data through the write-side repositories.
type QueryHandlersIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	orderRepo  *orderrepo.GormOrderRepository
	ledgerRepo *ledgerrepo.GormLedgerRepository
}

func (suite *QueryHandlersIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.VendorQuoteDTO{}, &orderrepo.NoteDTO{},
		&ledgerrepo.EntryDTO{},
	))

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, mockAggregateTracker{})
	suite.ledgerRepo = ledgerrepo.NewGormLedgerRepository(db, mockAggregateTracker{})
}

func (suite *QueryHandlersIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE notes").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE ledger_entries").Error)
}

func (suite *QueryHandlersIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrder_FullReadModel() {
	ctx := context.Background()
	aggregate := suite.seedConfirmedOrder()
	suite.Require().NoError(aggregate.AddNote("customer asked for Saturday delivery"))
	suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))

	handler := queries.NewGetOrderQueryHandler(suite.db)
	query, err := queries.NewGetOrderQuery(aggregate.ID())
	suite.Require().NoError(err)

	result, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.True(result.ID.IsEqual(aggregate.ID()))
	suite.Equal("John Carter", result.CustomerName)
	suite.Equal(int64(120000), result.AmountCents)
	suite.Equal(order.POConfirmed, result.Status)

	suite.Require().Len(result.Vendors, 1)
	suite.Equal("Midwest Auto Parts", result.Vendors[0].BusinessName)
	suite.Equal(int64(57000), result.Vendors[0].TotalCostCents)
	suite.True(result.Vendors[0].IsConfirmed)

	suite.Require().NotEmpty(result.Notes)
	suite.Equal("customer asked for Saturday delivery", result.Notes[len(result.Notes)-1].Text)
	suite.Nil(result.Shipment)
	suite.Nil(result.Checklist)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrder_NotFound() {
	handler := queries.NewGetOrderQueryHandler(suite.db)
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetActiveVendor_ComputesMargin() {
	ctx := context.Background()
	aggregate := suite.seedConfirmedOrder()
	suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))

	handler := queries.NewGetActiveVendorQueryHandler(suite.db)
	query, err := queries.NewGetActiveVendorQuery(aggregate.ID())
	suite.Require().NoError(err)

	result, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal("Midwest Auto Parts", result.Vendor.BusinessName)
	suite.Equal(int64(63000), result.ProfitCents)
	suite.InDelta(0.525, result.ProfitMargin, 0.0001)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetActiveVendor_NoActiveVendor() {
	ctx := context.Background()
	aggregate, err := order.NewOrder(kernel.NewUUID(), "Mary Shaw", kernel.MustMoneyFromCents(85000))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))

	handler := queries.NewGetActiveVendorQueryHandler(suite.db)
	query, err := queries.NewGetActiveVendorQuery(aggregate.ID())
	suite.Require().NoError(err)

	_, err = handler.Handle(ctx, query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetCanceledVendors_JoinsLedger() {
	ctx := context.Background()
	aggregate := suite.seedConfirmedOrder()
	vendorID := aggregate.Vendors()[0].ID()

	refundDue, err := aggregate.CancelVendor(vendorID, "part failed inspection")
	suite.Require().NoError(err)
	suite.Require().True(refundDue)
	suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))

	entry, err := ledger.NewEntry(
		kernel.NewUUID(), aggregate.ID(), vendorID,
		"Midwest Auto Parts",
		kernel.MustMoneyFromCents(57000),
		"part failed inspection",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.ledgerRepo.Add(ctx, entry))

	handler := queries.NewGetCanceledVendorsQueryHandler(suite.db)
	query, err := queries.NewGetCanceledVendorsQuery(aggregate.ID())
	suite.Require().NoError(err)

	result, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(result.Vendors, 1)
	canceled := result.Vendors[0]
	suite.True(canceled.VendorID.IsEqual(vendorID))
	suite.Require().NotNil(canceled.RefundEntryID)
	suite.True(canceled.RefundEntryID.IsEqual(entry.ID()))
	suite.Equal("RefundPending", canceled.RefundStatus)
	suite.Equal("part failed inspection", canceled.RefundReason)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetPOPreview_StablePONumber() {
	ctx := context.Background()
	aggregate := suite.seedConfirmedOrder()
	suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))
	vendorID := aggregate.Vendors()[0].ID()

	handler := queries.NewGetPOPreviewQueryHandler(suite.db)
	query, err := queries.NewGetPOPreviewQuery(aggregate.ID(), vendorID)
	suite.Require().NoError(err)

	first, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	second, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(first.PONumber, second.PONumber)
	suite.Contains(first.PONumber, "PO-")
	suite.Equal("John Carter", first.CustomerName)
	suite.Equal(int64(57000), first.TotalCostCents)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetPendingRefunds_SumsAmounts() {
	ctx := context.Background()

	first, err := ledger.NewEntry(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"Midwest Auto Parts", kernel.MustMoneyFromCents(57000), "reason one",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.ledgerRepo.Add(ctx, first))

	second, err := ledger.NewEntry(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"Gulf Coast Salvage", kernel.MustMoneyFromCents(30000), "reason two",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(second.MarkPaid())
	suite.Require().NoError(suite.ledgerRepo.Add(ctx, second))

	handler := queries.NewGetPendingRefundsQueryHandler(suite.db)
	result, err := handler.Handle(ctx, queries.NewGetPendingRefundsQuery())
	suite.Require().NoError(err)

	suite.Require().Len(result.Refunds, 1)
	suite.Equal("Midwest Auto Parts", result.Refunds[0].VendorBusinessName)
	suite.Equal(int64(57000), result.TotalOwedCents)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOpenOrders_ExcludesTerminal() {
	ctx := context.Background()

	open := suite.seedConfirmedOrder()
	suite.Require().NoError(suite.orderRepo.Add(ctx, open))

	litigated := suite.seedConfirmedOrder()
	suite.Require().NoError(litigated.EscalateLitigation())
	suite.Require().NoError(suite.orderRepo.Add(ctx, litigated))

	handler := queries.NewGetOpenOrdersQueryHandler(suite.db)
	result, err := handler.Handle(ctx, queries.NewGetOpenOrdersQuery())
	suite.Require().NoError(err)

	suite.Require().Len(result.Orders, 1)
	suite.True(result.Orders[0].ID.IsEqual(open.ID()))
	suite.Equal("Midwest Auto Parts", result.Orders[0].ActiveVendorName)
}

// seedConfirmedOrder builds an order with one confirmed vendor quote.
func (suite *QueryHandlersIntegrationTestSuite) seedConfirmedOrder() *order.Order {
	aggregate, err := order.NewOrder(kernel.NewUUID(), "John Carter", kernel.MustMoneyFromCents(120000))
	suite.Require().NoError(err)

	quote, err := order.NewVendorQuote(
		kernel.NewUUID(),
		"Midwest Auto Parts", "Sal", "555-0134", "sales@midwestparts.example",
		kernel.MustMoneyFromCents(45000),
		kernel.MustMoneyFromCents(12000),
		kernel.MustMoneyFromCents(5000),
	)
	suite.Require().NoError(err)

	suite.Require().NoError(aggregate.AttachVendor(quote))
	suite.Require().NoError(aggregate.SendPO(quote.ID()))
	suite.Require().NoError(aggregate.ConfirmVendor(quote.ID()))
	return aggregate
}

func TestQueryHandlersIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersIntegrationTestSuite))
}
