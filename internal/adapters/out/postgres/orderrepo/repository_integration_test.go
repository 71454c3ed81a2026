package orderrepo_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"partsflow/internal/adapters/out/postgres/orderrepo"
	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/core/domain/model/order"
	"partsflow/internal/pkg/errs"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence against a
// real PostgreSQL instance.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	// Connect through lib/pq, matching the production wiring, so driver
	// errors surface the way the repository expects them.
	sqlDB, err := sql.Open("postgres", connStr)
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.New(postgresdriver.Config{Conn: sqlDB}), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.VendorQuoteDTO{}, &orderrepo.NoteDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE notes").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	aggregate := suite.createOrderWithVendor()

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.Equal(aggregate.ID(), loaded.ID())
	suite.Equal("John Carter", loaded.CustomerName())
	suite.Equal(int64(120000), loaded.Amount().Cents())
	suite.Equal(order.POConfirmed, loaded.Status())
	suite.Equal(aggregate.Version(), loaded.Version())

	suite.Require().Len(loaded.Vendors(), 1)
	vendor := loaded.Vendors()[0]
	suite.Equal("Midwest Auto Parts", vendor.BusinessName())
	suite.Equal(int64(57000), vendor.TotalCost().Cents())
	suite.True(vendor.IsActive())

	// changeStatus appends an audit note per transition
	suite.NotEmpty(loaded.Notes())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsTransition() {
	ctx := context.Background()
	aggregate := suite.createOrderWithVendor()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.ConfirmVendorPayment())
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.VendorPaymentConfirmed, reloaded.Status())
	suite.Equal(loaded.Version()+1, reloaded.Version())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_Conflict() {
	ctx := context.Background()
	aggregate := suite.createOrderWithVendor()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	first, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.ConfirmVendorPayment())
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.RequestVendorPayment())
	err = suite.repository.Update(ctx, second)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConflict)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ShipmentAndNotes() {
	ctx := context.Background()
	aggregate := suite.createOrderWithVendor()
	suite.Require().NoError(aggregate.ConfirmVendorPayment())
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	shipment, err := order.NewShipment(42.5, 30, 24, "FreightCo", "FC-998877", "BOL-1", "https://track.example/FC-998877")
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.RecordShipment(shipment))
	suite.Require().NoError(loaded.AddProcurementNote("yard confirmed pallet size"))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.Require().NotNil(reloaded.Shipment())
	suite.Equal("FreightCo", reloaded.Shipment().CarrierName())
	suite.Equal("FC-998877", reloaded.Shipment().TrackingNumber())

	procurementNotes := reloaded.ProcurementNotes()
	suite.Require().NotEmpty(procurementNotes)
	suite.Equal("yard confirmed pallet size", procurementNotes[len(procurementNotes)-1].Text())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllUnassigned() {
	ctx := context.Background()

	unassigned, err := order.NewOrder(kernel.NewUUID(), "Mary Shaw", kernel.MustMoneyFromCents(85000))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, unassigned))

	assigned, err := order.NewOrder(kernel.NewUUID(), "Pete Ross", kernel.MustMoneyFromCents(64000))
	suite.Require().NoError(err)
	suite.Require().NoError(assigned.AssignAgent(kernel.NewUUID()))
	suite.Require().NoError(suite.repository.Add(ctx, assigned))

	result, err := suite.repository.GetAllUnassigned(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(unassigned.ID(), result[0].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByStatus() {
	ctx := context.Background()

	fresh, err := order.NewOrder(kernel.NewUUID(), "Mary Shaw", kernel.MustMoneyFromCents(85000))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, fresh))

	confirmed := suite.createOrderWithVendor()
	suite.Require().NoError(suite.repository.Add(ctx, confirmed))

	result, err := suite.repository.GetAllByStatus(ctx, order.POConfirmed)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(confirmed.ID(), result[0].ID())
}

// createOrderWithVendor builds an order carrying one confirmed vendor quote.
func (suite *OrderRepositoryIntegrationTestSuite) createOrderWithVendor() *order.Order {
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

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
