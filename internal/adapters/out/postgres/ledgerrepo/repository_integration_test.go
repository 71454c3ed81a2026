package ledgerrepo_test

import (
	"context"
	"testing"
	"time"

	"partsflow/internal/adapters/out/postgres/ledgerrepo"
	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/core/domain/model/ledger"
	"partsflow/internal/pkg/errs"

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

// LedgerRepositoryIntegrationTestSuite verifies refund ledger persistence
// against a real PostgreSQL instance.
type LedgerRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *ledgerrepo.GormLedgerRepository
	tracker    *MockAggregateTracker
}

func (suite *LedgerRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&ledgerrepo.EntryDTO{}))
}

func (suite *LedgerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE ledger_entries").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = ledgerrepo.NewGormLedgerRepository(suite.db, suite.tracker)
}

func (suite *LedgerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *LedgerRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	entry := suite.createEntry(kernel.NewUUID())

	suite.Require().NoError(suite.repository.Add(ctx, entry))

	loaded, err := suite.repository.Get(ctx, entry.ID())
	suite.Require().NoError(err)

	suite.Equal(entry.ID(), loaded.ID())
	suite.Equal("Midwest Auto Parts", loaded.VendorBusinessName())
	suite.Equal(int64(57000), loaded.Amount().Cents())
	suite.Equal("part failed inspection", loaded.CancellationReason())
	suite.Equal(ledger.RefundPending, loaded.PaymentStatus())
	suite.Nil(loaded.PaidAt())
}

func (suite *LedgerRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *LedgerRepositoryIntegrationTestSuite) TestUpdate_MarkPaid() {
	ctx := context.Background()
	entry := suite.createEntry(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, entry))

	loaded, err := suite.repository.Get(ctx, entry.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.MarkPaid())
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, entry.ID())
	suite.Require().NoError(err)
	suite.Equal(ledger.RefundPaid, reloaded.PaymentStatus())
	suite.NotNil(reloaded.PaidAt())
}

func (suite *LedgerRepositoryIntegrationTestSuite) TestGetAllByOrder_And_GetAllPending() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	first := suite.createEntry(orderID)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.createEntry(orderID)
	suite.Require().NoError(second.MarkPaid())
	suite.Require().NoError(suite.repository.Add(ctx, second))

	other := suite.createEntry(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, other))

	byOrder, err := suite.repository.GetAllByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Len(byOrder, 2)

	pending, err := suite.repository.GetAllPending(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	for _, entry := range pending {
		suite.Equal(ledger.RefundPending, entry.PaymentStatus())
	}
}

func (suite *LedgerRepositoryIntegrationTestSuite) createEntry(orderID kernel.UUID) *ledger.Entry {
	entry, err := ledger.NewEntry(
		kernel.NewUUID(), orderID, kernel.NewUUID(),
		"Midwest Auto Parts",
		kernel.MustMoneyFromCents(57000),
		"part failed inspection",
	)
	suite.Require().NoError(err)
	return entry
}

func TestLedgerRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerRepositoryIntegrationTestSuite))
}
