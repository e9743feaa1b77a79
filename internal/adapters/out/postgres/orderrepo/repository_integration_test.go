package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"havenpos/internal/adapters/out/postgres/orderrepo"
	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/core/domain/model/order"
	"havenpos/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

var baseTime = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items, orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_RoundTripsEveryField() {
	ctx := context.Background()
	o := suite.newOrder(baseTime, order.AtTable("A4"))
	o.SetCustomer(order.Customer{Name: "Ngozi", Phone: "+234 800", Instructions: "window seat"})
	rice := kernel.NewUUID()
	stew := kernel.NewUUID()
	o.AddLine(rice, "Rice", kernel.MustMoney("3.10"), 3, "")
	o.AddLine(stew, "Stew", kernel.MustMoney("4.25"), 1, "extra pepper")
	o.SetPrepMinutes(45)
	o.ConfirmTotals(order.Totals{
		Subtotal: kernel.MustMoney("13.55"),
		Tax:      kernel.MustMoney("1.36"),
		Discount: kernel.MustMoney("1.00"),
		Total:    kernel.MustMoney("13.91"),
	})
	suite.Require().NoError(o.TransitionTo(order.Confirmed, baseTime.Add(time.Minute)))

	suite.Require().NoError(suite.repository.Add(ctx, o))
	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.Equal(o.Number(), got.Number())
	suite.Equal(order.AtTable("A4"), got.Destination())
	suite.Equal("Ngozi", got.Customer().Name)
	suite.Equal("window seat", got.Customer().Instructions)
	suite.Equal(order.Confirmed, got.Status())
	suite.Equal(45, got.PrepMinutes())
	suite.WithinDuration(baseTime, got.CreatedAt(), time.Millisecond)
	suite.WithinDuration(baseTime.Add(time.Minute), got.ConfirmedAt(), time.Millisecond)
	suite.True(got.ServedAt().IsZero())

	lines := got.Lines()
	suite.Require().Len(lines, 2)
	suite.True(lines[0].MenuItemID().IsEqual(rice))
	suite.Equal(3, lines[0].Quantity())
	suite.Equal("extra pepper", lines[1].Note())
	suite.Empty(got.UnsyncedLines())
	suite.Equal("13.55", got.Total().String())

	totals, ok := got.ConfirmedTotals()
	suite.Require().True(ok)
	suite.Equal("1.36", totals.Tax.String())
	suite.Equal("13.91", totals.Total.String())
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", o.ID(), o)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_WithoutTotals() {
	ctx := context.Background()
	o := suite.newOrder(baseTime, order.ForTakeaway())

	suite.Require().NoError(suite.repository.Add(ctx, o))
	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	_, ok := got.ConfirmedTotals()
	suite.False(ok)
	suite.True(got.IsEmpty())
	suite.Equal(order.DefaultPrepMinutes, got.PrepMinutes())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DraftIsRejected() {
	err := suite.repository.Add(context.Background(), order.NewDraft(order.ForDelivery()))
	suite.ErrorIs(err, order.ErrOrderNotPersisted)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ReplacesLinesAndStatus() {
	ctx := context.Background()
	o := suite.newOrder(baseTime, order.ForDelivery())
	kept := kernel.NewUUID()
	dropped := kernel.NewUUID()
	o.AddLine(kept, "Plantain", kernel.MustMoney("2.00"), 1, "")
	o.AddLine(dropped, "Beans", kernel.MustMoney("3.00"), 1, "")
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(o.SetQuantity(dropped, 0))
	o.AddLine(kept, "Plantain", kernel.MustMoney("2.00"), 2, "well done")
	added := kernel.NewUUID()
	o.AddLine(added, "Zobo", kernel.MustMoney("1.50"), 1, "")
	suite.Require().NoError(o.TransitionTo(order.Cancelled, baseTime.Add(5*time.Minute)))

	suite.Require().NoError(suite.repository.Update(ctx, o))
	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.Equal(order.Cancelled, got.Status())
	suite.WithinDuration(baseTime.Add(5*time.Minute), got.CancelledAt(), time.Millisecond)
	lines := got.Lines()
	suite.Require().Len(lines, 2)
	suite.True(lines[0].MenuItemID().IsEqual(kept))
	suite.Equal(3, lines[0].Quantity())
	suite.Equal("well done", lines[0].Note())
	suite.True(lines[1].MenuItemID().IsEqual(added))
	suite.WithinDuration(baseTime, got.CreatedAt(), time.Millisecond)

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.LineItemDTO{}).Where("order_id = ?", o.ID().Bytes()).Count(&count).Error)
	suite.Equal(int64(2), count)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MissingOrder() {
	o := suite.newOrder(baseTime, order.ForTakeaway())

	err := suite.repository.Update(context.Background(), o)

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.Get(context.Background(), kernel.UUID{})
	suite.ErrorIs(err, kernel.ErrUUIDIsNotConstructed)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestList_FiltersAndSortsNewestFirst() {
	ctx := context.Background()
	older := suite.newOrder(baseTime, order.ForTakeaway())
	newer := suite.newOrder(baseTime.Add(time.Hour), order.ForTakeaway())
	done := suite.newOrder(baseTime.Add(2*time.Hour), order.ForTakeaway())
	suite.Require().NoError(done.TransitionTo(order.Cancelled, baseTime))
	for _, o := range []*order.Order{older, newer, done} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	active, err := suite.repository.List(ctx, order.ActiveStatuses())
	suite.Require().NoError(err)
	suite.Require().Len(active, 2)
	suite.True(active[0].ID().IsEqual(newer.ID()))
	suite.True(active[1].ID().IsEqual(older.ID()))

	all, err := suite.repository.List(ctx, nil)
	suite.Require().NoError(err)
	suite.Len(all, 3)

	cancelled, err := suite.repository.List(ctx, []order.Status{order.Cancelled})
	suite.Require().NoError(err)
	suite.Require().Len(cancelled, 1)
	suite.True(cancelled[0].ID().IsEqual(done.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestListKitchenQueue() {
	ctx := context.Background()
	pending := suite.newOrder(baseTime, order.ForTakeaway())
	confirmedLate := suite.newOrder(baseTime.Add(time.Minute), order.ForTakeaway())
	suite.Require().NoError(confirmedLate.TransitionTo(order.Confirmed, baseTime.Add(30*time.Minute)))
	preparingEarly := suite.newOrder(baseTime.Add(2*time.Minute), order.ForTakeaway())
	suite.Require().NoError(preparingEarly.TransitionTo(order.Confirmed, baseTime.Add(10*time.Minute)))
	suite.Require().NoError(preparingEarly.TransitionTo(order.Preparing, baseTime.Add(11*time.Minute)))
	for _, o := range []*order.Order{pending, confirmedLate, preparingEarly} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	got, err := suite.repository.ListKitchenQueue(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.True(got[0].ID().IsEqual(preparingEarly.ID()))
	suite.True(got[1].ID().IsEqual(confirmedLate.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(at time.Time, dest order.Destination) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), order.GenerateNumber(at), dest, order.Customer{}, at)
	suite.Require().NoError(err)
	return o
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
