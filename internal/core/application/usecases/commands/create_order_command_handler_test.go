package commands_test

import (
	"errors"
	"testing"
	"time"

	"havenpos/internal/core/application/usecases/commands"
	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/core/domain/model/order"
	"havenpos/internal/core/domain/model/table"
	"havenpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 15, 19, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func newTable(t *testing.T, number string) table.Table {
	t.Helper()
	tbl, err := table.NewTable(kernel.NewUUID(), number, 4, "")
	require.NoError(t, err)
	return tbl
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(id, order.AtTable("5"), order.Customer{Name: "Ana"})
	require.NoError(t, err)
	five := newTable(t, "5")
	occupied, err := five.Occupy()
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	tables := new(MockTableRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("TableRepository").Return(tables).Once(),
		tables.On("GetByNumber", ctx, "5").Return(five, nil).Once(),
		tables.On("Update", ctx, occupied).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDiningUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, fixedClock)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, created.ID().IsEqual(id))
	assert.Equal(t, order.Pending, created.Status())
	assert.Regexp(t, `^ORD-20240615-\d{5}$`, created.Number())
	assert.Equal(t, fixedNow, created.CreatedAt())
	repo.AssertExpectations(t)
	tables.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnregisteredTable(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), order.AtTable("Patio"), order.Customer{})

	repo := new(MockOrderRepository)
	tables := new(MockTableRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(repo)
	uow.On("TableRepository").Return(tables)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil)
	tables.On("GetByNumber", ctx, "Patio").Return(table.Table{}, errs.NewObjectNotFoundError("table number", "Patio"))
	factory := new(MockDiningUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewCreateOrderCommandHandler(factory, fixedClock)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.AtTable("Patio"), created.Destination())
	tables.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertCalled(t, "Commit", ctx)
}

func TestCreateOrderCommandHandler_Handle_InactiveTable(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), order.AtTable("5"), order.Customer{})

	repo := new(MockOrderRepository)
	tables := new(MockTableRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(repo)
	uow.On("TableRepository").Return(tables)
	uow.On("Rollback", ctx).Return(nil)
	repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil)
	tables.On("GetByNumber", ctx, "5").Return(newTable(t, "5").WithActive(false), nil)
	factory := new(MockDiningUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewCreateOrderCommandHandler(factory, fixedClock)
	created, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, table.ErrTableIsInactive)
	assert.Nil(t, created)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertCalled(t, "Rollback", ctx)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockDiningUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, fixedClock)

	_, err := h.Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), order.ForTakeaway(), order.Customer{})
	expected := errors.New("begin error")

	uow := new(MockUoW)
	factory := new(MockDiningUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(expected).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, fixedClock)
	_, err := h.Handle(ctx, cmd)

	assert.Equal(t, expected, err)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), order.ForDelivery(), order.Customer{})
	expected := errors.New("duplicate order number")

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(expected).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockDiningUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, fixedClock)
	created, err := h.Handle(ctx, cmd)

	assert.Equal(t, expected, err)
	assert.Nil(t, created)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), order.ForTakeaway(), order.Customer{})
	expected := errors.New("commit error")

	repo := new(MockOrderRepository)
	tables := new(MockTableRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("TableRepository").Return(tables).Once(),
		uow.On("Commit", ctx).Return(expected).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockDiningUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, fixedClock)
	_, err := h.Handle(ctx, cmd)

	assert.Equal(t, expected, err)
	repo.AssertExpectations(t)
	tables.AssertNotCalled(t, "GetByNumber", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
