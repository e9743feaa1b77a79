package commands_test

import (
	"errors"
	"testing"

	"havenpos/internal/core/application/usecases/commands"
	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/core/domain/model/table"
	"havenpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateTableCommand(t *testing.T) {
	_, err := commands.NewCreateTableCommand(kernel.NewUUID(), " ", 4, "")
	assert.ErrorIs(t, err, table.ErrNumberIsRequired)

	_, err = commands.NewCreateTableCommand(kernel.NewUUID(), "T1", 0, "")
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	cmd, err := commands.NewCreateTableCommand(kernel.NewUUID(), "T1", 6, "")
	require.NoError(t, err)
	assert.Equal(t, table.DefaultSection, cmd.Table().Section())
	assert.True(t, cmd.Table().Available())
}

func TestCreateTableCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateTableCommand(kernel.NewUUID(), "T1", 2, "Patio")
	require.NoError(t, err)

	repo := new(MockTableRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TableRepository").Return(repo).Once(),
		repo.On("Add", ctx, cmd.Table()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockTableUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateTableCommandHandler(factory)
	got, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Patio", got.Section())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateTableCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateTableCommand(kernel.NewUUID(), "T1", 2, "")
	expected := errors.New("duplicate number")

	repo := new(MockTableRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("TableRepository").Return(repo)
	uow.On("Rollback", ctx).Return(nil)
	repo.On("Add", ctx, cmd.Table()).Return(expected)
	factory := new(MockTableUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewCreateTableCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	assert.Equal(t, expected, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSetTableOccupancyCommandHandler_Handle(t *testing.T) {
	free := newTable(t, "T2")
	occupied, err := free.Occupy()
	require.NoError(t, err)

	tests := map[string]struct {
		current  table.Table
		occupied bool
		stored   table.Table
	}{
		"occupy a free table":        {current: free, occupied: true, stored: occupied},
		"occupy an occupied table":   {current: occupied, occupied: true, stored: occupied},
		"free an occupied table":     {current: occupied, occupied: false, stored: free},
		"free an out of order table": {current: occupied.WithActive(false), occupied: false, stored: free.WithActive(false)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := t.Context()
			cmd, err := commands.NewSetTableOccupancyCommand(tt.current.ID(), tt.occupied)
			require.NoError(t, err)

			repo := new(MockTableRepository)
			uow := new(MockUoW)
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("TableRepository").Return(repo).Once(),
				repo.On("Get", ctx, tt.current.ID()).Return(tt.current, nil).Once(),
				repo.On("Update", ctx, tt.stored).Return(nil).Once(),
				uow.On("Commit", ctx).Return(nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)
			factory := new(MockTableUoWFactory)
			factory.On("Create").Return(uow).Once()

			h := commands.NewSetTableOccupancyCommandHandler(factory)
			got, err := h.Handle(ctx, cmd)

			require.NoError(t, err)
			assert.Equal(t, tt.occupied, got.Occupied())
			repo.AssertExpectations(t)
			uow.AssertExpectations(t)
		})
	}
}

func TestSetTableOccupancyCommandHandler_Handle_InactiveTable(t *testing.T) {
	ctx := t.Context()
	inactive := newTable(t, "T3").WithActive(false)
	cmd, _ := commands.NewSetTableOccupancyCommand(inactive.ID(), true)

	repo := new(MockTableRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("TableRepository").Return(repo)
	uow.On("Rollback", ctx).Return(nil)
	repo.On("Get", ctx, inactive.ID()).Return(inactive, nil)
	factory := new(MockTableUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewSetTableOccupancyCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, table.ErrTableIsInactive)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSetTableOccupancyCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewSetTableOccupancyCommand(id, false)

	repo := new(MockTableRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("TableRepository").Return(repo)
	uow.On("Rollback", ctx).Return(nil)
	repo.On("Get", ctx, id).Return(table.Table{}, errs.NewObjectNotFoundError("table", id.String()))
	factory := new(MockTableUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewSetTableOccupancyCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewSetTableOccupancyCommand(t *testing.T) {
	_, err := commands.NewSetTableOccupancyCommand(kernel.UUID{}, true)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	h := commands.NewSetTableOccupancyCommandHandler(new(MockTableUoWFactory))
	_, err = h.Handle(t.Context(), commands.SetTableOccupancyCommand{})
	assert.ErrorIs(t, err, commands.ErrSetTableOccupancyCommandIsNotConstructed)
}
