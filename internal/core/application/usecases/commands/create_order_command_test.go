package commands_test

import (
	"testing"

	"havenpos/internal/core/application/usecases/commands"
	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	customer := order.Customer{Name: "Ana", Phone: "0712"}

	cmd, err := commands.NewCreateOrderCommand(id, order.AtTable("5"), customer)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, "5", cmd.Destination().Table)
	assert.Equal(t, customer, cmd.Customer())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, order.ForTakeaway(), order.Customer{})

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_DineInWithoutTable(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), order.AtTable(""), order.Customer{})

	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrTableRequired)
}

func TestCreateOrderCommand_ZeroValue(t *testing.T) {
	var cmd commands.CreateOrderCommand

	assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
