package pos_test

import (
	"errors"
	"testing"
	"time"

	"havenpos/internal/core/application/pos"
	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/core/domain/model/order"
	"havenpos/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_Refresh(t *testing.T) {
	ctx := t.Context()
	first := []*order.Order{persistedOrder(t), persistedOrder(t, order.Confirmed)}
	second := []*order.Order{persistedOrder(t, order.Confirmed, order.Preparing)}

	svc := new(MockOrderService)
	svc.On("List", ctx, ports.ActiveOrders()).Return(first, nil).Once()
	svc.On("List", ctx, ports.ActiveOrders()).Return(second, nil).Once()

	board, err := pos.NewBoard(svc, fixedClock)
	require.NoError(t, err)
	assert.True(t, board.RefreshedAt().IsZero())

	require.NoError(t, board.Refresh(ctx))
	assert.Len(t, board.Orders(), 2)
	assert.Equal(t, fixedNow, board.RefreshedAt())

	require.NoError(t, board.Refresh(ctx))
	got := board.Orders()
	require.Len(t, got, 1)
	assert.Equal(t, order.Preparing, got[0].Status())

	found, ok := board.Find(second[0].ID())
	assert.True(t, ok)
	assert.Same(t, second[0], found)
	_, ok = board.Find(kernel.NewUUID())
	assert.False(t, ok)
}

func TestBoard_Refresh_FailureKeepsPreviousList(t *testing.T) {
	ctx := t.Context()
	kept := []*order.Order{persistedOrder(t)}
	now := fixedNow
	svc := new(MockOrderService)
	svc.On("List", ctx, ports.ActiveOrders()).Return(kept, nil).Once()
	svc.On("List", ctx, ports.ActiveOrders()).Return(nil, errors.New("timeout")).Once()

	board, err := pos.NewBoard(svc, func() time.Time { return now })
	require.NoError(t, err)
	require.NoError(t, board.Refresh(ctx))

	now = now.Add(time.Minute)
	require.Error(t, board.Refresh(ctx))
	assert.Equal(t, kept, board.Orders())
	assert.Equal(t, fixedNow, board.RefreshedAt())
}

func TestBoard_Orders_ReturnsCopy(t *testing.T) {
	ctx := t.Context()
	svc := new(MockOrderService)
	svc.On("List", ctx, ports.ActiveOrders()).Return([]*order.Order{persistedOrder(t)}, nil).Once()

	board, _ := pos.NewBoard(svc, nil)
	require.NoError(t, board.Refresh(ctx))

	got := board.Orders()
	got[0] = nil
	assert.NotNil(t, board.Orders()[0])
}
