package memory_test

import (
	"context"
	"testing"
	"time"

	"havenpos/internal/adapters/out/memory"
	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/core/domain/model/menu"
	"havenpos/internal/core/domain/model/order"
	"havenpos/internal/core/domain/model/payment"
	"havenpos/internal/core/domain/model/table"
	"havenpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newOrder(t *testing.T, at time.Time) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), order.GenerateNumber(at), order.ForTakeaway(), order.Customer{}, at)
	require.NoError(t, err)
	return o
}

func newItem(t *testing.T, name, category string) menu.Item {
	t.Helper()
	item, err := menu.NewItem(kernel.NewUUID(), name, category, kernel.MustMoney("2.00"), 0)
	require.NoError(t, err)
	return item
}

func TestUnitOfWork_CommitAndRollback(t *testing.T) {
	ctx := t.Context()
	factory := memory.NewStore().Factory()
	committed := newOrder(t, baseTime)
	discarded := newOrder(t, baseTime)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, committed))
	_, err := factory.Create().OrderRepository().Get(ctx, committed.ID())
	assert.ErrorIs(t, err, errs.ErrObjectNotFound, "staged writes are not visible outside")
	require.NoError(t, uow.Commit(ctx))
	assert.ErrorIs(t, uow.Rollback(ctx), memory.ErrNoTransaction)

	uow = factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, discarded))
	_, err = uow.OrderRepository().Get(ctx, discarded.ID())
	require.NoError(t, err, "staged writes are visible inside")
	require.NoError(t, uow.Rollback(ctx))

	reader := factory.Create().OrderRepository()
	_, err = reader.Get(ctx, committed.ID())
	assert.NoError(t, err)
	_, err = reader.Get(ctx, discarded.ID())
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUnitOfWork_SerializesTransactions(t *testing.T) {
	ctx := t.Context()
	factory := memory.NewStore().Factory()

	first := factory.Create()
	require.NoError(t, first.Begin(ctx))

	began := make(chan struct{})
	go func() {
		second := factory.Create()
		_ = second.Begin(ctx)
		close(began)
		_ = second.Rollback(ctx)
	}()

	select {
	case <-began:
		t.Fatal("second transaction began while the first was open")
	case <-time.After(50 * time.Millisecond):
	}

	require.NoError(t, first.Commit(ctx))
	select {
	case <-began:
	case <-time.After(time.Second):
		t.Fatal("second transaction never began")
	}
}

func TestOrderRepository_StoresCopies(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewStore().Factory().Create().OrderRepository()
	o := newOrder(t, baseTime)
	o.AddLine(kernel.NewUUID(), "Rice", kernel.MustMoney("3.00"), 1, "")
	require.NoError(t, repo.Add(ctx, o))

	o.AddLine(kernel.NewUUID(), "Stew", kernel.MustMoney("4.00"), 1, "")
	got, err := repo.Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Len(t, got.Lines(), 1)

	got.AddLine(kernel.NewUUID(), "Zobo", kernel.MustMoney("1.00"), 1, "")
	again, err := repo.Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Len(t, again.Lines(), 1)
}

func TestOrderRepository_AddAndUpdateRules(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewStore().Factory().Create().OrderRepository()
	o := newOrder(t, baseTime)

	assert.ErrorIs(t, repo.Update(ctx, o), errs.ErrObjectNotFound)
	require.NoError(t, repo.Add(ctx, o))
	assert.ErrorIs(t, repo.Add(ctx, o), memory.ErrDuplicateID)
	assert.ErrorIs(t, repo.Add(ctx, order.NewDraft(order.ForTakeaway())), order.ErrOrderNotPersisted)

	require.NoError(t, o.TransitionTo(order.Confirmed, baseTime))
	require.NoError(t, repo.Update(ctx, o))
	got, err := repo.Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, got.Status())
}

func TestOrderRepository_ListOrdering(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewStore().Factory().Create().OrderRepository()
	older := newOrder(t, baseTime)
	newer := newOrder(t, baseTime.Add(time.Hour))
	cancelled := newOrder(t, baseTime.Add(2*time.Hour))
	require.NoError(t, cancelled.TransitionTo(order.Cancelled, baseTime))
	lateConfirm := newOrder(t, baseTime.Add(-time.Hour))
	require.NoError(t, lateConfirm.TransitionTo(order.Confirmed, baseTime.Add(3*time.Hour)))
	earlyConfirm := newOrder(t, baseTime.Add(time.Minute))
	require.NoError(t, earlyConfirm.TransitionTo(order.Confirmed, baseTime.Add(2*time.Minute)))
	for _, o := range []*order.Order{older, newer, cancelled, lateConfirm, earlyConfirm} {
		require.NoError(t, repo.Add(ctx, o))
	}

	pending, err := repo.List(ctx, []order.Status{order.Pending})
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.True(t, pending[0].ID().IsEqual(newer.ID()))

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 5)
	assert.True(t, all[0].ID().IsEqual(cancelled.ID()))

	kitchen, err := repo.ListKitchenQueue(ctx)
	require.NoError(t, err)
	require.Len(t, kitchen, 2)
	assert.True(t, kitchen[0].ID().IsEqual(earlyConfirm.ID()))
	assert.True(t, kitchen[1].ID().IsEqual(lateConfirm.ID()))
}

func TestMenuRepository(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewStore().Factory().Create().MenuRepository()
	zobo := newItem(t, "Zobo", "drinks")
	amala := newItem(t, "Amala", "mains")
	chapman := newItem(t, "Chapman", "drinks").WithAvailability(false)
	for _, item := range []menu.Item{zobo, amala, chapman} {
		require.NoError(t, repo.Add(ctx, item))
	}
	assert.ErrorIs(t, repo.Add(ctx, zobo), memory.ErrDuplicateID)

	all, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Chapman", all[0].Name())
	assert.Equal(t, "Zobo", all[1].Name())
	assert.Equal(t, "Amala", all[2].Name())

	available, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, available, 2)

	require.NoError(t, repo.Update(ctx, zobo.WithAvailability(false)))
	got, err := repo.Get(ctx, zobo.ID())
	require.NoError(t, err)
	assert.False(t, got.Available())

	assert.ErrorIs(t, repo.Update(ctx, newItem(t, "Ghost", "x")), errs.ErrObjectNotFound)
}

func TestRepositories_HonourCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	uow := memory.NewStore().Factory().Create()

	_, err := uow.OrderRepository().List(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = uow.MenuRepository().Get(ctx, kernel.NewUUID())
	assert.ErrorIs(t, err, context.Canceled)
}


func TestUnitOfWork_CommittedEvents(t *testing.T) {
	ctx := t.Context()
	factory := memory.NewStore().Factory()
	o := newOrder(t, baseTime)
	require.NoError(t, factory.Create().OrderRepository().Add(ctx, o))

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	got, err := uow.OrderRepository().Get(ctx, o.ID())
	require.NoError(t, err)
	require.NoError(t, got.TransitionTo(order.Cancelled, baseTime.Add(time.Minute)))
	require.NoError(t, uow.OrderRepository().Update(ctx, got))
	assert.Empty(t, uow.CommittedEvents(), "nothing before commit")
	require.NoError(t, uow.Commit(ctx))

	events := uow.CommittedEvents()
	require.Len(t, events, 1)
	assert.Equal(t, order.StatusChanged{
		OrderID: o.ID(),
		Number:  o.Number(),
		From:    order.Pending,
		To:      order.Cancelled,
		At:      baseTime.Add(time.Minute),
	}, events[0])

	rolledBack := factory.Create()
	require.NoError(t, rolledBack.Begin(ctx))
	other := newOrder(t, baseTime)
	require.NoError(t, other.TransitionTo(order.Confirmed, baseTime))
	require.NoError(t, rolledBack.OrderRepository().Add(ctx, other))
	require.NoError(t, rolledBack.Rollback(ctx))
	assert.Empty(t, rolledBack.CommittedEvents())
}

func TestTableRepository(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewStore().Factory().Create().TableRepository()
	newTable := func(number string) table.Table {
		tbl, err := table.NewTable(kernel.NewUUID(), number, 4, "")
		require.NoError(t, err)
		return tbl
	}
	t2 := newTable("T2")
	t1 := newTable("T1")
	require.NoError(t, repo.Add(ctx, t2))
	require.NoError(t, repo.Add(ctx, t1))
	assert.ErrorIs(t, repo.Add(ctx, t1), memory.ErrDuplicateID)
	assert.ErrorIs(t, repo.Add(ctx, newTable("T1")), table.ErrNumberIsTaken)

	occupied, err := t2.Occupy()
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, occupied))

	all, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "T1", all[0].Number())

	available, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.True(t, available[0].ID().IsEqual(t1.ID()))

	got, err := repo.GetByNumber(ctx, " T2 ")
	require.NoError(t, err)
	assert.True(t, got.Occupied())

	_, err = repo.GetByNumber(ctx, "T9")
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.ErrorIs(t, repo.Update(ctx, newTable("T9")), errs.ErrObjectNotFound)
}

func TestPaymentRepository_ListByOrderOldestFirst(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewStore().Factory().Create().PaymentRepository()
	orderID := kernel.NewUUID()
	pay := func(order kernel.UUID, amount string, at time.Time) payment.Payment {
		p, err := payment.NewPayment(kernel.NewUUID(), order, kernel.MustMoney(amount), payment.Cash, payment.Details{}, "u1", at)
		require.NoError(t, err)
		return p
	}
	later := pay(orderID, "5.00", baseTime.Add(time.Minute))
	earlier := pay(orderID, "3.00", baseTime)
	for _, p := range []payment.Payment{later, earlier, pay(kernel.NewUUID(), "9.00", baseTime)} {
		require.NoError(t, repo.Add(ctx, p))
	}
	assert.ErrorIs(t, repo.Add(ctx, later), memory.ErrDuplicateID)

	got, err := repo.ListByOrder(ctx, orderID)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].ID().IsEqual(earlier.ID()))
	assert.Equal(t, "8.00", payment.TotalPaid(got).String())
}
