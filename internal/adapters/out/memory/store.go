// Package memory keeps orders, menu items, tables and payments in process
// memory. It serves local runs without a database and the in-process order
// service used by tests.
//
// Orders are stored as snapshots, so callers never share an aggregate with
// the store. Transactions are serialized: Begin blocks while another unit
// of work holds an open transaction, and writes become visible on Commit.
package memory

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"sync"

	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/core/domain/model/menu"
	"havenpos/internal/core/domain/model/order"
	"havenpos/internal/core/domain/model/payment"
	"havenpos/internal/core/domain/model/table"
	"havenpos/internal/core/ports"
)

var ErrNoTransaction = errors.New("no open transaction")

type Store struct {
	txMu sync.Mutex

	mu    sync.RWMutex
	state state
}

// state is one set of rows, either the committed store or the writes
// staged by an open transaction.
type state struct {
	orders   map[kernel.UUID]order.Snapshot
	menu     map[kernel.UUID]menu.Item
	tables   map[kernel.UUID]table.Table
	payments map[kernel.UUID]payment.Payment
}

func newState() state {
	return state{
		orders:   make(map[kernel.UUID]order.Snapshot),
		menu:     make(map[kernel.UUID]menu.Item),
		tables:   make(map[kernel.UUID]table.Table),
		payments: make(map[kernel.UUID]payment.Payment),
	}
}

func NewStore() *Store {
	return &Store{state: newState()}
}

// Factory returns a unit of work factory over the store.
func (s *Store) Factory() *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: s}
}

func (s *Store) read(fn func(st state)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.state)
}

func (s *Store) apply(staged state) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, snap := range staged.orders {
		s.state.orders[id] = snap
	}
	for id, item := range staged.menu {
		s.state.menu[id] = item
	}
	for id, t := range staged.tables {
		s.state.tables[id] = t
	}
	for id, p := range staged.payments {
		s.state.payments[id] = p
	}
}

type UnitOfWorkFactory struct {
	store *Store
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages writes until Commit. Without Begin, repositories read
// and write the store directly.
type UnitOfWork struct {
	store *Store

	open      bool
	staged    state
	written   []*order.Order
	committed []order.StatusChanged
}

func (u *UnitOfWork) Begin(_ context.Context) error {
	if u.open {
		return nil
	}
	u.store.txMu.Lock()
	u.open = true
	u.staged = newState()
	return nil
}

func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.open {
		return ErrNoTransaction
	}
	u.store.apply(u.staged)
	u.committed = nil
	for _, o := range u.written {
		u.committed = append(u.committed, o.PullStatusChanges()...)
	}
	u.close()
	return nil
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.open {
		return ErrNoTransaction
	}
	u.close()
	return nil
}

func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: u}
}

func (u *UnitOfWork) MenuRepository() ports.MenuRepository {
	return &MenuRepository{uow: u}
}

func (u *UnitOfWork) TableRepository() ports.TableRepository {
	return &TableRepository{uow: u}
}

func (u *UnitOfWork) PaymentRepository() ports.PaymentRepository {
	return &PaymentRepository{uow: u}
}

// CommittedEvents returns the status changes of the orders written in the
// last committed transaction.
func (u *UnitOfWork) CommittedEvents() []order.StatusChanged {
	return u.committed
}

func (u *UnitOfWork) close() {
	u.open = false
	u.staged = state{}
	u.written = nil
	u.store.txMu.Unlock()
}

// write stages fn inside a transaction and applies it at once otherwise.
func (u *UnitOfWork) write(fn func(st state)) {
	if u.open {
		fn(u.staged)
		return
	}
	direct := newState()
	fn(direct)
	u.store.apply(direct)
}

func (u *UnitOfWork) trackOrder(o *order.Order) {
	if u.open {
		u.written = append(u.written, o)
	}
}

func (u *UnitOfWork) order(id kernel.UUID) (order.Snapshot, bool) {
	return lookup(u, id, func(st state) map[kernel.UUID]order.Snapshot { return st.orders })
}

func (u *UnitOfWork) menuItem(id kernel.UUID) (menu.Item, bool) {
	return lookup(u, id, func(st state) map[kernel.UUID]menu.Item { return st.menu })
}

func (u *UnitOfWork) table(id kernel.UUID) (table.Table, bool) {
	return lookup(u, id, func(st state) map[kernel.UUID]table.Table { return st.tables })
}

func (u *UnitOfWork) orderSnapshots() []order.Snapshot {
	return merged(u, func(st state) map[kernel.UUID]order.Snapshot { return st.orders })
}

func (u *UnitOfWork) menuItems() []menu.Item {
	return merged(u, func(st state) map[kernel.UUID]menu.Item { return st.menu })
}

func (u *UnitOfWork) tables() []table.Table {
	return merged(u, func(st state) map[kernel.UUID]table.Table { return st.tables })
}

func (u *UnitOfWork) payments() []payment.Payment {
	return merged(u, func(st state) map[kernel.UUID]payment.Payment { return st.payments })
}

func lookup[T any](u *UnitOfWork, id kernel.UUID, rows func(state) map[kernel.UUID]T) (T, bool) {
	if u.open {
		if v, ok := rows(u.staged)[id]; ok {
			return v, true
		}
	}
	var (
		v  T
		ok bool
	)
	u.store.read(func(st state) {
		v, ok = rows(st)[id]
	})
	return v, ok
}

// merged overlays the staged rows on the committed ones.
func merged[T any](u *UnitOfWork, rows func(state) map[kernel.UUID]T) []T {
	all := make(map[kernel.UUID]T)
	u.store.read(func(st state) {
		for id, v := range rows(st) {
			all[id] = v
		}
	})
	if u.open {
		for id, v := range rows(u.staged) {
			all[id] = v
		}
	}
	out := make([]T, 0, len(all))
	for _, v := range all {
		out = append(out, v)
	}
	return out
}

func sortMenu(items []menu.Item) {
	slices.SortFunc(items, func(a, b menu.Item) int {
		return cmp.Or(
			cmp.Compare(a.Category(), b.Category()),
			cmp.Compare(a.Name(), b.Name()),
			cmp.Compare(a.ID().String(), b.ID().String()),
		)
	})
}
