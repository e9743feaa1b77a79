package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/core/domain/model/menu"
	"havenpos/internal/core/domain/model/order"
	"havenpos/internal/core/domain/model/payment"
	"havenpos/internal/core/domain/model/table"
	"havenpos/internal/pkg/errs"
)

var ErrDuplicateID = fmt.Errorf("%w: duplicate id", errs.ErrValueIsInvalid)

type OrderRepository struct {
	uow *UnitOfWork
}

func (r *OrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !aggregate.IsPersisted() {
		return order.ErrOrderNotPersisted
	}
	if _, exists := r.uow.order(aggregate.ID()); exists {
		return fmt.Errorf("order %s: %w", aggregate.ID(), ErrDuplicateID)
	}

	snap := aggregate.Snapshot()
	r.uow.write(func(st state) { st.orders[snap.ID] = snap })
	r.uow.trackOrder(aggregate)
	return nil
}

func (r *OrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if _, exists := r.uow.order(aggregate.ID()); !exists {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	snap := aggregate.Snapshot()
	r.uow.write(func(st state) { st.orders[snap.ID] = snap })
	r.uow.trackOrder(aggregate)
	return nil
}

func (r *OrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	snap, ok := r.uow.order(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return order.RestoreOrder(snap)
}

func (r *OrderRepository) List(ctx context.Context, statuses []order.Status) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snaps := r.uow.orderSnapshots()
	snaps = slices.DeleteFunc(snaps, func(s order.Snapshot) bool {
		return len(statuses) > 0 && !slices.Contains(statuses, s.Status)
	})
	slices.SortFunc(snaps, func(a, b order.Snapshot) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(b.Number, a.Number))
	})
	return restoreAll(snaps)
}

func (r *OrderRepository) ListKitchenQueue(ctx context.Context) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snaps := r.uow.orderSnapshots()
	snaps = slices.DeleteFunc(snaps, func(s order.Snapshot) bool {
		return s.Status != order.Confirmed && s.Status != order.Preparing
	})
	slices.SortFunc(snaps, func(a, b order.Snapshot) int {
		return cmp.Or(waitingSince(a).Compare(waitingSince(b)), cmp.Compare(a.Number, b.Number))
	})
	return restoreAll(snaps)
}

func waitingSince(s order.Snapshot) time.Time {
	if s.ConfirmedAt.IsZero() {
		return s.CreatedAt
	}
	return s.ConfirmedAt
}

func restoreAll(snaps []order.Snapshot) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(snaps))
	for _, snap := range snaps {
		o, err := order.RestoreOrder(snap)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

type MenuRepository struct {
	uow *UnitOfWork
}

func (r *MenuRepository) Add(ctx context.Context, item menu.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return err
	}
	if _, exists := r.uow.menuItem(item.ID()); exists {
		return fmt.Errorf("menu item %s: %w", item.ID(), ErrDuplicateID)
	}

	r.uow.write(func(st state) { st.menu[item.ID()] = item })
	return nil
}

func (r *MenuRepository) Update(ctx context.Context, item menu.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return err
	}
	if _, exists := r.uow.menuItem(item.ID()); !exists {
		return errs.NewObjectNotFoundError("menu item", item.ID().String())
	}

	r.uow.write(func(st state) { st.menu[item.ID()] = item })
	return nil
}

func (r *MenuRepository) Get(ctx context.Context, id kernel.UUID) (menu.Item, error) {
	if err := ctx.Err(); err != nil {
		return menu.Item{}, err
	}
	if err := id.Validate(); err != nil {
		return menu.Item{}, err
	}

	item, ok := r.uow.menuItem(id)
	if !ok {
		return menu.Item{}, errs.NewObjectNotFoundError("menu item", id.String())
	}
	return item, nil
}

func (r *MenuRepository) List(ctx context.Context, onlyAvailable bool) ([]menu.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	items := r.uow.menuItems()
	if onlyAvailable {
		items = menu.FilterAvailable(items)
	}
	sortMenu(items)
	return items, nil
}

type TableRepository struct {
	uow *UnitOfWork
}

func (r *TableRepository) Add(ctx context.Context, t table.Table) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := t.Validate(); err != nil {
		return err
	}
	if _, exists := r.uow.table(t.ID()); exists {
		return fmt.Errorf("table %s: %w", t.ID(), ErrDuplicateID)
	}
	if _, err := r.GetByNumber(ctx, t.Number()); err == nil {
		return fmt.Errorf("%w: %s", table.ErrNumberIsTaken, t.Number())
	}

	r.uow.write(func(st state) { st.tables[t.ID()] = t })
	return nil
}

func (r *TableRepository) Update(ctx context.Context, t table.Table) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := t.Validate(); err != nil {
		return err
	}
	if _, exists := r.uow.table(t.ID()); !exists {
		return errs.NewObjectNotFoundError("table", t.ID().String())
	}

	r.uow.write(func(st state) { st.tables[t.ID()] = t })
	return nil
}

func (r *TableRepository) Get(ctx context.Context, id kernel.UUID) (table.Table, error) {
	if err := ctx.Err(); err != nil {
		return table.Table{}, err
	}
	if err := id.Validate(); err != nil {
		return table.Table{}, err
	}

	t, ok := r.uow.table(id)
	if !ok {
		return table.Table{}, errs.NewObjectNotFoundError("table", id.String())
	}
	return t, nil
}

func (r *TableRepository) GetByNumber(ctx context.Context, number string) (table.Table, error) {
	if err := ctx.Err(); err != nil {
		return table.Table{}, err
	}

	number = strings.TrimSpace(number)
	for _, t := range r.uow.tables() {
		if t.Number() == number {
			return t, nil
		}
	}
	return table.Table{}, errs.NewObjectNotFoundError("table number", number)
}

func (r *TableRepository) List(ctx context.Context, onlyAvailable bool) ([]table.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tables := r.uow.tables()
	if onlyAvailable {
		tables = table.FilterAvailable(tables)
	}
	slices.SortFunc(tables, func(a, b table.Table) int {
		return cmp.Compare(a.Number(), b.Number())
	})
	return tables, nil
}

type PaymentRepository struct {
	uow *UnitOfWork
}

func (r *PaymentRepository) Add(ctx context.Context, p payment.Payment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}
	for _, existing := range r.uow.payments() {
		if existing.ID().IsEqual(p.ID()) {
			return fmt.Errorf("payment %s: %w", p.ID(), ErrDuplicateID)
		}
	}

	r.uow.write(func(st state) { st.payments[p.ID()] = p })
	return nil
}

func (r *PaymentRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]payment.Payment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	payments := slices.DeleteFunc(r.uow.payments(), func(p payment.Payment) bool {
		return !p.OrderID().IsEqual(orderID)
	})
	slices.SortFunc(payments, func(a, b payment.Payment) int {
		return cmp.Or(a.CreatedAt().Compare(b.CreatedAt()), cmp.Compare(a.ID().String(), b.ID().String()))
	})
	return payments, nil
}
