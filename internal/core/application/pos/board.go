package pos

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/core/domain/model/order"
	"havenpos/internal/core/ports"
	"havenpos/internal/pkg/errs"
)

// Board holds the active orders last fetched from the service. Each Refresh
// replaces the list wholesale.
type Board struct {
	orders ports.OrderService
	clock  func() time.Time

	mu          sync.RWMutex
	active      []*order.Order
	refreshedAt time.Time
}

func NewBoard(orders ports.OrderService, clock func() time.Time) (*Board, error) {
	if orders == nil {
		return nil, errs.NewValueIsRequiredError("orders")
	}
	if clock == nil {
		clock = func() time.Time { return time.Now().UTC() }
	}
	return &Board{orders: orders, clock: clock}, nil
}

// Refresh refetches the active orders. On error the previous list stays.
func (b *Board) Refresh(ctx context.Context) error {
	active, err := b.orders.List(ctx, ports.ActiveOrders())
	if err != nil {
		return fmt.Errorf("refresh active orders: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.active = active
	b.refreshedAt = b.clock()
	return nil
}

func (b *Board) Orders() []*order.Order {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.active)
}

// Find returns the order with the given id from the last refresh.
func (b *Board) Find(orderID kernel.UUID) (*order.Order, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, o := range b.active {
		if o.ID().IsEqual(orderID) {
			return o, true
		}
	}
	return nil, false
}

// RefreshedAt is zero until the first successful Refresh.
func (b *Board) RefreshedAt() time.Time {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.refreshedAt
}
