package ports

import (
	"context"

	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/core/domain/model/menu"
	"havenpos/internal/core/domain/model/order"
)

// OrderService is the remote order authority as seen from a terminal. All
// calls may block on the network and honour ctx.
type OrderService interface {
	Create(ctx context.Context, req CreateOrderRequest) (OrderReceipt, error)

	AddItem(ctx context.Context, orderID kernel.UUID, req AddItemRequest) (LineItemRecord, error)

	Confirm(ctx context.Context, orderID kernel.UUID) (order.Status, error)

	Serve(ctx context.Context, orderID kernel.UUID) (order.Status, error)

	Complete(ctx context.Context, orderID kernel.UUID) (order.Status, error)

	Cancel(ctx context.Context, orderID kernel.UUID) (order.Status, error)

	// UpdateStatus covers the kitchen steps (preparing, ready) that have no
	// dedicated operation.
	UpdateStatus(ctx context.Context, orderID kernel.UUID, status order.Status) (order.Status, error)

	// Get returns the full order with server totals set as ConfirmedTotals.
	Get(ctx context.Context, orderID kernel.UUID) (*order.Order, error)

	List(ctx context.Context, filter ListFilter) ([]*order.Order, error)
}

// MenuCatalog is the read-only menu as seen from a terminal.
type MenuCatalog interface {
	ListItems(ctx context.Context) ([]menu.Item, error)

	GetItem(ctx context.Context, id kernel.UUID) (menu.Item, error)
}

type CreateOrderRequest struct {
	Destination order.Destination
	Customer    order.Customer
}

type OrderReceipt struct {
	ID     kernel.UUID
	Number string
	Status order.Status
}

type AddItemRequest struct {
	MenuItemID   kernel.UUID
	Quantity     int
	UnitPrice    kernel.Money
	Instructions string
}

type LineItemRecord struct {
	ID           kernel.UUID
	MenuItemID   kernel.UUID
	Name         string
	Quantity     int
	UnitPrice    kernel.Money
	Subtotal     kernel.Money
	Instructions string
}

type ListFilter struct {
	// Statuses restricts the result; empty means all orders.
	Statuses []order.Status
}

// ActiveOrders selects every non-terminal order.
func ActiveOrders() ListFilter {
	return ListFilter{Statuses: order.ActiveStatuses()}
}
