// Package inprocess runs the order service handlers inside the terminal's
// process. It implements the terminal ports without a network hop and is
// used for tests and single-box setups.
package inprocess

import (
	"context"

	"havenpos/internal/core/application/usecases"
	"havenpos/internal/core/application/usecases/commands"
	"havenpos/internal/core/application/usecases/queries"
	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/core/domain/model/menu"
	"havenpos/internal/core/domain/model/order"
	"havenpos/internal/core/ports"
	"havenpos/internal/pkg/errs"
)

var (
	_ ports.OrderService = (*OrderService)(nil)
	_ ports.MenuCatalog  = (*MenuCatalog)(nil)
)

type OrderService struct {
	handlers *usecases.Handlers
}

func NewOrderService(handlers *usecases.Handlers) (*OrderService, error) {
	if handlers == nil {
		return nil, errs.NewValueIsRequiredError("handlers")
	}
	return &OrderService{handlers: handlers}, nil
}

func (s *OrderService) Create(ctx context.Context, req ports.CreateOrderRequest) (ports.OrderReceipt, error) {
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), req.Destination, req.Customer)
	if err != nil {
		return ports.OrderReceipt{}, err
	}

	created, err := s.handlers.CreateOrder.Handle(ctx, cmd)
	if err != nil {
		return ports.OrderReceipt{}, err
	}

	return ports.OrderReceipt{
		ID:     created.ID(),
		Number: created.Number(),
		Status: created.Status(),
	}, nil
}

// AddItem sends the terminal's unit price. A zero price leaves the choice
// to the menu.
func (s *OrderService) AddItem(
	ctx context.Context,
	orderID kernel.UUID,
	req ports.AddItemRequest,
) (ports.LineItemRecord, error) {
	var price *kernel.Money
	if !req.UnitPrice.IsZero() {
		p := req.UnitPrice
		price = &p
	}

	cmd, err := commands.NewAddOrderItemCommand(orderID, req.MenuItemID, req.Quantity, price, req.Instructions)
	if err != nil {
		return ports.LineItemRecord{}, err
	}

	line, err := s.handlers.AddOrderItem.Handle(ctx, cmd)
	if err != nil {
		return ports.LineItemRecord{}, err
	}

	return LineItemRecord(line), nil
}

func (s *OrderService) Confirm(ctx context.Context, orderID kernel.UUID) (order.Status, error) {
	return s.changeStatus(ctx, orderID, order.Confirmed)
}

func (s *OrderService) Serve(ctx context.Context, orderID kernel.UUID) (order.Status, error) {
	return s.changeStatus(ctx, orderID, order.Served)
}

func (s *OrderService) Complete(ctx context.Context, orderID kernel.UUID) (order.Status, error) {
	return s.changeStatus(ctx, orderID, order.Completed)
}

func (s *OrderService) Cancel(ctx context.Context, orderID kernel.UUID) (order.Status, error) {
	return s.changeStatus(ctx, orderID, order.Cancelled)
}

func (s *OrderService) UpdateStatus(ctx context.Context, orderID kernel.UUID, status order.Status) (order.Status, error) {
	return s.changeStatus(ctx, orderID, status)
}

func (s *OrderService) Get(ctx context.Context, orderID kernel.UUID) (*order.Order, error) {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return nil, err
	}
	return s.handlers.GetOrder.Handle(ctx, query)
}

func (s *OrderService) List(ctx context.Context, filter ports.ListFilter) ([]*order.Order, error) {
	query, err := queries.NewListOrdersQuery(filter.Statuses...)
	if err != nil {
		return nil, err
	}
	return s.handlers.ListOrders.Handle(ctx, query)
}

func (s *OrderService) changeStatus(ctx context.Context, orderID kernel.UUID, target order.Status) (order.Status, error) {
	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target)
	if err != nil {
		return order.Unknown, err
	}

	changed, err := s.handlers.ChangeOrderStatus.Handle(ctx, cmd)
	if err != nil {
		return order.Unknown, err
	}
	return changed.Status(), nil
}

type MenuCatalog struct {
	handlers *usecases.Handlers
}

func NewMenuCatalog(handlers *usecases.Handlers) (*MenuCatalog, error) {
	if handlers == nil {
		return nil, errs.NewValueIsRequiredError("handlers")
	}
	return &MenuCatalog{handlers: handlers}, nil
}

// ListItems returns the whole menu. Filtering by availability is done by
// the terminal.
func (c *MenuCatalog) ListItems(ctx context.Context) ([]menu.Item, error) {
	return c.handlers.ListMenuItems.Handle(ctx, queries.NewListMenuItemsQuery(false))
}

func (c *MenuCatalog) GetItem(ctx context.Context, id kernel.UUID) (menu.Item, error) {
	query, err := queries.NewGetMenuItemQuery(id)
	if err != nil {
		return menu.Item{}, err
	}
	return c.handlers.GetMenuItem.Handle(ctx, query)
}

// LineItemRecord converts a stored line into the record returned to terminals.
func LineItemRecord(l order.LineItem) ports.LineItemRecord {
	return ports.LineItemRecord{
		ID:           l.ID(),
		MenuItemID:   l.MenuItemID(),
		Name:         l.Name(),
		Quantity:     l.Quantity(),
		UnitPrice:    l.UnitPrice(),
		Subtotal:     l.Subtotal(),
		Instructions: l.Note(),
	}
}
