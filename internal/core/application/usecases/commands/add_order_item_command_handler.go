package commands

import (
	"context"
	"errors"
	"fmt"

	"havenpos/internal/core/domain/model/order"
	"havenpos/internal/core/domain/services"
)

var (
	ErrMenuItemUnavailable = errors.New("menu item is not available")
	ErrOrderIsNotActive    = errors.New("order is completed or cancelled")
)

// AddOrderItemCommandHandler puts menu items on open orders and keeps the
// order's totals current.
//
// Example:
//
//	handler := NewAddOrderItemCommandHandler(uowFactory, pricer)
//	cmd, _ := NewAddOrderItemCommand(orderID, soup.ID(), 2, nil, "no croutons")
//
//	line, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrMenuItemUnavailable) {
//	    // tell the guest the kitchen is out of soup
//	}
//	// a nil unit price charges the current menu price
type AddOrderItemCommandHandler struct {
	uowFactory UoWFactory
	pricer     services.Pricer
}

// NewAddOrderItemCommandHandler reprices the order with pricer after each
// added line.
func NewAddOrderItemCommandHandler(uowFactory UoWFactory, pricer services.Pricer) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
		pricer:     pricer,
	}
}

// Handle adds the menu item to the order and reprices it. Adding an item the
// order already holds increments that line.
func (h *AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) (order.LineItem, error) {
	if err := cmd.Validate(); err != nil {
		return order.LineItem{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.LineItem{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	item, err := uow.MenuRepository().Get(ctx, cmd.MenuItemID())
	if err != nil {
		return order.LineItem{}, err
	}
	if !item.Available() {
		return order.LineItem{}, fmt.Errorf("%s: %w", item.Name(), ErrMenuItemUnavailable)
	}

	orderRepo := uow.OrderRepository()
	target, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return order.LineItem{}, err
	}
	if !target.IsActive() {
		return order.LineItem{}, fmt.Errorf("%s: %w", target.Number(), ErrOrderIsNotActive)
	}

	price, ok := cmd.UnitPrice()
	if !ok {
		price = item.Price()
	}
	line := target.AddLine(item.ID(), item.Name(), price, cmd.Quantity(), cmd.Instructions())
	target.SetPrepMinutes(item.PrepMinutes())

	if err = h.pricer.Reprice(target); err != nil {
		return order.LineItem{}, err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return order.LineItem{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.LineItem{}, err
	}

	return line, nil
}
