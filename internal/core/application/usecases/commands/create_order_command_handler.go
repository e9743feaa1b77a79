package commands

import (
	"context"

	"havenpos/internal/core/domain/model/order"
)

// CreateOrderCommandHandler opens new pending orders. A dine-in order at a
// registered table occupies that table in the same transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, nil)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), order.AtTable("T4"), order.Customer{})
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("open order: %w", err)
//	}
//	// created.Number() is the ticket printed for the kitchen
type CreateOrderCommandHandler struct {
	uowFactory DiningUoWFactory
	clock      Clock
}

// NewCreateOrderCommandHandler stamps orders with clock, or time.Now when
// clock is nil.
func NewCreateOrderCommandHandler(uowFactory DiningUoWFactory, clock Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle stores a new pending order and returns it with its number.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.now()
	created, err := order.NewOrder(cmd.OrderID(), order.GenerateNumber(now), cmd.Destination(), cmd.Customer(), now)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = seatAt(ctx, uow.TableRepository(), created.Destination()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
