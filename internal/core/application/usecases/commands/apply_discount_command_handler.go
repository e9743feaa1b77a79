package commands

import (
	"context"
	"fmt"

	"havenpos/internal/core/domain/model/order"
	"havenpos/internal/core/domain/services"
)

type ApplyDiscountCommandHandler struct {
	uowFactory OrderUoWFactory
	pricer     services.Pricer
}

// NewApplyDiscountCommandHandler recomputes totals with pricer.
func NewApplyDiscountCommandHandler(uowFactory OrderUoWFactory, pricer services.Pricer) ApplyDiscountCommandHandler {
	return ApplyDiscountCommandHandler{
		uowFactory: uowFactory,
		pricer:     pricer,
	}
}

// Handle sets a fixed discount on an active order. The stored discount is
// capped at the subtotal.
func (h *ApplyDiscountCommandHandler) Handle(ctx context.Context, cmd ApplyDiscountCommand) (order.Totals, error) {
	if err := cmd.Validate(); err != nil {
		return order.Totals{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Totals{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	target, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return order.Totals{}, err
	}
	if !target.IsActive() {
		return order.Totals{}, fmt.Errorf("%s: %w", target.Number(), ErrOrderIsNotActive)
	}

	totals, err := h.pricer.Price(target, cmd.Amount())
	if err != nil {
		return order.Totals{}, err
	}
	target.ConfirmTotals(totals)

	if err = orderRepo.Update(ctx, target); err != nil {
		return order.Totals{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Totals{}, err
	}

	return totals, nil
}
