package commands

import (
	"context"
	"fmt"

	"havenpos/internal/core/domain/model/order"
	"havenpos/internal/core/domain/model/payment"
)

// AddPaymentCommandHandler attaches payments to orders. Payments do not
// change the order's totals or status.
type AddPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	clock      Clock
}

// NewAddPaymentCommandHandler stamps payments with clock, or time.Now when
// clock is nil.
//
// Example:
//
//	handler := NewAddPaymentCommandHandler(uowFactory, nil)
//	cmd, _ := NewAddPaymentCommand(
//	    kernel.NewUUID(), orderID, kernel.MustMoney("20.00"), payment.Cash, payment.Details{}, session.UserID,
//	)
//
//	recorded, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, payment.ErrOrderIsCancelled) {
//	    // refund the guest instead
//	}
func NewAddPaymentCommandHandler(uowFactory PaymentUoWFactory, clock Clock) AddPaymentCommandHandler {
	return AddPaymentCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle stores a completed payment once the order is known to exist and
// is not cancelled.
func (h *AddPaymentCommandHandler) Handle(ctx context.Context, cmd AddPaymentCommand) (payment.Payment, error) {
	if err := cmd.Validate(); err != nil {
		return payment.Payment{}, err
	}

	recorded, err := payment.NewPayment(
		cmd.PaymentID(), cmd.OrderID(), cmd.Amount(), cmd.Method(), cmd.Details(), cmd.ProcessedBy(), h.clock.now(),
	)
	if err != nil {
		return payment.Payment{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return payment.Payment{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paid, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return payment.Payment{}, err
	}
	if paid.Status() == order.Cancelled {
		return payment.Payment{}, fmt.Errorf("%w: %s", payment.ErrOrderIsCancelled, paid.Number())
	}

	if err = uow.PaymentRepository().Add(ctx, recorded); err != nil {
		return payment.Payment{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return payment.Payment{}, err
	}

	return recorded, nil
}
