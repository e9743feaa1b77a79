package queries

import (
	"context"

	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/core/domain/model/payment"
)

type ListPaymentsQueryHandler struct {
	readerFactory PaymentReaderFactory
}

func NewListPaymentsQueryHandler(readerFactory PaymentReaderFactory) ListPaymentsQueryHandler {
	return ListPaymentsQueryHandler{readerFactory: readerFactory}
}

// Handle returns the order's payments oldest first. Unknown orders are
// reported as not found.
func (h ListPaymentsQueryHandler) Handle(ctx context.Context, query ListPaymentsQuery) (PaymentsResponse, error) {
	if err := query.Validate(); err != nil {
		return PaymentsResponse{}, err
	}

	reader := h.readerFactory.Create()
	paid, err := reader.OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		return PaymentsResponse{}, err
	}

	payments, err := reader.PaymentRepository().ListByOrder(ctx, query.OrderID())
	if err != nil {
		return PaymentsResponse{}, err
	}
	if payments == nil {
		payments = make([]payment.Payment, 0)
	}

	total := payment.TotalPaid(payments)
	due := paid.Total()
	if totals, ok := paid.ConfirmedTotals(); ok {
		due = totals.Total
	}
	balance, err := due.Sub(total)
	if err != nil {
		balance = kernel.Zero()
	}

	return PaymentsResponse{Payments: payments, TotalPaid: total, Balance: balance}, nil
}
