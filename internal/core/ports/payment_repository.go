package ports

import (
	"context"

	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/core/domain/model/payment"
)

type PaymentRepository interface {
	Add(ctx context.Context, p payment.Payment) error

	// ListByOrder returns the order's payments, oldest first.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]payment.Payment, error)
}
