package queries

import (
	"context"

	"havenpos/internal/core/domain/model/order"
)

type GetOrderQueryHandler struct {
	readerFactory OrderReaderFactory
}

func NewGetOrderQueryHandler(readerFactory OrderReaderFactory) GetOrderQueryHandler {
	return GetOrderQueryHandler{readerFactory: readerFactory}
}

// Handle returns the stored order with its lines and confirmed totals.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.readerFactory.Create().OrderRepository().Get(ctx, query.OrderID())
}
