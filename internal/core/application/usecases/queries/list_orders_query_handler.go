package queries

import (
	"context"

	"havenpos/internal/core/domain/model/order"
)

type ListOrdersQueryHandler struct {
	readerFactory OrderReaderFactory
}

func NewListOrdersQueryHandler(readerFactory OrderReaderFactory) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{readerFactory: readerFactory}
}

// Handle returns matching orders, newest first.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.readerFactory.Create().OrderRepository().List(ctx, query.Statuses())
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = make([]*order.Order, 0)
	}
	return orders, nil
}
