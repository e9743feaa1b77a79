package queries

import (
	"context"

	"havenpos/internal/core/domain/model/order"
)

type ListKitchenQueueQueryHandler struct {
	readerFactory OrderReaderFactory
}

func NewListKitchenQueueQueryHandler(readerFactory OrderReaderFactory) ListKitchenQueueQueryHandler {
	return ListKitchenQueueQueryHandler{readerFactory: readerFactory}
}

// Handle returns the queue longest waiting first.
func (h ListKitchenQueueQueryHandler) Handle(ctx context.Context, query ListKitchenQueueQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	queue, err := h.readerFactory.Create().OrderRepository().ListKitchenQueue(ctx)
	if err != nil {
		return nil, err
	}
	if queue == nil {
		queue = make([]*order.Order, 0)
	}
	return queue, nil
}
