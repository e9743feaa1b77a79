package queries

import (
	"context"
	"time"
)

type ListOverdueOrdersQueryHandler struct {
	readerFactory OrderReaderFactory
	clock         Clock
}

func NewListOverdueOrdersQueryHandler(readerFactory OrderReaderFactory, clock Clock) ListOverdueOrdersQueryHandler {
	return ListOverdueOrdersQueryHandler{readerFactory: readerFactory, clock: clock}
}

// Handle returns overdue orders oldest first. Waiting is measured from
// confirmation, or from creation for orders confirmed before that time was
// recorded.
func (h ListOverdueOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOverdueOrdersQuery,
) ([]OverdueOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	candidates, err := h.readerFactory.Create().OrderRepository().ListKitchenQueue(ctx)
	if err != nil {
		return nil, err
	}

	now := h.clock.now()
	overdue := make([]OverdueOrderResponse, 0)
	for _, o := range candidates {
		prep := time.Duration(o.PrepMinutes()) * time.Minute
		if !o.IsOverdue(now, prep) {
			continue
		}

		start := o.ConfirmedAt()
		if start.IsZero() {
			start = o.CreatedAt()
		}
		overdue = append(overdue, OverdueOrderResponse{
			ID:          o.ID(),
			Number:      o.Number(),
			Status:      o.Status(),
			Destination: o.Destination(),
			PrepMinutes: o.PrepMinutes(),
			Waiting:     now.Sub(start),
		})
	}

	return overdue, nil
}
