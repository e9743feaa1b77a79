package events

import (
	"context"
	"log/slog"

	"havenpos/internal/core/domain/model/order"
)

// LogPublisher stands in for the broker when none is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger.With("component", "LogPublisher")}
}

func (p *LogPublisher) PublishStatusChanged(ctx context.Context, event order.StatusChanged) error {
	msg := newStatusChangedMessage(event)
	p.logger.InfoContext(ctx, "order status changed",
		"order_id", msg.OrderID,
		"order_number", msg.OrderNumber,
		"from", msg.From,
		"to", msg.To,
		"occurred_at", msg.OccurredAt)
	return nil
}
