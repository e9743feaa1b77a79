// Package events publishes order status changes for kitchen displays and
// other listeners.
package events

import (
	"encoding/json"
	"time"

	"havenpos/internal/core/domain/model/order"
)

// StatusChangedMessage is the wire form of order.StatusChanged.
type StatusChangedMessage struct {
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func newStatusChangedMessage(event order.StatusChanged) StatusChangedMessage {
	return StatusChangedMessage{
		OrderID:     event.OrderID.String(),
		OrderNumber: event.Number,
		From:        event.From.String(),
		To:          event.To.String(),
		OccurredAt:  event.At.UTC(),
	}
}

func encodeStatusChanged(event order.StatusChanged) ([]byte, error) {
	return json.Marshal(newStatusChangedMessage(event))
}
