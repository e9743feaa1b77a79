package order

import (
	"time"

	"havenpos/internal/core/domain/model/kernel"
)

// StatusChanged is raised by the order service after a transition was stored.
type StatusChanged struct {
	OrderID kernel.UUID
	Number  string
	From    Status
	To      Status
	At      time.Time
}

func NewStatusChanged(o *Order, from Status, at time.Time) StatusChanged {
	return StatusChanged{
		OrderID: o.ID(),
		Number:  o.Number(),
		From:    from,
		To:      o.Status(),
		At:      at,
	}
}
