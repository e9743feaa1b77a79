package ports

import (
	"context"

	"havenpos/internal/core/domain/model/order"
)

// OrderEventPublisher announces stored order changes to other systems such
// as kitchen displays.
type OrderEventPublisher interface {
	PublishStatusChanged(ctx context.Context, event order.StatusChanged) error
}
