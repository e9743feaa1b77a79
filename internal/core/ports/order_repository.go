package ports

import (
	"context"

	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/core/domain/model/order"
)

type OrderRepository interface {
	Add(ctx context.Context, aggregate *order.Order) error

	// Update replaces the stored order including its line items.
	Update(ctx context.Context, aggregate *order.Order) error

	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// List returns orders in the given statuses, newest first. No statuses
	// means every order.
	List(ctx context.Context, statuses []order.Status) ([]*order.Order, error)

	// ListKitchenQueue returns the orders the kitchen is working on
	// (confirmed or preparing), longest waiting first.
	ListKitchenQueue(ctx context.Context) ([]*order.Order, error)
}
