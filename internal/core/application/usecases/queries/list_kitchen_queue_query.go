package queries

import (
	"errors"

	"havenpos/internal/pkg/guard"
)

var ErrListKitchenQueueQueryIsNotConstructed = errors.New(
	"ListKitchenQueueQuery must be created via NewListKitchenQueueQuery constructor",
)

// ListKitchenQueueQuery lists what the kitchen is working on: confirmed and
// preparing orders.
type ListKitchenQueueQuery struct {
	guard guard.ConstructorGuard
}

func NewListKitchenQueueQuery() ListKitchenQueueQuery {
	return ListKitchenQueueQuery{guard: guard.NewConstructorGuard()}
}

func (q ListKitchenQueueQuery) Validate() error {
	return q.guard.Validate(ErrListKitchenQueueQueryIsNotConstructed)
}
