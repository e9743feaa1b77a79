package queries

import (
	"errors"
	"time"

	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/core/domain/model/order"
	"havenpos/internal/pkg/guard"
)

var ErrListOverdueOrdersQueryIsNotConstructed = errors.New(
	"ListOverdueOrdersQuery must be created via NewListOverdueOrdersQuery constructor",
)

// ListOverdueOrdersQuery finds kitchen orders waiting longer than their
// estimated preparation time.
type ListOverdueOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewListOverdueOrdersQuery() ListOverdueOrdersQuery {
	return ListOverdueOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListOverdueOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOverdueOrdersQueryIsNotConstructed)
}

// OverdueOrderResponse is the kitchen display view of a late order.
type OverdueOrderResponse struct {
	ID          kernel.UUID
	Number      string
	Status      order.Status
	Destination order.Destination
	PrepMinutes int
	Waiting     time.Duration
}
