package queries

import (
	"errors"
	"slices"

	"havenpos/internal/core/domain/model/order"
	"havenpos/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery selects orders by status. An empty status set selects
// every order.
//
// Example:
//
//	query, err := NewListOrdersQuery(order.Ready, order.Served)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	statuses []order.Status

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(statuses ...order.Status) (ListOrdersQuery, error) {
	unique := make([]order.Status, 0, len(statuses))
	for _, s := range statuses {
		if err := s.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
		if !slices.Contains(unique, s) {
			unique = append(unique, s)
		}
	}
	return ListOrdersQuery{statuses: unique, guard: guard.NewConstructorGuard()}, nil
}

// NewActiveOrdersQuery selects orders that are neither completed nor
// cancelled.
func NewActiveOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{statuses: order.ActiveStatuses(), guard: guard.NewConstructorGuard()}
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Statuses() []order.Status {
	return slices.Clone(q.statuses)
}
