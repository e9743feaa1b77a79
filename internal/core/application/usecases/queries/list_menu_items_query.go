package queries

import (
	"errors"

	"havenpos/internal/pkg/guard"
)

var ErrListMenuItemsQueryIsNotConstructed = errors.New(
	"ListMenuItemsQuery must be created via NewListMenuItemsQuery constructor",
)

type ListMenuItemsQuery struct {
	onlyAvailable bool

	guard guard.ConstructorGuard
}

// NewListMenuItemsQuery lists the whole menu, or only what the kitchen can
// currently serve when onlyAvailable is set.
func NewListMenuItemsQuery(onlyAvailable bool) ListMenuItemsQuery {
	return ListMenuItemsQuery{onlyAvailable: onlyAvailable, guard: guard.NewConstructorGuard()}
}

func (q ListMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrListMenuItemsQueryIsNotConstructed)
}

func (q ListMenuItemsQuery) OnlyAvailable() bool {
	return q.onlyAvailable
}
