package commands

import (
	"errors"

	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/core/domain/model/menu"
	"havenpos/internal/pkg/guard"
)

var ErrCreateMenuItemCommandIsNotConstructed = errors.New(
	"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
)

// CreateMenuItemCommand carries an already validated menu item.
type CreateMenuItemCommand struct {
	item menu.Item

	guard guard.ConstructorGuard
}

func NewCreateMenuItemCommand(
	id kernel.UUID,
	name, category string,
	price kernel.Money,
	prepMinutes int,
) (CreateMenuItemCommand, error) {
	item, err := menu.NewItem(id, name, category, price, prepMinutes)
	if err != nil {
		return CreateMenuItemCommand{}, err
	}

	return CreateMenuItemCommand{item: item, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

func (c CreateMenuItemCommand) Item() menu.Item {
	return c.item
}
