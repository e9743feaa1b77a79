package commands

import (
	"errors"

	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/pkg/guard"
)

var ErrSetMenuItemAvailabilityCommandIsNotConstructed = errors.New(
	"SetMenuItemAvailabilityCommand must be created via NewSetMenuItemAvailabilityCommand constructor",
)

type SetMenuItemAvailabilityCommand struct {
	menuItemID kernel.UUID
	available  bool

	guard guard.ConstructorGuard
}

func NewSetMenuItemAvailabilityCommand(menuItemID kernel.UUID, available bool) (SetMenuItemAvailabilityCommand, error) {
	if err := menuItemID.Validate(); err != nil {
		return SetMenuItemAvailabilityCommand{}, err
	}

	return SetMenuItemAvailabilityCommand{
		menuItemID: menuItemID,
		available:  available,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c SetMenuItemAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetMenuItemAvailabilityCommandIsNotConstructed)
}

func (c SetMenuItemAvailabilityCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

func (c SetMenuItemAvailabilityCommand) Available() bool {
	return c.available
}
