package commands

import (
	"errors"

	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/pkg/guard"
)

var ErrSetTableOccupancyCommandIsNotConstructed = errors.New(
	"SetTableOccupancyCommand must be created via NewSetTableOccupancyCommand constructor",
)

// SetTableOccupancyCommand seats guests at a table or frees it by hand.
type SetTableOccupancyCommand struct {
	tableID  kernel.UUID
	occupied bool

	guard guard.ConstructorGuard
}

func NewSetTableOccupancyCommand(tableID kernel.UUID, occupied bool) (SetTableOccupancyCommand, error) {
	if err := tableID.Validate(); err != nil {
		return SetTableOccupancyCommand{}, err
	}

	return SetTableOccupancyCommand{
		tableID:  tableID,
		occupied: occupied,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c SetTableOccupancyCommand) Validate() error {
	return c.guard.Validate(ErrSetTableOccupancyCommandIsNotConstructed)
}

func (c SetTableOccupancyCommand) TableID() kernel.UUID {
	return c.tableID
}

func (c SetTableOccupancyCommand) Occupied() bool {
	return c.occupied
}
