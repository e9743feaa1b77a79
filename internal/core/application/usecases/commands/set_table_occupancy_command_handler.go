package commands

import (
	"context"

	"havenpos/internal/core/domain/model/table"
)

type SetTableOccupancyCommandHandler struct {
	uowFactory TableUoWFactory
}

func NewSetTableOccupancyCommandHandler(uowFactory TableUoWFactory) SetTableOccupancyCommandHandler {
	return SetTableOccupancyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle occupies or frees the table. Tables out of service cannot be
// occupied, but can always be freed.
func (h *SetTableOccupancyCommandHandler) Handle(ctx context.Context, cmd SetTableOccupancyCommand) (table.Table, error) {
	if err := cmd.Validate(); err != nil {
		return table.Table{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return table.Table{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tableRepo := uow.TableRepository()
	current, err := tableRepo.Get(ctx, cmd.TableID())
	if err != nil {
		return table.Table{}, err
	}

	updated := current.Free()
	if cmd.Occupied() {
		if updated, err = current.Occupy(); err != nil {
			return table.Table{}, err
		}
	}

	if err = tableRepo.Update(ctx, updated); err != nil {
		return table.Table{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return table.Table{}, err
	}

	return updated, nil
}
