package commands

import (
	"context"

	"havenpos/internal/core/domain/model/menu"
)

type SetMenuItemAvailabilityCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewSetMenuItemAvailabilityCommandHandler(uowFactory MenuUoWFactory) SetMenuItemAvailabilityCommandHandler {
	return SetMenuItemAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *SetMenuItemAvailabilityCommandHandler) Handle(
	ctx context.Context,
	cmd SetMenuItemAvailabilityCommand,
) (menu.Item, error) {
	if err := cmd.Validate(); err != nil {
		return menu.Item{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return menu.Item{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuRepository()
	item, err := menuRepo.Get(ctx, cmd.MenuItemID())
	if err != nil {
		return menu.Item{}, err
	}

	updated := item.WithAvailability(cmd.Available())
	if err = menuRepo.Update(ctx, updated); err != nil {
		return menu.Item{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return menu.Item{}, err
	}

	return updated, nil
}
