package queries

import (
	"context"

	"havenpos/internal/core/domain/model/menu"
)

type GetMenuItemQueryHandler struct {
	readerFactory MenuReaderFactory
}

func NewGetMenuItemQueryHandler(readerFactory MenuReaderFactory) GetMenuItemQueryHandler {
	return GetMenuItemQueryHandler{readerFactory: readerFactory}
}

func (h GetMenuItemQueryHandler) Handle(ctx context.Context, query GetMenuItemQuery) (menu.Item, error) {
	if err := query.Validate(); err != nil {
		return menu.Item{}, err
	}

	return h.readerFactory.Create().MenuRepository().Get(ctx, query.MenuItemID())
}
