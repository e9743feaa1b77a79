package queries

import (
	"context"

	"havenpos/internal/core/domain/model/menu"
)

type ListMenuItemsQueryHandler struct {
	readerFactory MenuReaderFactory
}

func NewListMenuItemsQueryHandler(readerFactory MenuReaderFactory) ListMenuItemsQueryHandler {
	return ListMenuItemsQueryHandler{readerFactory: readerFactory}
}

// Handle returns menu items ordered by category then name.
func (h ListMenuItemsQueryHandler) Handle(ctx context.Context, query ListMenuItemsQuery) ([]menu.Item, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, err := h.readerFactory.Create().MenuRepository().List(ctx, query.OnlyAvailable())
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = make([]menu.Item, 0)
	}
	return items, nil
}
