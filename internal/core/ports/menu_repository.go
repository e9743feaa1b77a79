package ports

import (
	"context"

	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/core/domain/model/menu"
)

type MenuRepository interface {
	Add(ctx context.Context, item menu.Item) error

	Update(ctx context.Context, item menu.Item) error

	Get(ctx context.Context, id kernel.UUID) (menu.Item, error)

	// List returns items ordered by category then name.
	List(ctx context.Context, onlyAvailable bool) ([]menu.Item, error)
}
