package ports

import (
	"context"

	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/core/domain/model/table"
)

type TableRepository interface {
	Add(ctx context.Context, t table.Table) error

	Update(ctx context.Context, t table.Table) error

	Get(ctx context.Context, id kernel.UUID) (table.Table, error)

	// GetByNumber looks a table up by the reference orders carry.
	GetByNumber(ctx context.Context, number string) (table.Table, error)

	// List returns tables ordered by number.
	List(ctx context.Context, onlyAvailable bool) ([]table.Table, error)
}
