package commands

import (
	"context"
	"errors"

	"havenpos/internal/core/domain/model/order"
	"havenpos/internal/core/domain/model/table"
	"havenpos/internal/core/ports"
	"havenpos/internal/pkg/errs"
)

// registeredTable looks up the table a dine-in order is placed at. ok is
// false for other order types and for table references nobody registered.
func registeredTable(ctx context.Context, repo ports.TableRepository, dest order.Destination) (table.Table, bool, error) {
	if dest.Type != order.DineIn {
		return table.Table{}, false, nil
	}

	t, err := repo.GetByNumber(ctx, dest.Table)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return table.Table{}, false, nil
	}
	if err != nil {
		return table.Table{}, false, err
	}
	return t, true, nil
}

func seatAt(ctx context.Context, repo ports.TableRepository, dest order.Destination) error {
	t, ok, err := registeredTable(ctx, repo, dest)
	if err != nil || !ok {
		return err
	}

	occupied, err := t.Occupy()
	if err != nil {
		return err
	}
	return repo.Update(ctx, occupied)
}

func releaseFrom(ctx context.Context, repo ports.TableRepository, dest order.Destination) error {
	t, ok, err := registeredTable(ctx, repo, dest)
	if err != nil || !ok {
		return err
	}
	return repo.Update(ctx, t.Free())
}
