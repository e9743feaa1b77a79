package commands

import (
	"context"

	"havenpos/internal/core/domain/model/table"
)

// CreateTableCommandHandler registers dining tables.
//
// Example:
//
//	handler := NewCreateTableCommandHandler(uowFactory)
//	cmd, _ := NewCreateTableCommand(kernel.NewUUID(), "T4", 4, "Patio")
//
//	created, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, table.ErrNumberIsTaken) {
//	    // "T4" already exists
//	}
type CreateTableCommandHandler struct {
	uowFactory TableUoWFactory
}

func NewCreateTableCommandHandler(uowFactory TableUoWFactory) CreateTableCommandHandler {
	return CreateTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle registers the table. Numbers are unique; storage rejects a second
// table with the same number.
func (h *CreateTableCommandHandler) Handle(ctx context.Context, cmd CreateTableCommand) (table.Table, error) {
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

	if err := uow.TableRepository().Add(ctx, cmd.Table()); err != nil {
		return table.Table{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return table.Table{}, err
	}

	return cmd.Table(), nil
}
