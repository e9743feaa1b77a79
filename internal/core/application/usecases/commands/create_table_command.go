package commands

import (
	"errors"

	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/core/domain/model/table"
	"havenpos/internal/pkg/guard"
)

var ErrCreateTableCommandIsNotConstructed = errors.New(
	"CreateTableCommand must be created via NewCreateTableCommand constructor",
)

// CreateTableCommand carries an already validated table.
type CreateTableCommand struct {
	table table.Table

	guard guard.ConstructorGuard
}

func NewCreateTableCommand(id kernel.UUID, number string, capacity int, section string) (CreateTableCommand, error) {
	t, err := table.NewTable(id, number, capacity, section)
	if err != nil {
		return CreateTableCommand{}, err
	}

	return CreateTableCommand{table: t, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateTableCommand) Validate() error {
	return c.guard.Validate(ErrCreateTableCommandIsNotConstructed)
}

func (c CreateTableCommand) Table() table.Table {
	return c.table
}
