package queries

import (
	"errors"

	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/pkg/guard"
)

var (
	ErrGetTableQueryIsNotConstructed = errors.New(
		"GetTableQuery must be created via NewGetTableQuery constructor",
	)
	ErrListTablesQueryIsNotConstructed = errors.New(
		"ListTablesQuery must be created via NewListTablesQuery constructor",
	)
)

type GetTableQuery struct {
	tableID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetTableQuery(tableID kernel.UUID) (GetTableQuery, error) {
	if err := tableID.Validate(); err != nil {
		return GetTableQuery{}, err
	}
	return GetTableQuery{tableID: tableID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTableQuery) Validate() error {
	return q.guard.Validate(ErrGetTableQueryIsNotConstructed)
}

func (q GetTableQuery) TableID() kernel.UUID {
	return q.tableID
}

type ListTablesQuery struct {
	onlyAvailable bool

	guard guard.ConstructorGuard
}

// NewListTablesQuery lists every table, or only those guests can be seated
// at when onlyAvailable is set.
func NewListTablesQuery(onlyAvailable bool) ListTablesQuery {
	return ListTablesQuery{onlyAvailable: onlyAvailable, guard: guard.NewConstructorGuard()}
}

func (q ListTablesQuery) Validate() error {
	return q.guard.Validate(ErrListTablesQueryIsNotConstructed)
}

func (q ListTablesQuery) OnlyAvailable() bool {
	return q.onlyAvailable
}
