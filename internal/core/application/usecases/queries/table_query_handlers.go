package queries

import (
	"context"

	"havenpos/internal/core/domain/model/table"
)

type GetTableQueryHandler struct {
	readerFactory TableReaderFactory
}

func NewGetTableQueryHandler(readerFactory TableReaderFactory) GetTableQueryHandler {
	return GetTableQueryHandler{readerFactory: readerFactory}
}

func (h GetTableQueryHandler) Handle(ctx context.Context, query GetTableQuery) (table.Table, error) {
	if err := query.Validate(); err != nil {
		return table.Table{}, err
	}

	return h.readerFactory.Create().TableRepository().Get(ctx, query.TableID())
}

type ListTablesQueryHandler struct {
	readerFactory TableReaderFactory
}

func NewListTablesQueryHandler(readerFactory TableReaderFactory) ListTablesQueryHandler {
	return ListTablesQueryHandler{readerFactory: readerFactory}
}

// Handle returns tables ordered by number.
func (h ListTablesQueryHandler) Handle(ctx context.Context, query ListTablesQuery) ([]table.Table, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tables, err := h.readerFactory.Create().TableRepository().List(ctx, query.OnlyAvailable())
	if err != nil {
		return nil, err
	}
	if tables == nil {
		tables = make([]table.Table, 0)
	}
	return tables, nil
}
