package queries_test

import (
	"testing"

	"havenpos/internal/core/application/usecases/queries"
	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/core/domain/model/menu"
	"havenpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMenuItemQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	item, err := menu.NewItem(kernel.NewUUID(), "Chapman", "drinks", kernel.MustMoney("3.50"), 5)
	require.NoError(t, err)
	repo := new(MockMenuRepository)
	repo.On("Get", ctx, item.ID()).Return(item, nil).Once()

	q, err := queries.NewGetMenuItemQuery(item.ID())
	require.NoError(t, err)
	got, err := queries.NewGetMenuItemQueryHandler(menuReaderFactory{repo: repo}).Handle(ctx, q)

	require.NoError(t, err)
	assert.Equal(t, "Chapman", got.Name())
}

func TestGetMenuItemQueryHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	repo := new(MockMenuRepository)
	repo.On("Get", ctx, id).Return(menu.Item{}, errs.NewObjectNotFoundError("menuItemId", id)).Once()

	q, _ := queries.NewGetMenuItemQuery(id)
	_, err := queries.NewGetMenuItemQueryHandler(menuReaderFactory{repo: repo}).Handle(ctx, q)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestListMenuItemsQueryHandler_Handle(t *testing.T) {
	tests := map[string]bool{
		"whole menu":     false,
		"available only": true,
	}

	for name, onlyAvailable := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := t.Context()
			repo := new(MockMenuRepository)
			repo.On("List", ctx, onlyAvailable).Return(nil, nil).Once()

			got, err := queries.NewListMenuItemsQueryHandler(menuReaderFactory{repo: repo}).
				Handle(ctx, queries.NewListMenuItemsQuery(onlyAvailable))

			require.NoError(t, err)
			assert.NotNil(t, got)
			repo.AssertExpectations(t)
		})
	}
}

func TestListMenuItemsQueryHandler_Handle_RequiresConstructedQuery(t *testing.T) {
	_, err := queries.NewListMenuItemsQueryHandler(menuReaderFactory{}).Handle(t.Context(), queries.ListMenuItemsQuery{})
	assert.ErrorIs(t, err, queries.ErrListMenuItemsQueryIsNotConstructed)
}
