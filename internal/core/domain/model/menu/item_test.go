package menu_test

import (
	"testing"

	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/core/domain/model/menu"
	"havenpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	id := kernel.NewUUID()
	price := kernel.MustMoney("8.00")

	t.Run("creates an available item", func(t *testing.T) {
		item, err := menu.NewItem(id, "  Club Sandwich ", "mains", price, 12)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.ID().IsEqual(id))
		assert.Equal(t, "Club Sandwich", item.Name())
		assert.Equal(t, "mains", item.Category())
		assert.True(t, item.Price().IsEqual(price))
		assert.True(t, item.Available())
		assert.Equal(t, 12, item.PrepMinutes())
	})

	t.Run("defaults the preparation time", func(t *testing.T) {
		item, err := menu.NewItem(id, "Espresso", "drinks", price, 0)

		require.NoError(t, err)
		assert.Equal(t, menu.DefaultPrepMinutes, item.PrepMinutes())
	})

	t.Run("joins every validation error", func(t *testing.T) {
		_, err := menu.NewItem(kernel.UUID{}, " ", "mains", price, 100000)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, menu.ErrNameIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestItem_ZeroValueIsNotConstructed(t *testing.T) {
	var item menu.Item

	assert.ErrorIs(t, item.Validate(), menu.ErrItemIsNotConstructed)
}

func TestItem_WithAvailability(t *testing.T) {
	item, err := menu.NewItem(kernel.NewUUID(), "Soup of the day", "starters", kernel.MustMoney("6.50"), 10)
	require.NoError(t, err)

	soldOut := item.WithAvailability(false)

	assert.False(t, soldOut.Available())
	assert.True(t, item.Available(), "original is unchanged")
	assert.True(t, soldOut.ID().IsEqual(item.ID()))
}

func TestFilterAvailable(t *testing.T) {
	tea, _ := menu.NewItem(kernel.NewUUID(), "Tea", "drinks", kernel.MustMoney("2.00"), 3)
	cake, _ := menu.NewItem(kernel.NewUUID(), "Cake", "desserts", kernel.MustMoney("4.00"), 5)
	juice, _ := menu.NewItem(kernel.NewUUID(), "Juice", "drinks", kernel.MustMoney("3.00"), 2)

	got := menu.FilterAvailable([]menu.Item{tea, cake.WithAvailability(false), juice})

	require.Len(t, got, 2)
	assert.Equal(t, "Tea", got[0].Name())
	assert.Equal(t, "Juice", got[1].Name())
}
