package pos_test

import (
	"testing"
	"time"

	"havenpos/internal/core/domain/model/access"
	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/core/domain/model/menu"
	"havenpos/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var (
	fixedNow = time.Date(2024, 6, 15, 19, 30, 0, 0, time.UTC)

	waiter    = access.Session{UserID: "u-waiter", Name: "Ada", Role: access.Waiter}
	frontDesk = access.Session{UserID: "u-desk", Name: "Bola", Role: access.Receptionist}
)

func fixedClock() time.Time { return fixedNow }

func mustItem(t *testing.T, name, price string) menu.Item {
	t.Helper()
	item, err := menu.NewItem(kernel.NewUUID(), name, "mains", kernel.MustMoney(price), 0)
	require.NoError(t, err)
	return item
}

func persistedOrder(t *testing.T, status ...order.Status) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), order.GenerateNumber(fixedNow), order.AtTable("12"), order.Customer{}, fixedNow)
	require.NoError(t, err)
	for _, s := range status {
		require.NoError(t, o.TransitionTo(s, fixedNow))
	}
	return o
}
