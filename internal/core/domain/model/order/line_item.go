package order

import (
	"havenpos/internal/core/domain/model/kernel"
)

// LineItem is one menu item and its quantity within an order. Name and unit
// price are copied from the menu when the line is created.
type LineItem struct {
	id         kernel.UUID
	menuItemID kernel.UUID
	name       string
	unitPrice  kernel.Money
	quantity   int
	note       string
	// syncedQty is the part of quantity the order service already holds.
	syncedQty int
}

func (l LineItem) ID() kernel.UUID {
	return l.id
}

func (l LineItem) MenuItemID() kernel.UUID {
	return l.menuItemID
}

func (l LineItem) Name() string {
	return l.name
}

func (l LineItem) UnitPrice() kernel.Money {
	return l.unitPrice
}

func (l LineItem) Quantity() int {
	return l.quantity
}

func (l LineItem) Note() string {
	return l.note
}

func (l LineItem) Subtotal() kernel.Money {
	return l.unitPrice.Times(l.quantity)
}

// Synced reports whether the order service holds the full quantity.
func (l LineItem) Synced() bool {
	return l.syncedQty >= l.quantity
}

// PendingQuantity is the quantity not yet sent to the order service.
func (l LineItem) PendingQuantity() int {
	if l.syncedQty >= l.quantity {
		return 0
	}
	return l.quantity - l.syncedQty
}
