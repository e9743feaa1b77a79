package commands

import (
	"errors"

	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/pkg/errs"
	"havenpos/internal/pkg/guard"
)

const maxLineQuantity = 999

var ErrAddOrderItemCommandIsNotConstructed = errors.New(
	"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
)

type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	menuItemID   kernel.UUID
	quantity     int
	unitPrice    *kernel.Money
	instructions string

	guard guard.ConstructorGuard
}

// NewAddOrderItemCommand builds the command. A nil unitPrice means the
// current menu price.
func NewAddOrderItemCommand(
	orderID kernel.UUID,
	menuItemID kernel.UUID,
	quantity int,
	unitPrice *kernel.Money,
	instructions string,
) (AddOrderItemCommand, error) {
	command := AddOrderItemCommand{
		unitPrice:    unitPrice,
		instructions: instructions,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setMenuItemID(menuItemID),
		command.setQuantity(quantity),
	); err != nil {
		return AddOrderItemCommand{}, err
	}

	return command, nil
}

func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

func (c AddOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddOrderItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

func (c AddOrderItemCommand) Quantity() int {
	return c.quantity
}

func (c AddOrderItemCommand) UnitPrice() (kernel.Money, bool) {
	if c.unitPrice == nil {
		return kernel.Money{}, false
	}
	return *c.unitPrice, true
}

func (c AddOrderItemCommand) Instructions() string {
	return c.instructions
}

func (c *AddOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *AddOrderItemCommand) setQuantity(quantity int) error {
	if quantity < 1 || quantity > maxLineQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxLineQuantity)
	}

	c.quantity = quantity
	return nil
}
