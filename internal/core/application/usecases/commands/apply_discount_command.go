package commands

import (
	"errors"

	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/pkg/guard"
)

var ErrApplyDiscountCommandIsNotConstructed = errors.New(
	"ApplyDiscountCommand must be created via NewApplyDiscountCommand constructor",
)

type ApplyDiscountCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	amount  kernel.Money

	guard guard.ConstructorGuard
}

func NewApplyDiscountCommand(orderID kernel.UUID, amount kernel.Money) (ApplyDiscountCommand, error) {
	command := ApplyDiscountCommand{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return ApplyDiscountCommand{}, err
	}
	command.orderID = orderID

	return command, nil
}

func (c ApplyDiscountCommand) Validate() error {
	return c.guard.Validate(ErrApplyDiscountCommandIsNotConstructed)
}

func (c ApplyDiscountCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ApplyDiscountCommand) Amount() kernel.Money {
	return c.amount
}
