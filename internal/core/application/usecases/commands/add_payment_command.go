package commands

import (
	"errors"
	"strings"

	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/core/domain/model/payment"
	"havenpos/internal/pkg/guard"
)

var ErrAddPaymentCommandIsNotConstructed = errors.New(
	"AddPaymentCommand must be created via NewAddPaymentCommand constructor",
)

// AddPaymentCommand records money taken for an order. Amount and card
// details are checked when the handler builds the payment.
type AddPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID   kernel.UUID
	orderID     kernel.UUID
	amount      kernel.Money
	method      payment.Method
	details     payment.Details
	processedBy string

	guard guard.ConstructorGuard
}

func NewAddPaymentCommand(
	paymentID, orderID kernel.UUID,
	amount kernel.Money,
	method payment.Method,
	details payment.Details,
	processedBy string,
) (AddPaymentCommand, error) {
	command := AddPaymentCommand{
		amount:      amount,
		details:     details,
		processedBy: strings.TrimSpace(processedBy),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPaymentID(paymentID),
		command.setOrderID(orderID),
		command.setMethod(method),
	); err != nil {
		return AddPaymentCommand{}, err
	}

	return command, nil
}

func (c AddPaymentCommand) Validate() error {
	return c.guard.Validate(ErrAddPaymentCommandIsNotConstructed)
}

func (c AddPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

func (c AddPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddPaymentCommand) Amount() kernel.Money {
	return c.amount
}

func (c AddPaymentCommand) Method() payment.Method {
	return c.method
}

func (c AddPaymentCommand) Details() payment.Details {
	return c.details
}

func (c AddPaymentCommand) ProcessedBy() string {
	return c.processedBy
}

func (c *AddPaymentCommand) setPaymentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.paymentID = id
	return nil
}

func (c *AddPaymentCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *AddPaymentCommand) setMethod(method payment.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}
