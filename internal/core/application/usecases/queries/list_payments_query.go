package queries

import (
	"errors"

	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/core/domain/model/payment"
	"havenpos/internal/pkg/guard"
)

var ErrListPaymentsQueryIsNotConstructed = errors.New(
	"ListPaymentsQuery must be created via NewListPaymentsQuery constructor",
)

type ListPaymentsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListPaymentsQuery(orderID kernel.UUID) (ListPaymentsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return ListPaymentsQuery{}, err
	}
	return ListPaymentsQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrListPaymentsQueryIsNotConstructed)
}

func (q ListPaymentsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// PaymentsResponse is what an order has been paid so far.
type PaymentsResponse struct {
	Payments  []payment.Payment
	TotalPaid kernel.Money
	// Balance is the order total not yet covered, never below zero.
	Balance kernel.Money
}
