package order

import (
	"errors"
	"fmt"
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewDraft, NewOrder or RestoreOrder")
	ErrOrderNotPersisted     = errors.New("order not persisted")
	ErrOrderAlreadyPersisted = errors.New("order already persisted")
	ErrEmptyOrder            = errors.New("order has no line items")
	ErrTableRequired         = errors.New("dine-in order requires a table")
	ErrNumberIsRequired      = errors.New("order number is required")
	ErrIllegalTransition     = errors.New("illegal status transition")
	ErrLineNotFound          = errors.New("line item not found")
	ErrLineAlreadySubmitted  = errors.New("line already submitted")
	ErrDuplicateLine         = errors.New("menu item appears on more than one line")
)

// IllegalTransitionError names the rejected pair.
type IllegalTransitionError struct {
	From Status
	To   Status
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrIllegalTransition, e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}
