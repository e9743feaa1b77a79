package order

import (
	"errors"
	"fmt"
	"time"

	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/pkg/errs"
	"havenpos/internal/pkg/guard"
)

// Snapshot is the plain form of an Order exchanged with adapters.
type Snapshot struct {
	ID          kernel.UUID
	Number      string
	Destination Destination
	Customer    Customer
	Status      Status
	Lines       []LineSnapshot
	Totals      *Totals
	PrepMinutes int

	CreatedAt   time.Time
	ConfirmedAt time.Time
	ServedAt    time.Time
	CompletedAt time.Time
	CancelledAt time.Time
}

type LineSnapshot struct {
	ID         kernel.UUID
	MenuItemID kernel.UUID
	Name       string
	UnitPrice  kernel.Money
	Quantity   int
	Note       string
}

// RestoreOrder rebuilds a persisted order. Restored lines count as synced.
// Each menu item may appear on at most one line.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		id:          s.ID,
		number:      s.Number,
		destination: s.Destination,
		customer:    s.Customer.normalized(),
		status:      s.Status,
		prepMinutes: s.PrepMinutes,
		createdAt:   s.CreatedAt,
		confirmedAt: s.ConfirmedAt,
		servedAt:    s.ServedAt,
		completedAt: s.CompletedAt,
		cancelledAt: s.CancelledAt,
		guard:       guard.NewConstructorGuard(),
	}
	if o.prepMinutes <= 0 {
		o.prepMinutes = DefaultPrepMinutes
	}
	if s.Totals != nil {
		o.ConfirmTotals(*s.Totals)
	}

	errList := []error{
		s.ID.Validate(),
		validateNumber(s.Number),
		s.Destination.Validate(),
		s.Status.Validate(),
	}
	o.lines = make([]LineItem, 0, len(s.Lines))
	seen := make(map[kernel.UUID]struct{}, len(s.Lines))
	for _, l := range s.Lines {
		if err := validateLine(l); err != nil {
			errList = append(errList, err)
			continue
		}
		if _, dup := seen[l.MenuItemID]; dup {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("lines",
				fmt.Errorf("%w: %s", ErrDuplicateLine, l.MenuItemID)))
			continue
		}
		seen[l.MenuItemID] = struct{}{}
		id := l.ID
		if id.IsZero() {
			id = kernel.NewUUID()
		}
		o.lines = append(o.lines, LineItem{
			id:         id,
			menuItemID: l.MenuItemID,
			name:       l.Name,
			unitPrice:  l.UnitPrice,
			quantity:   l.Quantity,
			note:       l.Note,
			syncedQty:  l.Quantity,
		})
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	o.recalculate()
	return o, nil
}

// Snapshot copies the order into its plain form.
func (o *Order) Snapshot() Snapshot {
	s := Snapshot{
		ID:          o.id,
		Number:      o.number,
		Destination: o.destination,
		Customer:    o.customer,
		Status:      o.status,
		PrepMinutes: o.prepMinutes,
		CreatedAt:   o.createdAt,
		ConfirmedAt: o.confirmedAt,
		ServedAt:    o.servedAt,
		CompletedAt: o.completedAt,
		CancelledAt: o.cancelledAt,
		Lines:       make([]LineSnapshot, 0, len(o.lines)),
	}
	if o.confirmed != nil {
		t := *o.confirmed
		s.Totals = &t
	}
	for _, l := range o.lines {
		s.Lines = append(s.Lines, LineSnapshot{
			ID:         l.id,
			MenuItemID: l.menuItemID,
			Name:       l.name,
			UnitPrice:  l.unitPrice,
			Quantity:   l.quantity,
			Note:       l.note,
		})
	}
	return s
}
