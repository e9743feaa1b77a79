package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/core/domain/model/menu"
	"havenpos/internal/pkg/errs"
	"havenpos/internal/pkg/guard"
)

// DefaultPrepMinutes is the preparation estimate of a fresh order.
const DefaultPrepMinutes = 30

// Order is the aggregate root for one guest order.
//
// On a terminal it starts as a draft: no identifier, mutated locally by the
// cart operations until it is submitted. The order service assigns the
// identifier and number (MarkPersisted); from then on status changes are
// applied only after the service acknowledged them.
//
// Order is not safe for concurrent use.
type Order struct {
	id          kernel.UUID
	number      string
	destination Destination
	customer    Customer
	status      Status
	lines       []LineItem
	total       kernel.Money
	confirmed   *Totals
	prepMinutes int

	createdAt   time.Time
	confirmedAt time.Time
	servedAt    time.Time
	completedAt time.Time
	cancelledAt time.Time

	changes []StatusChanged

	guard guard.ConstructorGuard
}

// NewDraft starts an empty, unsaved order on the terminal.
func NewDraft(destination Destination) *Order {
	o := &Order{
		status:      Pending,
		total:       kernel.Zero(),
		prepMinutes: DefaultPrepMinutes,
		guard:       guard.NewConstructorGuard(),
	}
	o.SetDestination(destination)
	return o
}

// NewOrder creates a persisted pending order on the order service side.
func NewOrder(id kernel.UUID, number string, destination Destination, customer Customer, at time.Time) (*Order, error) {
	o := NewDraft(destination)
	o.customer = customer.normalized()
	o.createdAt = at

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.destination.Validate(),
	); err != nil {
		return nil, err
	}
	return o, nil
}

// Validate returns ErrOrderIsNotConstructed for nil and zero-value orders.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares persisted orders by identifier. Drafts are never equal.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.IsPersisted() && o.id.IsEqual(other.id)
}

// ID is zero until the order service assigned one.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// IsPersisted reports whether the order service holds the order.
func (o *Order) IsPersisted() bool {
	return !o.id.IsZero()
}

// Number is the human-facing order number, e.g. ORD-20240501-04217.
func (o *Order) Number() string {
	return o.number
}

// Destination is the order type together with the table reference.
func (o *Order) Destination() Destination {
	return o.destination
}

func (o *Order) Customer() Customer {
	return o.customer
}

func (o *Order) Status() Status {
	return o.status
}

// PrepMinutes is the estimated preparation time in minutes.
func (o *Order) PrepMinutes() int {
	return o.prepMinutes
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ConfirmedAt is zero until the order was confirmed. The same holds for
// ServedAt, CompletedAt and CancelledAt.
func (o *Order) ConfirmedAt() time.Time {
	return o.confirmedAt
}

func (o *Order) ServedAt() time.Time {
	return o.servedAt
}

func (o *Order) CompletedAt() time.Time {
	return o.completedAt
}

func (o *Order) CancelledAt() time.Time {
	return o.cancelledAt
}

// Lines returns the line items in insertion order. The slice is a copy.
func (o *Order) Lines() []LineItem {
	return append([]LineItem(nil), o.lines...)
}

// Line returns the line for the menu item, if any.
func (o *Order) Line(menuItemID kernel.UUID) (LineItem, bool) {
	if i := o.indexOf(menuItemID); i >= 0 {
		return o.lines[i], true
	}
	return LineItem{}, false
}

func (o *Order) IsEmpty() bool {
	return len(o.lines) == 0
}

// Total is the client-side sum of unit price times quantity over all lines.
func (o *Order) Total() kernel.Money {
	return o.total
}

// ConfirmedTotals returns the amounts last reported by the order service.
func (o *Order) ConfirmedTotals() (Totals, bool) {
	if o.confirmed == nil {
		return Totals{}, false
	}
	return *o.confirmed, true
}

// ConfirmTotals records the amounts reported by the order service.
func (o *Order) ConfirmTotals(t Totals) {
	o.confirmed = &t
}

// AddItem adds qty of the menu item. An existing line for the same item is
// incremented in place. qty below 1 counts as 1. Availability is the
// caller's concern.
func (o *Order) AddItem(item menu.Item, qty int) LineItem {
	return o.AddLine(item.ID(), item.Name(), item.Price(), qty, "")
}

// AddLine is AddItem with an explicit unit price and note. A non-empty note
// replaces the note of an existing line.
func (o *Order) AddLine(menuItemID kernel.UUID, name string, unitPrice kernel.Money, qty int, note string) LineItem {
	if qty < 1 {
		qty = 1
	}
	note = strings.TrimSpace(note)
	defer o.recalculate()

	if i := o.indexOf(menuItemID); i >= 0 {
		o.lines[i].quantity += qty
		if note != "" {
			o.lines[i].note = note
		}
		return o.lines[i]
	}

	line := LineItem{
		id:         kernel.NewUUID(),
		menuItemID: menuItemID,
		name:       name,
		unitPrice:  unitPrice,
		quantity:   qty,
		note:       note,
	}
	o.lines = append(o.lines, line)
	return line
}

// RemoveItem drops the line for the menu item. Absent items are ignored.
// A line the order service already holds cannot be removed and yields
// ErrLineAlreadySubmitted.
func (o *Order) RemoveItem(menuItemID kernel.UUID) error {
	i := o.indexOf(menuItemID)
	if i < 0 {
		return nil
	}
	if o.lines[i].syncedQty > 0 {
		return o.submittedLineError(i)
	}
	o.lines = append(o.lines[:i], o.lines[i+1:]...)
	o.recalculate()
	return nil
}

// SetQuantity replaces the quantity in place; qty <= 0 removes the line.
// The quantity cannot drop below what the order service already holds;
// such a change yields ErrLineAlreadySubmitted and leaves the line as is.
func (o *Order) SetQuantity(menuItemID kernel.UUID, qty int) error {
	if qty <= 0 {
		return o.RemoveItem(menuItemID)
	}
	i := o.indexOf(menuItemID)
	if i < 0 {
		return nil
	}
	if qty < o.lines[i].syncedQty {
		return o.submittedLineError(i)
	}
	o.lines[i].quantity = qty
	o.recalculate()
	return nil
}

// SetNote attaches free-text kitchen instructions to a line.
func (o *Order) SetNote(menuItemID kernel.UUID, note string) error {
	i := o.indexOf(menuItemID)
	if i < 0 {
		return errs.NewObjectNotFoundErrorWithCause("menuItemId", menuItemID, ErrLineNotFound)
	}
	o.lines[i].note = strings.TrimSpace(note)
	return nil
}

// Clear empties the cart, the customer details and the table reference.
// Identifier, order type and status are kept.
func (o *Order) Clear() {
	o.lines = nil
	o.customer = Customer{}
	o.destination.Table = ""
	o.recalculate()
}

// SetDestination normalizes the table reference; only dine-in keeps one.
func (o *Order) SetDestination(d Destination) {
	d.Table = strings.TrimSpace(d.Table)
	if d.Type != DineIn {
		d.Table = ""
	}
	o.destination = d
}

// SetCustomer replaces the customer details.
func (o *Order) SetCustomer(c Customer) {
	o.customer = c.normalized()
}

// SetPrepMinutes raises the preparation estimate. Lower values are ignored.
func (o *Order) SetPrepMinutes(minutes int) {
	if minutes > o.prepMinutes {
		o.prepMinutes = minutes
	}
}

// ValidateForSubmit runs the local checks that must pass before the order is
// sent to the service.
func (o *Order) ValidateForSubmit() error {
	var emptyErr error
	if o.IsEmpty() {
		emptyErr = ErrEmptyOrder
	}
	return errors.Join(emptyErr, o.destination.Validate())
}

// MarkPersisted records the identity assigned by the order service. It can
// only happen once.
func (o *Order) MarkPersisted(id kernel.UUID, number string, status Status) error {
	if o.IsPersisted() {
		return ErrOrderAlreadyPersisted
	}
	if err := errors.Join(id.Validate(), validateNumber(number), status.Validate()); err != nil {
		return err
	}
	o.id = id
	o.number = strings.TrimSpace(number)
	o.status = status
	return nil
}

// MarkLineSynced records that the service holds the line's full quantity.
func (o *Order) MarkLineSynced(menuItemID kernel.UUID) {
	if i := o.indexOf(menuItemID); i >= 0 {
		o.lines[i].syncedQty = o.lines[i].quantity
	}
}

// UnsyncedLines returns the lines with quantity the service does not hold yet.
func (o *Order) UnsyncedLines() []LineItem {
	var out []LineItem
	for _, l := range o.lines {
		if !l.Synced() {
			out = append(out, l)
		}
	}
	return out
}

// CanTransitionTo checks the transition without applying it.
func (o *Order) CanTransitionTo(target Status) error {
	if !o.IsPersisted() {
		return ErrOrderNotPersisted
	}
	return o.status.CanTransitionTo(target)
}

// TransitionTo applies a validated status change, stamps its time and
// records a StatusChanged for PullStatusChanges.
func (o *Order) TransitionTo(target Status, at time.Time) error {
	if err := o.CanTransitionTo(target); err != nil {
		return err
	}
	from := o.status
	o.status = target
	o.changes = append(o.changes, NewStatusChanged(o, from, at))
	switch target {
	case Confirmed:
		o.confirmedAt = at
	case Served:
		o.servedAt = at
	case Completed:
		o.completedAt = at
	case Cancelled:
		o.cancelledAt = at
	}
	return nil
}

// PullStatusChanges returns the status changes recorded since the last call
// and forgets them. Storage adapters drain them when a transaction commits.
func (o *Order) PullStatusChanges() []StatusChanged {
	changes := o.changes
	o.changes = nil
	return changes
}

// IsActive reports whether the order is neither completed nor cancelled.
func (o *Order) IsActive() bool {
	return !o.status.IsTerminal()
}

// IsOverdue reports whether a confirmed or preparing order has been waiting
// longer than prep. The clock starts at confirmation, or at creation when
// the confirmation time is unknown.
func (o *Order) IsOverdue(now time.Time, prep time.Duration) bool {
	if o.status != Confirmed && o.status != Preparing {
		return false
	}
	start := o.confirmedAt
	if start.IsZero() {
		start = o.createdAt
	}
	if start.IsZero() {
		return false
	}
	return now.Sub(start) > prep
}

func (o *Order) indexOf(menuItemID kernel.UUID) int {
	for i := range o.lines {
		if o.lines[i].menuItemID.IsEqual(menuItemID) {
			return i
		}
	}
	return -1
}

func (o *Order) submittedLineError(i int) error {
	l := o.lines[i]
	return fmt.Errorf("%w: %s holds %d of %q", ErrLineAlreadySubmitted, o.number, l.syncedQty, l.name)
}

func (o *Order) recalculate() {
	total := kernel.Zero()
	for _, l := range o.lines {
		total = total.Add(l.Subtotal())
	}
	o.total = total
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if err := validateNumber(number); err != nil {
		return err
	}
	o.number = strings.TrimSpace(number)
	return nil
}

func validateNumber(number string) error {
	if strings.TrimSpace(number) == "" {
		return errs.NewValueIsRequiredErrorWithCause("number", ErrNumberIsRequired)
	}
	return nil
}

func validateLine(l LineSnapshot) error {
	var qtyErr error
	if l.Quantity < 1 {
		qtyErr = errs.NewValueIsOutOfRangeErrorWithCause("quantity", l.Quantity, 1, "unbounded",
			fmt.Errorf("line %s", l.MenuItemID))
	}
	return errors.Join(l.MenuItemID.Validate(), qtyErr)
}
