package table

import (
	"errors"
	"fmt"
	"strings"

	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/pkg/errs"
	"havenpos/internal/pkg/guard"
)

// DefaultSection is used when a table is created without a section.
const DefaultSection = "Main"

const maxCapacity = 100

var (
	ErrNumberIsRequired      = errs.NewValueIsRequiredError("number")
	ErrTableIsInactive       = errors.New("table is not in service")
	ErrNumberIsTaken         = fmt.Errorf("%w: table number is taken", errs.ErrValueIsInvalid)
	ErrTableIsNotConstructed = errors.New("Table must be created via NewTable or RestoreTable")
)

// Table is a seat reference in the restaurant floor plan.
type Table struct {
	id       kernel.UUID
	number   string
	capacity int
	section  string
	active   bool
	occupied bool
	guard    guard.ConstructorGuard
}

// NewTable creates a free table in service.
func NewTable(id kernel.UUID, number string, capacity int, section string) (Table, error) {
	return RestoreTable(id, number, capacity, section, true, false)
}

// RestoreTable rebuilds a table read from storage.
func RestoreTable(
	id kernel.UUID,
	number string,
	capacity int,
	section string,
	active, occupied bool,
) (Table, error) {
	t := Table{
		section:  strings.TrimSpace(section),
		active:   active,
		occupied: occupied,
		guard:    guard.NewConstructorGuard(),
	}
	if t.section == "" {
		t.section = DefaultSection
	}
	if err := errors.Join(
		t.setID(id),
		t.setNumber(number),
		t.setCapacity(capacity),
	); err != nil {
		return Table{}, err
	}
	return t, nil
}

func (t Table) Validate() error {
	return t.guard.Validate(ErrTableIsNotConstructed)
}

func (t Table) ID() kernel.UUID {
	return t.id
}

// Number is the reference printed on the table and used by orders.
func (t Table) Number() string {
	return t.number
}

func (t Table) Capacity() int {
	return t.capacity
}

func (t Table) Section() string {
	return t.section
}

func (t Table) Active() bool {
	return t.active
}

func (t Table) Occupied() bool {
	return t.occupied
}

// Available reports whether guests can be seated: in service and free.
func (t Table) Available() bool {
	return t.active && !t.occupied
}

// Occupy returns an occupied copy. Occupying an occupied table is allowed;
// a second order at the same table shares it.
func (t Table) Occupy() (Table, error) {
	if !t.active {
		return t, fmt.Errorf("%w: table %s", ErrTableIsInactive, t.number)
	}
	t.occupied = true
	return t, nil
}

// Free returns a free copy.
func (t Table) Free() Table {
	t.occupied = false
	return t
}

// WithActive returns a copy taken into or out of service.
func (t Table) WithActive(active bool) Table {
	t.active = active
	return t
}

// FilterAvailable keeps the available tables, preserving order.
func FilterAvailable(tables []Table) []Table {
	out := make([]Table, 0, len(tables))
	for _, t := range tables {
		if t.Available() {
			out = append(out, t)
		}
	}
	return out
}

func (t *Table) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Table) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return ErrNumberIsRequired
	}
	t.number = number
	return nil
}

func (t *Table) setCapacity(capacity int) error {
	if capacity < 1 || capacity > maxCapacity {
		return errs.NewValueIsOutOfRangeError("capacity", capacity, 1, maxCapacity)
	}
	t.capacity = capacity
	return nil
}
