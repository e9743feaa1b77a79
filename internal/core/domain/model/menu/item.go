package menu

import (
	"errors"
	"strings"

	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/pkg/errs"
	"havenpos/internal/pkg/guard"
)

// DefaultPrepMinutes is used when an item is created without an estimate.
const DefaultPrepMinutes = 15

var (
	ErrNameIsRequired       = errs.NewValueIsRequiredError("name")
	ErrItemIsNotConstructed = errors.New("menu Item must be created via NewItem or RestoreItem")
)

const maxPrepMinutes = 24 * 60

// Item is a sellable dish or drink.
type Item struct {
	id          kernel.UUID
	name        string
	category    string
	price       kernel.Money
	available   bool
	prepMinutes int
	guard       guard.ConstructorGuard
}

// NewItem creates an available item. prepMinutes <= 0 falls back to
// DefaultPrepMinutes.
func NewItem(id kernel.UUID, name, category string, price kernel.Money, prepMinutes int) (Item, error) {
	return RestoreItem(id, name, category, price, true, prepMinutes)
}

// RestoreItem rebuilds an item read from storage or the wire.
func RestoreItem(
	id kernel.UUID,
	name, category string,
	price kernel.Money,
	available bool,
	prepMinutes int,
) (Item, error) {
	item := Item{
		category:  strings.TrimSpace(category),
		price:     price,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}
	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrepMinutes(prepMinutes),
	); err != nil {
		return Item{}, err
	}
	return item, nil
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) ID() kernel.UUID {
	return i.id
}

func (i Item) Name() string {
	return i.name
}

func (i Item) Category() string {
	return i.category
}

func (i Item) Price() kernel.Money {
	return i.price
}

func (i Item) Available() bool {
	return i.available
}

func (i Item) PrepMinutes() int {
	return i.prepMinutes
}

// WithAvailability returns a copy with the availability flag replaced.
func (i Item) WithAvailability(available bool) Item {
	i.available = available
	return i
}

// FilterAvailable keeps the available items, preserving order.
func FilterAvailable(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if item.available {
			out = append(out, item)
		}
	}
	return out
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	i.name = name
	return nil
}

func (i *Item) setPrepMinutes(minutes int) error {
	if minutes <= 0 {
		minutes = DefaultPrepMinutes
	}
	if minutes > maxPrepMinutes {
		return errs.NewValueIsOutOfRangeError("preparation time", minutes, 1, maxPrepMinutes)
	}
	i.prepMinutes = minutes
	return nil
}
