package order

import (
	"fmt"
	"strings"

	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/pkg/errs"
)

// Type is how the order reaches the guest.
type Type int

const (
	UnknownType Type = iota
	DineIn
	Takeaway
	Delivery
)

var typeNames = map[Type]string{
	DineIn:   "dine_in",
	Takeaway: "takeaway",
	Delivery: "delivery",
}

func ParseType(raw string) (Type, error) {
	needle := strings.ToLower(strings.TrimSpace(raw))
	for t, name := range typeNames {
		if name == needle {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("order type", fmt.Errorf("%q is not a known order type", raw))
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

func (t Type) Validate() error {
	if _, ok := typeNames[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order type", fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

// Destination says where the order goes. Table is only meaningful for
// dine-in and is required there.
type Destination struct {
	Type  Type
	Table string
}

func AtTable(table string) Destination {
	return Destination{Type: DineIn, Table: strings.TrimSpace(table)}
}

func ForTakeaway() Destination {
	return Destination{Type: Takeaway}
}

func ForDelivery() Destination {
	return Destination{Type: Delivery}
}

func (d Destination) Validate() error {
	if err := d.Type.Validate(); err != nil {
		return err
	}
	if d.Type == DineIn && strings.TrimSpace(d.Table) == "" {
		return ErrTableRequired
	}
	return nil
}

// Customer is optional guest metadata.
type Customer struct {
	Name         string
	Phone        string
	Instructions string
}

func (c Customer) normalized() Customer {
	return Customer{
		Name:         strings.TrimSpace(c.Name),
		Phone:        strings.TrimSpace(c.Phone),
		Instructions: strings.TrimSpace(c.Instructions),
	}
}

func (c Customer) IsEmpty() bool {
	n := c.normalized()
	return n.Name == "" && n.Phone == "" && n.Instructions == ""
}

// Totals are the amounts the order service computed. They may differ from
// the client-side sum because of tax and discount.
type Totals struct {
	Subtotal kernel.Money
	Tax      kernel.Money
	Discount kernel.Money
	Total    kernel.Money
}
