package services

import (
	"fmt"

	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/core/domain/model/order"
	"havenpos/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var maxTaxRate = decimal.NewFromInt(1)

type Pricer struct {
	taxRate decimal.Decimal
}

// NewPricer accepts a tax rate in [0, 1]; 0.16 is sixteen percent.
func NewPricer(taxRate decimal.Decimal) (Pricer, error) {
	if taxRate.IsNegative() || taxRate.GreaterThan(maxTaxRate) {
		return Pricer{}, errs.NewValueIsOutOfRangeError("tax rate", taxRate.String(), 0, 1)
	}
	return Pricer{taxRate: taxRate}, nil
}

func (p Pricer) TaxRate() decimal.Decimal {
	return p.taxRate
}

// Price computes subtotal, tax, discount and total. The discount is capped
// at the subtotal, so the total is never negative.
func (p Pricer) Price(o *order.Order, discount kernel.Money) (order.Totals, error) {
	if err := o.Validate(); err != nil {
		return order.Totals{}, err
	}

	subtotal := kernel.Zero()
	for _, l := range o.Lines() {
		subtotal = subtotal.Add(l.Subtotal())
	}
	tax := subtotal.Percent(p.taxRate)
	discount = discount.Min(subtotal)

	total, err := subtotal.Add(tax).Sub(discount)
	if err != nil {
		return order.Totals{}, fmt.Errorf("price order %s: %w", o.Number(), err)
	}

	return order.Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Discount: discount,
		Total:    total,
	}, nil
}

// Reprice recomputes the order's confirmed totals, keeping the discount it
// already carries.
func (p Pricer) Reprice(o *order.Order) error {
	discount := kernel.Zero()
	if current, ok := o.ConfirmedTotals(); ok {
		discount = current.Discount
	}
	totals, err := p.Price(o, discount)
	if err != nil {
		return err
	}
	o.ConfirmTotals(totals)
	return nil
}
