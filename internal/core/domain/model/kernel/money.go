package kernel

import (
	"errors"
	"fmt"

	"havenpos/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrNegativeMoney = errors.New("money amount must not be negative")

// Money is a non-negative decimal amount in the venue currency. All arithmetic
// is exact; only Percent rounds (half-up to cents).
type Money struct {
	amount decimal.Decimal
}

func Zero() Money {
	return Money{amount: decimal.Zero}
}

func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", ErrNegativeMoney)
	}
	return Money{amount: amount}, nil
}

// MoneyFromString parses amounts such as "12.50" or "3".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

// MustMoney panics on malformed input. Fixtures only.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) Sub(other Money) (Money, error) {
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, fmt.Errorf("%s - %s: %w", m, other, ErrNegativeMoney)
	}
	return Money{amount: result}, nil
}

// Times multiplies by a quantity. Negative quantities yield zero.
func (m Money) Times(qty int) Money {
	if qty <= 0 {
		return Zero()
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(qty)))}
}

// Percent returns m * rate rounded half-up to two places. A rate of 0.08
// means eight percent.
func (m Money) Percent(rate decimal.Decimal) Money {
	if rate.IsNegative() {
		return Zero()
	}
	return Money{amount: m.amount.Mul(rate).Round(2)}
}

// Min returns the smaller of the two amounts.
func (m Money) Min(other Money) Money {
	if other.amount.LessThan(m.amount) {
		return other
	}
	return m
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// String renders two fixed decimals, e.g. "12.50".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
