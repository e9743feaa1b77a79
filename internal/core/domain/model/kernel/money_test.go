package kernel_test

import (
	"testing"

	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyFromString(t *testing.T) {
	t.Run("parses decimal prices", func(t *testing.T) {
		m, err := kernel.MoneyFromString("12.5")

		require.NoError(t, err)
		assert.Equal(t, "12.50", m.String())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := kernel.MoneyFromString("twelve")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := kernel.MoneyFromString("-0.01")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_RepeatedAdditionDoesNotDrift(t *testing.T) {
	// 0.10 has no exact binary representation; ten of them must be exactly 1.00.
	dime := kernel.MustMoney("0.10")

	total := kernel.Zero()
	for range 10 {
		total = total.Add(dime)
	}

	assert.True(t, total.IsEqual(kernel.MustMoney("1")))
	assert.Equal(t, "1.00", total.String())
	assert.True(t, dime.Times(10).IsEqual(total))
}

func TestMoney_Sub(t *testing.T) {
	left, err := kernel.MustMoney("20.00").Sub(kernel.MustMoney("7.25"))
	require.NoError(t, err)
	assert.Equal(t, "12.75", left.String())

	_, err = kernel.MustMoney("1.00").Sub(kernel.MustMoney("1.01"))
	assert.ErrorIs(t, err, kernel.ErrNegativeMoney)
}

func TestMoney_Times(t *testing.T) {
	price := kernel.MustMoney("4.35")

	assert.Equal(t, "13.05", price.Times(3).String())
	assert.True(t, price.Times(0).IsZero())
	assert.True(t, price.Times(-2).IsZero())
}

func TestMoney_Percent(t *testing.T) {
	testCases := []struct {
		amount string
		rate   string
		want   string
	}{
		{"100.00", "0.08", "8.00"},
		{"10.05", "0.1", "1.01"}, // 1.005 rounds half-up
		{"10.04", "0.1", "1.00"},
		{"0.00", "0.08", "0.00"},
		{"33.33", "0", "0.00"},
	}
	for _, tc := range testCases {
		t.Run(tc.amount+"x"+tc.rate, func(t *testing.T) {
			got := kernel.MustMoney(tc.amount).Percent(decimal.RequireFromString(tc.rate))

			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestMoney_Min(t *testing.T) {
	small := kernel.MustMoney("5")
	big := kernel.MustMoney("50")

	assert.True(t, small.Min(big).IsEqual(small))
	assert.True(t, big.Min(small).IsEqual(small))
	assert.True(t, big.GreaterThan(small))
}

func TestMoney_ZeroValueIsZero(t *testing.T) {
	var m kernel.Money

	assert.True(t, m.IsZero())
	assert.Equal(t, "0.00", m.String())
	assert.True(t, m.IsEqual(kernel.Zero()))
}
