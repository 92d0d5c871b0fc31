package kernel

import (
	"errors"
	"fmt"

	"wreaths/internal/pkg/errs"
	"wreaths/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places every amount is kept at.
const MoneyScale = 2

var ErrMoneyIsNotConstructed = errors.New("Money must be created via NewMoney, MoneyFromString or MoneyFromInt")

// Money is a non-negative amount in the store currency.
//
// Amounts are rounded half away from zero to MoneyScale places on construction. No currency
// is attached: the store trades in a single currency and performs no conversion.
type Money struct {
	guard.ConstructorGuard
	amount decimal.Decimal
}

// ZeroMoney is a constructed zero amount, e.g. the delivery cost of a collection order.
func ZeroMoney() Money {
	return Money{ConstructorGuard: guard.NewConstructorGuard(), amount: decimal.Zero}
}

func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount.String(), "0", "unbounded")
	}
	return Money{ConstructorGuard: guard.NewConstructorGuard(), amount: amount.Round(MoneyScale)}, nil
}

// MoneyFromInt builds a whole amount, as used by the bespoke size table.
func MoneyFromInt(units int64) (Money, error) {
	return NewMoney(decimal.NewFromInt(units))
}

func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%q is not a decimal: %w", s, err))
	}
	return NewMoney(amount)
}

// MustMoney panics on invalid input. Intended for package-level tables and tests.
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

// String renders the amount with exactly two decimals, e.g. "45.00".
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}

func (m Money) Add(other Money) Money {
	return Money{ConstructorGuard: guard.NewConstructorGuard(), amount: m.amount.Add(other.amount)}
}

// Times multiplies by a line quantity. Negative quantities yield zero.
func (m Money) Times(quantity int) Money {
	if quantity < 0 {
		quantity = 0
	}
	return Money{
		ConstructorGuard: guard.NewConstructorGuard(),
		amount:           m.amount.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) Validate() error {
	return m.ConstructorGuard.Validate(ErrMoneyIsNotConstructed)
}
