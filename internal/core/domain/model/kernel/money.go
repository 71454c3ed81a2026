package kernel

import (
	"fmt"

	"partsflow/internal/pkg/errs"
)

// ErrMoneyIsNegative is returned when constructing a Money value from a
// negative cent amount. All monetary amounts in the fulfillment domain
// (customer charge, cost price, shipping cost, core price) are non-negative.
var ErrMoneyIsNegative = errs.NewValueIsInvalidError("money amount must not be negative")

// Money is a value object representing a non-negative monetary amount in
// cents. Storing cents as an integer avoids floating-point drift in the
// derived totals the engine recomputes on every quote edit.
//
// The zero value of Money is a valid zero amount; unlike UUID, Money does not
// carry a constructor guard because zero is a legitimate amount (an order may
// be created before the customer charge is known).
type Money struct {
	cents int64
}

// NewMoneyFromCents creates a Money value from a cent amount.
// Returns ErrMoneyIsNegative for negative input.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrMoneyIsNegative
	}
	return Money{cents: cents}, nil
}

// MustMoneyFromCents creates a Money value and panics on negative input.
// Intended for constants and tests.
func MustMoneyFromCents(cents int64) Money {
	m, err := NewMoneyFromCents(cents)
	if err != nil {
		panic(err)
	}
	return m
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns the sum of two amounts. The sum of non-negative amounts is
// always valid, so no error is returned.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount as a decimal dollar string, e.g. "120.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
