package domain

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Money is a currency amount held as a whole number of cents. The zero
// value is 0.00.
type Money int64

const (
	// Zero is the amount 0.00.
	Zero Money = 0

	// MaxAmount is the largest magnitude ParseMoney accepts,
	// 10,000,000,000,000.00.
	MaxAmount Money = 1_000_000_000_000_000

	maxMoney Money = math.MaxInt64
	minMoney Money = math.MinInt64
)

// ErrMoneyOutOfRange is returned by ParseMoney for amounts beyond MaxAmount.
var ErrMoneyOutOfRange = errors.New("monetary value out of range")

var (
	hundred  = decimal.NewFromInt(100)
	maxCents = decimal.NewFromInt(int64(maxMoney))
	minCents = decimal.NewFromInt(int64(minMoney))
)

// ParseMoney parses a decimal string such as "80.00" or "12.345" and
// rounds it to the nearest cent. Amounts whose magnitude exceeds
// MaxAmount return an error wrapping ErrMoneyOutOfRange.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid monetary value %q", s)
	}
	cents := d.Mul(hundred).Round(0)
	if cents.Abs().GreaterThan(decimal.NewFromInt(int64(MaxAmount))) {
		return 0, fmt.Errorf("monetary value %q: %w", s, ErrMoneyOutOfRange)
	}
	return Money(cents.IntPart()), nil
}

// MustParseMoney is like ParseMoney but panics on malformed input. It is
// intended for constants and tests.
func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Cents returns an amount of c cents.
func Cents(c int64) Money {
	return Money(c)
}

// fromDecimal rounds d to the nearest cent, saturating at the int64 limits.
func fromDecimal(d decimal.Decimal) Money {
	cents := d.Mul(hundred).Round(0)
	switch {
	case cents.GreaterThan(maxCents):
		return maxMoney
	case cents.LessThan(minCents):
		return minMoney
	}
	return Money(cents.IntPart())
}

func (m Money) toDecimal() decimal.Decimal {
	return decimal.New(int64(m), -2)
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return int64(m)
}

// Add returns m + o, saturating at the int64 limits.
func (m Money) Add(o Money) Money {
	switch {
	case o > 0 && m > maxMoney-o:
		return maxMoney
	case o < 0 && m < minMoney-o:
		return minMoney
	}
	return m + o
}

// Sub returns m - o, saturating at the int64 limits.
func (m Money) Sub(o Money) Money {
	switch {
	case o < 0 && m > maxMoney+o:
		return maxMoney
	case o > 0 && m < minMoney+o:
		return minMoney
	}
	return m - o
}

// AddPercent returns m increased by percent, rounded to the nearest cent
// and saturating at the int64 limits. AddPercent(15) on 100.00 yields 115.00.
func (m Money) AddPercent(percent float64) Money {
	factor := decimal.NewFromInt(1).Add(decimal.NewFromFloat(percent).Div(hundred))
	return fromDecimal(m.toDecimal().Mul(factor))
}

// Cmp compares m and o by cent value and returns -1, 0 or +1.
func (m Money) Cmp(o Money) int {
	switch {
	case m < o:
		return -1
	case m > o:
		return 1
	}
	return 0
}

// LessEqual reports whether m <= o.
func (m Money) LessEqual(o Money) bool {
	return m.Cmp(o) <= 0
}

// IsZero reports whether m is 0.00.
func (m Money) IsZero() bool {
	return m == 0
}

// String formats m with exactly two decimal places.
func (m Money) String() string {
	return m.toDecimal().StringFixed(2)
}

// MarshalText encodes m as its two-decimal string form.
func (m Money) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText decodes a decimal string, rounding to the nearest cent.
// It lets Money be used directly in JSON bodies and env config.
func (m *Money) UnmarshalText(b []byte) error {
	v, err := ParseMoney(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
