package pricing

import (
	"fmt"
	"math"
)

// Money is an amount in cents.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

func (m Money) Mul(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

// Percent returns pct% of m, rounded half away from zero to the cent.
func (m Money) Percent(pct float64) Money {
	return Money{cents: int64(math.Round(float64(m.cents) * pct / 100.0))}
}

func (m Money) IsPositive() bool {
	return m.cents > 0
}

func (m Money) ClampZero() Money {
	if m.cents < 0 {
		return Money{}
	}
	return m
}

// String renders 2 decimal places, the notation used in notifications and redirects.
func (m Money) String() string {
	sign := ""
	c := m.cents
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}
