package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ─── Amount ─────────────────────────────────────────────────────────────────
// Monetary values are fixed-point with exactly four fractional decimal
// digits, stored as the value scaled by 10_000. Binary floating point is
// never used: equality on Amount is exact, which duplicate detection
// depends on.

// amountScale is the number of minor units per whole unit.
const amountScale = 10_000

// Amount is a signed fixed-point monetary value with four decimal places.
// The representable range is [MinInt64/10_000, MaxInt64/10_000] whole units.
type Amount int64

// ErrAmountParse reports a malformed decimal string.
var ErrAmountParse = errors.New("malformed amount")

// ParseAmount parses a non-negative decimal string with up to four
// fractional digits, e.g. "1", "1.5", "0.0001".
func ParseAmount(s string) (Amount, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrAmountParse)
	}

	whole, frac := s, ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		whole, frac = s[:idx], s[idx+1:]
	}
	if whole == "" && frac == "" {
		return 0, fmt.Errorf("%w: %q", ErrAmountParse, s)
	}
	if len(frac) > 4 {
		return 0, fmt.Errorf("%w: %q has more than 4 fractional digits", ErrAmountParse, s)
	}

	var units int64
	for _, c := range whole {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q", ErrAmountParse, s)
		}
		if units > (math.MaxInt64-9)/10 {
			return 0, ErrAmountOverflow
		}
		units = units*10 + int64(c-'0')
	}
	if units > math.MaxInt64/amountScale {
		return 0, ErrAmountOverflow
	}
	units *= amountScale

	// Right-pad the fraction to four digits: "5" means 5000 minor units.
	pow := int64(1000)
	for _, c := range frac {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q", ErrAmountParse, s)
		}
		units += int64(c-'0') * pow
		pow /= 10
	}
	return Amount(units), nil
}

// Add returns a+b, or ErrAmountOverflow if the sum leaves the fixed-point
// range.
func (a Amount) Add(b Amount) (Amount, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, ErrAmountOverflow
	}
	return sum, nil
}

// Sub returns a-b, or ErrAmountOverflow.
func (a Amount) Sub(b Amount) (Amount, error) {
	diff := a - b
	if (b < 0 && diff < a) || (b > 0 && diff > a) {
		return 0, ErrAmountOverflow
	}
	return diff, nil
}

// Neg returns the negated amount.
func (a Amount) Neg() Amount { return -a }

// IsNegative reports whether the amount is below zero.
func (a Amount) IsNegative() bool { return a < 0 }

// String formats the amount with exactly four decimal places.
func (a Amount) String() string {
	units := int64(a)
	sign := ""
	if units < 0 {
		sign = "-"
		units = -units
	}
	return fmt.Sprintf("%s%d.%04d", sign, units/amountScale, units%amountScale)
}

// MarshalJSON encodes the amount as its decimal string form, keeping the
// wire representation exact.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}
