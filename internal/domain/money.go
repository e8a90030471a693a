package domain

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// MinorUnitExponent is the number of decimal places in one major currency unit.
const MinorUnitExponent = 2

var ErrInvalidAmount = errors.New("amount is not representable in minor units")

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// ToMinorUnits converts a major-unit decimal amount to integer minor units.
// Amounts with more precision than a minor unit are rejected, never rounded.
func ToMinorUnits(amount decimal.Decimal) (int64, error) {
	shifted := amount.Shift(MinorUnitExponent)
	if !shifted.Equal(shifted.Truncate(0)) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidAmount, amount.String())
	}
	if shifted.Abs().GreaterThan(maxMinorUnits) {
		return 0, fmt.Errorf("%w: %s out of range", ErrInvalidAmount, amount.String())
	}
	return shifted.IntPart(), nil
}

// ParseMinorUnits parses a major-unit decimal string into minor units.
func ParseMinorUnits(raw string) (int64, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	return ToMinorUnits(d)
}

// FormatMinorUnits renders minor units as a fixed two-place major-unit string.
func FormatMinorUnits(v int64) string {
	return decimal.New(v, -MinorUnitExponent).StringFixed(MinorUnitExponent)
}
