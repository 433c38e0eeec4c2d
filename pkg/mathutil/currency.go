// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/mkaraduman/legal-calculators/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Every figure destined for a breakdown line goes through this function at
// the point of inclusion.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// IsPositive checks if a value is positive (greater than tolerance)
func IsPositive(val float64) bool {
	return val > constants.CurrencyTolerance
}

// IsNegative checks if a value is negative (less than negative tolerance)
func IsNegative(val float64) bool {
	return val < -constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// Min returns the minimum of two float64 values
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// ApplyPercentage applies a percentage to a value
func ApplyPercentage(value, percentage float64) float64 {
	return value * (percentage / constants.PercentageMultiplier)
}

// HasAtMostTwoDecimals reports whether a monetary amount is expressible in
// whole kuruş. Inputs failing this check are rejected by validation.
func HasAtMostTwoDecimals(val float64) bool {
	scaled := val * constants.DecimalPrecision
	return math.Abs(scaled-math.Round(scaled)) < 1e-6
}
