// Package format provides Turkish-locale display strings for monetary and
// fractional values.
package format

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Turkish)

// Lira returns a currency string with Turkish separators and the TL suffix
// (e.g. "1.234,56 TL").
func Lira(amount float64) string {
	return printer.Sprintf("%.2f TL", amount)
}

// Percent returns a percentage string in the Turkish convention, with the
// percent sign leading (e.g. "%24").
func Percent(rate float64) string {
	if rate == math.Trunc(rate) {
		return printer.Sprintf("%%%.0f", rate)
	}
	return printer.Sprintf("%%%.2f", rate)
}

// FractionLabel reduces numerator/denominator and renders it for display.
// Whole shares render as "Tamamı" and empty shares as "0". Fractions are
// scaled to thousandths first so ratios like 0.375 reduce cleanly.
func FractionLabel(numerator, denominator float64) string {
	n := int(math.Round(numerator * 1000))
	d := int(math.Round(denominator * 1000))
	if d == 0 {
		return "0"
	}
	if n == 0 {
		return "0"
	}
	if n == d {
		return "Tamamı"
	}
	g := gcd(n, d)
	return fmt.Sprintf("%d/%d", n/g, d/g)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
