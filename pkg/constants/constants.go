// Package constants provides shared constants for the legal-calculators application.
package constants

// DayLayout is the format expected for all dates supplied to the calculators
// and is also the output date format.
const DayLayout = "2006-01-02"

// MonthLayout is the format used for month-keyed lookups such as the price
// index series.
const MonthLayout = "2006-01"

// DisplayDayLayout is the human-facing date format used in breakdowns.
const DisplayDayLayout = "02.01.2006"

// Date arithmetic conventions used by the statutory formulas.
const (
	// DaysPerYear is the statutory year length.
	DaysPerYear = 365

	// DaysPerMonth is the statutory month length.
	DaysPerMonth = 30

	// MonthsPerYear is the number of months in a year.
	MonthsPerYear = 12
)

// Financial constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 kuruş)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// MaxCurrencyAmount is the upper bound accepted for any monetary input.
	MaxCurrencyAmount = 1_000_000_000
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the machine-readable output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
)
