package tariff

import (
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	table := Default()
	if table.Year != 2025 {
		t.Errorf("Default() year = %d, expected 2025", table.Year)
	}
	if err := table.Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}

func TestScheduleRateOn(t *testing.T) {
	schedule := Schedule{
		{EffectiveDate: "2024-07-01", Rate: 54},
		{EffectiveDate: "2024-01-01", Rate: 48},
		{EffectiveDate: "2023-07-01", Rate: 36},
	}

	tests := []struct {
		name      string
		day       string
		wantRate  float64
		wantExact bool
	}{
		{
			name:      "Exact boundary day",
			day:       "2024-07-01",
			wantRate:  54,
			wantExact: true,
		},
		{
			name:      "Between entries takes the older",
			day:       "2024-06-30",
			wantRate:  48,
			wantExact: true,
		},
		{
			name:      "After the newest entry",
			day:       "2025-03-15",
			wantRate:  54,
			wantExact: true,
		},
		{
			name:      "Before the oldest entry falls back",
			day:       "2022-01-01",
			wantRate:  36,
			wantExact: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, exact := schedule.RateOn(tt.day)
			if rate != tt.wantRate || exact != tt.wantExact {
				t.Errorf("RateOn(%s) = (%v, %v), expected (%v, %v)", tt.day, rate, exact, tt.wantRate, tt.wantExact)
			}
		})
	}
}

func TestScheduleRateOnEmpty(t *testing.T) {
	var schedule Schedule
	rate, exact := schedule.RateOn("2024-01-01")
	if rate != 0 || exact {
		t.Errorf("RateOn() on empty schedule = (%v, %v), expected (0, false)", rate, exact)
	}
}

func TestScheduleBoundariesWithin(t *testing.T) {
	schedule := Schedule{
		{EffectiveDate: "2024-07-01", Rate: 54},
		{EffectiveDate: "2024-01-01", Rate: 48},
		{EffectiveDate: "2023-07-01", Rate: 36},
	}

	tests := []struct {
		name     string
		start    string
		end      string
		expected []string
	}{
		{
			name:     "Two boundaries strictly inside",
			start:    "2023-09-01",
			end:      "2024-08-01",
			expected: []string{"2024-01-01", "2024-07-01"},
		},
		{
			name:     "Boundary equal to start is excluded",
			start:    "2024-01-01",
			end:      "2024-06-01",
			expected: nil,
		},
		{
			name:     "Boundary equal to end is excluded",
			start:    "2024-02-01",
			end:      "2024-07-01",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := schedule.BoundariesWithin(tt.start, tt.end)
			if len(got) != len(tt.expected) {
				t.Fatalf("BoundariesWithin(%s, %s) = %v, expected %v", tt.start, tt.end, got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("BoundariesWithin(%s, %s)[%d] = %s, expected %s", tt.start, tt.end, i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestValidateRejectsDuplicateEffectiveDates(t *testing.T) {
	table := Default()
	table.LegalInterest = append(table.LegalInterest, Entry{EffectiveDate: "2024-01-01", Rate: 30})
	if err := table.Validate(); err == nil {
		t.Errorf("Validate() expected duplicate effective date error but got none")
	}
}

func TestValidateRejectsBrokenValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Table)
	}{
		{
			name:   "Zero severance ceiling",
			mutate: func(table *Table) { table.Severance.Ceiling = 0 },
		},
		{
			name:   "Zero severance daysPerYear",
			mutate: func(table *Table) { table.Severance.DaysPerYear = 0 },
		},
		{
			name:   "Zero proportional fee rate",
			mutate: func(table *Table) { table.CourtFees.ProportionalRatePerMille = 0 },
		},
		{
			name:   "Empty release rates",
			mutate: func(table *Table) { table.Execution.ReleaseRates = nil },
		},
		{
			name:   "Empty tax delay schedule",
			mutate: func(table *Table) { table.TaxDelay = nil },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := Default()
			tt.mutate(table)
			if err := table.Validate(); err == nil {
				t.Errorf("Validate() expected error but got none")
			}
		})
	}
}

func TestFixedFeeFallback(t *testing.T) {
	fees := Default().CourtFees
	if got := fees.FixedFee("bosanma"); got != 1197.90 {
		t.Errorf("FixedFee(bosanma) = %v, expected 1197.90", got)
	}
	if got := fees.FixedFee("unlisted"); got != fees.DefaultFixedFee {
		t.Errorf("FixedFee(unlisted) = %v, expected default %v", got, fees.DefaultFixedFee)
	}
	if got := fees.ExpenseAdvance("aileMahkemesi"); got != 950 {
		t.Errorf("ExpenseAdvance(aileMahkemesi) = %v, expected 950", got)
	}
	if got := fees.ExpenseAdvance("unlisted"); got != fees.DefaultExpenseAdvance {
		t.Errorf("ExpenseAdvance(unlisted) = %v, expected default %v", got, fees.DefaultExpenseAdvance)
	}
}

func TestFromOverrides(t *testing.T) {
	year := 2026
	ceiling := 40000.0
	fallbackRate := 0.9
	overrides := &Overrides{
		Year: &year,
		Severance: &Severance{
			Ceiling:      ceiling,
			DaysPerYear:  30,
			StampTaxRate: 0.00759,
		},
		TaxDelay: Schedule{
			{EffectiveDate: "2025-01-01", Rate: 3.5},
		},
		PriceIndex: map[string]float64{
			"2025-01": 2900.00,
		},
		RestructuringFallbackRate: &fallbackRate,
	}

	table, err := FromOverrides(overrides)
	if err != nil {
		t.Fatalf("FromOverrides() error = %v", err)
	}
	if table.Year != year {
		t.Errorf("year = %d, expected %d", table.Year, year)
	}
	if table.Severance.Ceiling != ceiling {
		t.Errorf("severance ceiling = %v, expected %v", table.Severance.Ceiling, ceiling)
	}
	if len(table.TaxDelay) != 1 || table.TaxDelay[0].EffectiveDate != "2025-01-01" {
		t.Errorf("tax delay schedule was not replaced wholesale: %v", table.TaxDelay)
	}

	// The price index merges instead of replacing.
	if _, ok := table.PriceIndexOn("2025-01"); !ok {
		t.Errorf("merged price index month 2025-01 is missing")
	}
	if _, ok := table.PriceIndexOn("2024-01"); !ok {
		t.Errorf("built-in price index month 2024-01 was lost by the merge")
	}
	if table.RestructuringFallbackRate != fallbackRate {
		t.Errorf("fallback rate = %v, expected %v", table.RestructuringFallbackRate, fallbackRate)
	}

	// Untouched sections keep the built-in values.
	if table.Inheritance.SpouseWithChildren != 0.25 {
		t.Errorf("inheritance section should keep defaults, got %v", table.Inheritance.SpouseWithChildren)
	}
}

func TestFromOverridesNil(t *testing.T) {
	table, err := FromOverrides(nil)
	if err != nil {
		t.Fatalf("FromOverrides(nil) error = %v", err)
	}
	if table.Severance.Ceiling != Default().Severance.Ceiling {
		t.Errorf("FromOverrides(nil) should return the built-in table")
	}
}

func TestFromOverridesRejectsInvalidResult(t *testing.T) {
	overrides := &Overrides{
		Severance: &Severance{Ceiling: -1},
	}
	if _, err := FromOverrides(overrides); err == nil {
		t.Errorf("FromOverrides() expected validation error but got none")
	}
}
