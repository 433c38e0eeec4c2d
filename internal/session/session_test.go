package session

import (
	"math"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/mkaraduman/legal-calculators/internal/calculators"
	"github.com/mkaraduman/legal-calculators/internal/tariff"
	"github.com/mkaraduman/legal-calculators/pkg/datetime"
)

func fixedClock(day string) Clock {
	return func() time.Time {
		return datetime.MustParseDay(day)
	}
}

func TestSpecEvaluate(t *testing.T) {
	table := tariff.Default()
	now := datetime.MustParseDay("2025-06-15")

	tests := []struct {
		name      string
		input     calculators.SeveranceInput
		wantValid bool
	}{
		{
			name: "Valid input computes",
			input: calculators.SeveranceInput{
				StartDate:   "2020-01-01",
				EndDate:     "2025-01-01",
				GrossSalary: 30000,
			},
			wantValid: true,
		},
		{
			name:  "Invalid input returns nil result",
			input: calculators.SeveranceInput{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, errs := SeveranceSpec.Evaluate(tt.input, table, now)
			if tt.wantValid {
				if result == nil {
					t.Fatalf("Evaluate() result = nil, errors = %v", errs)
				}
				if len(errs) != 0 {
					t.Errorf("Evaluate() errors = %v, expected none", errs)
				}
				return
			}
			if result != nil {
				t.Errorf("Evaluate() result = %+v, expected nil", result)
			}
			if len(errs) == 0 {
				t.Errorf("Evaluate() expected validation errors but got none")
			}
		})
	}
}

func TestSessionLifecycle(t *testing.T) {
	table := tariff.Default()
	logger := zap.NewNop()

	// Start invalid: the zero input has no dates or salary.
	s := New(SeveranceSpec, table, calculators.SeveranceInput{},
		WithLogger(logger), WithClock(fixedClock("2025-06-15")))

	if s.Valid() {
		t.Fatalf("Valid() = true for the zero input")
	}
	if s.Result() != nil {
		t.Errorf("Result() = %+v, expected nil while invalid", s.Result())
	}
	if len(s.Errors()) == 0 {
		t.Errorf("Errors() is empty, expected validation errors")
	}

	// Filling in the input flips the session to valid.
	s.Set(calculators.SeveranceInput{
		StartDate:   "2020-01-01",
		EndDate:     "2025-01-01",
		GrossSalary: 30000,
	})
	if !s.Valid() {
		t.Fatalf("Valid() = false after Set() with a complete input: %v", s.Errors())
	}
	if s.Result() == nil || s.Result().WorkDuration.Years != 5 {
		t.Errorf("Result() = %+v, expected a 5-year duration", s.Result())
	}

	// Breaking one field flips it back and clears the result.
	s.Update(func(in *calculators.SeveranceInput) {
		in.GrossSalary = -1
	})
	if s.Valid() {
		t.Fatalf("Valid() = true after breaking the salary")
	}
	if s.Result() != nil {
		t.Errorf("Result() = %+v, expected nil after invalidation", s.Result())
	}

	// Reset returns to the zero input.
	s.Reset()
	if s.Input().StartDate != "" || s.Input().GrossSalary != 0 {
		t.Errorf("Input() = %+v after Reset(), expected the zero input", s.Input())
	}
}

func TestSessionUpdateCopies(t *testing.T) {
	table := tariff.Default()
	initial := calculators.SeveranceInput{
		StartDate:   "2020-01-01",
		EndDate:     "2025-01-01",
		GrossSalary: 30000,
	}
	s := New(SeveranceSpec, table, initial, WithClock(fixedClock("2025-06-15")))

	s.Update(func(in *calculators.SeveranceInput) {
		in.GrossSalary = 40000
	})

	// The original value handed to New is never mutated.
	if initial.GrossSalary != 30000 {
		t.Errorf("initial input was mutated: %+v", initial)
	}
	if s.Input().GrossSalary != 40000 {
		t.Errorf("Input().GrossSalary = %v, expected 40000", s.Input().GrossSalary)
	}
}

func TestSessionClockDrivesDefaults(t *testing.T) {
	table := tariff.Default()

	// The interest end date defaults to the session clock's current day.
	s := New(InterestSpec, table, calculators.InterestInput{
		Principal: 10000,
		StartDate: "2024-01-01",
	}, WithClock(fixedClock("2024-07-01")))

	if !s.Valid() {
		t.Fatalf("Valid() = false: %v", s.Errors())
	}
	result := s.Result()

	// 2024-01-01 to 2024-07-01 is 182 days at the legal rate of 24.
	if result.TotalDays != 182 {
		t.Errorf("TotalDays = %d, expected 182", result.TotalDays)
	}
	wantInterest := 10000.0 * 24 / 365 / 100 * 182
	if math.Abs(result.TotalInterest-wantInterest) > 0.01 {
		t.Errorf("TotalInterest = %.2f, expected %.2f", result.TotalInterest, wantInterest)
	}
}
