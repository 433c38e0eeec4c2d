package session

import (
	"fmt"
	"sort"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/mkaraduman/legal-calculators/internal/calculators"
	"github.com/mkaraduman/legal-calculators/internal/tariff"
)

// Outcome classifies an evaluation.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeInvalid Outcome = "invalid"
)

// Evaluation is the envelope around one calculator run: identifying
// metadata plus either the result or the validation errors.
type Evaluation struct {
	CalculationID string                         `json:"calculationId"`
	Calculator    string                         `json:"calculator"`
	StartedAt     string                         `json:"startedAt"`
	CompletedAt   string                         `json:"completedAt"`
	DurationMs    int64                          `json:"durationMs"`
	Outcome       Outcome                        `json:"outcome"`
	Disclaimer    calculators.DisclaimerCategory `json:"disclaimer"`
	Errors        []calculators.FieldError       `json:"errors,omitempty"`
	Result        any                            `json:"result,omitempty"`
}

// Runner evaluates a raw JSON input document against one calculator. The
// now parameter feeds end-date defaulting; envelope timestamps use wall
// time.
type Runner func(raw []byte, table *tariff.Table, now time.Time) (*Evaluation, error)

func runner[I, R any](spec Spec[I, R]) Runner {
	return func(raw []byte, table *tariff.Table, now time.Time) (*Evaluation, error) {
		started := time.Now().UTC()

		var in I
		if err := json.Unmarshal(raw, &in); err != nil {
			return nil, fmt.Errorf("decoding %s input: %w", spec.Name, err)
		}

		result, errs := spec.Evaluate(in, table, now)

		completed := time.Now().UTC()
		ev := &Evaluation{
			CalculationID: uuid.New().String(),
			Calculator:    spec.Name,
			StartedAt:     started.Format(time.RFC3339),
			CompletedAt:   completed.Format(time.RFC3339),
			DurationMs:    completed.Sub(started).Milliseconds(),
			Disclaimer:    spec.Disclaimer,
		}
		if result == nil {
			ev.Outcome = OutcomeInvalid
			ev.Errors = errs
		} else {
			ev.Outcome = OutcomeSuccess
			ev.Result = *result
		}
		return ev, nil
	}
}

var registry = map[string]Runner{
	SeveranceSpec.Name:      runner(SeveranceSpec),
	InheritanceSpec.Name:    runner(InheritanceSpec),
	InterestSpec.Name:       runner(InterestSpec),
	ExecutionSpec.Name:      runner(ExecutionSpec),
	PropertyRegimeSpec.Name: runner(PropertyRegimeSpec),
	TaxPenaltySpec.Name:     runner(TaxPenaltySpec),
	CourtFeesSpec.Name:      runner(CourtFeesSpec),
}

// Get returns the runner for a calculator name.
func Get(name string) (Runner, bool) {
	r, ok := registry[name]
	return r, ok
}

// Names lists the registered calculator names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
