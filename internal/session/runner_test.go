package session

import (
	"testing"

	"github.com/goccy/go-json"

	"github.com/mkaraduman/legal-calculators/internal/calculators"
	"github.com/mkaraduman/legal-calculators/internal/tariff"
	"github.com/mkaraduman/legal-calculators/pkg/datetime"
)

func TestNames(t *testing.T) {
	names := Names()
	expected := []string{
		"dava-harclari",
		"gecikme-faizi",
		"infaz-hesaplama",
		"kidem-tazminati",
		"mal-rejimi",
		"miras-payi",
		"vergi-cezasi",
	}
	if len(names) != len(expected) {
		t.Fatalf("Names() = %v, expected %v", names, expected)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Names()[%d] = %s, expected %s", i, names[i], expected[i])
		}
	}
}

func TestGetUnknownCalculator(t *testing.T) {
	if _, ok := Get("nonexistent"); ok {
		t.Errorf("Get(nonexistent) reported ok")
	}
}

func TestRunnerSuccess(t *testing.T) {
	table := tariff.Default()
	now := datetime.MustParseDay("2025-06-15")

	run, ok := Get("kidem-tazminati")
	if !ok {
		t.Fatalf("Get(kidem-tazminati) not found")
	}

	raw := []byte(`{"startDate": "2020-01-01", "endDate": "2025-01-01", "grossSalary": 30000}`)
	evaluation, err := run(raw, table, now)
	if err != nil {
		t.Fatalf("runner error = %v", err)
	}

	if evaluation.Outcome != OutcomeSuccess {
		t.Fatalf("Outcome = %s, errors = %v", evaluation.Outcome, evaluation.Errors)
	}
	if evaluation.Calculator != "kidem-tazminati" {
		t.Errorf("Calculator = %s, expected kidem-tazminati", evaluation.Calculator)
	}
	if evaluation.CalculationID == "" {
		t.Errorf("CalculationID is empty")
	}
	if evaluation.Disclaimer != calculators.DisclaimerGeneral {
		t.Errorf("Disclaimer = %s, expected %s", evaluation.Disclaimer, calculators.DisclaimerGeneral)
	}

	result, ok := evaluation.Result.(calculators.SeveranceResult)
	if !ok {
		t.Fatalf("Result has type %T, expected SeveranceResult", evaluation.Result)
	}
	if result.WorkDuration.Years != 5 {
		t.Errorf("WorkDuration.Years = %d, expected 5", result.WorkDuration.Years)
	}
}

func TestRunnerInvalidInput(t *testing.T) {
	table := tariff.Default()
	now := datetime.MustParseDay("2025-06-15")

	run, _ := Get("dava-harclari")
	raw := []byte(`{"caseType": "alacak"}`)
	evaluation, err := run(raw, table, now)
	if err != nil {
		t.Fatalf("runner error = %v", err)
	}

	if evaluation.Outcome != OutcomeInvalid {
		t.Fatalf("Outcome = %s, expected %s", evaluation.Outcome, OutcomeInvalid)
	}
	if evaluation.Result != nil {
		t.Errorf("Result = %+v, expected nil for invalid input", evaluation.Result)
	}

	found := false
	for _, fieldError := range evaluation.Errors {
		if fieldError.Field == "caseValue" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a caseValue error, got %v", evaluation.Errors)
	}
}

func TestRunnerMalformedDocument(t *testing.T) {
	table := tariff.Default()
	now := datetime.MustParseDay("2025-06-15")

	run, _ := Get("miras-payi")
	if _, err := run([]byte(`{"totalEstate": `), table, now); err == nil {
		t.Errorf("expected a decode error for a truncated document")
	}
}

func TestEvaluationRoundTripsAsJSON(t *testing.T) {
	table := tariff.Default()
	now := datetime.MustParseDay("2025-06-15")

	run, _ := Get("miras-payi")
	raw := []byte(`{"totalEstate": 1000000, "hasSpouse": true, "numberOfChildren": 2}`)
	evaluation, err := run(raw, table, now)
	if err != nil {
		t.Fatalf("runner error = %v", err)
	}

	encoded, err := json.Marshal(evaluation)
	if err != nil {
		t.Fatalf("marshal error = %v", err)
	}

	var decoded struct {
		CalculationID string `json:"calculationId"`
		Outcome       string `json:"outcome"`
		Result        struct {
			Heirs []struct {
				Label  string  `json:"label"`
				Amount float64 `json:"amount"`
			} `json:"heirs"`
		} `json:"result"`
	}
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unmarshal error = %v", err)
	}
	if decoded.Outcome != string(OutcomeSuccess) {
		t.Errorf("decoded outcome = %s, expected success", decoded.Outcome)
	}
	if len(decoded.Result.Heirs) != 3 {
		t.Fatalf("decoded %d heirs, expected 3", len(decoded.Result.Heirs))
	}
	if decoded.Result.Heirs[0].Amount != 250000 {
		t.Errorf("decoded spouse amount = %v, expected 250000", decoded.Result.Heirs[0].Amount)
	}
}
