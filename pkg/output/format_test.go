package output

import (
	"strings"
	"testing"

	"github.com/mkaraduman/legal-calculators/internal/calculators"
	"github.com/mkaraduman/legal-calculators/internal/session"
	"github.com/mkaraduman/legal-calculators/internal/tariff"
	"github.com/mkaraduman/legal-calculators/pkg/datetime"
)

func TestDisclaimersCoverAllCategories(t *testing.T) {
	categories := []calculators.DisclaimerCategory{
		calculators.DisclaimerGeneral,
		calculators.DisclaimerExecution,
		calculators.DisclaimerPropertyRegime,
		calculators.DisclaimerTax,
	}
	for _, category := range categories {
		if Disclaimers[category] == "" {
			t.Errorf("no disclaimer text for category %s", category)
		}
	}
}

func evaluate(t *testing.T, calculator string, raw string) *session.Evaluation {
	t.Helper()
	run, ok := session.Get(calculator)
	if !ok {
		t.Fatalf("Get(%s) not found", calculator)
	}
	evaluation, err := run([]byte(raw), tariff.Default(), datetime.MustParseDay("2025-06-15"))
	if err != nil {
		t.Fatalf("runner error = %v", err)
	}
	return evaluation
}

func TestRowsSeverance(t *testing.T) {
	evaluation := evaluate(t, "kidem-tazminati",
		`{"startDate": "2020-01-01", "endDate": "2025-01-01", "grossSalary": 45000}`)

	lines := rows(evaluation.Result)
	if len(lines) != 8 {
		t.Fatalf("got %d rows, expected 7 breakdown lines plus the ceiling note", len(lines))
	}
	last := lines[len(lines)-1]
	if last.Label != "Kıdem Tavanı" || last.Note != "Tavan uygulandı" {
		t.Errorf("last row = %+v, expected the ceiling note", last)
	}
	if !strings.HasSuffix(lines[0].Value, " TL") {
		t.Errorf("monetary row value = %q, expected a TL-formatted amount", lines[0].Value)
	}
}

func TestRowsExecutionIncludesAppliedRules(t *testing.T) {
	evaluation := evaluate(t, "infaz-hesaplama",
		`{"crimeDate": "2020-01-01", "crimeType": "standard", "sentenceYears": 6}`)

	lines := rows(evaluation.Result)
	result := evaluation.Result.(calculators.ExecutionResult)
	if len(lines) != len(result.Breakdown)+len(result.AppliedRules) {
		t.Errorf("got %d rows, expected %d", len(lines), len(result.Breakdown)+len(result.AppliedRules))
	}

	found := false
	for _, line := range lines {
		if line.Label == "Uygulanan Kural" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected applied-rule rows in the output")
	}
}

func TestRowsPropertyRegime(t *testing.T) {
	evaluation := evaluate(t, "mal-rejimi",
		`{"marriageDate": "2010-05-20", "separationDate": "2024-05-20",
		  "spouse2AcquiredAssets": [{"name": "Daire", "value": 500000}]}`)

	lines := rows(evaluation.Result)
	// 5 comparison rows, 3 breakdown rows, and the explanation.
	if len(lines) != 9 {
		t.Fatalf("got %d rows, expected 9", len(lines))
	}
	if lines[len(lines)-1].Label != "Açıklama" {
		t.Errorf("last row label = %q, expected the explanation", lines[len(lines)-1].Label)
	}
}

func TestRowsUnknownResultType(t *testing.T) {
	if got := rows(struct{}{}); got != nil {
		t.Errorf("rows() on an unknown type = %v, expected nil", got)
	}
}
