// Package output provides utilities for formatting and displaying
// calculation results.
package output

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/mkaraduman/legal-calculators/internal/calculators"
	"github.com/mkaraduman/legal-calculators/internal/session"
	"github.com/mkaraduman/legal-calculators/pkg/format"
)

// Disclaimers holds the advisory text printed under each calculation,
// keyed by the calculator's disclaimer category.
var Disclaimers = map[calculators.DisclaimerCategory]string{
	calculators.DisclaimerGeneral:        "Bu hesaplama bilgilendirme amaçlıdır ve kesin hukuki sonuç teşkil etmez. Resmi işlemler için mutlaka profesyonel danışmanlık alınız.",
	calculators.DisclaimerExecution:      "TAHMİNİ SİMÜLASYONDUR: Bu hesaplama yalnızca fikir vermek amaçlıdır. Gerçek infaz süreleri mahkeme kararına, iyi hal indirimlerine ve mevzuat değişikliklerine göre farklılık gösterebilir.",
	calculators.DisclaimerPropertyRegime: "TAHMİNİ SİMÜLASYONDUR: Mal rejimi hesaplamaları birçok değişkene bağlıdır. Kesin sonuç için avukat danışmanlığı gereklidir.",
	calculators.DisclaimerTax:            "Bu hesaplamalar güncel mevzuata göre yapılmıştır. Vergi idaresinin resmi hesaplaması farklılık gösterebilir.",
}

// row is one display line; Value is already formatted.
type row struct {
	Label string
	Value string
	Note  string
}

// rows flattens a calculation result into display lines.
func rows(result any) []row {
	switch r := result.(type) {
	case calculators.ExecutionResult:
		lines := make([]row, 0, len(r.Breakdown)+len(r.AppliedRules))
		for _, line := range r.Breakdown {
			lines = append(lines, row{Label: line.Label, Value: line.Value})
		}
		for _, rule := range r.AppliedRules {
			lines = append(lines, row{Label: "Uygulanan Kural", Value: rule})
		}
		return lines
	case calculators.InheritanceResult:
		lines := breakdownRows(r.Breakdown)
		lines = append(lines,
			row{Label: "Saklı Pay Toplamı", Value: format.Lira(r.TotalReservedPortion)},
			row{Label: "Tasarruf Edilebilir Kısım", Value: format.Lira(r.DisposablePortion)},
			row{Label: "Özet", Value: r.Summary},
		)
		return lines
	case calculators.InterestResult:
		lines := make([]row, 0, len(r.Periods)+len(r.Breakdown)+1)
		for _, p := range r.Periods {
			lines = append(lines, row{
				Label: fmt.Sprintf("%s - %s (%d gün, %%%.2f)", p.StartDate, p.EndDate, p.Days, p.Rate),
				Value: format.Lira(p.Interest),
				Note:  p.Note,
			})
		}
		lines = append(lines, breakdownRows(r.Breakdown)...)
		lines = append(lines, row{Label: "Ağırlıklı Ortalama Oran", Value: fmt.Sprintf("%%%.2f", r.WeightedAverageRate)})
		return lines
	case calculators.PropertyRegimeResult:
		lines := make([]row, 0, len(r.Comparison)+len(r.Breakdown)+1)
		for _, c := range r.Comparison {
			lines = append(lines, row{
				Label: c.Label,
				Value: fmt.Sprintf("Eş 1: %s / Eş 2: %s", format.Lira(c.Spouse1), format.Lira(c.Spouse2)),
			})
		}
		lines = append(lines, breakdownRows(r.Breakdown)...)
		lines = append(lines, row{Label: "Açıklama", Value: r.Explanation})
		return lines
	case calculators.TaxPenaltyResult:
		lines := breakdownRows(r.Breakdown)
		for _, c := range r.Comparison {
			lines = append(lines, row{
				Label: c.Label,
				Value: fmt.Sprintf("Normal: %s / Yapılandırma: %s", format.Lira(c.Normal), format.Lira(c.Restructuring)),
			})
		}
		lines = append(lines, row{Label: "Öneri", Value: r.Recommendation})
		return lines
	case calculators.SeveranceResult:
		lines := breakdownRows(r.Breakdown)
		if r.CeilingApplied {
			lines = append(lines, row{
				Label: "Kıdem Tavanı",
				Value: format.Lira(r.CeilingAmount),
				Note:  "Tavan uygulandı",
			})
		}
		return lines
	case calculators.CourtFeeResult:
		lines := []row{{Label: "Dava Türü", Value: r.CaseTypeLabel}}
		return append(lines, breakdownRows(r.Breakdown)...)
	default:
		return nil
	}
}

func breakdownRows(breakdown []calculators.BreakdownLine) []row {
	lines := make([]row, 0, len(breakdown))
	for _, line := range breakdown {
		lines = append(lines, row{Label: line.Label, Value: format.Lira(line.Value), Note: line.Note})
	}
	return lines
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(ev *session.Evaluation) {
	fmt.Printf("--- %s (%s) ---\n", ev.Calculator, ev.CalculationID)
	if ev.Outcome == session.OutcomeInvalid {
		fmt.Printf("Geçersiz girdi:\n")
		for _, fieldError := range ev.Errors {
			fmt.Printf("  %s: %s\n", fieldError.Field, fieldError.Message)
		}
		return
	}

	lines := rows(ev.Result)
	width := 0
	for _, line := range lines {
		if len(line.Label) > width {
			width = len(line.Label)
		}
	}
	for _, line := range lines {
		fmt.Printf("%-*s | %s", width, line.Label, line.Value)
		if line.Note != "" {
			fmt.Printf(" (%s)", line.Note)
		}
		fmt.Printf("\n")
	}
	fmt.Printf("\n%s\n", Disclaimers[ev.Disclaimer])
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(ev *session.Evaluation) {
	fmt.Printf("\"label\",\"value\",\"note\"\n")
	if ev.Outcome == session.OutcomeInvalid {
		for _, fieldError := range ev.Errors {
			fmt.Printf("\"%s\",\"%s\",\"error\"\n", csvEscape(fieldError.Field), csvEscape(fieldError.Message))
		}
		return
	}
	for _, line := range rows(ev.Result) {
		fmt.Printf("\"%s\",\"%s\",\"%s\"\n", csvEscape(line.Label), csvEscape(line.Value), csvEscape(line.Note))
	}
}

func csvEscape(s string) string {
	return strings.ReplaceAll(s, "\"", "\"\"")
}

// JSONFormat outputs the full evaluation envelope as indented JSON.
func JSONFormat(ev *session.Evaluation) error {
	encoded, err := json.MarshalIndent(ev, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding evaluation: %w", err)
	}
	fmt.Printf("%s\n", encoded)
	return nil
}
