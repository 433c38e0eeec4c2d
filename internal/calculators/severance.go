package calculators

import (
	"time"

	"github.com/mkaraduman/legal-calculators/internal/tariff"
	"github.com/mkaraduman/legal-calculators/pkg/constants"
	"github.com/mkaraduman/legal-calculators/pkg/datetime"
	"github.com/mkaraduman/legal-calculators/pkg/mathutil"
)

// SeveranceInput is the severance pay (kıdem tazminatı) calculation input.
type SeveranceInput struct {
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	GrossSalary float64 `json:"grossSalary"`
}

// Normalize validates the input. Severance has no defaulted fields; the
// returned input equals the argument when the error list is empty.
func (in SeveranceInput) Normalize(now time.Time) (SeveranceInput, []FieldError) {
	var l errList
	start, startOK := l.checkPastDay("startDate", in.StartDate, now, "İşe giriş tarihi gelecekte olamaz")
	end, endOK := l.checkPastDay("endDate", in.EndDate, now, "İşten çıkış tarihi gelecekte olamaz")
	l.checkRequiredMoney("grossSalary", in.GrossSalary, "Maaş girilmelidir")
	if startOK && endOK && !start.Before(end) {
		l.add("startDate", "İşe giriş tarihi, çıkış tarihinden önce olmalıdır")
	}
	return in, l.errs
}

// WorkDuration is the employment span split for display.
type WorkDuration struct {
	Years     int `json:"years"`
	Months    int `json:"months"`
	Days      int `json:"days"`
	TotalDays int `json:"totalDays"`
}

// SeveranceResult is the severance pay calculation output.
type SeveranceResult struct {
	WorkDuration   WorkDuration       `json:"workDuration"`
	GrossSeverance float64            `json:"grossSeverance"`
	CeilingApplied bool               `json:"ceilingApplied"`
	CeilingAmount  float64            `json:"ceilingAmount"`
	YearlyGross    float64            `json:"yearlyGross"`
	StampTax       float64            `json:"stampTax"`
	NetSeverance   float64            `json:"netSeverance"`
	Breakdown      []BreakdownLine    `json:"breakdown"`
	Disclaimer     DisclaimerCategory `json:"disclaimer"`
}

// CalculateSeverance computes severance pay from a normalized input.
//
// The yearly entitlement is one gross monthly salary, clamped to the
// statutory ceiling; the total scales with the employment span counted in
// 365-day years.
func CalculateSeverance(in SeveranceInput, t *tariff.Table) SeveranceResult {
	start := datetime.MustParseDay(in.StartDate)
	end := datetime.MustParseDay(in.EndDate)

	totalDays := datetime.DaysBetween(start, end)
	years, months, days := datetime.CalendarSplit(start, end)

	dailySalary := in.GrossSalary / float64(t.Severance.DaysPerYear)
	yearlyGross := dailySalary * float64(t.Severance.DaysPerYear)

	effectiveYearlyGross := mathutil.Min(yearlyGross, t.Severance.Ceiling)
	ceilingApplied := yearlyGross > t.Severance.Ceiling

	totalYears := float64(totalDays) / constants.DaysPerYear
	grossSeverance := effectiveYearlyGross * totalYears

	stampTax := grossSeverance * t.Severance.StampTaxRate
	netSeverance := grossSeverance - stampTax

	return SeveranceResult{
		WorkDuration: WorkDuration{
			Years:     years,
			Months:    months,
			Days:      days,
			TotalDays: totalDays,
		},
		GrossSeverance: mathutil.Round(grossSeverance),
		CeilingApplied: ceilingApplied,
		CeilingAmount:  t.Severance.Ceiling,
		YearlyGross:    mathutil.Round(yearlyGross),
		StampTax:       mathutil.Round(stampTax),
		NetSeverance:   mathutil.Round(netSeverance),
		Breakdown: []BreakdownLine{
			{Label: "Brüt Aylık Maaş", Value: in.GrossSalary},
			{Label: "Günlük Ücret", Value: mathutil.Round(dailySalary)},
			{Label: "Yıllık Kıdem Tutarı", Value: mathutil.Round(effectiveYearlyGross)},
			{Label: "Toplam Çalışma (Yıl)", Value: mathutil.Round(totalYears)},
			{Label: "Brüt Kıdem Tazminatı", Value: mathutil.Round(grossSeverance)},
			{Label: "Damga Vergisi (%0,759)", Value: mathutil.Round(stampTax)},
			{Label: "Net Kıdem Tazminatı", Value: mathutil.Round(netSeverance)},
		},
		Disclaimer: DisclaimerGeneral,
	}
}
