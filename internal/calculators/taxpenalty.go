package calculators

import (
	"fmt"
	"time"

	"github.com/mkaraduman/legal-calculators/internal/tariff"
	"github.com/mkaraduman/legal-calculators/pkg/constants"
	"github.com/mkaraduman/legal-calculators/pkg/datetime"
	"github.com/mkaraduman/legal-calculators/pkg/format"
	"github.com/mkaraduman/legal-calculators/pkg/mathutil"
)

// TaxPenaltyInput is the tax delay penalty calculation input.
type TaxPenaltyInput struct {
	TaxPrincipal float64 `json:"taxPrincipal"`
	DueDate      string  `json:"dueDate"`
	// CalculationDate defaults to the current day when empty.
	CalculationDate string `json:"calculationDate,omitempty"`
	// IncludeRestructuring defaults to true when omitted.
	IncludeRestructuring *bool `json:"includeRestructuring,omitempty"`
}

// Restructuring reports whether the restructuring comparison is requested.
func (in TaxPenaltyInput) Restructuring() bool {
	return in.IncludeRestructuring == nil || *in.IncludeRestructuring
}

// Normalize validates the input and resolves an omitted calculation date to
// the current day.
func (in TaxPenaltyInput) Normalize(now time.Time) (TaxPenaltyInput, []FieldError) {
	var l errList
	l.checkRequiredMoney("taxPrincipal", in.TaxPrincipal, "Vergi aslı girilmelidir")
	l.checkDay("dueDate", in.DueDate)
	if in.CalculationDate == "" {
		in.CalculationDate = datetime.FormatDay(now)
	}
	l.checkDay("calculationDate", in.CalculationDate)
	if in.IncludeRestructuring == nil {
		includeRestructuring := true
		in.IncludeRestructuring = &includeRestructuring
	}
	return in, l.errs
}

// MonthlyPenalty is one month of delay interest accrual.
type MonthlyPenalty struct {
	Month      string  `json:"month"`
	Principal  float64 `json:"principal"`
	Rate       float64 `json:"rate"`
	Interest   float64 `json:"interest"`
	Cumulative float64 `json:"cumulative"`
}

// NormalCalculation is the month-by-month delay penalty path.
type NormalCalculation struct {
	TotalInterest    float64          `json:"totalInterest"`
	TotalAmount      float64          `json:"totalAmount"`
	MonthlyBreakdown []MonthlyPenalty `json:"monthlyBreakdown"`
}

// RestructuringCalculation is the price-index-based alternative path.
type RestructuringCalculation struct {
	IndexInterest     float64 `json:"yiufeInterest"`
	TotalAmount       float64 `json:"totalAmount"`
	Savings           float64 `json:"savings"`
	SavingsPercentage float64 `json:"savingsPercentage"`
	// IndexDataMissing is set when either month was absent from the price
	// index series and the assumed annual rate was used instead.
	IndexDataMissing bool `json:"indexDataMissing,omitempty"`
}

// TaxComparisonLine is one row of the normal-vs-restructuring comparison.
type TaxComparisonLine struct {
	Label         string  `json:"label"`
	Normal        float64 `json:"normal"`
	Restructuring float64 `json:"restructuring"`
	Difference    float64 `json:"difference"`
}

// TaxPenaltyResult is the tax delay penalty calculation output.
type TaxPenaltyResult struct {
	TaxPrincipal   float64                   `json:"taxPrincipal"`
	Normal         NormalCalculation         `json:"normalCalculation"`
	Restructuring  *RestructuringCalculation `json:"restructuringCalculation,omitempty"`
	DelayMonths    int                       `json:"delayMonths"`
	Comparison     []TaxComparisonLine       `json:"comparison,omitempty"`
	Recommendation string                    `json:"recommendation"`
	Breakdown      []BreakdownLine           `json:"breakdown"`
	Disclaimer     DisclaimerCategory        `json:"disclaimer"`
}

// CalculateTaxPenalty accrues the month-by-month delay penalty and, when
// requested, compares it against the price-index-based restructuring
// alternative.
//
// Each delay month accrues principal × monthly rate, using the rate in
// effect for that calendar month; the restructuring rate is the ratio of
// the price index between the due month and the calculation month, with an
// assumed flat rate when the series is missing either month.
func CalculateTaxPenalty(in TaxPenaltyInput, t *tariff.Table) TaxPenaltyResult {
	dueDate := datetime.MustParseDay(in.DueDate)
	calcDate := datetime.MustParseDay(in.CalculationDate)

	delayMonths := datetime.WholeMonthsBetween(dueDate, calcDate)
	if delayMonths < 0 {
		delayMonths = 0
	}

	monthly := make([]MonthlyPenalty, 0, delayMonths)
	cumulative := 0.0
	for i := 0; i < delayMonths; i++ {
		month := dueDate.AddDate(0, i, 0)
		rate, _ := t.TaxDelay.RateOn(datetime.FormatDay(month))
		interest := in.TaxPrincipal * (rate / constants.PercentageMultiplier)
		cumulative += interest

		monthly = append(monthly, MonthlyPenalty{
			Month:      datetime.MonthKey(month),
			Principal:  in.TaxPrincipal,
			Rate:       rate,
			Interest:   mathutil.Round(interest),
			Cumulative: mathutil.Round(cumulative),
		})
	}
	normalTotal := in.TaxPrincipal + cumulative

	result := TaxPenaltyResult{
		TaxPrincipal: in.TaxPrincipal,
		Normal: NormalCalculation{
			TotalInterest:    mathutil.Round(cumulative),
			TotalAmount:      mathutil.Round(normalTotal),
			MonthlyBreakdown: monthly,
		},
		DelayMonths: delayMonths,
		Breakdown: []BreakdownLine{
			{Label: "Vergi Aslı", Value: in.TaxPrincipal},
			{Label: "Gecikme Zammı", Value: mathutil.Round(cumulative)},
			{Label: "Normal Toplam", Value: mathutil.Round(normalTotal)},
		},
		Disclaimer: DisclaimerTax,
	}

	if !in.Restructuring() {
		result.Recommendation = "Yapılandırma hesaplaması talep edilmedi; normal gecikme zammı toplamı geçerlidir."
		return result
	}

	indexRate, indexMissing := restructuringRate(t, datetime.MonthKey(dueDate), datetime.MonthKey(calcDate))
	indexInterest := in.TaxPrincipal * indexRate
	restructuringTotal := in.TaxPrincipal + indexInterest

	savings := normalTotal - restructuringTotal
	savingsPercentage := 0.0
	if normalTotal != 0 {
		savingsPercentage = savings / normalTotal * constants.PercentageMultiplier
	}

	var recommendation string
	switch {
	case savings > 0:
		recommendation = fmt.Sprintf(
			"Yapılandırma size %s (%%%.1f) tasarruf sağlar. Yapılandırmayı değerlendirmenizi öneririz.",
			format.Lira(mathutil.Round(savings)), savingsPercentage)
	case savings < 0:
		recommendation = "Bu durumda yapılandırma avantajlı değil. Normal ödeme yapmanız daha uygun."
	default:
		recommendation = "Her iki seçenek de aynı tutara denk geliyor."
	}

	result.Restructuring = &RestructuringCalculation{
		IndexInterest:     mathutil.Round(indexInterest),
		TotalAmount:       mathutil.Round(restructuringTotal),
		Savings:           mathutil.Round(savings),
		SavingsPercentage: mathutil.Round(savingsPercentage),
		IndexDataMissing:  indexMissing,
	}
	result.Comparison = []TaxComparisonLine{
		{Label: "Vergi Aslı", Normal: in.TaxPrincipal, Restructuring: in.TaxPrincipal, Difference: 0},
		{
			Label:         "Faiz/Zam",
			Normal:        mathutil.Round(cumulative),
			Restructuring: mathutil.Round(indexInterest),
			Difference:    mathutil.Round(cumulative - indexInterest),
		},
		{
			Label:         "Toplam Ödeme",
			Normal:        mathutil.Round(normalTotal),
			Restructuring: mathutil.Round(restructuringTotal),
			Difference:    mathutil.Round(savings),
		},
	}
	result.Recommendation = recommendation
	result.Breakdown = append(result.Breakdown,
		BreakdownLine{Label: "Yapılandırma Toplamı", Value: mathutil.Round(restructuringTotal)},
		BreakdownLine{Label: "Tasarruf", Value: mathutil.Round(savings)},
	)
	return result
}

// restructuringRate derives the restructuring rate from the price index
// ratio between two YYYY-MM months, falling back to the assumed annual rate
// when the series is missing either month.
func restructuringRate(t *tariff.Table, startMonth, endMonth string) (rate float64, fallback bool) {
	startIndex, startOK := t.PriceIndexOn(startMonth)
	endIndex, endOK := t.PriceIndexOn(endMonth)
	if !startOK || !endOK || startIndex == 0 {
		return t.RestructuringFallbackRate, true
	}
	return (endIndex - startIndex) / startIndex, false
}
