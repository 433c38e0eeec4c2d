package calculators

import (
	"fmt"
	"time"

	"github.com/mkaraduman/legal-calculators/internal/tariff"
	"github.com/mkaraduman/legal-calculators/pkg/mathutil"
)

// FeeType distinguishes value-based from flat filing fees.
type FeeType string

const (
	FeeProportional FeeType = "nispi"
	FeeFixed        FeeType = "maktu"
)

// caseTypeLabels maps case type keys to their display names.
var caseTypeLabels = map[string]string{
	"bosanma":               "Boşanma Davası",
	"velayet":               "Velayet Davası",
	"nafaka":                "Nafaka Davası",
	"tapuIptali":            "Tapu İptali ve Tescil Davası",
	"alacak":                "Alacak Davası",
	"tazminat":              "Tazminat Davası",
	"iseDavasi":             "İşe İade Davası",
	"kidemTazminati":        "Kıdem Tazminatı Davası",
	"tahliye":               "Kiracı Tahliye Davası",
	"icraInkar":             "İcra İnkar Tazminatı Davası",
	"mirasPaylasimi":        "Miras Paylaşımı (Ortaklığın Giderilmesi) Davası",
	"ortakliginGiderilmesi": "Ortaklığın Giderilmesi Davası",
	"other":                 "Diğer Dava",
}

// proportionalCaseTypes holds the case types whose fee is computed from the
// disputed value.
var proportionalCaseTypes = map[string]bool{
	"tapuIptali":            true,
	"alacak":                true,
	"tazminat":              true,
	"kidemTazminati":        true,
	"icraInkar":             true,
	"mirasPaylasimi":        true,
	"ortakliginGiderilmesi": true,
}

var courtTypes = map[string]bool{
	"asliHukuk":     true,
	"asliyeCeza":    true,
	"isMahkemesi":   true,
	"icraMahkemesi": true,
	"aileMahkemesi": true,
}

// CourtFeeInput is the court filing fee calculation input.
type CourtFeeInput struct {
	CaseType string `json:"caseType"`
	// CaseValue is required for proportional-fee case types.
	CaseValue *float64 `json:"caseValue,omitempty"`
	// CourtType defaults to asliHukuk.
	CourtType string `json:"courtType,omitempty"`
}

// Normalize validates the input and defaults the court type. A proportional
// case type without a case value is a validation error; it never silently
// degrades to a zero or fixed fee.
func (in CourtFeeInput) Normalize(now time.Time) (CourtFeeInput, []FieldError) {
	var l errList
	if _, ok := caseTypeLabels[in.CaseType]; !ok {
		l.add("caseType", "Geçersiz dava türü")
	}
	if in.CourtType == "" {
		in.CourtType = "asliHukuk"
	}
	if !courtTypes[in.CourtType] {
		l.add("courtType", "Geçersiz mahkeme türü")
	}
	if proportionalCaseTypes[in.CaseType] {
		if in.CaseValue == nil {
			l.add("caseValue", "Nispi harca tabi davalarda dava değeri girilmelidir")
		} else {
			l.checkRequiredMoney("caseValue", *in.CaseValue, "Dava değeri girilmelidir")
		}
	} else if in.CaseValue != nil {
		l.checkMoney("caseValue", *in.CaseValue)
	}
	return in, l.errs
}

// ProportionalFee is the value-based fee split into its payment stages.
type ProportionalFee struct {
	TotalFee     float64 `json:"totalFee"`
	AdvanceFee   float64 `json:"advanceFee"`
	RemainingFee float64 `json:"remainingFee"`
	Rate         string  `json:"rate"`
}

// CourtFeeResult is the court filing fee calculation output.
type CourtFeeResult struct {
	CaseType            string             `json:"caseType"`
	CaseTypeLabel       string             `json:"caseTypeLabel"`
	FeeType             FeeType            `json:"feeType"`
	CaseValue           *float64           `json:"caseValue,omitempty"`
	ProportionalFee     *ProportionalFee   `json:"proportionalFee,omitempty"`
	FixedFee            *float64           `json:"fixedFee,omitempty"`
	ExpenseAdvance      float64            `json:"expenseAdvance"`
	TotalAdvancePayment float64            `json:"totalAdvancePayment"`
	TotalCourtFee       float64            `json:"totalCourtFee"`
	Breakdown           []BreakdownLine    `json:"breakdown"`
	Disclaimer          DisclaimerCategory `json:"disclaimer"`
}

// CalculateCourtFees computes the filing fees for a case.
//
// Proportional cases owe caseValue × rate‰, a quarter of it due at filing;
// other cases owe the flat tariff amount. Either way a court-type-dependent
// expense advance is added to the amount due at filing.
func CalculateCourtFees(in CourtFeeInput, t *tariff.Table) CourtFeeResult {
	fees := t.CourtFees
	caseTypeLabel := caseTypeLabels[in.CaseType]
	isProportional := proportionalCaseTypes[in.CaseType]

	var breakdown []BreakdownLine
	var proportional *ProportionalFee
	var fixedFee *float64
	var totalCourtFee float64
	var advanceCourtFee float64

	if isProportional {
		caseValue := *in.CaseValue
		totalFee := caseValue * fees.ProportionalRatePerMille / 1000
		advanceFee := mathutil.ApplyPercentage(totalFee, fees.AdvancePercentage)
		remainingFee := totalFee - advanceFee

		proportional = &ProportionalFee{
			TotalFee:     mathutil.Round(totalFee),
			AdvanceFee:   mathutil.Round(advanceFee),
			RemainingFee: mathutil.Round(remainingFee),
			Rate:         fmt.Sprintf("Binde %.2f", fees.ProportionalRatePerMille),
		}
		totalCourtFee = totalFee
		advanceCourtFee = advanceFee

		breakdown = append(breakdown,
			BreakdownLine{Label: "Dava Değeri", Value: caseValue},
			BreakdownLine{Label: fmt.Sprintf("Nispi Harç (Binde %.2f)", fees.ProportionalRatePerMille), Value: mathutil.Round(totalFee)},
			BreakdownLine{Label: "Peşin Harç (1/4)", Value: mathutil.Round(advanceFee), Note: "Dava açılırken ödenir"},
			BreakdownLine{Label: "Bakiye Harç (3/4)", Value: mathutil.Round(remainingFee), Note: "Karar sonrası ödenir"},
		)
	} else {
		fee := fees.FixedFee(in.CaseType)
		fixedFee = &fee
		totalCourtFee = fee
		advanceCourtFee = fee

		breakdown = append(breakdown,
			BreakdownLine{Label: "Maktu Harç", Value: mathutil.Round(fee), Note: "Sabit tutar"},
		)
	}

	expenseAdvance := fees.ExpenseAdvance(in.CourtType)
	breakdown = append(breakdown,
		BreakdownLine{Label: "Gider Avansı", Value: expenseAdvance, Note: "Tahmini tebligat ve posta giderleri"},
	)

	totalAdvancePayment := advanceCourtFee + expenseAdvance
	breakdown = append(breakdown,
		BreakdownLine{Label: "Toplam Peşin Ödeme", Value: mathutil.Round(totalAdvancePayment), Note: "Dava açılışında ödenecek"},
	)

	feeType := FeeFixed
	if isProportional {
		feeType = FeeProportional
	}

	return CourtFeeResult{
		CaseType:            in.CaseType,
		CaseTypeLabel:       caseTypeLabel,
		FeeType:             feeType,
		CaseValue:           in.CaseValue,
		ProportionalFee:     proportional,
		FixedFee:            fixedFee,
		ExpenseAdvance:      expenseAdvance,
		TotalAdvancePayment: mathutil.Round(totalAdvancePayment),
		TotalCourtFee:       mathutil.Round(totalCourtFee),
		Breakdown:           breakdown,
		Disclaimer:          DisclaimerGeneral,
	}
}
