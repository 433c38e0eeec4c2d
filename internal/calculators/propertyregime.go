package calculators

import (
	"fmt"
	"time"

	"github.com/mkaraduman/legal-calculators/internal/tariff"
	"github.com/mkaraduman/legal-calculators/pkg/datetime"
	"github.com/mkaraduman/legal-calculators/pkg/format"
	"github.com/mkaraduman/legal-calculators/pkg/mathutil"
)

// Asset is one item of property declared by a spouse.
type Asset struct {
	Name            string  `json:"name"`
	Value           float64 `json:"value"`
	AcquisitionDate string  `json:"acquisitionDate,omitempty"`
}

// PropertyRegimeInput is the marital property division (mal rejimi)
// calculation input. Spouse 1 is the claimant.
type PropertyRegimeInput struct {
	MarriageDate string `json:"marriageDate"`
	// SeparationDate defaults to the current day when empty.
	SeparationDate string `json:"separationDate,omitempty"`

	Spouse1PersonalAssets []Asset `json:"spouse1PersonalAssets"`
	Spouse1AcquiredAssets []Asset `json:"spouse1AcquiredAssets"`
	Spouse1Debts          float64 `json:"spouse1Debts"`

	Spouse2PersonalAssets []Asset `json:"spouse2PersonalAssets"`
	Spouse2AcquiredAssets []Asset `json:"spouse2AcquiredAssets"`
	Spouse2Debts          float64 `json:"spouse2Debts"`
}

// Normalize validates the input, resolves an omitted separation date to the
// current day, and leaves absent asset lists as empty.
func (in PropertyRegimeInput) Normalize(now time.Time) (PropertyRegimeInput, []FieldError) {
	var l errList
	marriage, marriageOK := l.checkDay("marriageDate", in.MarriageDate)
	if in.SeparationDate == "" {
		in.SeparationDate = datetime.FormatDay(now)
	}
	separation, separationOK := l.checkDay("separationDate", in.SeparationDate)
	if marriageOK && separationOK && !marriage.Before(separation) {
		l.add("marriageDate", "Evlilik tarihi ayrılık tarihinden önce olmalıdır")
	}

	l.checkAssets("spouse1PersonalAssets", in.Spouse1PersonalAssets)
	l.checkAssets("spouse1AcquiredAssets", in.Spouse1AcquiredAssets)
	l.checkMoney("spouse1Debts", in.Spouse1Debts)
	l.checkAssets("spouse2PersonalAssets", in.Spouse2PersonalAssets)
	l.checkAssets("spouse2AcquiredAssets", in.Spouse2AcquiredAssets)
	l.checkMoney("spouse2Debts", in.Spouse2Debts)

	return in, l.errs
}

func (l *errList) checkAssets(field string, assets []Asset) {
	for i, asset := range assets {
		if asset.Name == "" {
			l.add(fmt.Sprintf("%s[%d].name", field, i), "Mal adı girilmelidir")
		}
		l.checkMoney(fmt.Sprintf("%s[%d].value", field, i), asset.Value)
		if asset.AcquisitionDate != "" {
			l.checkDay(fmt.Sprintf("%s[%d].acquisitionDate", field, i), asset.AcquisitionDate)
		}
	}
}

// PropertySummary aggregates one spouse's declared property.
type PropertySummary struct {
	PersonalAssetTotal float64 `json:"personalAssetTotal"`
	AcquiredAssetTotal float64 `json:"acquiredAssetTotal"`
	Debts              float64 `json:"debts"`
	NetAcquiredAssets  float64 `json:"netAcquiredAssets"`
}

// Creditor identifies which spouse holds the participation claim.
type Creditor string

const (
	CreditorSpouse1 Creditor = "spouse1"
	CreditorSpouse2 Creditor = "spouse2"
	CreditorEqual   Creditor = "equal"
)

// ComparisonLine is one side-by-side display row of the two spouses' totals.
type ComparisonLine struct {
	Label   string  `json:"label"`
	Spouse1 float64 `json:"spouse1"`
	Spouse2 float64 `json:"spouse2"`
}

// PropertyRegimeResult is the marital property division output.
type PropertyRegimeResult struct {
	Spouse1Summary     PropertySummary    `json:"spouse1Summary"`
	Spouse2Summary     PropertySummary    `json:"spouse2Summary"`
	Spouse1Surplus     float64            `json:"spouse1SurplusValue"`
	Spouse2Surplus     float64            `json:"spouse2SurplusValue"`
	ParticipationClaim float64            `json:"participationClaim"`
	Creditor           Creditor           `json:"creditor"`
	AmountToPay        float64            `json:"amountToPay"`
	Explanation        string             `json:"explanation"`
	Comparison         []ComparisonLine   `json:"comparison"`
	Breakdown          []BreakdownLine    `json:"breakdown"`
	Disclaimer         DisclaimerCategory `json:"disclaimer"`
}

func summarize(personal, acquired []Asset, debts float64) PropertySummary {
	personalTotal := 0.0
	for _, asset := range personal {
		personalTotal += asset.Value
	}
	acquiredTotal := 0.0
	for _, asset := range acquired {
		acquiredTotal += asset.Value
	}
	return PropertySummary{
		PersonalAssetTotal: mathutil.Round(personalTotal),
		AcquiredAssetTotal: mathutil.Round(acquiredTotal),
		Debts:              debts,
		NetAcquiredAssets:  mathutil.Round(mathutil.Max(0, acquiredTotal-debts)),
	}
}

// CalculatePropertyRegime computes the participation claim between spouses.
//
// Each spouse's surplus value is their acquired property net of debts,
// floored at zero; the lower-surplus spouse is owed half the difference.
func CalculatePropertyRegime(in PropertyRegimeInput, t *tariff.Table) PropertyRegimeResult {
	spouse1 := summarize(in.Spouse1PersonalAssets, in.Spouse1AcquiredAssets, in.Spouse1Debts)
	spouse2 := summarize(in.Spouse2PersonalAssets, in.Spouse2AcquiredAssets, in.Spouse2Debts)

	surplus1 := spouse1.NetAcquiredAssets
	surplus2 := spouse2.NetAcquiredAssets

	claim := (surplus2 - surplus1) * t.PropertyRegime.ParticipationClaimRate

	var creditor Creditor
	var amountToPay float64
	var explanation string
	switch {
	case claim > 0:
		creditor = CreditorSpouse1
		amountToPay = claim
		explanation = fmt.Sprintf(
			"Eş 2'nin artık değeri daha yüksek olduğundan, Eş 1'e %s katılma alacağı ödenmesi gerekir.",
			format.Lira(mathutil.Round(amountToPay)))
	case claim < 0:
		creditor = CreditorSpouse2
		amountToPay = -claim
		explanation = fmt.Sprintf(
			"Eş 1'in artık değeri daha yüksek olduğundan, Eş 2'ye %s katılma alacağı ödenmesi gerekir.",
			format.Lira(mathutil.Round(amountToPay)))
	default:
		creditor = CreditorEqual
		explanation = "Her iki eşin artık değeri eşit olduğundan, karşılıklı alacak bulunmamaktadır."
	}

	return PropertyRegimeResult{
		Spouse1Summary:     spouse1,
		Spouse2Summary:     spouse2,
		Spouse1Surplus:     surplus1,
		Spouse2Surplus:     surplus2,
		ParticipationClaim: mathutil.Round(claim),
		Creditor:           creditor,
		AmountToPay:        mathutil.Round(amountToPay),
		Explanation:        explanation,
		Comparison: []ComparisonLine{
			{Label: "Kişisel Mallar Toplamı", Spouse1: spouse1.PersonalAssetTotal, Spouse2: spouse2.PersonalAssetTotal},
			{Label: "Edinilmiş Mallar Toplamı", Spouse1: spouse1.AcquiredAssetTotal, Spouse2: spouse2.AcquiredAssetTotal},
			{Label: "Borçlar", Spouse1: spouse1.Debts, Spouse2: spouse2.Debts},
			{Label: "Net Edinilmiş Mallar", Spouse1: spouse1.NetAcquiredAssets, Spouse2: spouse2.NetAcquiredAssets},
			{Label: "Artık Değer", Spouse1: surplus1, Spouse2: surplus2},
		},
		Breakdown: []BreakdownLine{
			{Label: "Eş 1 Artık Değer", Value: surplus1},
			{Label: "Eş 2 Artık Değer", Value: surplus2},
			{Label: "Katılma Alacağı", Value: mathutil.Round(amountToPay), Note: string(creditor)},
		},
		Disclaimer: DisclaimerPropertyRegime,
	}
}
