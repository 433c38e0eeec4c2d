// Package tariff defines the versioned table of jurisdiction-specific numeric
// values the calculators depend on: rate schedules, fee tariffs, statutory
// ratios, and ceilings.
//
// The table is pure data. Calculators receive it as a parameter and never
// hard-code a statutory value inline, so a new year's figures can be loaded
// from configuration without touching calculator logic. After construction
// the table is read-only and safe to share between calculations.
package tariff

import (
	"fmt"
	"sort"
)

// Entry is one rate in a schedule, effective from its date onward.
// EffectiveDate is a YYYY-MM-DD string; zero-padded ISO dates compare
// correctly as strings.
type Entry struct {
	EffectiveDate string  `mapstructure:"effectiveDate" json:"effectiveDate"`
	Rate          float64 `mapstructure:"rate" json:"rate"`
}

// Schedule is a date-ordered rate history, newest entry first.
type Schedule []Entry

// RateOn returns the rate applicable on the given YYYY-MM-DD day: the most
// recent entry whose effective date is on or before the day. When the day
// precedes every entry the oldest rate is returned with exact=false so
// callers can surface the fallback instead of treating it as a real lookup.
func (s Schedule) RateOn(day string) (rate float64, exact bool) {
	if len(s) == 0 {
		return 0, false
	}
	for _, entry := range s {
		if entry.EffectiveDate <= day {
			return entry.Rate, true
		}
	}
	return s[len(s)-1].Rate, false
}

// BoundariesWithin returns the effective dates falling strictly inside the
// (start, end) interval, ascending. These are the points where an interest
// computation must split into sub-periods.
func (s Schedule) BoundariesWithin(start, end string) []string {
	var boundaries []string
	for _, entry := range s {
		if entry.EffectiveDate > start && entry.EffectiveDate < end {
			boundaries = append(boundaries, entry.EffectiveDate)
		}
	}
	sort.Strings(boundaries)
	return boundaries
}

// normalize sorts the schedule newest-first and rejects duplicate effective
// dates. Duplicates are a configuration error, not a last-wins merge.
func (s Schedule) normalize(name string) (Schedule, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("schedule %s has no entries", name)
	}
	sorted := make(Schedule, len(s))
	copy(sorted, s)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].EffectiveDate > sorted[j].EffectiveDate
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i].EffectiveDate == sorted[i-1].EffectiveDate {
			return nil, fmt.Errorf("schedule %s has duplicate effective date %s", name, sorted[i].EffectiveDate)
		}
	}
	return sorted, nil
}

// Severance holds the severance pay parameters.
type Severance struct {
	Ceiling      float64 `mapstructure:"ceiling" json:"ceiling"`
	DaysPerYear  int     `mapstructure:"daysPerYear" json:"daysPerYear"`
	StampTaxRate float64 `mapstructure:"stampTaxRate" json:"stampTaxRate"`
}

// CourtFees holds the filing fee tariff.
type CourtFees struct {
	ProportionalRatePerMille float64            `mapstructure:"proportionalRatePerMille" json:"proportionalRatePerMille"`
	AdvancePercentage        float64            `mapstructure:"advancePercentage" json:"advancePercentage"`
	FixedFees                map[string]float64 `mapstructure:"fixedFees" json:"fixedFees"`
	DefaultFixedFee          float64            `mapstructure:"defaultFixedFee" json:"defaultFixedFee"`
	ExpenseAdvances          map[string]float64 `mapstructure:"expenseAdvances" json:"expenseAdvances"`
	DefaultExpenseAdvance    float64            `mapstructure:"defaultExpenseAdvance" json:"defaultExpenseAdvance"`
}

// FixedFee returns the flat fee for a case type, falling back to the default.
func (c CourtFees) FixedFee(caseType string) float64 {
	if fee, ok := c.FixedFees[caseType]; ok {
		return fee
	}
	return c.DefaultFixedFee
}

// ExpenseAdvance returns the expense advance for a court type, falling back
// to the default.
func (c CourtFees) ExpenseAdvance(courtType string) float64 {
	if advance, ok := c.ExpenseAdvances[courtType]; ok {
		return advance
	}
	return c.DefaultExpenseAdvance
}

// Inheritance holds the statutory share ratios.
type Inheritance struct {
	SpouseWithChildren     float64 `mapstructure:"spouseWithChildren" json:"spouseWithChildren"`
	SpouseWithParents      float64 `mapstructure:"spouseWithParents" json:"spouseWithParents"`
	SpouseWithGrandparents float64 `mapstructure:"spouseWithGrandparents" json:"spouseWithGrandparents"`
	SpouseAlone            float64 `mapstructure:"spouseAlone" json:"spouseAlone"`
	ReservedDescendant     float64 `mapstructure:"reservedDescendant" json:"reservedDescendant"`
	ReservedParent         float64 `mapstructure:"reservedParent" json:"reservedParent"`
	ReservedSpouse         float64 `mapstructure:"reservedSpouse" json:"reservedSpouse"`
}

// Execution holds the conditional release parameters.
type Execution struct {
	ReleaseRates        map[string]float64 `mapstructure:"releaseRates" json:"releaseRates"`
	LifeYears           int                `mapstructure:"lifeYears" json:"lifeYears"`
	AggravatedLifeYears int                `mapstructure:"aggravatedLifeYears" json:"aggravatedLifeYears"`
	SupervisedMaxYears  int                `mapstructure:"supervisedMaxYears" json:"supervisedMaxYears"`
	SupervisedMinMonths int                `mapstructure:"supervisedMinMonths" json:"supervisedMinMonths"`
	RecidivismAddition  float64            `mapstructure:"recidivismAddition" json:"recidivismAddition"`
	MinorMultiplier     float64            `mapstructure:"minorMultiplier" json:"minorMultiplier"`
	MinorFloor          float64            `mapstructure:"minorFloor" json:"minorFloor"`
}

// PropertyRegime holds the participation claim rate.
type PropertyRegime struct {
	ParticipationClaimRate float64 `mapstructure:"participationClaimRate" json:"participationClaimRate"`
}

// Table is the complete constants table for one tariff year.
type Table struct {
	Year int `mapstructure:"year" json:"year"`

	Severance      Severance      `mapstructure:"severance" json:"severance"`
	CourtFees      CourtFees      `mapstructure:"courtFees" json:"courtFees"`
	Inheritance    Inheritance    `mapstructure:"inheritance" json:"inheritance"`
	Execution      Execution      `mapstructure:"execution" json:"execution"`
	PropertyRegime PropertyRegime `mapstructure:"propertyRegime" json:"propertyRegime"`

	// Annual percentage rates by effective date.
	LegalInterest      Schedule `mapstructure:"legalInterest" json:"legalInterest"`
	CommercialInterest Schedule `mapstructure:"commercialInterest" json:"commercialInterest"`

	// Monthly percentage rates used for tax delay penalties.
	TaxDelay Schedule `mapstructure:"taxDelay" json:"taxDelay"`

	// Yİ-ÜFE price index by YYYY-MM month, and the assumed annual rate used
	// when a month is missing from the series.
	PriceIndex                map[string]float64 `mapstructure:"priceIndex" json:"priceIndex"`
	RestructuringFallbackRate float64            `mapstructure:"restructuringFallbackRate" json:"restructuringFallbackRate"`
}

// InterestSchedule selects the legal or commercial schedule by name.
// Anything other than "commercial" resolves to the legal schedule.
func (t *Table) InterestSchedule(interestType string) Schedule {
	if interestType == "commercial" {
		return t.CommercialInterest
	}
	return t.LegalInterest
}

// PriceIndexOn returns the price index for a YYYY-MM month key.
func (t *Table) PriceIndexOn(month string) (float64, bool) {
	index, ok := t.PriceIndex[month]
	return index, ok
}

// Validate normalizes the schedules and checks the table for values that
// would break the calculators. A failing table is a configuration error and
// must not reach computation.
func (t *Table) Validate() error {
	var err error
	if t.LegalInterest, err = t.LegalInterest.normalize("legalInterest"); err != nil {
		return err
	}
	if t.CommercialInterest, err = t.CommercialInterest.normalize("commercialInterest"); err != nil {
		return err
	}
	if t.TaxDelay, err = t.TaxDelay.normalize("taxDelay"); err != nil {
		return err
	}
	if t.Severance.Ceiling <= 0 {
		return fmt.Errorf("severance ceiling must be positive, got %.2f", t.Severance.Ceiling)
	}
	if t.Severance.DaysPerYear <= 0 {
		return fmt.Errorf("severance daysPerYear must be positive, got %d", t.Severance.DaysPerYear)
	}
	if t.CourtFees.ProportionalRatePerMille <= 0 {
		return fmt.Errorf("proportional fee rate must be positive, got %.2f", t.CourtFees.ProportionalRatePerMille)
	}
	if len(t.Execution.ReleaseRates) == 0 {
		return fmt.Errorf("execution release rates are missing")
	}
	return nil
}

// Default returns the built-in 2025 table. The values must be updated
// out-of-band as the law changes; loading overrides from configuration is
// the supported path for that.
func Default() *Table {
	t := &Table{
		Year: 2025,
		Severance: Severance{
			Ceiling:      35058.58,
			DaysPerYear:  30,
			StampTaxRate: 0.00759,
		},
		CourtFees: CourtFees{
			ProportionalRatePerMille: 68.31,
			AdvancePercentage:        25,
			FixedFees: map[string]float64{
				"bosanma":   1197.90,
				"velayet":   1197.90,
				"nafaka":    1197.90,
				"iseDavasi": 1197.90,
				"tahliye":   1197.90,
				"icraInkar": 1197.90,
			},
			DefaultFixedFee: 1197.90,
			ExpenseAdvances: map[string]float64{
				"asliHukuk":     850,
				"asliyeCeza":    650,
				"isMahkemesi":   750,
				"icraMahkemesi": 450,
				"aileMahkemesi": 950,
			},
			DefaultExpenseAdvance: 850,
		},
		Inheritance: Inheritance{
			SpouseWithChildren:     0.25,
			SpouseWithParents:      0.50,
			SpouseWithGrandparents: 0.75,
			SpouseAlone:            1.0,
			ReservedDescendant:     0.50,
			ReservedParent:         0.25,
			ReservedSpouse:         0.50,
		},
		Execution: Execution{
			ReleaseRates: map[string]float64{
				"standard":       0.50,
				"terrorism":      0.75,
				"sexualCrime":    0.75,
				"organizedCrime": 0.75,
			},
			LifeYears:           24,
			AggravatedLifeYears: 30,
			SupervisedMaxYears:  3,
			SupervisedMinMonths: 1,
			RecidivismAddition:  0.125,
			MinorMultiplier:     0.8,
			MinorFloor:          0.4,
		},
		PropertyRegime: PropertyRegime{
			ParticipationClaimRate: 0.50,
		},
		LegalInterest: Schedule{
			{EffectiveDate: "2024-07-01", Rate: 24},
			{EffectiveDate: "2024-01-01", Rate: 24},
			{EffectiveDate: "2023-07-01", Rate: 24},
			{EffectiveDate: "2023-01-01", Rate: 24},
			{EffectiveDate: "2022-07-01", Rate: 18},
			{EffectiveDate: "2022-01-01", Rate: 18},
			{EffectiveDate: "2021-01-01", Rate: 9},
			{EffectiveDate: "2020-01-01", Rate: 9},
			{EffectiveDate: "2019-01-01", Rate: 9},
		},
		CommercialInterest: Schedule{
			{EffectiveDate: "2024-07-01", Rate: 54},
			{EffectiveDate: "2024-01-01", Rate: 48},
			{EffectiveDate: "2023-07-01", Rate: 36},
			{EffectiveDate: "2023-01-01", Rate: 24},
		},
		TaxDelay: Schedule{
			{EffectiveDate: "2024-07-01", Rate: 4.5},
			{EffectiveDate: "2024-01-01", Rate: 4.5},
			{EffectiveDate: "2023-07-01", Rate: 3.5},
			{EffectiveDate: "2023-01-01", Rate: 2.5},
			{EffectiveDate: "2022-07-01", Rate: 2.5},
			{EffectiveDate: "2022-01-01", Rate: 1.6},
		},
		PriceIndex: map[string]float64{
			"2024-12": 2834.56,
			"2024-11": 2789.23,
			"2024-10": 2756.89,
			"2024-09": 2701.45,
			"2024-08": 2678.12,
			"2024-07": 2623.78,
			"2024-06": 2589.34,
			"2024-05": 2534.67,
			"2024-04": 2489.23,
			"2024-03": 2445.89,
			"2024-02": 2398.56,
			"2024-01": 2356.12,
		},
		RestructuringFallbackRate: 0.85,
	}
	if err := t.Validate(); err != nil {
		// The built-in table is compiled in; failing to validate it is
		// programmer error.
		panic(err)
	}
	return t
}
