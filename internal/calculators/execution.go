package calculators

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/mkaraduman/legal-calculators/internal/tariff"
	"github.com/mkaraduman/legal-calculators/pkg/constants"
	"github.com/mkaraduman/legal-calculators/pkg/datetime"
	"github.com/mkaraduman/legal-calculators/pkg/mathutil"
)

// CrimeType categorizes the offense for conditional release purposes.
type CrimeType string

const (
	CrimeStandard       CrimeType = "standard"
	CrimeTerrorism      CrimeType = "terrorism"
	CrimeSexual         CrimeType = "sexualCrime"
	CrimeOrganized      CrimeType = "organizedCrime"
	CrimeAggravatedLife CrimeType = "aggravatedLife"
	CrimeLife           CrimeType = "life"
)

var crimeTypes = map[CrimeType]bool{
	CrimeStandard:       true,
	CrimeTerrorism:      true,
	CrimeSexual:         true,
	CrimeOrganized:      true,
	CrimeAggravatedLife: true,
	CrimeLife:           true,
}

// ExecutionInput is the sentence execution (infaz) calculation input.
type ExecutionInput struct {
	CrimeDate      string    `json:"crimeDate"`
	CrimeType      CrimeType `json:"crimeType"`
	SentenceYears  int       `json:"sentenceYears"`
	SentenceMonths int       `json:"sentenceMonths"`
	SentenceDays   int       `json:"sentenceDays"`
	IsRecidivist   bool      `json:"isRecidivist"`
	IsMinor        bool      `json:"isMinor"`
	DetentionDays  int       `json:"detentionDays"`
}

// Normalize validates the input. Booleans and the detention credit default
// to their zero values.
func (in ExecutionInput) Normalize(now time.Time) (ExecutionInput, []FieldError) {
	var l errList
	l.checkPastDay("crimeDate", in.CrimeDate, now, "Suç tarihi gelecekte olamaz")
	if in.CrimeType == "" {
		in.CrimeType = CrimeStandard
	}
	if !crimeTypes[in.CrimeType] {
		l.add("crimeType", "Geçersiz suç türü")
	}
	l.checkCount("sentenceYears", in.SentenceYears, 100, "Ceza süresi çok yüksek")
	l.checkCount("sentenceMonths", in.SentenceMonths, 11, "Ay 0-11 arasında olmalıdır")
	l.checkCount("sentenceDays", in.SentenceDays, 30, "Gün 0-30 arasında olmalıdır")
	l.checkCount("detentionDays", in.DetentionDays, -1, "")
	return in, l.errs
}

// ExecutionResult is the sentence execution calculation output.
type ExecutionResult struct {
	TotalSentenceDays       int                `json:"totalSentenceDays"`
	ConditionalReleaseRate  float64            `json:"conditionalReleaseRate"`
	RequiredDays            int                `json:"requiredDays"`
	RemainingAfterDetention int                `json:"remainingAfterDetention"`
	SupervisedReleaseDays   int                `json:"supervisedReleaseDays"`
	NetPrisonDays           int                `json:"netPrisonDays"`
	EstimatedReleaseDate    string             `json:"estimatedReleaseDate"`
	EstimatedPrisonExitDate string             `json:"estimatedPrisonExitDate"`
	Breakdown               []TextLine         `json:"breakdown"`
	AppliedRules            []string           `json:"appliedRules"`
	Disclaimer              DisclaimerCategory `json:"disclaimer"`
}

// sentenceDays converts a sentence to days with the statutory 365-day year
// and 30-day month.
func sentenceDays(years, months, days int) int {
	return years*constants.DaysPerYear + months*constants.DaysPerMonth + days
}

// daysToYMD renders a day count in the conventional yıl/ay/gün form.
func daysToYMD(totalDays int) string {
	years := totalDays / constants.DaysPerYear
	months := (totalDays % constants.DaysPerYear) / constants.DaysPerMonth
	days := totalDays % constants.DaysPerMonth

	var parts []string
	if years > 0 {
		parts = append(parts, fmt.Sprintf("%d yıl", years))
	}
	if months > 0 {
		parts = append(parts, fmt.Sprintf("%d ay", months))
	}
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%d gün", days))
	}
	if len(parts) == 0 {
		return "0 gün"
	}
	return strings.Join(parts, " ")
}

// CalculateExecution estimates the custodial timeline for a sentence:
// conditional release fraction by crime category, detention credit,
// supervised release tail, and the resulting calendar dates counted from
// the offense date.
func CalculateExecution(in ExecutionInput, t *tariff.Table) ExecutionResult {
	rules := t.Execution
	var appliedRules []string
	crimeDate := datetime.MustParseDay(in.CrimeDate)

	totalDays := sentenceDays(in.SentenceYears, in.SentenceMonths, in.SentenceDays)

	// Life and aggravated life replace the term wholesale and are served in
	// full, with no release fraction.
	isLifeSentence := false
	switch in.CrimeType {
	case CrimeAggravatedLife:
		totalDays = rules.AggravatedLifeYears * constants.DaysPerYear
		isLifeSentence = true
		appliedRules = append(appliedRules,
			fmt.Sprintf("Ağırlaştırılmış müebbet hapis: %d yıl sonra koşullu salıverilme", rules.AggravatedLifeYears))
	case CrimeLife:
		totalDays = rules.LifeYears * constants.DaysPerYear
		isLifeSentence = true
		appliedRules = append(appliedRules,
			fmt.Sprintf("Müebbet hapis: %d yıl sonra koşullu salıverilme", rules.LifeYears))
	}

	releaseRate := rules.ReleaseRates[string(CrimeStandard)]
	switch in.CrimeType {
	case CrimeTerrorism:
		releaseRate = rules.ReleaseRates[string(CrimeTerrorism)]
		appliedRules = append(appliedRules, "Terör suçu: 3/4 oranı uygulandı")
	case CrimeSexual:
		releaseRate = rules.ReleaseRates[string(CrimeSexual)]
		appliedRules = append(appliedRules, "Cinsel suç: 3/4 oranı uygulandı")
	case CrimeOrganized:
		releaseRate = rules.ReleaseRates[string(CrimeOrganized)]
		appliedRules = append(appliedRules, "Örgütlü suç: 3/4 oranı uygulandı")
	case CrimeStandard:
		appliedRules = append(appliedRules, "Standart suç: 1/2 oranı uygulandı")
	}

	if in.IsRecidivist {
		releaseRate += rules.RecidivismAddition
		appliedRules = append(appliedRules,
			fmt.Sprintf("Tekerrür: Orana 1/8 eklendi (Yeni oran: %%%d)", int(math.Round(releaseRate*100))))
	}

	// Offenders who were minors at the offense date serve a reduced
	// fraction, never below the statutory floor.
	if in.IsMinor {
		releaseRate = mathutil.Max(releaseRate*rules.MinorMultiplier, rules.MinorFloor)
		appliedRules = append(appliedRules, "Yaş küçüklüğü: Oran %20 azaltıldı")
	}

	var requiredDays int
	if isLifeSentence {
		requiredDays = totalDays
	} else {
		requiredDays = int(math.Ceil(float64(totalDays) * releaseRate))
	}

	remainingAfterDetention := requiredDays - in.DetentionDays
	if remainingAfterDetention < 0 {
		remainingAfterDetention = 0
	}
	if in.DetentionDays > 0 {
		appliedRules = append(appliedRules, fmt.Sprintf("Tutukluluk mahsubu: %d gün düşüldü", in.DetentionDays))
	}

	// Supervised release covers up to half the remaining time, capped at the
	// statutory maximum and floored at the minimum, but sentences under one
	// year get none at all.
	supervisedDays := remainingAfterDetention / 2
	maxSupervised := rules.SupervisedMaxYears * constants.DaysPerYear
	if supervisedDays > maxSupervised {
		supervisedDays = maxSupervised
	}
	minSupervised := rules.SupervisedMinMonths * constants.DaysPerMonth
	if supervisedDays < minSupervised {
		supervisedDays = minSupervised
	}
	if totalDays < constants.DaysPerYear {
		supervisedDays = 0
		appliedRules = append(appliedRules, "1 yıldan az ceza: Denetimli serbestlik uygulanmaz")
	} else {
		appliedRules = append(appliedRules, fmt.Sprintf("Denetimli serbestlik: %s", daysToYMD(supervisedDays)))
	}

	netPrisonDays := remainingAfterDetention - supervisedDays
	if netPrisonDays < 0 {
		netPrisonDays = 0
	}

	prisonExit := datetime.AddDays(crimeDate, netPrisonDays)
	release := datetime.AddDays(crimeDate, remainingAfterDetention)

	return ExecutionResult{
		TotalSentenceDays:       totalDays,
		ConditionalReleaseRate:  mathutil.Round(releaseRate),
		RequiredDays:            requiredDays,
		RemainingAfterDetention: remainingAfterDetention,
		SupervisedReleaseDays:   supervisedDays,
		NetPrisonDays:           netPrisonDays,
		EstimatedReleaseDate:    datetime.FormatDay(release),
		EstimatedPrisonExitDate: datetime.FormatDay(prisonExit),
		Breakdown: []TextLine{
			{Label: "Toplam Ceza Süresi", Value: daysToYMD(totalDays)},
			{Label: "Koşullu Salıverilme Oranı", Value: fmt.Sprintf("%%%d", int(math.Round(releaseRate*100)))},
			{Label: "İnfaz Edilecek Süre", Value: daysToYMD(requiredDays)},
			{Label: "Tutukluluk Mahsubu", Value: fmt.Sprintf("%d gün", in.DetentionDays)},
			{Label: "Kalan Süre", Value: daysToYMD(remainingAfterDetention)},
			{Label: "Denetimli Serbestlik", Value: daysToYMD(supervisedDays)},
			{Label: "Net Yatar Süre", Value: daysToYMD(netPrisonDays)},
			{Label: "Tahmini Cezaevinden Çıkış", Value: prisonExit.Format(constants.DisplayDayLayout)},
			{Label: "Tahmini Koşullu Salıverilme", Value: release.Format(constants.DisplayDayLayout)},
		},
		AppliedRules: appliedRules,
		Disclaimer:   DisclaimerExecution,
	}
}
