package calculators

import (
	"time"

	"github.com/mkaraduman/legal-calculators/internal/tariff"
	"github.com/mkaraduman/legal-calculators/pkg/constants"
	"github.com/mkaraduman/legal-calculators/pkg/datetime"
	"github.com/mkaraduman/legal-calculators/pkg/mathutil"
)

// Interest type selectors.
const (
	InterestLegal      = "legal"
	InterestCommercial = "commercial"
)

// InterestInput is the default interest (gecikme faizi) calculation input.
type InterestInput struct {
	Principal float64 `json:"principal"`
	StartDate string  `json:"startDate"`
	// EndDate defaults to the current day when empty.
	EndDate      string `json:"endDate,omitempty"`
	InterestType string `json:"interestType,omitempty"`
}

// Normalize validates the input, defaults the interest type to legal, and
// resolves an omitted end date to the current day.
func (in InterestInput) Normalize(now time.Time) (InterestInput, []FieldError) {
	var l errList
	l.checkRequiredMoney("principal", in.Principal, "Ana para girilmelidir")

	if in.InterestType == "" {
		in.InterestType = InterestLegal
	}
	if in.InterestType != InterestLegal && in.InterestType != InterestCommercial {
		l.add("interestType", "Faiz türü legal veya commercial olmalıdır")
	}

	start, startOK := l.checkDay("startDate", in.StartDate)
	if in.EndDate == "" {
		in.EndDate = datetime.FormatDay(now)
	}
	end, endOK := l.checkDay("endDate", in.EndDate)
	if startOK && endOK && !start.Before(end) {
		l.add("startDate", "Başlangıç tarihi bitiş tarihinden önce olmalıdır")
	}
	return in, l.errs
}

// InterestPeriod is one constant-rate sub-period of the accrual range.
type InterestPeriod struct {
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Days      int     `json:"days"`
	Rate      float64 `json:"rate"`
	Interest  float64 `json:"interest"`
	Note      string  `json:"note,omitempty"`
}

// InterestResult is the default interest calculation output.
type InterestResult struct {
	Principal           float64            `json:"principal"`
	TotalInterest       float64            `json:"totalInterest"`
	TotalAmount         float64            `json:"totalAmount"`
	TotalDays           int                `json:"totalDays"`
	InterestType        string             `json:"interestType"`
	Periods             []InterestPeriod   `json:"periods"`
	WeightedAverageRate float64            `json:"weightedAverageRate"`
	Breakdown           []BreakdownLine    `json:"breakdown"`
	Disclaimer          DisclaimerCategory `json:"disclaimer"`
}

// CalculateInterest accrues default interest over the date range, splitting
// it into sub-periods at every rate change of the selected schedule. Each
// sub-period accrues principal × rate/365/100 × days.
func CalculateInterest(in InterestInput, t *tariff.Table) InterestResult {
	schedule := t.InterestSchedule(in.InterestType)

	var periods []InterestPeriod
	totalInterest := 0.0
	totalWeightedRate := 0.0
	totalDays := 0

	boundaries := schedule.BoundariesWithin(in.StartDate, in.EndDate)
	boundaries = append(boundaries, in.EndDate)

	current := in.StartDate
	for _, periodEnd := range boundaries {
		days := datetime.DaysBetween(datetime.MustParseDay(current), datetime.MustParseDay(periodEnd))
		if days <= 0 {
			continue
		}

		rate, exact := schedule.RateOn(current)
		dailyRate := rate / constants.DaysPerYear / constants.PercentageMultiplier
		periodInterest := in.Principal * dailyRate * float64(days)

		period := InterestPeriod{
			StartDate: current,
			EndDate:   periodEnd,
			Days:      days,
			Rate:      rate,
			Interest:  mathutil.Round(periodInterest),
		}
		if !exact {
			period.Note = "Tarife başlangıcından önceki dönem için en eski oran kullanıldı"
		}
		periods = append(periods, period)

		totalInterest += periodInterest
		totalWeightedRate += rate * float64(days)
		totalDays += days
		current = periodEnd
	}

	weightedAverageRate := 0.0
	if totalDays > 0 {
		weightedAverageRate = totalWeightedRate / float64(totalDays)
	}

	breakdown := []BreakdownLine{
		{Label: "Ana Para", Value: in.Principal},
		{Label: "Toplam Faiz", Value: mathutil.Round(totalInterest)},
		{Label: "Toplam Tutar", Value: mathutil.Round(in.Principal + totalInterest)},
	}

	return InterestResult{
		Principal:           in.Principal,
		TotalInterest:       mathutil.Round(totalInterest),
		TotalAmount:         mathutil.Round(in.Principal + totalInterest),
		TotalDays:           totalDays,
		InterestType:        in.InterestType,
		Periods:             periods,
		WeightedAverageRate: mathutil.Round(weightedAverageRate),
		Breakdown:           breakdown,
		Disclaimer:          DisclaimerGeneral,
	}
}
