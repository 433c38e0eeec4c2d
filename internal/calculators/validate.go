package calculators

import (
	"math"
	"time"

	"github.com/mkaraduman/legal-calculators/pkg/constants"
	"github.com/mkaraduman/legal-calculators/pkg/datetime"
	"github.com/mkaraduman/legal-calculators/pkg/mathutil"
)

// errList collects field errors in rule order so messages come out stable.
type errList struct {
	errs []FieldError
}

func (l *errList) add(field, message string) {
	l.errs = append(l.errs, FieldError{Field: field, Message: message})
}

// checkDay validates a required YYYY-MM-DD date string. Returns the parsed
// date and whether it was usable.
func (l *errList) checkDay(field, value string) (time.Time, bool) {
	if value == "" {
		l.add(field, "Tarih girilmelidir")
		return time.Time{}, false
	}
	t, err := datetime.ParseDay(value)
	if err != nil {
		l.add(field, "Tarih YYYY-MM-DD formatında olmalıdır")
		return time.Time{}, false
	}
	return t, true
}

// checkPastDay validates a required date that may not lie in the future.
func (l *errList) checkPastDay(field, value string, now time.Time, futureMessage string) (time.Time, bool) {
	t, ok := l.checkDay(field, value)
	if !ok {
		return t, false
	}
	if t.After(now) {
		l.add(field, futureMessage)
		return t, false
	}
	return t, true
}

// checkMoney validates a monetary amount: non-negative, finite, at most two
// decimal places, and below the global ceiling.
func (l *errList) checkMoney(field string, value float64) bool {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		l.add(field, "Geçersiz sayı")
		return false
	}
	if value < 0 {
		l.add(field, "Tutar negatif olamaz")
		return false
	}
	if !mathutil.HasAtMostTwoDecimals(value) {
		l.add(field, "Tutar en fazla 2 ondalık basamak içerebilir")
		return false
	}
	if value > constants.MaxCurrencyAmount {
		l.add(field, "Tutar çok yüksek")
		return false
	}
	return true
}

// checkRequiredMoney additionally rejects amounts below one lira, which the
// forms treat as "not entered".
func (l *errList) checkRequiredMoney(field string, value float64, missingMessage string) bool {
	if !l.checkMoney(field, value) {
		return false
	}
	if value < 1 {
		l.add(field, missingMessage)
		return false
	}
	return true
}

// checkCount validates a non-negative integer count with an upper bound.
// max < 0 means unbounded.
func (l *errList) checkCount(field string, value, max int, highMessage string) bool {
	if value < 0 {
		l.add(field, "Değer negatif olamaz")
		return false
	}
	if max >= 0 && value > max {
		l.add(field, highMessage)
		return false
	}
	return true
}
