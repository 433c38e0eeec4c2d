// Package calculators implements the legal computations offered by the
// practice: severance pay, inheritance shares, statutory default interest,
// sentence execution, marital property division, tax delay penalties, and
// court filing fees.
//
// Each calculator is a pure function from a normalized input and a tariff
// table to a result with a display-ready breakdown. Validation lives on the
// input types; computation assumes it already ran. The only impurity, the
// "end date defaults to today" rule, is confined to Normalize, which takes
// the current time as a parameter.
package calculators

import "fmt"

// BreakdownLine is one display row of a calculation result. Value is always
// rounded to two decimals at the point of inclusion.
type BreakdownLine struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Note  string  `json:"note,omitempty"`
}

// TextLine is a display row whose value is not a monetary amount, such as a
// duration or a date.
type TextLine struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// FieldError describes one violated validation rule, identifying the
// offending field path.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// DisclaimerCategory identifies which disclaimer text the surrounding
// application should attach to a result. The wording is owned by the
// presentation layer; the core only reports the category.
type DisclaimerCategory string

const (
	DisclaimerGeneral        DisclaimerCategory = "general"
	DisclaimerExecution      DisclaimerCategory = "execution"
	DisclaimerPropertyRegime DisclaimerCategory = "propertyRegime"
	DisclaimerTax            DisclaimerCategory = "tax"
)
