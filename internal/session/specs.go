package session

import "github.com/mkaraduman/legal-calculators/internal/calculators"

// The calculator specs, named after the practice site's calculator pages.

var SeveranceSpec = Spec[calculators.SeveranceInput, calculators.SeveranceResult]{
	Name:       "kidem-tazminati",
	Disclaimer: calculators.DisclaimerGeneral,
	Normalize:  calculators.SeveranceInput.Normalize,
	Compute:    calculators.CalculateSeverance,
}

var InheritanceSpec = Spec[calculators.InheritanceInput, calculators.InheritanceResult]{
	Name:       "miras-payi",
	Disclaimer: calculators.DisclaimerGeneral,
	Normalize:  calculators.InheritanceInput.Normalize,
	Compute:    calculators.CalculateInheritance,
}

var InterestSpec = Spec[calculators.InterestInput, calculators.InterestResult]{
	Name:       "gecikme-faizi",
	Disclaimer: calculators.DisclaimerGeneral,
	Normalize:  calculators.InterestInput.Normalize,
	Compute:    calculators.CalculateInterest,
}

var ExecutionSpec = Spec[calculators.ExecutionInput, calculators.ExecutionResult]{
	Name:       "infaz-hesaplama",
	Disclaimer: calculators.DisclaimerExecution,
	Normalize:  calculators.ExecutionInput.Normalize,
	Compute:    calculators.CalculateExecution,
}

var PropertyRegimeSpec = Spec[calculators.PropertyRegimeInput, calculators.PropertyRegimeResult]{
	Name:       "mal-rejimi",
	Disclaimer: calculators.DisclaimerPropertyRegime,
	Normalize:  calculators.PropertyRegimeInput.Normalize,
	Compute:    calculators.CalculatePropertyRegime,
}

var TaxPenaltySpec = Spec[calculators.TaxPenaltyInput, calculators.TaxPenaltyResult]{
	Name:       "vergi-cezasi",
	Disclaimer: calculators.DisclaimerTax,
	Normalize:  calculators.TaxPenaltyInput.Normalize,
	Compute:    calculators.CalculateTaxPenalty,
}

var CourtFeesSpec = Spec[calculators.CourtFeeInput, calculators.CourtFeeResult]{
	Name:       "dava-harclari",
	Disclaimer: calculators.DisclaimerGeneral,
	Normalize:  calculators.CourtFeeInput.Normalize,
	Compute:    calculators.CalculateCourtFees,
}
