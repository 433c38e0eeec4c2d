package tariff

// Overrides carries the tariff values that may be replaced from the YAML
// configuration. Nil or empty fields keep the built-in defaults; schedules
// replace wholesale while the price index merges entry by entry so a config
// can extend the series without restating it.
type Overrides struct {
	Year           *int            `mapstructure:"year"`
	Severance      *Severance      `mapstructure:"severance"`
	CourtFees      *CourtFees      `mapstructure:"courtFees"`
	Inheritance    *Inheritance    `mapstructure:"inheritance"`
	Execution      *Execution      `mapstructure:"execution"`
	PropertyRegime *PropertyRegime `mapstructure:"propertyRegime"`

	LegalInterest      Schedule `mapstructure:"legalInterest"`
	CommercialInterest Schedule `mapstructure:"commercialInterest"`
	TaxDelay           Schedule `mapstructure:"taxDelay"`

	PriceIndex                map[string]float64 `mapstructure:"priceIndex"`
	RestructuringFallbackRate *float64           `mapstructure:"restructuringFallbackRate"`
}

// FromOverrides merges the overrides over the built-in defaults and
// validates the result.
func FromOverrides(o *Overrides) (*Table, error) {
	t := Default()
	if o == nil {
		return t, nil
	}
	if o.Year != nil {
		t.Year = *o.Year
	}
	if o.Severance != nil {
		t.Severance = *o.Severance
	}
	if o.CourtFees != nil {
		t.CourtFees = *o.CourtFees
	}
	if o.Inheritance != nil {
		t.Inheritance = *o.Inheritance
	}
	if o.Execution != nil {
		t.Execution = *o.Execution
	}
	if o.PropertyRegime != nil {
		t.PropertyRegime = *o.PropertyRegime
	}
	if len(o.LegalInterest) > 0 {
		t.LegalInterest = o.LegalInterest
	}
	if len(o.CommercialInterest) > 0 {
		t.CommercialInterest = o.CommercialInterest
	}
	if len(o.TaxDelay) > 0 {
		t.TaxDelay = o.TaxDelay
	}
	for month, index := range o.PriceIndex {
		t.PriceIndex[month] = index
	}
	if o.RestructuringFallbackRate != nil {
		t.RestructuringFallbackRate = *o.RestructuringFallbackRate
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
