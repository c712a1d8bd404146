package model

// Incentive receipt years are a modeling invariant, not a per-instance
// parameter: utility incentives and the depreciation tax shield land in the
// first operating year, the federal credit lands with the following tax
// filing. Never pro-rated or spread.
const (
	UtilityIncentiveYear = 1
	TaxShieldYear        = 1
	FederalITCYear       = 2
)

// IncentiveStack holds the incentive amounts for one evaluation, in dollars.
// Amounts are computed by the external eligibility module; this engine treats
// them as opaque inputs with fixed receipt-year semantics.
type IncentiveStack struct {
	UtilitySolar   float64
	UtilityBattery float64
	FederalITC     float64
	TaxShield      float64
}

// Normalized clamps negative amounts to zero.
func (s IncentiveStack) Normalized() IncentiveStack {
	return IncentiveStack{
		UtilitySolar:   clampNonNegative(s.UtilitySolar),
		UtilityBattery: clampNonNegative(s.UtilityBattery),
		FederalITC:     clampNonNegative(s.FederalITC),
		TaxShield:      clampNonNegative(s.TaxShield),
	}
}

// Total is the sum of all incentive amounts including the tax shield.
func (s IncentiveStack) Total() float64 {
	return s.UtilitySolar + s.UtilityBattery + s.FederalITC + s.TaxShield
}

// ReceivedInYear returns the incentive cash received in the given projection
// year under the fixed receipt-year schedule.
func (s IncentiveStack) ReceivedInYear(year int) float64 {
	total := 0.0
	if year == UtilityIncentiveYear {
		total += s.UtilitySolar + s.UtilityBattery
	}
	if year == TaxShieldYear {
		total += s.TaxShield
	}
	if year == FederalITCYear {
		total += s.FederalITC
	}
	return total
}
