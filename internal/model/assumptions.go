package model

// LoanTerms describes a fixed-rate amortizing loan.
// InterestRate is an annual fraction (0.07 = 7%); DownPaymentPct is a fraction
// of gross capex paid upfront.
type LoanTerms struct {
	InterestRate   float64
	TermYears      int
	DownPaymentPct float64
}

// LeaseTerms describes an operating lease amortized at an implicit rate.
type LeaseTerms struct {
	ImplicitRate float64
	TermYears    int
}

// FinancialAssumptions is the full assumption set for one evaluation. All
// rates are annual fractions. All fields are overridable per request; the
// documented defaults live in DefaultAssumptions.
type FinancialAssumptions struct {
	DiscountRate        float64
	TariffInflationRate float64
	TaxRate             float64

	// Unit costs used to derive capex from a candidate size.
	PVCostPerKW       float64 // $/kW installed
	BatteryCostPerKWh float64 // $/kWh installed

	// O&M as a fraction of the respective capex, escalated annually.
	SolarOMRate      float64
	BatteryOMRate    float64
	OMEscalationRate float64

	// Battery replacement: a one-shot reinvestment in the given year, costed as
	// originalBatteryCost × costFactor × (1 + inflation − priceDecline)^year.
	// Zero replacement year means no replacement is modeled.
	BatteryReplacementYear       int
	BatteryReplacementCostFactor float64
	BatteryPriceDeclineRate      float64

	Loan  LoanTerms
	Lease LeaseTerms

	// DegradationRate is the annual production decline from panel aging.
	DegradationRate float64

	// GridCO2KgPerKWh converts displaced grid energy to avoided emissions.
	GridCO2KgPerKWh float64
}

// DefaultAssumptions returns the baseline assumption set used when a request
// omits fields. These are point-in-time business assumptions, not regulatory
// guarantees.
func DefaultAssumptions() FinancialAssumptions {
	return FinancialAssumptions{
		DiscountRate:        0.06,
		TariffInflationRate: 0.02,
		TaxRate:             0.27,

		PVCostPerKW:       1800,
		BatteryCostPerKWh: 650,

		SolarOMRate:      0.010,
		BatteryOMRate:    0.005,
		OMEscalationRate: 0.02,

		BatteryReplacementYear:       12,
		BatteryReplacementCostFactor: 0.60,
		BatteryPriceDeclineRate:      0.03,

		Loan: LoanTerms{
			InterestRate:   0.07,
			TermYears:      10,
			DownPaymentPct: 0.30,
		},
		Lease: LeaseTerms{
			ImplicitRate: 0.085,
			TermYears:    15,
		},

		DegradationRate: 0.005,
		GridCO2KgPerKWh: 0.25,
	}
}

// Merge overlays non-zero fields from override onto base and returns the
// result. Zero values in the override mean "keep the base value", which keeps
// request payloads and YAML scenarios concise.
func (base FinancialAssumptions) Merge(override FinancialAssumptions) FinancialAssumptions {
	out := base
	if override.DiscountRate != 0 {
		out.DiscountRate = override.DiscountRate
	}
	if override.TariffInflationRate != 0 {
		out.TariffInflationRate = override.TariffInflationRate
	}
	if override.TaxRate != 0 {
		out.TaxRate = override.TaxRate
	}
	if override.PVCostPerKW != 0 {
		out.PVCostPerKW = override.PVCostPerKW
	}
	if override.BatteryCostPerKWh != 0 {
		out.BatteryCostPerKWh = override.BatteryCostPerKWh
	}
	if override.SolarOMRate != 0 {
		out.SolarOMRate = override.SolarOMRate
	}
	if override.BatteryOMRate != 0 {
		out.BatteryOMRate = override.BatteryOMRate
	}
	if override.OMEscalationRate != 0 {
		out.OMEscalationRate = override.OMEscalationRate
	}
	if override.BatteryReplacementYear != 0 {
		out.BatteryReplacementYear = override.BatteryReplacementYear
	}
	if override.BatteryReplacementCostFactor != 0 {
		out.BatteryReplacementCostFactor = override.BatteryReplacementCostFactor
	}
	if override.BatteryPriceDeclineRate != 0 {
		out.BatteryPriceDeclineRate = override.BatteryPriceDeclineRate
	}
	if override.Loan.InterestRate != 0 {
		out.Loan.InterestRate = override.Loan.InterestRate
	}
	if override.Loan.TermYears != 0 {
		out.Loan.TermYears = override.Loan.TermYears
	}
	if override.Loan.DownPaymentPct != 0 {
		out.Loan.DownPaymentPct = override.Loan.DownPaymentPct
	}
	if override.Lease.ImplicitRate != 0 {
		out.Lease.ImplicitRate = override.Lease.ImplicitRate
	}
	if override.Lease.TermYears != 0 {
		out.Lease.TermYears = override.Lease.TermYears
	}
	if override.DegradationRate != 0 {
		out.DegradationRate = override.DegradationRate
	}
	if override.GridCO2KgPerKWh != 0 {
		out.GridCO2KgPerKWh = override.GridCO2KgPerKWh
	}
	return out
}

// Normalized clamps rates that would be physically meaningless if negative.
// The discount rate is floored at zero (a zero rate is treated as identity,
// no discounting).
func (a FinancialAssumptions) Normalized() FinancialAssumptions {
	out := a
	out.DiscountRate = clampNonNegative(a.DiscountRate)
	out.PVCostPerKW = clampNonNegative(a.PVCostPerKW)
	out.BatteryCostPerKWh = clampNonNegative(a.BatteryCostPerKWh)
	out.SolarOMRate = clampNonNegative(a.SolarOMRate)
	out.BatteryOMRate = clampNonNegative(a.BatteryOMRate)
	out.DegradationRate = clampNonNegative(a.DegradationRate)
	out.GridCO2KgPerKWh = clampNonNegative(a.GridCO2KgPerKWh)
	if out.BatteryReplacementYear < 0 {
		out.BatteryReplacementYear = 0
	}
	if out.Loan.TermYears < 0 {
		out.Loan.TermYears = 0
	}
	if out.Lease.TermYears < 0 {
		out.Lease.TermYears = 0
	}
	if out.Loan.DownPaymentPct < 0 {
		out.Loan.DownPaymentPct = 0
	}
	if out.Loan.DownPaymentPct > 1 {
		out.Loan.DownPaymentPct = 1
	}
	return out
}
