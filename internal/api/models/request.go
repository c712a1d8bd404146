package models

// EvaluateRequest asks the sizing optimizer for the economically best system
// for a site. Everything except the site is optional: assumptions fall back
// to documented defaults, the battery defaults to none, the target to bestNPV.
type EvaluateRequest struct {
	Site        SiteProfile  `json:"site" binding:"required"`
	Design      SystemDesign `json:"design,omitempty"`
	Assumptions Assumptions  `json:"assumptions,omitempty"`
	Incentives  Incentives   `json:"incentives,omitempty"`
	Target      string       `json:"target,omitempty"` // bestNPV | bestIRR | bestSelfSufficiency
	Constraints Constraints  `json:"constraints,omitempty"`
	Options     Options      `json:"options,omitempty"`
}

// ProjectRequest runs the cashflow projection for one fixed system size.
type ProjectRequest struct {
	Site        SiteProfile  `json:"site" binding:"required"`
	Design      SystemDesign `json:"design" binding:"required"`
	Assumptions Assumptions  `json:"assumptions,omitempty"`
	Incentives  Incentives   `json:"incentives,omitempty"`
	Options     Options      `json:"options,omitempty"`
}

// CompareRequest builds the three acquisition tracks from a chosen scenario's
// headline figures.
type CompareRequest struct {
	Capex        float64     `json:"capex" binding:"required"`
	Year1Savings float64     `json:"year1_savings" binding:"required"`
	Incentives   Incentives  `json:"incentives,omitempty"`
	Assumptions  Assumptions `json:"assumptions,omitempty"`
}

// SiteProfile is the consumption side of an evaluation. Energy/demand rates
// may be omitted when a tariff_code is given; the server fills them from the
// tariff catalog.
type SiteProfile struct {
	AnnualConsumptionKWh float64 `json:"annual_consumption_kwh" binding:"required"`
	PeakDemandKW         float64 `json:"peak_demand_kw,omitempty"`
	TariffCode           string  `json:"tariff_code,omitempty"`
	EnergyRatePerKWh     float64 `json:"energy_rate_per_kwh,omitempty"`
	DemandRatePerKWMonth float64 `json:"demand_rate_per_kw_month,omitempty"`
	AnnualYieldKWhPerKW  float64 `json:"annual_yield_kwh_per_kw,omitempty"`
	RoofAreaM2           float64 `json:"roof_area_m2,omitempty"`
}

// SystemDesign carries the battery/demand-shave fields (held fixed by the
// optimizer) and, for /project, the PV size itself.
type SystemDesign struct {
	PVPowerKW        float64 `json:"pv_kw,omitempty"`
	BatteryEnergyKWh float64 `json:"battery_kwh,omitempty"`
	BatteryPowerKW   float64 `json:"battery_kw,omitempty"`
	DemandShaveKW    float64 `json:"demand_shave_kw,omitempty"`
}

// Assumptions overrides the default assumption set. Zero-valued fields keep
// their defaults.
type Assumptions struct {
	DiscountRate        float64 `json:"discount_rate,omitempty"`
	TariffInflationRate float64 `json:"tariff_inflation_rate,omitempty"`
	TaxRate             float64 `json:"tax_rate,omitempty"`

	PVCostPerKW       float64 `json:"pv_cost_per_kw,omitempty"`
	BatteryCostPerKWh float64 `json:"battery_cost_per_kwh,omitempty"`

	SolarOMRate      float64 `json:"solar_om_rate,omitempty"`
	BatteryOMRate    float64 `json:"battery_om_rate,omitempty"`
	OMEscalationRate float64 `json:"om_escalation_rate,omitempty"`

	BatteryReplacementYear       int     `json:"battery_replacement_year,omitempty"`
	BatteryReplacementCostFactor float64 `json:"battery_replacement_cost_factor,omitempty"`
	BatteryPriceDeclineRate      float64 `json:"battery_price_decline_rate,omitempty"`

	LoanInterestRate   float64 `json:"loan_interest_rate,omitempty"`
	LoanTermYears      int     `json:"loan_term_years,omitempty"`
	LoanDownPaymentPct float64 `json:"loan_down_payment_pct,omitempty"`

	LeaseImplicitRate float64 `json:"lease_implicit_rate,omitempty"`
	LeaseTermYears    int     `json:"lease_term_years,omitempty"`

	DegradationRate float64 `json:"degradation_rate,omitempty"`
	GridCO2KgPerKWh float64 `json:"grid_co2_kg_per_kwh,omitempty"`
}

// Incentives is the per-source incentive stack in dollars, supplied by the
// external eligibility module.
type Incentives struct {
	UtilitySolar   float64 `json:"utility_solar,omitempty"`
	UtilityBattery float64 `json:"utility_battery,omitempty"`
	FederalITC     float64 `json:"federal_itc,omitempty"`
	TaxShield      float64 `json:"tax_shield,omitempty"`
}

// Constraints narrow the optimizer's candidate space; zero = unconstrained.
type Constraints struct {
	RoofAreaM2    float64 `json:"roof_area_m2,omitempty"`
	BudgetCeiling float64 `json:"budget_ceiling,omitempty"`
}

// Options controls response verbosity.
type Options struct {
	IncludeCashflows  bool `json:"include_cashflows,omitempty"`
	IncludeCandidates bool `json:"include_candidates,omitempty"`
}
