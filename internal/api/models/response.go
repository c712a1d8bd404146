package models

// KPIRecord is the flat KPI set downstream renderers bind to positionally by
// name. Field names and units are load-bearing — proposal templates and the
// CRM schema reference them — so treat every json tag here as frozen.
type KPIRecord struct {
	PVKW          float64 `json:"pv_kw"`
	BatteryKWh    float64 `json:"battery_kwh"`
	BatteryKW     float64 `json:"battery_kw"`
	CoverageRatio float64 `json:"coverage_ratio"`

	GrossCapex float64 `json:"gross_capex"`
	NetCapex   float64 `json:"net_capex"`

	IncentiveSolar   float64 `json:"incentive_solar"`
	IncentiveBattery float64 `json:"incentive_battery"`
	FederalITC       float64 `json:"federal_itc"`
	TaxShield        float64 `json:"tax_shield"`

	Year1Savings float64 `json:"year1_savings"`

	NPV10 float64 `json:"npv_10y"`
	NPV20 float64 `json:"npv_20y"`
	NPV25 float64 `json:"npv_25y"`

	// IRRs are null when the root-finder has no solution for the horizon.
	IRR10 *float64 `json:"irr_10y"`
	IRR20 *float64 `json:"irr_20y"`
	IRR25 *float64 `json:"irr_25y"`

	PaybackYear *int `json:"payback_year"`

	LCOECentsPerKWh     float64 `json:"lcoe_cents_per_kwh"`
	SelfSufficiencyPct  float64 `json:"self_sufficiency_pct"`
	CO2AvoidedKgPerYear float64 `json:"co2_avoided_kg_per_year"`

	Cashflows []CashflowRow `json:"cashflows,omitempty"`
}

// CashflowRow is one year of the projection ledger, rounded to the cent at
// this output boundary.
type CashflowRow struct {
	Year        int     `json:"year"`
	Savings     float64 `json:"savings"`
	Opex        float64 `json:"opex"`
	Incentives  float64 `json:"incentives"`
	Investment  float64 `json:"investment"`
	NetCashflow float64 `json:"net_cashflow"`
	Cumulative  float64 `json:"cumulative"`
}

// AcquisitionTrack is one financing structure's cumulative cash series.
type AcquisitionTrack struct {
	Method         string    `json:"method"`
	DownPayment    float64   `json:"down_payment"`
	FinancedAmount float64   `json:"financed_amount"`
	AnnualPayment  float64   `json:"annual_payment"`
	Cumulative     []float64 `json:"cumulative"`
	PaybackYear    *int      `json:"payback_year"`
}

// AcquisitionSet bundles the three tracks.
type AcquisitionSet struct {
	Cash  AcquisitionTrack `json:"cash"`
	Loan  AcquisitionTrack `json:"loan"`
	Lease AcquisitionTrack `json:"lease"`
}

// CandidateSummary is the per-candidate row behind sensitivity charts.
type CandidateSummary struct {
	PVKW               float64  `json:"pv_kw"`
	CoverageRatio      float64  `json:"coverage_ratio"`
	GrossCapex         float64  `json:"gross_capex"`
	NetCapex           float64  `json:"net_capex"`
	NPV25              float64  `json:"npv_25y"`
	IRR25              *float64 `json:"irr_25y"`
	SelfSufficiencyPct float64  `json:"self_sufficiency_pct"`
	PaybackYear        *int     `json:"payback_year"`
}

// EvaluateResponse is the optimizer run result.
type EvaluateResponse struct {
	ID          string             `json:"id"`
	Status      string             `json:"status"`
	Target      string             `json:"target"`
	Winner      *KPIRecord         `json:"winner"`
	Candidates  []CandidateSummary `json:"candidates,omitempty"`
	Acquisition *AcquisitionSet    `json:"acquisition,omitempty"`
}

// ProjectResponse is a single fixed-size projection.
type ProjectResponse struct {
	ID     string    `json:"id"`
	Status string    `json:"status"`
	Result KPIRecord `json:"result"`
}

// CompareResponse is a standalone acquisition comparison.
type CompareResponse struct {
	ID          string         `json:"id"`
	Status      string         `json:"status"`
	Acquisition AcquisitionSet `json:"acquisition"`
}

// TariffInfo describes one catalog entry.
type TariffInfo struct {
	Code             string  `json:"code"`
	Name             string  `json:"name"`
	EnergyPerKWh     float64 `json:"energy_per_kwh"`
	DemandPerKWMonth float64 `json:"demand_per_kw_month"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
