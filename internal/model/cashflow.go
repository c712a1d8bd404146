package model

// CashflowEntry is one year of the projection ledger.
// This is the primary artifact for "what happened" in a projection; the
// generated proposal documents print it verbatim.
//
// Invariant: Cumulative[year] = Cumulative[year-1] + NetCashflow[year], with
// Cumulative[0] = -initial outlay.
type CashflowEntry struct {
	Year       int
	Savings    float64
	Opex       float64
	Incentives float64
	// Investment is nonzero only at year 0 (capex, negative) and at a battery
	// replacement year (replacement cost, negative).
	Investment  float64
	NetCashflow float64
	Cumulative  float64
}

// ScenarioResult is one evaluated SystemDesign with its derived KPIs and the
// full cashflow series behind them. IRR pointers are nil when the root-finder
// has no solution within its bracket; PaybackYear is nil when the cumulative
// position never turns non-negative within the horizon.
type ScenarioResult struct {
	Design        SystemDesign
	CoverageRatio float64

	GrossCapex     float64
	PVCapex        float64
	BatteryCapex   float64
	NetCapex       float64
	Incentives     IncentiveStack
	Year1Savings   float64
	ProductionKWh  float64 // year-1 production before degradation

	NPV10 float64
	NPV20 float64
	NPV25 float64

	IRR10 *float64
	IRR20 *float64
	IRR25 *float64

	PaybackYear *int

	LCOECentsPerKWh     float64
	SelfSufficiencyPct  float64
	CO2AvoidedKgPerYear float64

	Cashflows []CashflowEntry
}

// TargetMetric extracts the scalar the optimizer ranks by. IRR-less results
// report the metric as unavailable via the second return.
func (r *ScenarioResult) TargetMetric(target OptimizationTarget) (float64, bool) {
	switch target {
	case TargetBestIRR:
		if r.IRR25 == nil {
			return 0, false
		}
		return *r.IRR25, true
	case TargetBestSelfSufficiency:
		return r.SelfSufficiencyPct, true
	default:
		return r.NPV25, true
	}
}

// OptimizationTarget selects which KPI the sizing optimizer maximizes.
// Keep these values stable; they appear in API requests and saved scenarios.
type OptimizationTarget string

const (
	TargetBestNPV             OptimizationTarget = "bestNPV"
	TargetBestIRR             OptimizationTarget = "bestIRR"
	TargetBestSelfSufficiency OptimizationTarget = "bestSelfSufficiency"
)

// Valid reports whether t is one of the known targets.
func (t OptimizationTarget) Valid() bool {
	switch t {
	case TargetBestNPV, TargetBestIRR, TargetBestSelfSufficiency:
		return true
	}
	return false
}
