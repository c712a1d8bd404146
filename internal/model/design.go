package model

// HorizonYears is the projection horizon for all cashflow series.
// Downstream reports bind to a 25-year series; do not change casually.
const HorizonYears = 25

// DefaultAnnualYieldKWhPerKW is the province-wide fallback production yield
// used when a site has no measured or simulated yield of its own.
const DefaultAnnualYieldKWhPerKW = 1150.0

// SystemDesign describes one candidate solar+battery system.
// Units:
// - PVPowerKW: kW DC nameplate
// - BatteryEnergyKWh: kWh usable
// - BatteryPowerKW: kW
// - DemandShaveKW: kW of billed demand the battery is dispatched to shave (0 = none)
//
// A design is immutable once a scenario has been evaluated against it.
type SystemDesign struct {
	PVPowerKW        float64
	BatteryEnergyKWh float64
	BatteryPowerKW   float64
	DemandShaveKW    float64
}

// Normalized returns a copy with physically meaningless negatives clamped to
// zero. Missing optional fields (no battery, no shaving) arrive as zeroes and
// pass through unchanged.
func (d SystemDesign) Normalized() SystemDesign {
	return SystemDesign{
		PVPowerKW:        clampNonNegative(d.PVPowerKW),
		BatteryEnergyKWh: clampNonNegative(d.BatteryEnergyKWh),
		BatteryPowerKW:   clampNonNegative(d.BatteryPowerKW),
		DemandShaveKW:    clampNonNegative(d.DemandShaveKW),
	}
}

// HasBattery reports whether the design includes any storage.
func (d SystemDesign) HasBattery() bool {
	return d.BatteryEnergyKWh > 0
}

// SiteEnergyProfile is the consumption side of an evaluation, supplied by the
// CRM layer and read-only to the engine.
// Units:
// - AnnualConsumptionKWh: kWh/year
// - PeakDemandKW: kW billed peak
// - EnergyRatePerKWh: $/kWh
// - DemandRatePerKWMonth: $/kW per month
// - AnnualYieldKWhPerKW: kWh produced per installed kW per year (0 = unknown)
// - RoofAreaM2: usable roof area in m² (0 = unconstrained)
type SiteEnergyProfile struct {
	AnnualConsumptionKWh float64
	PeakDemandKW         float64
	TariffCode           string
	EnergyRatePerKWh     float64
	DemandRatePerKWMonth float64
	AnnualYieldKWhPerKW  float64
	RoofAreaM2           float64
}

// Normalized clamps negative amounts to zero. A zero yield or roof area means
// "unknown"/"unconstrained" rather than an error.
func (s SiteEnergyProfile) Normalized() SiteEnergyProfile {
	out := s
	out.AnnualConsumptionKWh = clampNonNegative(s.AnnualConsumptionKWh)
	out.PeakDemandKW = clampNonNegative(s.PeakDemandKW)
	out.EnergyRatePerKWh = clampNonNegative(s.EnergyRatePerKWh)
	out.DemandRatePerKWMonth = clampNonNegative(s.DemandRatePerKWMonth)
	out.AnnualYieldKWhPerKW = clampNonNegative(s.AnnualYieldKWhPerKW)
	out.RoofAreaM2 = clampNonNegative(s.RoofAreaM2)
	return out
}

// Yield returns the site's annual yield per installed kW, falling back to the
// province-wide default when per-site data is absent.
func (s SiteEnergyProfile) Yield() float64 {
	if s.AnnualYieldKWhPerKW > 0 {
		return s.AnnualYieldKWhPerKW
	}
	return DefaultAnnualYieldKWhPerKW
}

func clampNonNegative(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}
