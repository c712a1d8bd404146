// Package cashflow projects multi-year project economics for one fixed
// solar+battery system size: a year-indexed cashflow ledger plus the summary
// KPIs bound into proposals (NPV, IRR, payback, LCOE, CO2, self-sufficiency).
package cashflow

import (
	"math"

	"solar-economics/internal/finance"
	"solar-economics/internal/model"
)

type Engine struct {
	// Horizon is the projection length in years. Reports bind to 25.
	Horizon int
}

func New() *Engine { return &Engine{Horizon: model.HorizonYears} }

// Project evaluates one design against one site under one assumption set.
//
// This is a pure function: no I/O, no clock, no shared state. Results are
// persisted and later reproduced in generated documents, so identical inputs
// must produce bit-identical output. Partial inputs degrade gracefully
// (negatives clamp to zero, missing yield falls back to the provincial
// default); it never fails.
func (e *Engine) Project(design model.SystemDesign, site model.SiteEnergyProfile, fin model.FinancialAssumptions, inc model.IncentiveStack) *model.ScenarioResult {
	design = design.Normalized()
	site = site.Normalized()
	fin = fin.Normalized()
	inc = inc.Normalized()

	horizon := e.Horizon
	if horizon <= 0 {
		horizon = model.HorizonYears
	}

	pvCapex := design.PVPowerKW * fin.PVCostPerKW
	batteryCapex := design.BatteryEnergyKWh * fin.BatteryCostPerKWh
	grossCapex := pvCapex + batteryCapex

	production := design.PVPowerKW * site.Yield()
	selfConsumed := math.Min(production, site.AnnualConsumptionKWh)
	demandShaved := math.Min(design.DemandShaveKW, site.PeakDemandKW)
	year1Savings := selfConsumed*site.EnergyRatePerKWh + demandShaved*site.DemandRatePerKWMonth*12

	annualOM := pvCapex*fin.SolarOMRate + batteryCapex*fin.BatteryOMRate

	entries := make([]model.CashflowEntry, 0, horizon+1)
	entries = append(entries, model.CashflowEntry{
		Year:        0,
		Investment:  -grossCapex,
		NetCashflow: -grossCapex,
		Cumulative:  -grossCapex,
	})

	cumulative := -grossCapex
	for year := 1; year <= horizon; year++ {
		// Intermediate arithmetic stays in full precision; rounding to the
		// cent happens only at the output boundary.
		savings := year1Savings * math.Pow(1-fin.DegradationRate, float64(year-1))
		opex := annualOM * math.Pow(1+fin.OMEscalationRate, float64(year-1))
		incentives := inc.ReceivedInYear(year)

		investment := 0.0
		if design.HasBattery() && fin.BatteryReplacementYear == year {
			investment = -replacementCost(batteryCapex, fin)
		}

		net := savings - opex + incentives + investment
		cumulative += net
		entries = append(entries, model.CashflowEntry{
			Year:        year,
			Savings:     savings,
			Opex:        opex,
			Incentives:  incentives,
			Investment:  investment,
			NetCashflow: net,
			Cumulative:  cumulative,
		})
	}

	nets := make([]float64, len(entries))
	for i, en := range entries {
		nets[i] = en.NetCashflow
	}

	res := &model.ScenarioResult{
		Design:        design,
		GrossCapex:    grossCapex,
		PVCapex:       pvCapex,
		BatteryCapex:  batteryCapex,
		NetCapex:      grossCapex - inc.UtilitySolar - inc.UtilityBattery - inc.FederalITC,
		Incentives:    inc,
		Year1Savings:  year1Savings,
		ProductionKWh: production,
		Cashflows:     entries,
	}
	if site.AnnualConsumptionKWh > 0 {
		res.CoverageRatio = production / site.AnnualConsumptionKWh
		res.SelfSufficiencyPct = math.Min(production, site.AnnualConsumptionKWh) / site.AnnualConsumptionKWh * 100
	}
	res.CO2AvoidedKgPerYear = production * fin.GridCO2KgPerKWh

	res.NPV10 = finance.NPV(fin.DiscountRate, horizonSlice(nets, 10))
	res.NPV20 = finance.NPV(fin.DiscountRate, horizonSlice(nets, 20))
	res.NPV25 = finance.NPV(fin.DiscountRate, horizonSlice(nets, 25))

	res.IRR10 = solveIRR(horizonSlice(nets, 10))
	res.IRR20 = solveIRR(horizonSlice(nets, 20))
	res.IRR25 = solveIRR(horizonSlice(nets, 25))

	res.PaybackYear = paybackYear(entries)
	res.LCOECentsPerKWh = lcoeCents(entries, production, fin)

	return res
}

func replacementCost(batteryCapex float64, fin model.FinancialAssumptions) float64 {
	growth := math.Pow(1+fin.TariffInflationRate-fin.BatteryPriceDeclineRate, float64(fin.BatteryReplacementYear))
	return batteryCapex * fin.BatteryReplacementCostFactor * growth
}

// horizonSlice truncates a year-indexed series to years 0..h inclusive.
func horizonSlice(nets []float64, h int) []float64 {
	if h+1 < len(nets) {
		return nets[:h+1]
	}
	return nets
}

// solveIRR maps a no-root result to nil rather than an error: NPV and payback
// stay valid even when the series has no internal rate of return.
func solveIRR(nets []float64) *float64 {
	rate, err := finance.IRR(nets)
	if err != nil {
		return nil
	}
	return &rate
}

// paybackYear is the first year strictly after year 0 at which the
// undiscounted cumulative position is non-negative, or nil if the horizon
// ends below zero.
func paybackYear(entries []model.CashflowEntry) *int {
	for _, en := range entries {
		if en.Year > 0 && en.Cumulative >= 0 {
			y := en.Year
			return &y
		}
	}
	return nil
}

// lcoeCents is discounted lifetime cost over discounted, degradation-adjusted
// lifetime production, in cents/kWh. Incentives count as cost reductions.
// Zero production (no PV) yields zero rather than dividing by zero.
func lcoeCents(entries []model.CashflowEntry, production float64, fin model.FinancialAssumptions) float64 {
	costs := 0.0
	energy := 0.0
	for _, en := range entries {
		disc := math.Pow(1+fin.DiscountRate, float64(en.Year))
		costs += (en.Opex - en.Investment - en.Incentives) / disc
		if en.Year > 0 {
			energy += production * math.Pow(1-fin.DegradationRate, float64(en.Year-1)) / disc
		}
	}
	if energy <= 0 {
		return 0
	}
	return costs / energy * 100
}
