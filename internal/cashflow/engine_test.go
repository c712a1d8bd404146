package cashflow

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-economics/internal/model"
)

func testSite() model.SiteEnergyProfile {
	return model.SiteEnergyProfile{
		AnnualConsumptionKWh: 400000,
		PeakDemandKW:         150,
		EnergyRatePerKWh:     0.10,
		DemandRatePerKWMonth: 12,
		AnnualYieldKWhPerKW:  1000,
	}
}

func testAssumptions() model.FinancialAssumptions {
	fin := model.DefaultAssumptions()
	fin.PVCostPerKW = 1800
	fin.BatteryCostPerKWh = 650
	return fin
}

func TestProject_Deterministic(t *testing.T) {
	e := New()
	design := model.SystemDesign{PVPowerKW: 100, BatteryEnergyKWh: 50, BatteryPowerKW: 25, DemandShaveKW: 20}
	site := testSite()
	fin := testAssumptions()
	inc := model.IncentiveStack{UtilitySolar: 20000, UtilityBattery: 8000, FederalITC: 15000, TaxShield: 9000}

	a := e.Project(design, site, fin, inc)
	b := e.Project(design, site, fin, inc)
	require.Equal(t, a, b)
}

func TestProject_SeriesShape(t *testing.T) {
	e := New()
	res := e.Project(model.SystemDesign{PVPowerKW: 100}, testSite(), testAssumptions(), model.IncentiveStack{})

	require.Len(t, res.Cashflows, model.HorizonYears+1)
	assert.Equal(t, 0, res.Cashflows[0].Year)
	assert.Equal(t, model.HorizonYears, res.Cashflows[model.HorizonYears].Year)

	// Year 0 is pure investment.
	assert.Equal(t, -res.GrossCapex, res.Cashflows[0].Investment)
	assert.Equal(t, -res.GrossCapex, res.Cashflows[0].Cumulative)
	assert.Zero(t, res.Cashflows[0].Savings)
}

func TestProject_Year1SavingsUndegraded(t *testing.T) {
	// At year 1 the degradation exponent is 0: savings equal the baseline
	// exactly, not approximately.
	e := New()
	res := e.Project(model.SystemDesign{PVPowerKW: 100, DemandShaveKW: 30}, testSite(), testAssumptions(), model.IncentiveStack{})

	// 100 kW × 1000 kWh/kW = 100,000 kWh self-consumed at $0.10, plus
	// 30 kW shaved at $12/kW across 12 months.
	require.Equal(t, 100000*0.10+30*12.0*12, res.Year1Savings)
	require.Equal(t, res.Year1Savings, res.Cashflows[1].Savings)

	// Year 2 applies one year of degradation.
	assert.InDelta(t, res.Year1Savings*(1-0.005), res.Cashflows[2].Savings, 1e-9)
}

func TestProject_CumulativeInvariant(t *testing.T) {
	e := New()
	res := e.Project(model.SystemDesign{PVPowerKW: 80, BatteryEnergyKWh: 40}, testSite(), testAssumptions(),
		model.IncentiveStack{UtilitySolar: 10000, FederalITC: 12000})

	for i := 1; i < len(res.Cashflows); i++ {
		prev := res.Cashflows[i-1]
		cur := res.Cashflows[i]
		require.Equal(t, prev.Cumulative+cur.NetCashflow, cur.Cumulative, "year %d", cur.Year)
	}
}

func TestProject_IncentiveReceiptYears(t *testing.T) {
	e := New()
	inc := model.IncentiveStack{UtilitySolar: 5000, UtilityBattery: 2000, FederalITC: 3000, TaxShield: 1000}
	res := e.Project(model.SystemDesign{PVPowerKW: 100, BatteryEnergyKWh: 50}, testSite(), testAssumptions(), inc)

	// Utility incentives and tax shield in year 1, federal credit in year 2,
	// nothing anywhere else. Never pro-rated.
	assert.Equal(t, 8000.0, res.Cashflows[1].Incentives)
	assert.Equal(t, 3000.0, res.Cashflows[2].Incentives)
	for _, en := range res.Cashflows[3:] {
		assert.Zero(t, en.Incentives, "year %d", en.Year)
	}
	assert.Zero(t, res.Cashflows[0].Incentives)
}

func TestProject_BatteryReplacement(t *testing.T) {
	e := New()
	fin := testAssumptions()
	fin.BatteryReplacementYear = 10
	fin.BatteryReplacementCostFactor = 0.6
	fin.TariffInflationRate = 0.02
	fin.BatteryPriceDeclineRate = 0.03

	res := e.Project(model.SystemDesign{PVPowerKW: 50, BatteryEnergyKWh: 100}, testSite(), fin, model.IncentiveStack{})

	// 100 kWh × $650 = $65,000 original battery cost;
	// 65000 × 0.6 × (1 + 0.02 − 0.03)^10 ≈ $35,270.9.
	require.Equal(t, 65000.0, res.BatteryCapex)
	assert.InDelta(t, -35270.9, res.Cashflows[10].Investment, 1.0)

	// No other replacement years.
	for _, en := range res.Cashflows[1:] {
		if en.Year != 10 {
			assert.Zero(t, en.Investment, "year %d", en.Year)
		}
	}
}

func TestProject_NoBatteryNoReplacement(t *testing.T) {
	e := New()
	fin := testAssumptions()
	fin.BatteryReplacementYear = 10

	res := e.Project(model.SystemDesign{PVPowerKW: 50}, testSite(), fin, model.IncentiveStack{})
	assert.Zero(t, res.Cashflows[10].Investment)
}

func TestProject_ZeroDiscountRateIsIdentity(t *testing.T) {
	e := New()
	fin := testAssumptions()
	fin.DiscountRate = 0

	res := e.Project(model.SystemDesign{PVPowerKW: 100}, testSite(), fin, model.IncentiveStack{UtilitySolar: 20000})

	// With no discounting, NPV over the full horizon equals the final
	// undiscounted cumulative position. No NaN, no division by zero.
	last := res.Cashflows[model.HorizonYears].Cumulative
	assert.InDelta(t, last, res.NPV25, 1e-6)
	assert.False(t, math.IsNaN(res.NPV25))
}

func TestProject_NegativeInputsClampToZero(t *testing.T) {
	e := New()
	res := e.Project(
		model.SystemDesign{PVPowerKW: -10, BatteryEnergyKWh: -5},
		model.SiteEnergyProfile{AnnualConsumptionKWh: -100, EnergyRatePerKWh: -0.1},
		testAssumptions(),
		model.IncentiveStack{UtilitySolar: -500},
	)

	assert.Zero(t, res.GrossCapex)
	assert.Zero(t, res.Year1Savings)
	assert.Zero(t, res.LCOECentsPerKWh)
	assert.Zero(t, res.Incentives.UtilitySolar)
	assert.False(t, math.IsNaN(res.NPV25))
	assert.False(t, math.IsNaN(res.SelfSufficiencyPct))
}

func TestProject_MissingYieldFallsBack(t *testing.T) {
	e := New()
	site := testSite()
	site.AnnualYieldKWhPerKW = 0

	res := e.Project(model.SystemDesign{PVPowerKW: 100}, site, testAssumptions(), model.IncentiveStack{})
	assert.Equal(t, 100*model.DefaultAnnualYieldKWhPerKW, res.ProductionKWh)
}

func TestProject_SelfSufficiencyCappedAt100(t *testing.T) {
	e := New()
	site := testSite()
	site.AnnualConsumptionKWh = 50000

	res := e.Project(model.SystemDesign{PVPowerKW: 100}, site, testAssumptions(), model.IncentiveStack{})
	assert.Equal(t, 100.0, res.SelfSufficiencyPct)
}

func TestProject_IRRNilWhenNoRoot(t *testing.T) {
	e := New()
	fin := testAssumptions()
	fin.PVCostPerKW = 0 // free system: every cashflow is non-negative

	res := e.Project(model.SystemDesign{PVPowerKW: 100}, testSite(), fin, model.IncentiveStack{})

	assert.Nil(t, res.IRR25)
	assert.Greater(t, res.NPV25, 0.0)
	require.NotNil(t, res.PaybackYear)
	assert.Equal(t, 1, *res.PaybackYear)
}

func TestProject_NPVHorizonsOrdered(t *testing.T) {
	// A profitable project accrues value with horizon length.
	e := New()
	res := e.Project(model.SystemDesign{PVPowerKW: 100}, testSite(), testAssumptions(),
		model.IncentiveStack{UtilitySolar: 40000, FederalITC: 30000, TaxShield: 15000})

	assert.Less(t, res.NPV10, res.NPV20)
	assert.Less(t, res.NPV20, res.NPV25)
}
