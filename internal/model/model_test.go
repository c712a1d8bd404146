package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemDesign_Normalized(t *testing.T) {
	d := SystemDesign{PVPowerKW: -10, BatteryEnergyKWh: 50, BatteryPowerKW: -1, DemandShaveKW: 20}.Normalized()
	assert.Equal(t, SystemDesign{BatteryEnergyKWh: 50, DemandShaveKW: 20}, d)
}

func TestSystemDesign_HasBattery(t *testing.T) {
	assert.False(t, SystemDesign{PVPowerKW: 100}.HasBattery())
	assert.True(t, SystemDesign{BatteryEnergyKWh: 10}.HasBattery())
}

func TestSiteEnergyProfile_YieldFallback(t *testing.T) {
	assert.Equal(t, DefaultAnnualYieldKWhPerKW, SiteEnergyProfile{}.Yield())
	assert.Equal(t, 1250.0, SiteEnergyProfile{AnnualYieldKWhPerKW: 1250}.Yield())
}

func TestIncentiveStack_ReceiptSchedule(t *testing.T) {
	s := IncentiveStack{UtilitySolar: 5000, UtilityBattery: 2000, FederalITC: 3000, TaxShield: 1000}

	assert.Zero(t, s.ReceivedInYear(0))
	assert.Equal(t, 8000.0, s.ReceivedInYear(1))
	assert.Equal(t, 3000.0, s.ReceivedInYear(2))
	assert.Zero(t, s.ReceivedInYear(3))
	assert.Equal(t, 11000.0, s.Total())
}

func TestIncentiveStack_NormalizedClampsNegatives(t *testing.T) {
	s := IncentiveStack{UtilitySolar: -100, FederalITC: 3000}.Normalized()
	assert.Equal(t, IncentiveStack{FederalITC: 3000}, s)
}

func TestFinancialAssumptions_MergeKeepsBaseForZeroFields(t *testing.T) {
	base := DefaultAssumptions()
	merged := base.Merge(FinancialAssumptions{
		DiscountRate: 0.08,
		Loan:         LoanTerms{TermYears: 20},
	})

	assert.Equal(t, 0.08, merged.DiscountRate)
	assert.Equal(t, 20, merged.Loan.TermYears)
	// Untouched fields keep the base values.
	assert.Equal(t, base.Loan.InterestRate, merged.Loan.InterestRate)
	assert.Equal(t, base.PVCostPerKW, merged.PVCostPerKW)
	assert.Equal(t, base.Lease, merged.Lease)
}

func TestFinancialAssumptions_NormalizedClampsDownPayment(t *testing.T) {
	a := FinancialAssumptions{Loan: LoanTerms{DownPaymentPct: 1.5}}.Normalized()
	assert.Equal(t, 1.0, a.Loan.DownPaymentPct)

	b := FinancialAssumptions{Loan: LoanTerms{DownPaymentPct: -0.1}, DiscountRate: -1}.Normalized()
	assert.Zero(t, b.Loan.DownPaymentPct)
	assert.Zero(t, b.DiscountRate)
}

func TestOptimizationTarget_Valid(t *testing.T) {
	require.True(t, TargetBestNPV.Valid())
	require.True(t, TargetBestIRR.Valid())
	require.True(t, TargetBestSelfSufficiency.Valid())
	require.False(t, OptimizationTarget("").Valid())
	require.False(t, OptimizationTarget("bestVibes").Valid())
}

func TestScenarioResult_TargetMetric(t *testing.T) {
	irr := 0.12
	r := &ScenarioResult{NPV25: 50000, IRR25: &irr, SelfSufficiencyPct: 80}

	m, ok := r.TargetMetric(TargetBestNPV)
	require.True(t, ok)
	assert.Equal(t, 50000.0, m)

	m, ok = r.TargetMetric(TargetBestIRR)
	require.True(t, ok)
	assert.Equal(t, 0.12, m)

	m, ok = r.TargetMetric(TargetBestSelfSufficiency)
	require.True(t, ok)
	assert.Equal(t, 80.0, m)

	r.IRR25 = nil
	_, ok = r.TargetMetric(TargetBestIRR)
	assert.False(t, ok)
}
