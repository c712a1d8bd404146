package acquisition

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-economics/internal/model"
)

// referenceInputs is a worked commercial deal used as the fixture across this
// file: $200k gross, $25k year-1 savings, $40k utility solar incentive, $30k
// federal credit, $15k tax shield, 7%/10y loan with 30% down, 8.5%/15y lease.
func referenceInputs() Inputs {
	return Inputs{
		Capex:        200000,
		Year1Savings: 25000,
		Incentives: model.IncentiveStack{
			UtilitySolar: 40000,
			FederalITC:   30000,
			TaxShield:    15000,
		},
		Assumptions: model.FinancialAssumptions{
			DegradationRate: 0.005,
			Loan:            model.LoanTerms{InterestRate: 0.07, TermYears: 10, DownPaymentPct: 0.30},
			Lease:           model.LeaseTerms{ImplicitRate: 0.085, TermYears: 15},
		},
	}
}

func TestCompare_ReferenceDeal(t *testing.T) {
	c := Compare(referenceInputs())

	// Cash buyer pays the incentive-netted cost upfront.
	assert.Equal(t, 160000.0, c.Cash.DownPayment)
	assert.Equal(t, -160000.0, c.Cash.Cumulative[0])

	// Loan: 30% down on gross, the rest amortized at 7% over 10 years.
	assert.Equal(t, 60000.0, c.Loan.DownPayment)
	assert.Equal(t, 140000.0, c.Loan.FinancedAmount)
	assert.InDelta(t, 19506, c.Loan.AnnualPayment, 25)

	// Lease: nothing down, the net cost amortized at the implicit rate.
	assert.Zero(t, c.Lease.DownPayment)
	assert.Equal(t, 160000.0, c.Lease.FinancedAmount)
	assert.InDelta(t, 18907, c.Lease.AnnualPayment, 25)

	require.NotNil(t, c.Cash.PaybackYear)
	require.NotNil(t, c.Loan.PaybackYear)
	require.NotNil(t, c.Lease.PaybackYear)
	assert.Equal(t, 5, *c.Cash.PaybackYear)
	assert.Equal(t, 3, *c.Loan.PaybackYear)
	assert.Equal(t, 1, *c.Lease.PaybackYear)
}

func TestCompare_Deterministic(t *testing.T) {
	a := Compare(referenceInputs())
	b := Compare(referenceInputs())
	require.Equal(t, a, b)
}

func TestCompare_SeriesLength(t *testing.T) {
	c := Compare(referenceInputs())
	for _, track := range []model.AcquisitionSeries{c.Cash, c.Loan, c.Lease} {
		assert.Len(t, track.Cumulative, model.HorizonYears+1, "%s", track.Method)
	}
}

func TestCompare_ZeroInterestDegeneratesToStraightLine(t *testing.T) {
	in := referenceInputs()
	in.Assumptions.Loan.InterestRate = 0
	in.Assumptions.Lease.ImplicitRate = 0

	c := Compare(in)

	assert.InDelta(t, 140000.0/10, c.Loan.AnnualPayment, 1e-9)
	assert.InDelta(t, 160000.0/15, c.Lease.AnnualPayment, 1e-9)
	for _, track := range []model.AcquisitionSeries{c.Cash, c.Loan, c.Lease} {
		assert.False(t, math.IsNaN(track.AnnualPayment), "%s", track.Method)
		for year, v := range track.Cumulative {
			assert.False(t, math.IsNaN(v), "%s year %d", track.Method, year)
		}
	}
}

func TestCompare_BatteryIncentiveSplit(t *testing.T) {
	// Half the battery incentive offsets the upfront cost base, half arrives
	// as year-1 cash on every track.
	in := Inputs{
		Capex:        100000,
		Year1Savings: 10000,
		Incentives:   model.IncentiveStack{UtilityBattery: 12000},
		Assumptions: model.FinancialAssumptions{
			Loan:  model.LoanTerms{InterestRate: 0.07, TermYears: 10, DownPaymentPct: 0.30},
			Lease: model.LeaseTerms{ImplicitRate: 0.085, TermYears: 15},
		},
	}
	c := Compare(in)

	assert.Equal(t, 94000.0, c.Cash.DownPayment)
	assert.Equal(t, 94000.0, c.Lease.FinancedAmount)

	// Year-1 cash inflow = savings + deferred battery half (no payments on
	// the cash track).
	assert.InDelta(t, -94000+10000+6000, c.Cash.Cumulative[1], 1e-9)
}

func TestCompare_LoanTrackExcludesUpfrontIncentives(t *testing.T) {
	// The solar incentive reduces the cash and lease cost bases but never
	// shows up as loan-track cash; adding it must leave the loan cumulative
	// series untouched.
	base := referenceInputs()
	withoutSolar := base
	withoutSolar.Incentives.UtilitySolar = 0

	a := Compare(base)
	b := Compare(withoutSolar)
	assert.Equal(t, b.Loan.Cumulative, a.Loan.Cumulative)

	// The cash track, by contrast, starts $40k deeper without it.
	assert.InDelta(t, a.Cash.Cumulative[0]-40000, b.Cash.Cumulative[0], 1e-9)
}

func TestCompare_LeasePaysBackNoLaterThanLoan(t *testing.T) {
	// With no money down the lease reaches breakeven first whenever both
	// tracks pay back at all.
	c := Compare(referenceInputs())
	require.NotNil(t, c.Lease.PaybackYear)
	require.NotNil(t, c.Loan.PaybackYear)
	assert.LessOrEqual(t, *c.Lease.PaybackYear, *c.Loan.PaybackYear)
}

func TestCompare_NegativeInputsClamped(t *testing.T) {
	c := Compare(Inputs{
		Capex:        -100,
		Year1Savings: -50,
		Incentives:   model.IncentiveStack{UtilitySolar: -10},
		Assumptions: model.FinancialAssumptions{
			Loan:  model.LoanTerms{InterestRate: 0.07, TermYears: 10, DownPaymentPct: 0.30},
			Lease: model.LeaseTerms{ImplicitRate: 0.085, TermYears: 15},
		},
	})
	assert.Zero(t, c.Cash.DownPayment)
	assert.Zero(t, c.Loan.AnnualPayment)
	for _, track := range []model.AcquisitionSeries{c.Cash, c.Loan, c.Lease} {
		for _, v := range track.Cumulative {
			assert.False(t, math.IsNaN(v))
		}
	}
}
