// Package acquisition compares the three ways a client can pay for the same
// system: cash purchase, debt-financed purchase, and lease. Each track is
// amortized independently — the principal bases, rates, and terms differ per
// structure, so a shared schedule would be wrong — but all three consume the
// same degraded savings stream and the same incentive receipt schedule.
package acquisition

import (
	"math"

	"solar-economics/internal/finance"
	"solar-economics/internal/model"
)

// BatteryIncentiveUpfrontShare is the fraction of the utility battery
// incentive conventionally realizable as an upfront offset; the remainder
// arrives as year-1 cash with the other utility incentives.
const BatteryIncentiveUpfrontShare = 0.5

// Inputs are taken from the winning ScenarioResult plus the loan/lease terms.
type Inputs struct {
	Capex        float64
	Year1Savings float64
	Incentives   model.IncentiveStack
	Assumptions  model.FinancialAssumptions
}

// Compare builds the three cumulative-cash tracks over the projection
// horizon. Pure and deterministic, like the projection engine.
func Compare(in Inputs) model.AcquisitionComparison {
	in.Capex = math.Max(in.Capex, 0)
	in.Year1Savings = math.Max(in.Year1Savings, 0)
	in.Incentives = in.Incentives.Normalized()
	fin := in.Assumptions.Normalized()

	upfrontOffset := in.Incentives.UtilitySolar + BatteryIncentiveUpfrontShare*in.Incentives.UtilityBattery
	netCost := in.Capex - upfrontOffset

	cash := buildTrack(in, fin, model.AcquisitionSeries{
		Method:      model.AcquisitionCash,
		DownPayment: netCost,
	}, 0)

	downPayment := in.Capex * fin.Loan.DownPaymentPct
	loanAmount := in.Capex - downPayment
	loan := buildTrack(in, fin, model.AcquisitionSeries{
		Method:         model.AcquisitionLoan,
		DownPayment:    downPayment,
		FinancedAmount: loanAmount,
		AnnualPayment:  finance.AnnualLoanPayment(loanAmount, fin.Loan.InterestRate, fin.Loan.TermYears),
	}, fin.Loan.TermYears)

	lease := buildTrack(in, fin, model.AcquisitionSeries{
		Method:         model.AcquisitionLease,
		DownPayment:    0,
		FinancedAmount: netCost,
		AnnualPayment:  finance.AnnualLoanPayment(netCost, fin.Lease.ImplicitRate, fin.Lease.TermYears),
	}, fin.Lease.TermYears)

	return model.AcquisitionComparison{Cash: cash, Loan: loan, Lease: lease}
}

// buildTrack walks the shared savings/incentive stream, subtracting the
// track's fixed payment through its financed term only. The track starts at
// minus its upfront cash (cash: full net cost; loan: down payment; lease: 0).
func buildTrack(in Inputs, fin model.FinancialAssumptions, series model.AcquisitionSeries, paymentTermYears int) model.AcquisitionSeries {
	cumulative := make([]float64, model.HorizonYears+1)
	cumulative[0] = -series.DownPayment

	position := -series.DownPayment
	for year := 1; year <= model.HorizonYears; year++ {
		inflow := in.Year1Savings * math.Pow(1-fin.DegradationRate, float64(year-1))
		inflow += trackIncentives(in.Incentives, year)
		if year <= paymentTermYears {
			inflow -= series.AnnualPayment
		}
		position += inflow
		cumulative[year] = position
	}

	series.Cumulative = cumulative
	series.PaybackYear = firstNonNegativeYear(cumulative)
	return series
}

// trackIncentives is the incentive cash landing in a given year under the
// acquisition convention: half the battery incentive plus the tax shield in
// year 1, the federal credit in year 2. The solar incentive and the other
// half of the battery incentive are already netted out of the upfront cost
// base, identically for all three tracks.
func trackIncentives(inc model.IncentiveStack, year int) float64 {
	total := 0.0
	if year == model.UtilityIncentiveYear {
		total += (1 - BatteryIncentiveUpfrontShare) * inc.UtilityBattery
	}
	if year == model.TaxShieldYear {
		total += inc.TaxShield
	}
	if year == model.FederalITCYear {
		total += inc.FederalITC
	}
	return total
}

func firstNonNegativeYear(cumulative []float64) *int {
	for year := 1; year < len(cumulative); year++ {
		if cumulative[year] >= 0 {
			y := year
			return &y
		}
	}
	return nil
}
