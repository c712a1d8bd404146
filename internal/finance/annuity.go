// Package finance holds the shared numeric primitives of the project
// economics engine: annuity payments, discounting, and IRR root-finding.
// Everything here is pure float64 arithmetic; rounding is the caller's
// problem at the output boundary.
package finance

import "math"

// AnnuityPayment returns the fixed per-period payment that amortizes
// principal over n periods at the given periodic rate, using the standard
// closed form P = L·r·(1+r)^n / ((1+r)^n − 1).
//
// A zero rate degenerates to straight-line principal/n. Non-positive
// principal or period counts yield 0.
func AnnuityPayment(principal, periodicRate float64, periods int) float64 {
	if principal <= 0 || periods <= 0 {
		return 0
	}
	if periodicRate == 0 {
		return principal / float64(periods)
	}
	growth := math.Pow(1+periodicRate, float64(periods))
	return principal * periodicRate * growth / (growth - 1)
}

// MonthlyLoanPayment amortizes principal monthly over termYears at an annual
// rate, the convention used for both loan and lease schedules.
func MonthlyLoanPayment(principal, annualRate float64, termYears int) float64 {
	return AnnuityPayment(principal, annualRate/12, termYears*12)
}

// AnnualLoanPayment is the annualized (×12) monthly payment.
func AnnualLoanPayment(principal, annualRate float64, termYears int) float64 {
	return MonthlyLoanPayment(principal, annualRate, termYears) * 12
}
