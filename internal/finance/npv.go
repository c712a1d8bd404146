package finance

import "math"

// NPV discounts a year-indexed cashflow series (cashflows[0] occurs at year 0
// and is not discounted) at the given annual rate. A zero rate is the
// identity: the plain sum of the series.
func NPV(rate float64, cashflows []float64) float64 {
	total := 0.0
	for year, cf := range cashflows {
		total += cf / math.Pow(1+rate, float64(year))
	}
	return total
}
