package finance

import "errors"

// IRR root-finding bracket and convergence policy. The bracket deliberately
// spans deeply negative to absurdly high rates; anything outside it is not a
// meaningful project IRR.
const (
	irrLowerBound = -0.99
	irrUpperBound = 10.0
	irrTolerance  = 1e-7
	irrMaxIter    = 200
)

// ErrNoRoot is returned when the NPV curve has no sign change inside the
// bracket, i.e. the series has no internal rate of return a planner would
// recognize. Callers surface this as a null IRR, never as a run failure.
var ErrNoRoot = errors.New("finance: no IRR root in bracket")

// ErrNoConvergence is returned when bisection fails to converge within the
// iteration cap. With a fixed bracket and tolerance this is effectively
// unreachable, but the cap keeps the search bounded by construction.
var ErrNoConvergence = errors.New("finance: IRR did not converge")

// IRR finds the discount rate that zeroes the NPV of a year-indexed cashflow
// series, by bisection over a fixed bracket. Converges well past 4
// significant digits for any series that brackets a root.
func IRR(cashflows []float64) (float64, error) {
	if len(cashflows) == 0 {
		return 0, ErrNoRoot
	}

	lo, hi := irrLowerBound, irrUpperBound
	fLo := NPV(lo, cashflows)
	fHi := NPV(hi, cashflows)
	if fLo == 0 {
		return lo, nil
	}
	if fHi == 0 {
		return hi, nil
	}
	if (fLo > 0) == (fHi > 0) {
		return 0, ErrNoRoot
	}

	for i := 0; i < irrMaxIter; i++ {
		mid := (lo + hi) / 2
		fMid := NPV(mid, cashflows)
		if fMid == 0 || hi-lo < irrTolerance {
			return mid, nil
		}
		if (fMid > 0) == (fLo > 0) {
			lo, fLo = mid, fMid
		} else {
			hi = mid
		}
	}
	return 0, ErrNoConvergence
}
