package model

// AcquisitionMethod identifies one of the three financing structures compared
// for a closed proposal. Keep these values stable; they are used in JSON and
// CSV output.
type AcquisitionMethod string

const (
	AcquisitionCash  AcquisitionMethod = "cash"
	AcquisitionLoan  AcquisitionMethod = "loan"
	AcquisitionLease AcquisitionMethod = "lease"
)

// AcquisitionSeries is the cumulative cash position of one financing
// structure over the projection horizon. Cumulative is indexed by year
// (0..HorizonYears). PaybackYear is the first year strictly after year 0 at
// which the position is non-negative, or nil if the horizon ends below zero.
type AcquisitionSeries struct {
	Method AcquisitionMethod

	// DownPayment is the upfront cash (cash: net cost; loan: down payment;
	// lease: 0). FinancedAmount and AnnualPayment are zero for the cash track.
	DownPayment    float64
	FinancedAmount float64
	AnnualPayment  float64

	Cumulative  []float64
	PaybackYear *int
}

// AcquisitionComparison bundles the three parallel tracks built from one
// winning scenario. Derived, never persisted independently of the
// ScenarioResult it was computed from.
type AcquisitionComparison struct {
	Cash  AcquisitionSeries
	Loan  AcquisitionSeries
	Lease AcquisitionSeries
}
