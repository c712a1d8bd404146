// Package optimizer searches a discrete space of candidate system sizes —
// coverage ratios of annual consumption — and selects the one that best
// satisfies the requested optimization target.
package optimizer

import (
	"math"
	"sort"

	"solar-economics/internal/cashflow"
	"solar-economics/internal/model"
)

// Default candidate grid: 25%–150% of annual consumption in 11 even steps.
// These are validated defaults, not contractual constants; they are fields on
// Optimizer so product behavior can be confirmed without a code change.
const (
	DefaultSteps       = 11
	DefaultMinCoverage = 0.25
	DefaultMaxCoverage = 1.50

	// DefaultAreaPerKWM2 converts usable roof area to an installable maximum.
	DefaultAreaPerKWM2 = 5.0

	// DefaultPanelIncrementKW is the installable size step; candidate PV sizes
	// round down to it.
	DefaultPanelIncrementKW = 0.5
)

// Constraints narrow the candidate space. Zero values mean unconstrained.
type Constraints struct {
	RoofAreaM2    float64 // overrides the site's roof area when set
	BudgetCeiling float64 // gross capex limit in $
}

type Optimizer struct {
	Engine *cashflow.Engine

	Steps       int
	MinCoverage float64
	MaxCoverage float64

	AreaPerKWM2      float64
	PanelIncrementKW float64
}

func New() *Optimizer {
	return &Optimizer{
		Engine:           cashflow.New(),
		Steps:            DefaultSteps,
		MinCoverage:      DefaultMinCoverage,
		MaxCoverage:      DefaultMaxCoverage,
		AreaPerKWM2:      DefaultAreaPerKWM2,
		PanelIncrementKW: DefaultPanelIncrementKW,
	}
}

// Result is the winning scenario plus every candidate evaluated, for the
// sensitivity charts in the proposal.
type Result struct {
	Best      *model.ScenarioResult
	Evaluated []*model.ScenarioResult
	Target    model.OptimizationTarget
}

// Run generates the candidate sizes, evaluates each one independently through
// the projection engine, and picks the winner. The battery and demand-shave
// fields of base are held fixed across candidates; only PV size varies.
//
// Selection is a strict total order (target metric, then lower net capex,
// then lower PV size), so the outcome is independent of evaluation order. A
// candidate that cannot be evaluated is dropped from the comparison set
// rather than aborting the run; if constraints leave a single feasible
// candidate, it wins without a comparison set.
func (o *Optimizer) Run(base model.SystemDesign, site model.SiteEnergyProfile, fin model.FinancialAssumptions, inc model.IncentiveStack, target model.OptimizationTarget, cons Constraints) *Result {
	site = site.Normalized()
	if !target.Valid() {
		target = model.TargetBestNPV
	}

	sizes := o.candidateSizes(site, cons)

	// Explicit transform over the candidate list: each evaluation is
	// independent, so this loop is trivially parallelizable by a caller that
	// needs the latency, without changing the result.
	evaluated := make([]*model.ScenarioResult, 0, len(sizes))
	for _, pvKW := range sizes {
		design := base
		design.PVPowerKW = pvKW
		res := o.Engine.Project(design, site, fin, inc)
		if res == nil {
			continue
		}
		if cons.BudgetCeiling > 0 && res.GrossCapex > cons.BudgetCeiling {
			continue
		}
		evaluated = append(evaluated, res)
	}

	return &Result{
		Best:      selectBest(evaluated, target),
		Evaluated: evaluated,
		Target:    target,
	}
}

// candidateSizes spans the coverage range, converts ratios to PV sizes via
// the site yield (with provincial fallback), rounds down to the installable
// increment, clamps to the roof-derived maximum, and drops duplicates that
// rounding or clamping collapsed together.
func (o *Optimizer) candidateSizes(site model.SiteEnergyProfile, cons Constraints) []float64 {
	steps := o.Steps
	if steps < 1 {
		steps = 1
	}
	increment := o.PanelIncrementKW
	if increment <= 0 {
		increment = DefaultPanelIncrementKW
	}

	roofArea := cons.RoofAreaM2
	if roofArea <= 0 {
		roofArea = site.RoofAreaM2
	}
	maxRoofKW := math.Inf(1)
	if roofArea > 0 && o.AreaPerKWM2 > 0 {
		maxRoofKW = roofArea / o.AreaPerKWM2
	}

	yield := site.Yield()
	consumption := site.AnnualConsumptionKWh

	seen := make(map[float64]bool, steps)
	sizes := make([]float64, 0, steps)
	for i := 0; i < steps; i++ {
		ratio := o.MinCoverage
		if steps > 1 {
			ratio += (o.MaxCoverage - o.MinCoverage) * float64(i) / float64(steps-1)
		}
		pvKW := ratio * consumption / yield
		pvKW = math.Floor(pvKW/increment) * increment
		if pvKW < increment {
			pvKW = increment
		}
		if pvKW > maxRoofKW {
			pvKW = math.Floor(maxRoofKW/increment) * increment
			if pvKW <= 0 {
				continue
			}
		}
		if seen[pvKW] {
			continue
		}
		seen[pvKW] = true
		sizes = append(sizes, pvKW)
	}
	sort.Float64s(sizes)
	return sizes
}

// selectBest picks the maximum of a strict total order; shuffling the input
// cannot change the outcome.
func selectBest(results []*model.ScenarioResult, target model.OptimizationTarget) *model.ScenarioResult {
	var best *model.ScenarioResult
	for _, r := range results {
		if better(r, best, target) {
			best = r
		}
	}
	return best
}

func better(a, b *model.ScenarioResult, target model.OptimizationTarget) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	ma, okA := a.TargetMetric(target)
	mb, okB := b.TargetMetric(target)
	if okA != okB {
		return okA
	}
	if ma != mb {
		return ma > mb
	}
	// Ties break toward the cheaper, then the smaller, system.
	if a.NetCapex != b.NetCapex {
		return a.NetCapex < b.NetCapex
	}
	return a.Design.PVPowerKW < b.Design.PVPowerKW
}
