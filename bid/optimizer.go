// Package bid finds the highest bid on a lot that still satisfies the
// buyer's constraints, by bisection over the feasibility predicate.
package bid

import (
	"github.com/rustyeddy/lotbid/manifest"
	"github.com/rustyeddy/lotbid/risk"
	"github.com/rustyeddy/lotbid/sim"
)

// DefaultTol is the bisection convergence tolerance in bid currency.
const DefaultTol = 1.0

// Result is the optimizer's terminal output. It always exists: degenerate
// bounds or an infeasible floor produce an honest MeetsConstraints=false
// result, never an error.
type Result struct {
	Bid              float64
	MeetsConstraints bool
	Decision         risk.Decision
	Steps            int // feasibility evaluations performed
}

// Optimize bisects [lo, hi] toward the highest feasible bid within tol.
//
// Every feasibility evaluation reuses the identical seed from p (common
// random numbers). This is a correctness requirement, not a performance
// trick: with fresh draws per step the predicate would be locally
// non-monotonic in bid through sampling noise and bisection could not
// converge.
//
// Boundary handling: a feasible hi is returned immediately; an infeasible
// lo (or lo > hi) is returned as-is with MeetsConstraints=false.
func Optimize(items []manifest.Item, lo, hi float64, cons risk.Constraints, p sim.Params, tol float64) Result {
	if tol <= 0 {
		tol = DefaultTol
	}

	if lo > hi {
		d := risk.Evaluate(items, lo, cons, p)
		return Result{Bid: lo, MeetsConstraints: d.Allowed, Decision: d, Steps: 1}
	}

	steps := 0
	feasible := func(b float64) risk.Decision {
		steps++
		return risk.Evaluate(items, b, cons, p)
	}

	dHi := feasible(hi)
	if dHi.Allowed {
		return Result{Bid: hi, MeetsConstraints: true, Decision: dHi, Steps: steps}
	}

	dLo := feasible(lo)
	if !dLo.Allowed {
		return Result{Bid: lo, MeetsConstraints: false, Decision: dLo, Steps: steps}
	}

	// Invariant: lo feasible, hi infeasible. Narrow toward the highest
	// feasible bid.
	best, bestD := lo, dLo
	for hi-lo > tol {
		mid := lo + (hi-lo)/2
		if d := feasible(mid); d.Allowed {
			lo, best, bestD = mid, mid, d
		} else {
			hi = mid
		}
	}

	return Result{Bid: best, MeetsConstraints: true, Decision: bestD, Steps: steps}
}
