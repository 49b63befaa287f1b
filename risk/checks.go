// Package risk decides whether one bid on a lot is acceptable under the
// buyer's return and cash constraints, given the simulated outcome
// distribution at that bid.
package risk

import (
	"fmt"

	"github.com/rustyeddy/lotbid/manifest"
	"github.com/rustyeddy/lotbid/sim"
)

type Violation struct {
	Code string
	Msg  string
}

// Decision is the outcome of evaluating one bid. Metrics is always the
// full distribution summary, feasible or not, so callers can see which
// constraint failed and by how much.
type Decision struct {
	Allowed    bool
	Violations []Violation
	Metrics    sim.Result
}

func (d *Decision) add(code, msg string) {
	d.Violations = append(d.Violations, Violation{Code: code, Msg: msg})
	d.Allowed = false
}

// Evaluate simulates the lot at bid and checks every supplied constraint.
// The simulation seed comes from p, so two Evaluate calls with the same
// parameters see identical random draws.
func Evaluate(items []manifest.Item, bid float64, cons Constraints, p sim.Params) Decision {
	p.ROITarget = cons.ROITarget
	res := sim.SimulateLot(items, bid, p)

	d := Decision{Allowed: true, Metrics: res}

	if res.ProbROIAtLeastTarget < cons.RiskThreshold {
		d.add("ROI_PROB_TOO_LOW",
			fmt.Sprintf("P(roi >= %.2fx) = %.1f%% below required %.1f%%",
				cons.ROITarget, 100*res.ProbROIAtLeastTarget, 100*cons.RiskThreshold))
	}
	if cons.MinExpectedCash != nil && res.ExpectedCash < *cons.MinExpectedCash {
		d.add("EXPECTED_CASH_TOO_LOW",
			fmt.Sprintf("expected cash %.2f below floor %.2f",
				res.ExpectedCash, *cons.MinExpectedCash))
	}
	if cons.MinCashP5 != nil && res.CashP5 < *cons.MinCashP5 {
		d.add("CASH_P5_TOO_LOW",
			fmt.Sprintf("cash p5 %.2f below tail floor %.2f",
				res.CashP5, *cons.MinCashP5))
	}

	return d
}
