package sim

import "math"

// Result is the lot-level outcome distribution for one simulated bid.
//
// Revenue is the lag-independent economic view: per-trial net value of the
// whole lot after every fee, return, salvage, risk, ops, storage and
// lot-fixed adjustment. Cash is the same composition restricted to cash
// actually collectible within the horizon given payout lag. The two views
// are distinct on purpose and must not be conflated.
//
// ROI is a multiple of bid, not a profit rate: 1.0 means the lot returns
// exactly the bid, 0.0 means total loss of value.
type Result struct {
	Items         int
	Sims          int
	Bid           float64
	PayoutLagDays int

	Revenue []float64 // per-trial net value
	Cash    []float64 // per-trial cash within horizon

	ROIP5  float64
	ROIP50 float64
	ROIP95 float64

	CashP5  float64
	CashP50 float64
	CashP95 float64

	ExpectedCash float64

	// ProbROIAtLeastTarget is the empirical fraction of trials with
	// roi >= ROITarget. Meaningful only when ROITarget > 0.
	ROITarget            float64
	ProbROIAtLeastTarget float64
}

// ROI returns the per-trial ROI array (revenue / bid). A non-positive bid
// cannot lose money that was never spent: positive revenue maps to +Inf,
// negative to -Inf, zero stays zero.
func (r *Result) ROI() []float64 {
	roi := make([]float64, len(r.Revenue))
	if r.Bid <= 0 {
		for t, rev := range r.Revenue {
			switch {
			case rev > 0:
				roi[t] = math.Inf(1)
			case rev < 0:
				roi[t] = math.Inf(-1)
			}
		}
		return roi
	}
	for t, rev := range r.Revenue {
		roi[t] = rev / r.Bid
	}
	return roi
}

// summarize fills the derived scalars from the trial arrays.
func (r *Result) summarize() {
	roi := r.ROI()
	r.ROIP5, r.ROIP50, r.ROIP95 = percentiles3(roi)
	r.CashP5, r.CashP50, r.CashP95 = percentiles3(r.Cash)
	r.ExpectedCash = mean(r.Cash)
	if r.ROITarget > 0 {
		r.ProbROIAtLeastTarget = probAtLeast(roi, r.ROITarget)
	}
}
