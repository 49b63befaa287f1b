// Package sim is the Monte Carlo lot-outcome simulator: it draws per-item
// per-trial price and sale realizations, runs them through the
// multi-component cost model, and reduces them to lot-level return and
// cash-flow distributions.
//
// Everything is parameterized explicitly per call (see Params); there is
// no shared generator and no process-wide configuration, so concurrent
// simulations cannot interfere and identical inputs reproduce identical
// output arrays bit for bit.
package sim

import "github.com/rustyeddy/lotbid/manifest"

// SimulateLot runs the full pipeline at one bid: sample the outcome grid,
// cost it, aggregate to distributions.
//
// Degenerate inputs are results, not errors: an empty manifest yields an
// all-zero distribution, and rows with non-finite prices contribute zero
// to their trials instead of poisoning the lot sum.
func SimulateLot(items []manifest.Item, bid float64, p Params) Result {
	if p.Sims < 1 {
		p.Sims = 1
	}
	m := Sample(items, p)
	return Aggregate(m, items, bid, p)
}
