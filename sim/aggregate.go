package sim

import "github.com/rustyeddy/lotbid/manifest"

// Aggregate reduces the outcome grid over the items dimension into
// per-trial lot scalars, applies the lot fixed cost, and computes the
// distribution summary.
//
// A payout lag spanning the whole horizon leaves nothing collectible: the
// cash view is exactly zero while revenue is unaffected.
func Aggregate(m *Matrix, items []manifest.Item, bid float64, p Params) Result {
	res := Result{
		Items:         len(items),
		Sims:          m.Sims,
		Bid:           bid,
		PayoutLagDays: p.PayoutLagDays,
		ROITarget:     p.ROITarget,
		Revenue:       make([]float64, m.Sims),
		Cash:          make([]float64, m.Sims),
	}

	horizon := float64(p.HorizonDays)
	lag := float64(p.PayoutLagDays)
	lagDead := lag >= horizon

	for i, it := range items {
		qty := float64(it.Quantity)
		if qty < 1 {
			qty = 1
		}
		base := i * m.Sims
		for t := 0; t < m.Sims; t++ {
			net, day := cellNet(m, base+t, qty, it.MinutesPerUnit, p)
			res.Revenue[t] += net
			if !lagDead && day+lag <= horizon {
				res.Cash[t] += net
			}
		}
	}

	// One deduction per trial, amortized over the whole lot. Its cash
	// event is day zero (paid up front alongside the bid).
	if p.LotFixedCost != 0 {
		for t := range res.Revenue {
			res.Revenue[t] -= p.LotFixedCost
		}
		if !lagDead {
			for t := range res.Cash {
				res.Cash[t] -= p.LotFixedCost
			}
		}
	}

	res.summarize()
	return res
}
