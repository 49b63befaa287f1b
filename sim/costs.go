package sim

// costs.go converts sampled unit outcomes into money.
//
// Every cell produces a single net economic value (the revenue view) and
// the day its cash lands. The cash view is the same value gated by
// eventDay + payout lag against the horizon; revenue is never gated.
// Keeping one composition for both views is what guarantees they can only
// differ by timing.

// cellNet returns the net value of flat cell idx for a row with the given
// quantity and per-unit handling minutes, plus the cash event day.
//
//   - missing unit: recovery claim only (Price already carries the
//     recovery fraction); never handled, stored, or charged fees; cash at
//     day 0.
//   - sold, kept: price net of marketplace/payment fees and the fixed
//     per-order fee, minus shipping/packaging/refurb, ops and storage up
//     to the sale day; cash at the sale day.
//   - sold, returned: salvage recovery net of the salvage fee instead of
//     the sale price; the per-order outlays (shipping, packaging, refurb)
//     are already spent, marketplace fees are refunded; cash at the sale
//     day.
//   - unsold at horizon: terminal salvage with no transaction fees, minus
//     ops and a full horizon of storage; cash at the horizon.
func cellNet(m *Matrix, idx int, qty, minutes float64, p Params) (net, eventDay float64) {
	if m.Invalid[idx] {
		return 0, 0
	}

	price := m.Price[idx]
	ops := p.OpsCostPerMin * minutes

	switch {
	case m.Missing[idx]:
		return price * qty, 0

	case m.Sold[idx]:
		day := m.SaleDay[idx]
		var proceeds float64
		if m.Returned[idx] {
			proceeds = price * p.SalvageFrac * (1 - p.SalvageFeePct)
		} else {
			proceeds = price*(1-p.MarketplaceFeePct-p.PaymentFeePct) - p.PerOrderFeeFixed
		}
		proceeds -= p.ShippingPerOrder + p.PackagingPerOrder + p.RefurbPerOrder
		proceeds -= ops + p.StorageCostPerUnitPerDay*day
		return proceeds * qty, day

	default:
		horizon := float64(p.HorizonDays)
		salvage := price*p.SalvageFrac - ops - p.StorageCostPerUnitPerDay*horizon
		return salvage * qty, horizon
	}
}
