package sim

import (
	"math"
	"math/rand/v2"

	"github.com/rustyeddy/lotbid/manifest"
)

// Matrix is the sampled items × trials outcome grid, flattened items-major:
// cell (i, t) lives at index i*Sims+t. Contiguous buffers keep the cost
// pass a straight walk over memory with no per-cell allocation.
type Matrix struct {
	Items int
	Sims  int

	Price    []float64 // realized unit price after manifest-risk gates
	Missing  []bool    // unit absent from the lot; Price holds the recovery value
	Sold     []bool
	Returned []bool    // meaningful only when Sold
	SaleDay  []float64 // sale day when Sold, horizon otherwise
	Invalid  []bool    // non-finite inputs; the cell contributes zero everywhere
}

// At returns the flat index of cell (i, t).
func (m *Matrix) At(i, t int) int { return i*m.Sims + t }

// Sample draws the full outcome grid for items.
//
// The generator is scoped to this call and derived from (p.Seed, item
// index): identical seeds give bit-identical grids regardless of call
// order or concurrent callers, and each item owns an independent stream,
// so the items axis could be fanned out across workers without
// correlating draws.
func Sample(items []manifest.Item, p Params) *Matrix {
	sims := p.Sims
	if sims < 1 {
		sims = 1
	}
	n := len(items) * sims
	m := &Matrix{
		Items:    len(items),
		Sims:     sims,
		Price:    make([]float64, n),
		Missing:  make([]bool, n),
		Sold:     make([]bool, n),
		Returned: make([]bool, n),
		SaleDay:  make([]float64, n),
		Invalid:  make([]bool, n),
	}

	horizon := float64(p.HorizonDays)
	for i, it := range items {
		rng := rand.New(rand.NewPCG(uint64(p.Seed), uint64(i)+1))

		sigma := it.PriceSigma
		if !it.HasSigma() {
			sigma = p.CVFallback * it.PriceMu
		}
		pSell, hazard := sellModel(it, p, horizon)

		base := i * sims
		for t := 0; t < sims; t++ {
			// Fixed draw order, and every draw is consumed on every
			// path, so changing cost parameters never shifts the stream.
			z := rng.NormFloat64()
			uSale := rng.Float64()
			uDay := rng.Float64()
			uReturn := rng.Float64()
			uMissing := rng.Float64()
			uDefect := rng.Float64()
			uGrade := rng.Float64()

			idx := base + t
			price := it.PriceMu + sigma*z
			if math.IsNaN(price) || math.IsInf(price, 0) {
				m.Invalid[idx] = true
				m.SaleDay[idx] = horizon
				continue
			}
			if price < 0 {
				price = 0
			}

			// Manifest-risk gates compose multiplicatively on price.
			missing := uMissing < p.MissingRate
			if missing {
				price *= p.MissingRecoveryFrac
			}
			if uDefect < p.DefectRate {
				price *= p.DefectRecoveryFrac
			}
			if uGrade < p.GradeMismatchRate {
				price *= 1 - p.MismatchDiscountFrac
			}

			m.Price[idx] = price
			m.Missing[idx] = missing

			sold := !missing && uSale < pSell
			m.Sold[idx] = sold
			if sold {
				m.SaleDay[idx] = saleDay(uDay, hazard, horizon)
				m.Returned[idx] = uReturn < p.ReturnRate
			} else {
				m.SaleDay[idx] = horizon
			}
		}
	}

	return m
}

// sellModel resolves an item's sell-through inputs into a horizon sale
// probability and a daily hazard. An explicit probability wins; an
// explicit hazard implies the probability; with neither, the baseline
// daily hazard applies.
func sellModel(it manifest.Item, p Params, horizon float64) (pSell, hazard float64) {
	switch {
	case it.HasSellProbability():
		pSell = it.SellProbability
		hazard = impliedHazard(pSell, horizon)
	case it.HasDailyHazard():
		hazard = it.DailyHazard
		pSell = 1 - math.Exp(-hazard*horizon)
	default:
		hazard = p.BaselineDailyHazard
		pSell = 1 - math.Exp(-hazard*horizon)
	}
	return pSell, hazard
}

// impliedHazard inverts pSell = 1 - exp(-hazard*horizon). A probability of
// 1 is nudged inside the unit interval so the hazard stays finite (sales
// then land within the first few days of the horizon).
func impliedHazard(pSell, horizon float64) float64 {
	if pSell <= 0 {
		return 0
	}
	if pSell >= 1 {
		pSell = 1 - 1e-9
	}
	return -math.Log(1-pSell) / horizon
}

// saleDay maps u ∈ [0,1) through the inverse CDF of an exponential sale
// time truncated to the horizon, i.e. the sale day conditional on the
// unit selling at all.
func saleDay(u, hazard, horizon float64) float64 {
	if hazard <= 0 {
		return horizon
	}
	trunc := 1 - math.Exp(-hazard*horizon)
	if trunc <= 0 {
		return horizon
	}
	d := -math.Log(1-u*trunc) / hazard
	if d > horizon {
		d = horizon
	}
	return d
}
