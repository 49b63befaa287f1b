package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/lotbid/manifest"
)

func detItem(id string, mu float64) manifest.Item {
	it := manifest.NewItem(id, mu)
	it.PriceSigma = 0
	it.SellProbability = 1
	return it
}

func TestSampleReproducible(t *testing.T) {
	t.Parallel()

	items := []manifest.Item{
		manifest.NewItem("a", 120),
		manifest.NewItem("b", 45),
	}
	p := DefaultParams()
	p.Sims = 300
	p.Seed = 99

	m1 := Sample(items, p)
	m2 := Sample(items, p)

	assert.Equal(t, m1.Price, m2.Price)
	assert.Equal(t, m1.Sold, m2.Sold)
	assert.Equal(t, m1.Returned, m2.Returned)
	assert.Equal(t, m1.SaleDay, m2.SaleDay)
	assert.Equal(t, m1.Missing, m2.Missing)

	p.Seed = 100
	m3 := Sample(items, p)
	assert.NotEqual(t, m1.Price, m3.Price)
}

func TestSampleZeroSigmaIsPointMass(t *testing.T) {
	t.Parallel()

	p := Params{Sims: 200, Seed: 7, HorizonDays: 60}
	m := Sample([]manifest.Item{detItem("a", 83.5)}, p)

	for _, price := range m.Price {
		assert.Equal(t, 83.5, price)
	}
}

func TestSamplePriceNeverNegative(t *testing.T) {
	t.Parallel()

	it := manifest.NewItem("a", 1)
	it.PriceSigma = 50 // most raw draws land below zero

	p := Params{Sims: 2000, Seed: 3, HorizonDays: 60}
	m := Sample([]manifest.Item{it}, p)

	for _, price := range m.Price {
		assert.GreaterOrEqual(t, price, 0.0)
	}
}

func TestSampleNonFinitePriceMarkedInvalid(t *testing.T) {
	t.Parallel()

	it := manifest.NewItem("bad", math.NaN())
	it.PriceSigma = 0

	p := Params{Sims: 50, Seed: 1, HorizonDays: 60}
	m := Sample([]manifest.Item{it}, p)

	for idx := range m.Invalid {
		assert.True(t, m.Invalid[idx])
		assert.False(t, m.Sold[idx])
		assert.Equal(t, 0.0, m.Price[idx])
	}
}

func TestSampleSellProbabilityZeroNeverSells(t *testing.T) {
	t.Parallel()

	it := manifest.NewItem("a", 100)
	it.PriceSigma = 0
	it.SellProbability = 0

	p := Params{Sims: 500, Seed: 11, HorizonDays: 60}
	m := Sample([]manifest.Item{it}, p)

	for idx := range m.Sold {
		assert.False(t, m.Sold[idx])
		assert.Equal(t, 60.0, m.SaleDay[idx])
	}
}

func TestSampleSellProbabilityOneAlwaysSells(t *testing.T) {
	t.Parallel()

	p := Params{Sims: 500, Seed: 11, HorizonDays: 60}
	m := Sample([]manifest.Item{detItem("a", 100)}, p)

	for idx := range m.Sold {
		assert.True(t, m.Sold[idx])
		assert.GreaterOrEqual(t, m.SaleDay[idx], 0.0)
		assert.LessOrEqual(t, m.SaleDay[idx], 60.0)
	}
}

func TestSampleHazardImpliesSellThrough(t *testing.T) {
	t.Parallel()

	it := manifest.NewItem("a", 100)
	it.PriceSigma = 0
	it.DailyHazard = 0.02

	p := Params{Sims: 4000, Seed: 5, HorizonDays: 60}
	m := Sample([]manifest.Item{it}, p)

	sold := 0
	for idx := range m.Sold {
		if m.Sold[idx] {
			sold++
		}
	}
	// 1 - exp(-0.02 * 60) ~= 0.699
	assert.InDelta(t, 1-math.Exp(-0.02*60), float64(sold)/4000, 0.05)
}

func TestSampleBaselineHazardWhenRowSilent(t *testing.T) {
	t.Parallel()

	it := manifest.NewItem("a", 100)
	it.PriceSigma = 0

	p := Params{Sims: 4000, Seed: 13, HorizonDays: 60, BaselineDailyHazard: 0.05}
	m := Sample([]manifest.Item{it}, p)

	sold := 0
	for idx := range m.Sold {
		if m.Sold[idx] {
			sold++
		}
	}
	assert.InDelta(t, 1-math.Exp(-0.05*60), float64(sold)/4000, 0.05)
}

func TestSampleMissingGate(t *testing.T) {
	t.Parallel()

	p := Params{
		Sims:                200,
		Seed:                21,
		HorizonDays:         60,
		MissingRate:         1,
		MissingRecoveryFrac: 0.25,
	}
	m := Sample([]manifest.Item{detItem("a", 100)}, p)

	for idx := range m.Missing {
		assert.True(t, m.Missing[idx])
		assert.False(t, m.Sold[idx], "missing units never enter the sale flow")
		assert.Equal(t, 25.0, m.Price[idx])
	}
}

func TestSampleItemStreamsIndependent(t *testing.T) {
	t.Parallel()

	a := detItem("a", 100)
	p := Params{Sims: 100, Seed: 42, HorizonDays: 60}

	solo := Sample([]manifest.Item{a}, p)
	pair := Sample([]manifest.Item{a, detItem("b", 55)}, p)

	// Item a's cells are identical no matter what else is in the lot.
	require.Equal(t, 100, pair.Sims)
	assert.Equal(t, solo.Price, pair.Price[:100])
	assert.Equal(t, solo.SaleDay, pair.SaleDay[:100])
}

func TestMatrixAt(t *testing.T) {
	t.Parallel()

	m := &Matrix{Items: 3, Sims: 10}
	assert.Equal(t, 0, m.At(0, 0))
	assert.Equal(t, 25, m.At(2, 5))
}
