package manifest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewItemDefaults(t *testing.T) {
	t.Parallel()

	it := NewItem("x", 42)
	assert.Equal(t, "x", it.ID)
	assert.Equal(t, 42.0, it.PriceMu)
	assert.Equal(t, 1, it.Quantity)
	assert.False(t, it.HasSigma())
	assert.False(t, it.HasSellProbability())
	assert.False(t, it.HasDailyHazard())
}

func TestItemFieldPresence(t *testing.T) {
	t.Parallel()

	it := NewItem("x", 42)

	it.PriceSigma = 0
	assert.True(t, it.HasSigma(), "an explicit zero sigma is a point mass, not unset")

	it.SellProbability = 0
	assert.True(t, it.HasSellProbability(), "an explicit zero probability means never sells")

	it.DailyHazard = 0
	assert.False(t, it.HasDailyHazard(), "a zero hazard carries no information")
	it.DailyHazard = 0.05
	assert.True(t, it.HasDailyHazard())

	it.PriceSigma = math.NaN()
	assert.False(t, it.HasSigma())
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	items := []Item{
		{ID: "a", PriceMu: 10, Quantity: 0, MinutesPerUnit: -3, SellProbability: 1.4, PriceSigma: Unset, DailyHazard: Unset},
		{ID: "b", PriceMu: 10, Quantity: 5, MinutesPerUnit: 2, SellProbability: 0.5, PriceSigma: Unset, DailyHazard: Unset},
	}
	Normalize(items)

	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 0.0, items[0].MinutesPerUnit)
	assert.Equal(t, 1.0, items[0].SellProbability)

	assert.Equal(t, 5, items[1].Quantity)
	assert.Equal(t, 2.0, items[1].MinutesPerUnit)
	assert.Equal(t, 0.5, items[1].SellProbability)
}

func TestTotalUnits(t *testing.T) {
	t.Parallel()

	items := []Item{
		{Quantity: 3},
		{Quantity: 0}, // floors at 1
		{Quantity: 2},
	}
	assert.Equal(t, 6, TotalUnits(items))
	assert.Equal(t, 0, TotalUnits(nil))
}
