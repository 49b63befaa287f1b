package manifest

import "math"

// Unset marks an optional numeric field that was not provided. The
// simulator resolves unset fields from its documented fallbacks.
const Unset = -1

// Item is one manifest row after header normalization: a price estimate,
// a sell-through estimate, and the handling facts the cost model needs.
//
// PriceMu/PriceSigma parameterize the item's resale price distribution.
// Exactly how an item sells is expressed either as SellProbability (chance
// it sells at all within the horizon) or DailyHazard (daily sale rate);
// either or both may be Unset.
type Item struct {
	ID              string
	PriceMu         float64
	PriceSigma      float64
	SellProbability float64
	DailyHazard     float64
	Quantity        int
	MinutesPerUnit  float64
}

// NewItem returns an Item with every optional field unset and quantity 1.
func NewItem(id string, priceMu float64) Item {
	return Item{
		ID:              id,
		PriceMu:         priceMu,
		PriceSigma:      Unset,
		SellProbability: Unset,
		DailyHazard:     Unset,
		Quantity:        1,
	}
}

// HasSigma reports whether the row carried an explicit price sigma.
func (it Item) HasSigma() bool {
	return it.PriceSigma >= 0 && !math.IsNaN(it.PriceSigma)
}

// HasSellProbability reports whether the row carried an explicit
// sell-through probability.
func (it Item) HasSellProbability() bool {
	return it.SellProbability >= 0 && !math.IsNaN(it.SellProbability)
}

// HasDailyHazard reports whether the row carried an explicit daily hazard.
func (it Item) HasDailyHazard() bool {
	return it.DailyHazard > 0 && !math.IsNaN(it.DailyHazard)
}

// Normalize applies the documented row defaults in place: quantity floors
// at 1, minutes floor at 0, and a sell probability above 1 clamps to 1.
// Price fields are left alone; the sampler treats non-finite prices as
// zero-contribution rows rather than rejecting the whole manifest.
func Normalize(items []Item) []Item {
	for i := range items {
		if items[i].Quantity < 1 {
			items[i].Quantity = 1
		}
		if items[i].MinutesPerUnit < 0 || math.IsNaN(items[i].MinutesPerUnit) {
			items[i].MinutesPerUnit = 0
		}
		if items[i].SellProbability > 1 {
			items[i].SellProbability = 1
		}
	}
	return items
}

// TotalUnits returns the unit count across all rows.
func TotalUnits(items []Item) int {
	units := 0
	for _, it := range items {
		q := it.Quantity
		if q < 1 {
			q = 1
		}
		units += q
	}
	return units
}
