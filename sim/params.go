package sim

import "fmt"

// Params is the complete, explicit configuration of one simulation call.
// Nothing here is ever read from process-wide state: concurrent calls with
// different Params cannot interfere.
//
// Percentages are fractions (0.13 = 13%). Rates named *_rate are per-trial
// gate probabilities.
type Params struct {
	Sims int   `yaml:"sims"`
	Seed int64 `yaml:"seed"`

	HorizonDays   int `yaml:"horizon_days"`
	PayoutLagDays int `yaml:"payout_lag_days"`

	// Price model fallbacks.
	CVFallback         float64 `yaml:"cv_fallback"`          // sigma = cv * mu when sigma absent
	BaselineDailyHazard float64 `yaml:"baseline_daily_hazard"` // used when no sell-through field present

	// Marketplace economics for sold units.
	MarketplaceFeePct float64 `yaml:"marketplace_fee_pct"`
	PaymentFeePct     float64 `yaml:"payment_fee_pct"`
	PerOrderFeeFixed  float64 `yaml:"per_order_fee_fixed"`
	ShippingPerOrder  float64 `yaml:"shipping_per_order"`
	PackagingPerOrder float64 `yaml:"packaging_per_order"`
	RefurbPerOrder    float64 `yaml:"refurb_per_order"`

	// Returns and salvage.
	ReturnRate    float64 `yaml:"return_rate"`
	SalvageFrac   float64 `yaml:"salvage_frac"`
	SalvageFeePct float64 `yaml:"salvage_fee_pct"`

	// Manifest risk gates.
	MissingRate          float64 `yaml:"missing_rate"`
	MissingRecoveryFrac  float64 `yaml:"missing_recovery_frac"`
	DefectRate           float64 `yaml:"defect_rate"`
	DefectRecoveryFrac   float64 `yaml:"defect_recovery_frac"`
	GradeMismatchRate    float64 `yaml:"grade_mismatch_rate"`
	MismatchDiscountFrac float64 `yaml:"mismatch_discount_frac"`

	// Operational carrying costs.
	OpsCostPerMin           float64 `yaml:"ops_cost_per_min"`
	StorageCostPerUnitPerDay float64 `yaml:"storage_cost_per_unit_per_day"`

	// Whole-lot overheads: freight, auction premium, disposal. One
	// deduction per trial, never per unit.
	LotFixedCost float64 `yaml:"lot_fixed_cost"`

	// ROITarget, when > 0, asks the aggregator to report the empirical
	// probability that ROI (a multiple of bid, not a profit rate) reaches
	// it.
	ROITarget float64 `yaml:"roi_target"`
}

// DefaultParams returns conservative mixed-lot economics. Every value here
// is a documented fallback, not hidden state; callers override per call.
func DefaultParams() Params {
	return Params{
		Sims:          1000,
		Seed:          1,
		HorizonDays:   60,
		PayoutLagDays: 14,

		CVFallback:          0.25,
		BaselineDailyHazard: 0.02,

		MarketplaceFeePct: 0.13,
		PaymentFeePct:     0.03,
		PerOrderFeeFixed:  0.30,
		ShippingPerOrder:  0,
		PackagingPerOrder: 0.50,
		RefurbPerOrder:    0,

		ReturnRate:    0.08,
		SalvageFrac:   0.40,
		SalvageFeePct: 0.10,

		MissingRate:          0.03,
		MissingRecoveryFrac:  0,
		DefectRate:           0.08,
		DefectRecoveryFrac:   0.50,
		GradeMismatchRate:    0.10,
		MismatchDiscountFrac: 0.20,

		OpsCostPerMin:            0.40,
		StorageCostPerUnitPerDay: 0.01,

		LotFixedCost: 0,
	}
}

// Validate checks the parameter ranges that would make a simulation
// meaningless rather than merely pessimistic.
func (p Params) Validate() error {
	if p.Sims < 1 {
		return fmt.Errorf("sims must be >= 1, got %d", p.Sims)
	}
	if p.HorizonDays < 1 {
		return fmt.Errorf("horizon_days must be >= 1, got %d", p.HorizonDays)
	}
	if p.PayoutLagDays < 0 {
		return fmt.Errorf("payout_lag_days must be >= 0, got %d", p.PayoutLagDays)
	}
	for name, v := range map[string]float64{
		"cv_fallback":            p.CVFallback,
		"baseline_daily_hazard":  p.BaselineDailyHazard,
		"per_order_fee_fixed":    p.PerOrderFeeFixed,
		"shipping_per_order":     p.ShippingPerOrder,
		"packaging_per_order":    p.PackagingPerOrder,
		"refurb_per_order":       p.RefurbPerOrder,
		"ops_cost_per_min":       p.OpsCostPerMin,
		"storage_cost_per_unit_per_day": p.StorageCostPerUnitPerDay,
		"lot_fixed_cost":         p.LotFixedCost,
	} {
		if v < 0 {
			return fmt.Errorf("%s must be >= 0, got %g", name, v)
		}
	}
	for name, v := range map[string]float64{
		"marketplace_fee_pct":    p.MarketplaceFeePct,
		"payment_fee_pct":        p.PaymentFeePct,
		"return_rate":            p.ReturnRate,
		"salvage_frac":           p.SalvageFrac,
		"salvage_fee_pct":        p.SalvageFeePct,
		"missing_rate":           p.MissingRate,
		"missing_recovery_frac":  p.MissingRecoveryFrac,
		"defect_rate":            p.DefectRate,
		"defect_recovery_frac":   p.DefectRecoveryFrac,
		"grade_mismatch_rate":    p.GradeMismatchRate,
		"mismatch_discount_frac": p.MismatchDiscountFrac,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s must be in [0,1], got %g", name, v)
		}
	}
	return nil
}
