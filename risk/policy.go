package risk

import "fmt"

// Constraints is the bid acceptance policy: what the lot must return, how
// sure we need to be, and the cash floors the buyer can live with.
//
// ROITarget is a multiple of bid (1.25 = "125% of bid back"), and
// RiskThreshold is the minimum required probability of reaching it. The
// cash floors are optional; nil means "no floor".
type Constraints struct {
	ROITarget     float64 `yaml:"roi_target"`
	RiskThreshold float64 `yaml:"risk_threshold"`

	MinExpectedCash *float64 `yaml:"min_expected_cash,omitempty"`
	MinCashP5       *float64 `yaml:"min_cash_p5,omitempty"` // tail-risk floor
}

// DefaultConstraints returns the stock acceptance policy: 125% of bid back
// with 80% confidence, no cash floors.
func DefaultConstraints() Constraints {
	return Constraints{
		ROITarget:     1.25,
		RiskThreshold: 0.80,
	}
}

// Validate rejects constraint values that cannot be satisfied or compared.
func (c Constraints) Validate() error {
	if c.ROITarget <= 0 {
		return fmt.Errorf("roi_target must be > 0, got %g", c.ROITarget)
	}
	if c.RiskThreshold < 0 || c.RiskThreshold > 1 {
		return fmt.Errorf("risk_threshold must be in [0,1], got %g", c.RiskThreshold)
	}
	return nil
}

// Float64Ptr is a convenience for filling the optional cash floors.
func Float64Ptr(v float64) *float64 { return &v }
