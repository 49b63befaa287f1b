// Package journal records simulation and optimization runs so bid
// decisions can be audited after the fact. The core simulator never
// touches it; only the CLI writes here.
package journal

import "time"

// Run kinds.
const (
	KindSimulate = "simulate"
	KindOptimize = "optimize"
)

// RunRecord is one simulator or optimizer invocation with its distribution
// summary and constraint outcome.
type RunRecord struct {
	RunID   string // ULID, time-sortable
	Kind    string // simulate | optimize
	Created time.Time

	Manifest string // source path, informational
	Items    int
	Sims     int
	Seed     int64

	Bid float64

	ROIP5  float64
	ROIP50 float64
	ROIP95 float64

	CashP5       float64
	CashP50      float64
	CashP95      float64
	ExpectedCash float64

	ROITarget            float64
	RiskThreshold        float64
	ProbROIAtLeastTarget float64
	MeetsConstraints     bool

	Notes string
}

type Journal interface {
	RecordRun(RunRecord) error
	Close() error
}
