package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

// CSVJournal appends run records to a flat CSV, for spreadsheets and quick
// diffs. Header is written on creation.
type CSVJournal struct {
	w *csv.Writer
	f *os.File
}

func NewCSV(path string) (*CSVJournal, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{
		"run_id", "kind", "created", "manifest", "items", "sims", "seed", "bid",
		"roi_p5", "roi_p50", "roi_p95", "cash_p5", "cash_p50", "cash_p95",
		"expected_cash", "roi_target", "risk_threshold", "prob_roi_target",
		"meets_constraints", "notes",
	}); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return nil, err
	}

	return &CSVJournal{w: w, f: f}, nil
}

func (j *CSVJournal) RecordRun(r RunRecord) error {
	err := j.w.Write([]string{
		r.RunID,
		r.Kind,
		r.Created.Format(time.RFC3339),
		r.Manifest,
		strconv.Itoa(r.Items),
		strconv.Itoa(r.Sims),
		strconv.FormatInt(r.Seed, 10),
		f(r.Bid),
		f(r.ROIP5), f(r.ROIP50), f(r.ROIP95),
		f(r.CashP5), f(r.CashP50), f(r.CashP95),
		f(r.ExpectedCash),
		f(r.ROITarget),
		f(r.RiskThreshold),
		f(r.ProbROIAtLeastTarget),
		strconv.FormatBool(r.MeetsConstraints),
		r.Notes,
	})
	if err != nil {
		return err
	}
	j.w.Flush()
	return j.w.Error()
}

func (j *CSVJournal) Close() error {
	j.w.Flush()
	if err := j.w.Error(); err != nil {
		j.f.Close()
		return err
	}
	return j.f.Close()
}

func f(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
