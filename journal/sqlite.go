package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordRun(r RunRecord) error {
	meets := 0
	if r.MeetsConstraints {
		meets = 1
	}
	_, err := j.db.Exec(`
		INSERT INTO runs
		(run_id, kind, created, manifest, items, sims, seed, bid,
		 roi_p5, roi_p50, roi_p95, cash_p5, cash_p50, cash_p95, expected_cash,
		 roi_target, risk_threshold, prob_roi_target, meets_constraints, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Kind, r.Created, r.Manifest, r.Items, r.Sims, r.Seed, r.Bid,
		r.ROIP5, r.ROIP50, r.ROIP95, r.CashP5, r.CashP50, r.CashP95, r.ExpectedCash,
		r.ROITarget, r.RiskThreshold, r.ProbROIAtLeastTarget, meets, r.Notes,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
