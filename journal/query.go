package journal

import (
	"database/sql"
	"fmt"
	"time"
)

// GetRun returns a single run record by ID.
func (j *SQLite) GetRun(runID string) (RunRecord, error) {
	row := j.db.QueryRow(selectRuns+`WHERE run_id = ?`, runID)

	rec, err := scanRun(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return RunRecord{}, fmt.Errorf("run %q not found", runID)
		}
		return RunRecord{}, err
	}
	return rec, nil
}

// ListRunsBetween returns runs created within [start, end), oldest first.
func (j *SQLite) ListRunsBetween(start, end time.Time) ([]RunRecord, error) {
	rows, err := j.db.Query(selectRuns+`
		WHERE created >= ? AND created < ?
		ORDER BY created ASC`, start, end)
	if err != nil {
		return nil, err
	}
	return collectRuns(rows)
}

// ListRecent returns the most recent n runs, newest first.
func (j *SQLite) ListRecent(n int) ([]RunRecord, error) {
	if n <= 0 {
		n = 20
	}
	rows, err := j.db.Query(selectRuns+`
		ORDER BY created DESC
		LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	return collectRuns(rows)
}

const selectRuns = `
	SELECT run_id, kind, created, manifest, items, sims, seed, bid,
	       roi_p5, roi_p50, roi_p95, cash_p5, cash_p50, cash_p95, expected_cash,
	       roi_target, risk_threshold, prob_roi_target, meets_constraints, notes
	FROM runs
`

type scannable interface {
	Scan(dest ...any) error
}

func scanRun(row scannable) (RunRecord, error) {
	var rec RunRecord
	var meets int
	err := row.Scan(
		&rec.RunID,
		&rec.Kind,
		&rec.Created,
		&rec.Manifest,
		&rec.Items,
		&rec.Sims,
		&rec.Seed,
		&rec.Bid,
		&rec.ROIP5,
		&rec.ROIP50,
		&rec.ROIP95,
		&rec.CashP5,
		&rec.CashP50,
		&rec.CashP95,
		&rec.ExpectedCash,
		&rec.ROITarget,
		&rec.RiskThreshold,
		&rec.ProbROIAtLeastTarget,
		&meets,
		&rec.Notes,
	)
	if err != nil {
		return RunRecord{}, err
	}
	rec.MeetsConstraints = meets == 1
	return rec, nil
}

func collectRuns(rows *sql.Rows) ([]RunRecord, error) {
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
