package journal

const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	kind TEXT NOT NULL,
	created DATETIME NOT NULL,
	manifest TEXT NOT NULL DEFAULT '',
	items INTEGER NOT NULL,
	sims INTEGER NOT NULL,
	seed INTEGER NOT NULL,
	bid REAL NOT NULL,
	roi_p5 REAL NOT NULL,
	roi_p50 REAL NOT NULL,
	roi_p95 REAL NOT NULL,
	cash_p5 REAL NOT NULL,
	cash_p50 REAL NOT NULL,
	cash_p95 REAL NOT NULL,
	expected_cash REAL NOT NULL,
	roi_target REAL NOT NULL DEFAULT 0,
	risk_threshold REAL NOT NULL DEFAULT 0,
	prob_roi_target REAL NOT NULL DEFAULT 0,
	meets_constraints INTEGER NOT NULL DEFAULT 0,
	notes TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created);
CREATE INDEX IF NOT EXISTS idx_runs_kind ON runs(kind);
`
