package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/rustyeddy/lotbid/bid"
	"github.com/rustyeddy/lotbid/config"
	"github.com/rustyeddy/lotbid/internal/id"
	"github.com/rustyeddy/lotbid/journal"
	"github.com/rustyeddy/lotbid/risk"
	"github.com/rustyeddy/lotbid/sim"
)

// printDistribution renders the lot-level summary: a percentile table plus
// the scalar lines a buyer actually reads.
func printDistribution(out io.Writer, res sim.Result) {
	table := tablewriter.NewWriter(out)
	table.Header("Metric", "p5", "p50", "p95")
	table.Append("ROI (x bid)",
		fmt.Sprintf("%.3f", res.ROIP5),
		fmt.Sprintf("%.3f", res.ROIP50),
		fmt.Sprintf("%.3f", res.ROIP95),
	)
	table.Append("Cash in horizon",
		fmt.Sprintf("$%.2f", res.CashP5),
		fmt.Sprintf("$%.2f", res.CashP50),
		fmt.Sprintf("$%.2f", res.CashP95),
	)
	table.Render()

	fmt.Fprintf(out, "  items=%d  sims=%d  bid=$%.2f  payout lag=%dd\n",
		res.Items, res.Sims, res.Bid, res.PayoutLagDays)
	fmt.Fprintf(out, "  expected cash within horizon: $%.2f\n", res.ExpectedCash)
	if res.ROITarget > 0 {
		fmt.Fprintf(out, "  P(roi >= %.2fx bid): %.1f%%\n",
			res.ROITarget, 100*res.ProbROIAtLeastTarget)
	}
	fmt.Fprintln(out)
}

func printViolations(out io.Writer, d risk.Decision) {
	if d.Allowed || len(d.Violations) == 0 {
		return
	}
	fmt.Fprintln(out, "Constraint violations:")
	for _, v := range d.Violations {
		fmt.Fprintf(out, "  [%s] %s\n", v.Code, v.Msg)
	}
	fmt.Fprintln(out)
}

// recordRun persists the run per the journal config. Journaling failures
// are logged, never fatal; the simulation result already printed.
func recordRun(cfg *config.Config, rec journal.RunRecord, res sim.Result, opt *bid.Result) {
	j, err := openJournal(cfg.Journal)
	if err != nil {
		slog.Warn("journal unavailable", "err", err)
		return
	}
	if j == nil {
		return
	}
	defer j.Close()

	rec.RunID = id.New()
	rec.Created = time.Now().UTC()
	rec.Items = res.Items
	rec.Sims = res.Sims
	rec.Seed = cfg.Simulation.Seed
	rec.Bid = res.Bid
	rec.ROIP5, rec.ROIP50, rec.ROIP95 = res.ROIP5, res.ROIP50, res.ROIP95
	rec.CashP5, rec.CashP50, rec.CashP95 = res.CashP5, res.CashP50, res.CashP95
	rec.ExpectedCash = res.ExpectedCash
	rec.ROITarget = res.ROITarget
	rec.ProbROIAtLeastTarget = res.ProbROIAtLeastTarget
	if opt != nil {
		rec.Bid = opt.Bid
		rec.MeetsConstraints = opt.MeetsConstraints
	}

	if err := j.RecordRun(rec); err != nil {
		slog.Warn("failed to record run", "err", err)
		return
	}
	slog.Debug("run recorded", "run_id", rec.RunID, "kind", rec.Kind)
}

func openJournal(cfg config.JournalConfig) (journal.Journal, error) {
	switch cfg.Type {
	case "", "none":
		return nil, nil
	case "sqlite":
		return journal.NewSQLite(cfg.DBPath)
	case "csv":
		return journal.NewCSV(cfg.CSVPath)
	default:
		return nil, fmt.Errorf("unknown journal type %q", cfg.Type)
	}
}
