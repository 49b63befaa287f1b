package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/lotbid/journal"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Inspect recorded runs",
	Long: `Journal lists or shows simulation and optimization runs recorded in
the SQLite journal.

Examples:
  lotbid journal list -n 20
  lotbid journal show 01JD2QZ0V1N8X4T9GSKJ4D3FQM`,
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent runs",
	RunE:  runJournalList,
}

var journalShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show one run in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalShow,
}

var journalListN int

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalShowCmd)

	journalListCmd.Flags().IntVarP(&journalListN, "count", "n", 20, "number of runs to list")
}

func openSQLiteJournal() (*journal.SQLite, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Journal.Type != "sqlite" {
		return nil, fmt.Errorf("journal inspection needs journal.type=sqlite (have %q)", cfg.Journal.Type)
	}
	return journal.NewSQLite(cfg.Journal.DBPath)
}

func runJournalList(cmd *cobra.Command, args []string) error {
	j, err := openSQLiteJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	runs, err := j.ListRecent(journalListN)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs recorded")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Run", "Kind", "Created", "Items", "Bid", "ROI p50", "E[cash]", "OK")
	for _, r := range runs {
		ok := ""
		if r.MeetsConstraints {
			ok = "yes"
		} else if r.Kind == journal.KindOptimize {
			ok = "no"
		}
		table.Append(
			r.RunID,
			r.Kind,
			r.Created.Format("2006-01-02 15:04"),
			fmt.Sprintf("%d", r.Items),
			fmt.Sprintf("$%.2f", r.Bid),
			fmt.Sprintf("%.3f", r.ROIP50),
			fmt.Sprintf("$%.2f", r.ExpectedCash),
			ok,
		)
	}
	table.Render()
	return nil
}

func runJournalShow(cmd *cobra.Command, args []string) error {
	j, err := openSQLiteJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	r, err := j.GetRun(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Run %s (%s) at %s\n", r.RunID, r.Kind, r.Created.Format("2006-01-02 15:04:05 MST"))
	fmt.Printf("  manifest: %s (%d items)\n", r.Manifest, r.Items)
	fmt.Printf("  sims=%d seed=%d bid=$%.2f\n", r.Sims, r.Seed, r.Bid)
	fmt.Printf("  roi: p5=%.3f p50=%.3f p95=%.3f\n", r.ROIP5, r.ROIP50, r.ROIP95)
	fmt.Printf("  cash: p5=$%.2f p50=$%.2f p95=$%.2f expected=$%.2f\n",
		r.CashP5, r.CashP50, r.CashP95, r.ExpectedCash)
	if r.ROITarget > 0 {
		fmt.Printf("  P(roi >= %.2fx) = %.1f%% (required %.1f%%)\n",
			r.ROITarget, 100*r.ProbROIAtLeastTarget, 100*r.RiskThreshold)
	}
	if r.Kind == journal.KindOptimize {
		fmt.Printf("  meets constraints: %v\n", r.MeetsConstraints)
	}
	if r.Notes != "" {
		fmt.Printf("  notes: %s\n", r.Notes)
	}
	return nil
}
