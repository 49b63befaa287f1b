package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/lotbid/manifest"
	"github.com/rustyeddy/lotbid/risk"
)

var feasibleCmd = &cobra.Command{
	Use:   "feasible",
	Short: "Check one bid against the constraints",
	Long: `Feasible evaluates a single bid and reports pass/fail per constraint
along with the full distribution summary.

Example:
  lotbid feasible -m manifest.csv -b 1500 --roi-target 1.25 --risk-threshold 0.8`,
	RunE: runFeasible,
}

var (
	feManifest  string
	feBid       float64
	feTarget    float64
	feThreshold float64
	feMinCash   float64
	feMinCashP5 float64
)

func init() {
	rootCmd.AddCommand(feasibleCmd)

	feasibleCmd.Flags().StringVarP(&feManifest, "manifest", "m", "", "path to manifest (.csv, .csv.xz or .zip) (required)")
	feasibleCmd.Flags().Float64VarP(&feBid, "bid", "b", 0, "bid amount to check (required)")
	feasibleCmd.Flags().Float64Var(&feTarget, "roi-target", 0, "required ROI multiple of bid (overrides config)")
	feasibleCmd.Flags().Float64Var(&feThreshold, "risk-threshold", 0, "required probability of hitting the target (overrides config)")
	feasibleCmd.Flags().Float64Var(&feMinCash, "min-cash", 0, "floor on expected cash within horizon")
	feasibleCmd.Flags().Float64Var(&feMinCashP5, "min-cash-p5", 0, "tail-risk floor on cash within horizon")

	feasibleCmd.MarkFlagRequired("manifest")
	feasibleCmd.MarkFlagRequired("bid")
}

func runFeasible(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	items, err := manifest.Load(feManifest)
	if err != nil {
		return err
	}

	cons := cfg.Constraints
	if feTarget > 0 {
		cons.ROITarget = feTarget
	}
	if cmd.Flags().Changed("risk-threshold") {
		cons.RiskThreshold = feThreshold
	}
	if cmd.Flags().Changed("min-cash") {
		cons.MinExpectedCash = risk.Float64Ptr(feMinCash)
	}
	if cmd.Flags().Changed("min-cash-p5") {
		cons.MinCashP5 = risk.Float64Ptr(feMinCashP5)
	}
	if err := cons.Validate(); err != nil {
		return fmt.Errorf("constraints: %w", err)
	}

	d := risk.Evaluate(items, feBid, cons, cfg.Simulation)

	if d.Allowed {
		fmt.Printf("\nBid $%.2f PASSES all constraints\n\n", feBid)
	} else {
		fmt.Printf("\nBid $%.2f FAILS\n\n", feBid)
	}
	printDistribution(os.Stdout, d.Metrics)
	printViolations(os.Stdout, d)

	return nil
}
