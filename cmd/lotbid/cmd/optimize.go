package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/lotbid/bid"
	"github.com/rustyeddy/lotbid/journal"
	"github.com/rustyeddy/lotbid/manifest"
	"github.com/rustyeddy/lotbid/risk"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Find the highest feasible bid for a lot",
	Long: `Optimize bisects a bid range for the highest bid that still meets the
return and risk constraints, holding random draws fixed across steps so
the search stays monotonic.

Example:
  lotbid optimize -m manifest.csv --lo 0 --hi 5000 --roi-target 1.25 --risk-threshold 0.8`,
	RunE: runOptimize,
}

var (
	optManifest  string
	optLo        float64
	optHi        float64
	optTol       float64
	optTarget    float64
	optThreshold float64
	optMinCash   float64
	optMinCashP5 float64
	optNotes     string
)

func init() {
	rootCmd.AddCommand(optimizeCmd)

	optimizeCmd.Flags().StringVarP(&optManifest, "manifest", "m", "", "path to manifest (.csv, .csv.xz or .zip) (required)")
	optimizeCmd.Flags().Float64Var(&optLo, "lo", 0, "lower bid bound")
	optimizeCmd.Flags().Float64Var(&optHi, "hi", 0, "upper bid bound (required)")
	optimizeCmd.Flags().Float64Var(&optTol, "tol", bid.DefaultTol, "bid convergence tolerance")
	optimizeCmd.Flags().Float64Var(&optTarget, "roi-target", 0, "required ROI multiple of bid (overrides config)")
	optimizeCmd.Flags().Float64Var(&optThreshold, "risk-threshold", 0, "required probability of hitting the target (overrides config)")
	optimizeCmd.Flags().Float64Var(&optMinCash, "min-cash", 0, "floor on expected cash within horizon")
	optimizeCmd.Flags().Float64Var(&optMinCashP5, "min-cash-p5", 0, "tail-risk floor on cash within horizon")

	optimizeCmd.Flags().StringVar(&optNotes, "notes", "", "freeform note stored with the journal record")

	optimizeCmd.MarkFlagRequired("manifest")
	optimizeCmd.MarkFlagRequired("hi")
}

func runOptimize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	items, err := manifest.Load(optManifest)
	if err != nil {
		return err
	}

	cons := cfg.Constraints
	if optTarget > 0 {
		cons.ROITarget = optTarget
	}
	if cmd.Flags().Changed("risk-threshold") {
		cons.RiskThreshold = optThreshold
	}
	if cmd.Flags().Changed("min-cash") {
		cons.MinExpectedCash = risk.Float64Ptr(optMinCash)
	}
	if cmd.Flags().Changed("min-cash-p5") {
		cons.MinCashP5 = risk.Float64Ptr(optMinCashP5)
	}
	if err := cons.Validate(); err != nil {
		return fmt.Errorf("constraints: %w", err)
	}
	if err := cfg.Simulation.Validate(); err != nil {
		return fmt.Errorf("simulation parameters: %w", err)
	}

	slog.Info("optimizing bid",
		"manifest", optManifest,
		"items", len(items),
		"lo", optLo,
		"hi", optHi,
		"roi_target", cons.ROITarget,
		"risk_threshold", cons.RiskThreshold,
	)

	result := bid.Optimize(items, optLo, optHi, cons, cfg.Simulation, optTol)

	fmt.Printf("\nRecommended bid: $%.2f", result.Bid)
	if !result.MeetsConstraints {
		fmt.Printf("  (constraints NOT met at this bound)")
	}
	fmt.Printf("\n  feasibility evaluations: %d\n\n", result.Steps)

	printDistribution(os.Stdout, result.Decision.Metrics)
	printViolations(os.Stdout, result.Decision)

	recordRun(cfg, journal.RunRecord{
		Kind:          journal.KindOptimize,
		Manifest:      optManifest,
		RiskThreshold: cons.RiskThreshold,
		Notes:         optNotes,
	}, result.Decision.Metrics, &result)

	return nil
}
