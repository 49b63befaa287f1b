package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/lotbid/config"
)

var rootCmd = &cobra.Command{
	Use:   "lotbid",
	Short: "Liquidation-lot bid simulator and optimizer",
	Long: `Lotbid prices liquidation lots. Given a manifest of mixed-condition
items with price and sell-through estimates already attached, it simulates
the distribution of resale outcomes over a fixed horizon and finds the
highest bid still compatible with your return and risk constraints.

It provides tools for:
  - Monte Carlo simulation of lot revenue and horizon-bounded cash
  - Feasibility checks of a bid against ROI/risk/cash-floor constraints
  - Bisection search for the maximum acceptable bid
  - Journaling runs to SQLite or CSV for later review`,
}

var (
	cfgPath   string
	verbose   bool
	logFormat string
)

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file (optional)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "set log level to debug")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text|json (overrides config)")
}

// loadConfig resolves the effective configuration, the config file when
// given and defaults otherwise, and installs the logger.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.LoadFromFile(cfgPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if verbose {
		cfg.Log.Level = "debug"
	}
	if logFormat != "" {
		cfg.Log.Format = logFormat
	}
	setupLogger(cfg.Log)

	return cfg, nil
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
