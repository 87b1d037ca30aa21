package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/warp/incentive-engine/config"
)

var (
	configPath string
	envPath    string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a .toml or .yaml config file")
	rootCmd.PersistentFlags().StringVar(&envPath, "env", ".env", "Path to a .env file (ignored when missing)")
}

var rootCmd = &cobra.Command{
	Use:   "incentive",
	Short: "Sales incentive calculator",
	Long: `Calculates sales incentive payouts from NRV and ER achievement against
fixed targets, using tiered fixed incentives and a new-customer booster.
The payout is gated on the S.I.H. condition.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// loadConfig resolves the configuration from file, .env and environment.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(envPath); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the JSON logger for the configured level.
func newLogger(cfg config.Config) *slog.Logger {
	level, _ := config.ParseLevel(cfg.Log.Level)
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
}
