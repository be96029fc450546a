package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sattva-energy/geotabs/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "geotabs",
	Short: "GeoTABS feasibility estimator for Indian buildings",
	Long:  "Estimates sizing, energy, cost, CO2 and feasibility of ground-source heat-pump retrofits from building parameters, as an HTTP API or one-shot CLI.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
