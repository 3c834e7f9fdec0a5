package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/btc-haven/haven-cli/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "haven-cli",
	Short: "Bitcoin relocation jurisdiction scorer",
	Long:  "Scores and ranks Bitcoin-friendly jurisdictions against a personal situation: citizenship, family, tax posture, visa options, and lifestyle preferences.",
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
