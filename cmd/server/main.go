package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vyaas/config"
)

var (
	cfg    config.AppConfig
	logger *zap.Logger

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "vyaas",
	Short: "Vyaas farm advisory service",
	Long: `Vyaas serves crop recommendations, synthetic market insights and
cultivation plans for a single farm profile.

Run without arguments to start the HTTP server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var note string
		cfg, note = config.Load()
		if verbose {
			cfg.LogLevel = "debug"
		}
		var err error
		logger, err = config.NewLogger(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		if note != "" {
			logger.Debug(note)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.AddCommand(serveCmd, recommendCmd, marketCmd, planCmd, catalogCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
