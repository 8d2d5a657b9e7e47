// Package cli wires the calcctl command tree.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/danmuck/calckit/internal/config"
	"github.com/danmuck/calckit/internal/logging"
)

func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewRootCmd() *cobra.Command {
	var cfgPath string
	var debug bool
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:           "calcctl",
		Short:         "Arithmetic and player-scenario toolkit",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if cfgPath != "" {
				loaded, err := config.Load(cfgPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			level := cfg.LogLevel
			if debug {
				level = "debug"
			}
			logging.ConfigureLevel(level)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to calcctl config (TOML; optional)")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(
		evalCmd(&cfg),
		runCmd(&cfg),
		simulateCmd(&cfg),
		opsCmd(),
		versionCmd(),
	)
	return cmd
}
