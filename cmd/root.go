package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"template-verifier/core/logger"
	"template-verifier/feature/compare"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// configDir is where .env and verifier.yaml are looked up.
var configDir string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "verifier",
	Short: "Template library verifier",
	Long: `Verifier checks that the online copy of the template library matches its
source of truth. Every tier's templates and image streams are compared
document by document; any missing, extra or different document is reported.

Running without a subcommand performs a comparison and exits with status 1
when differences are found.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCompare(cmd, compareOptions{})
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := RootCmd.ExecuteContext(ctx)
	stop()

	if err == nil {
		return
	}
	// The verdict has already been reported
	if errors.Is(err, compare.ErrDifferences) {
		os.Exit(1)
	}

	// Use the application's standard logger for error reporting
	// We use "debug" level configuration to get ISO8601 timestamps (DevConfig) instead of Epoch (ProdConfig)
	cfg := &logger.Config{
		Level:  "debug",
		Format: "console",
	}

	l, logErr := logger.New(cfg)
	if logErr == nil {
		l.Error("command failed", zap.Error(err))
		_ = l.Sync()
	} else {
		// Absolute fallback if logger creation fails (rare)
		fmt.Println(err)
	}
	os.Exit(1)
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "Directory containing .env and verifier.yaml")
}
