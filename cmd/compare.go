package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"template-verifier/feature/compare"

	"github.com/spf13/cobra"
)

type compareOptions struct {
	json        bool
	report      string
	parallel    int
	failOnExtra bool
}

var compareOpts compareOptions

// compareCmd runs a single comparison.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the library with its online copy",
	Long: `Compare every configured library directory with its online copy.

Exits with status 1 when any document is missing, different or malformed, or
when a directory does not exist.

Examples:
  # Human readable summary
  verifier compare

  # Machine readable verdict, also saved to a file
  verifier compare --json --report verdict.json

  # Compare four tasks at a time and treat online-only documents as failures
  verifier compare --parallel 4 --fail-on-extra`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCompare(cmd, compareOpts)
	},
}

func init() {
	compareCmd.Flags().BoolVar(&compareOpts.json, "json", false, "Write the verdict as JSON to stdout")
	compareCmd.Flags().StringVar(&compareOpts.report, "report", "", "Also write the JSON verdict to this file")
	compareCmd.Flags().IntVar(&compareOpts.parallel, "parallel", 0, "Number of tasks compared concurrently (overrides config)")
	compareCmd.Flags().BoolVar(&compareOpts.failOnExtra, "fail-on-extra", false, "Fail when the online copy has documents the library does not")

	RootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, opts compareOptions) error {
	cfg, logg, err := loadEnvironment()
	if err != nil {
		return err
	}
	defer logg.Sync()

	if opts.parallel > 0 {
		cfg.Compare.Parallel = opts.parallel
	}
	if opts.failOnExtra {
		cfg.Compare.FailOnExtra = true
	}

	ctx := cmd.Context()
	svc, closeService, err := buildService(ctx, cfg, logg)
	if err != nil {
		return err
	}
	defer closeService()

	verdict, err := svc.Run(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(verdict); err != nil {
			return fmt.Errorf("failed to write verdict: %w", err)
		}
	} else {
		fmt.Fprint(out, compare.Render(verdict))
	}

	if opts.report != "" {
		data, err := json.MarshalIndent(verdict, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		if err := os.WriteFile(opts.report, data, 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	if verdict.Failed {
		return compare.ErrDifferences
	}
	return nil
}
