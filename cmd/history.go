package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"template-verifier/core/history"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyJSON  bool
)

// historyCmd lists stored runs.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent comparison runs",
	Long:  `Lists the most recent runs stored in the history database (database.enabled must be set).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadEnvironment()
		if err != nil {
			return err
		}
		defer logg.Sync()

		ctx := cmd.Context()
		store, closeDB, err := openHistory(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to open run history: %w", err)
		}
		defer closeDB()
		if store == nil {
			return errors.New("run history is disabled, set DATABASE_ENABLED=true")
		}

		runs, err := store.List(ctx, historyLimit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if historyJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(runs)
		}
		fmt.Fprintln(out, renderHistory(runs))
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", history.DefaultLimit, "Maximum number of runs to list")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Write the runs as JSON")

	RootCmd.AddCommand(historyCmd)
}

var (
	failedCell = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	passedCell = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
)

func renderHistory(runs []history.Run) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("RUN", "STARTED", "RESULT", "COMPARED", "MISMATCHED", "MISSING", "FINDINGS")

	for _, r := range runs {
		result := passedCell.Render("passed")
		if r.Failed {
			result = failedCell.Render("failed")
		}
		t.Row(
			r.ID,
			r.StartedAt.Format("2006-01-02 15:04:05"),
			result,
			strconv.Itoa(r.Compared),
			strconv.Itoa(r.Mismatched),
			strconv.Itoa(r.MissingOnline+r.MissingRoots),
			strconv.Itoa(r.Findings),
		)
	}
	return t.String()
}
