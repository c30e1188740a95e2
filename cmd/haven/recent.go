// Package main provides the entry point for the haven CLI.
package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hearthwood/haven/internal/journal"
	"github.com/hearthwood/haven/internal/output"
	"github.com/hearthwood/haven/internal/report"
)

// newRecentCmd creates the recent command.
func newRecentCmd() *cobra.Command {
	return newRecentCmdInternal(nil)
}

// newRecentCmdInternal creates the recent command with an injectable store for testing.
func newRecentCmdInternal(store *journal.Store) *cobra.Command {
	var lastFlag string

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show the most recent entries",
		Long: `Show the most recent mood entries, newest first.

The count defaults to the configured recent value. Override it with --last.

Examples:
  haven recent
  haven recent --last 10`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRecent(cmd, store, lastFlag)
		},
	}

	cmd.Flags().StringVar(&lastFlag, "last", "", "Number of entries to show")

	return cmd
}

func runRecent(cmd *cobra.Command, store *journal.Store, lastFlag string) error {
	env, err := setupCommand(cmd, store)
	if err != nil {
		return err
	}

	last, err := parseLastFlag(lastFlag, env.cfg.Recent)
	if err != nil {
		env.printer.Error(err)
		return err
	}

	entries, stats, err := env.store.Load()
	if err != nil {
		err = output.NewSystemErrorWithCause("could not read journal", err)
		env.printer.Error(err)
		return err
	}
	warnLoadStats(env.printer, stats)

	recent := report.Recent(entries, last)

	if env.printer.IsJSON() {
		env.printer.WriteJSON(entriesJSON(recent))
		return nil
	}

	if len(recent) == 0 {
		env.printer.Println("No entries yet. Log one with 'haven log <1-5>'.")
		return nil
	}

	entryTable(env.printer, recent)
	return nil
}

// parseLastFlag resolves the --last flag, falling back to the configured
// count when the flag is unset.
func parseLastFlag(lastFlag string, fallback int) (int, error) {
	if lastFlag == "" {
		return fallback, nil
	}
	count, err := strconv.Atoi(lastFlag)
	if err != nil || count <= 0 {
		return 0, output.NewUserError("--last must be a positive integer")
	}
	return count, nil
}
