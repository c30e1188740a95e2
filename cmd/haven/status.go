// Package main provides the entry point for the haven CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hearthwood/haven/internal/journal"
	"github.com/hearthwood/haven/internal/output"
)

// newStatusCmd creates the status command.
func newStatusCmd() *cobra.Command {
	return newStatusCmdInternal(nil)
}

// newStatusCmdInternal creates the status command with an injectable store for testing.
func newStatusCmdInternal(store *journal.Store) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show journal file health",
		Long: `Show where the journal file lives and how many entries it holds.

With --verbose, also break down rows the loader had to skip.

Examples:
  haven status
  haven status --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd, store, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Include row-level load details")

	return cmd
}

func runStatus(cmd *cobra.Command, store *journal.Store, verbose bool) error {
	env, err := setupCommand(cmd, store)
	if err != nil {
		return err
	}

	// Capture existence before Load auto-creates the file.
	exists := env.store.FileExists()

	entries, stats, err := env.store.Load()
	if err != nil {
		err = output.NewSystemErrorWithCause("could not read journal", err)
		env.printer.Error(err)
		return err
	}

	if env.printer.IsJSON() {
		data := map[string]any{
			"path":    env.store.Path(),
			"exists":  exists,
			"entries": len(entries),
		}
		if verbose {
			data["rows"] = stats.Rows
			data["skipped_rows"] = stats.SkippedRows
			data["bad_timestamps"] = stats.BadTimestamps
			data["bad_moods"] = stats.BadMoods
		}
		return env.printer.Success(data)
	}

	printHumanStatus(env.printer, env.store, exists, len(entries), stats, verbose)
	return nil
}

func printHumanStatus(printer *output.Printer, store *journal.Store, exists bool, count int, stats *journal.LoadStats, verbose bool) {
	printer.Section("Journal")
	printer.KeyValue("Path", store.Path())
	printer.KeyValue("Exists", formatBool(exists))
	printer.KeyValue("Entries", fmt.Sprintf("%d", count))

	if !verbose {
		return
	}

	printer.Section("Load")
	printer.KeyValue("Rows", fmt.Sprintf("%d", stats.Rows))
	printer.KeyValue("Skipped", fmt.Sprintf("%d", stats.SkippedRows))
	printer.KeyValue("Bad timestamps", fmt.Sprintf("%d", stats.BadTimestamps))
	printer.KeyValue("Bad moods", fmt.Sprintf("%d", stats.BadMoods))
}

func formatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
