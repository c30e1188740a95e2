// Package main provides the entry point for the haven CLI.
package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/hearthwood/haven/internal/journal"
	"github.com/hearthwood/haven/internal/output"
	"github.com/hearthwood/haven/internal/report"
)

// newDayCmd creates the day command.
func newDayCmd() *cobra.Command {
	return newDayCmdInternal(nil)
}

// newDayCmdInternal creates the day command with an injectable store for testing.
func newDayCmdInternal(store *journal.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day [date]",
		Short: "Show entries for one day",
		Long: `Show every entry logged on a single day, newest first.

The date is YYYY-MM-DD and defaults to today.

Examples:
  haven day
  haven day 2026-03-10`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dateArg := ""
			if len(args) > 0 {
				dateArg = args[0]
			}
			return runDay(cmd, store, dateArg)
		},
	}

	return cmd
}

func runDay(cmd *cobra.Command, store *journal.Store, dateArg string) error {
	env, err := setupCommand(cmd, store)
	if err != nil {
		return err
	}

	date := time.Now()
	if dateArg != "" {
		date, err = report.ParseDate(dateArg)
		if err != nil {
			err = output.NewUserError(err.Error())
			env.printer.Error(err)
			return err
		}
	}

	entries, stats, err := env.store.Load()
	if err != nil {
		err = output.NewSystemErrorWithCause("could not read journal", err)
		env.printer.Error(err)
		return err
	}
	warnLoadStats(env.printer, stats)

	dayEntries := report.DayEntries(entries, date)

	if env.printer.IsJSON() {
		env.printer.WriteJSON(map[string]any{
			"date":    date.Format(report.DateLayout),
			"count":   len(dayEntries),
			"entries": entriesJSON(dayEntries),
		})
		return nil
	}

	if len(dayEntries) == 0 {
		env.printer.Print("No entries on %s\n", date.Format(report.DateLayout))
		return nil
	}

	env.printer.Section(date.Format("Monday, January 2"))
	entryTable(env.printer, dayEntries)
	return nil
}
