// Package main provides the entry point for the haven CLI.
package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/hearthwood/haven/internal/journal"
	"github.com/hearthwood/haven/internal/output"
	"github.com/hearthwood/haven/internal/report"
)

// newHomeCmd creates the home command.
func newHomeCmd() *cobra.Command {
	return newHomeCmdInternal(nil)
}

// newHomeCmdInternal creates the home command with an injectable store for testing.
func newHomeCmdInternal(store *journal.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "home",
		Short: "Show the dashboard",
		Long: `Show the dashboard: this week's chart, this month's calendar,
today's entries, and the most recent entries.

Example:
  haven home`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHome(cmd, store)
		},
	}

	return cmd
}

func runHome(cmd *cobra.Command, store *journal.Store) error {
	env, err := setupCommand(cmd, store)
	if err != nil {
		return err
	}

	entries, stats, err := env.store.Load()
	if err != nil {
		err = output.NewSystemErrorWithCause("could not read journal", err)
		env.printer.Error(err)
		return err
	}
	warnLoadStats(env.printer, stats)

	now := time.Now()
	bucket := report.WeeklyCounts(entries, now)
	grid := report.MonthGrid(now.Year(), now.Month(), entries)
	today := report.DayEntries(entries, now)
	recent := report.Recent(entries, env.cfg.Recent)

	if env.printer.IsJSON() {
		env.printer.WriteJSON(map[string]any{
			"week":     buildWeekPayload(bucket),
			"calendar": buildCalendarPayload(grid, now.Year(), now.Month()),
			"today":    entriesJSON(today),
			"recent":   entriesJSON(recent),
		})
		return nil
	}

	renderWeekChart(env.printer, bucket)
	renderCalendarGrid(env.printer, grid, now.Year(), now.Month())
	renderHomeEntries(env.printer, today, recent)
	return nil
}

func renderHomeEntries(printer *output.Printer, today, recent []*journal.Entry) {
	printer.Section("Today")
	if len(today) == 0 {
		printer.Println("No entries yet today.")
	} else {
		entryTable(printer, today)
	}

	printer.Section("Recent")
	if len(recent) == 0 {
		printer.Println("No entries yet. Log one with 'haven log <1-5>'.")
	} else {
		entryTable(printer, recent)
	}
}
