// Package main provides the entry point for the haven CLI.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hearthwood/haven/internal/journal"
	"github.com/hearthwood/haven/internal/output"
	"github.com/hearthwood/haven/internal/report"
)

// calendarPayload is the JSON shape for a month view.
type calendarPayload struct {
	Month string                 `json:"month"`
	Weeks [][]calendarDayPayload `json:"weeks"`
}

type calendarDayPayload struct {
	Date       string `json:"date"`
	Day        int    `json:"day"`
	InMonth    bool   `json:"in_month"`
	HasEntries bool   `json:"has_entries"`
}

// newCalendarCmd creates the calendar command.
func newCalendarCmd() *cobra.Command {
	return newCalendarCmdInternal(nil)
}

// newCalendarCmdInternal creates the calendar command with an injectable store for testing.
func newCalendarCmdInternal(store *journal.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar [month]",
		Short: "Show a month calendar of logged days",
		Long: `Show a month as a Monday-start calendar grid, marking days with entries.

The month is YYYY-MM and defaults to the current month.

Examples:
  haven calendar
  haven calendar 2026-02`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			monthArg := ""
			if len(args) > 0 {
				monthArg = args[0]
			}
			return runCalendar(cmd, store, monthArg)
		},
	}

	return cmd
}

func runCalendar(cmd *cobra.Command, store *journal.Store, monthArg string) error {
	env, err := setupCommand(cmd, store)
	if err != nil {
		return err
	}

	now := time.Now()
	year, month := now.Year(), now.Month()
	if monthArg != "" {
		year, month, err = report.ParseMonth(monthArg)
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

	grid := report.MonthGrid(year, month, entries)

	if env.printer.IsJSON() {
		env.printer.WriteJSON(buildCalendarPayload(grid, year, month))
		return nil
	}

	renderCalendarGrid(env.printer, grid, year, month)
	return nil
}

func buildCalendarPayload(grid [][]report.GridCell, year int, month time.Month) calendarPayload {
	payload := calendarPayload{
		Month: fmt.Sprintf("%04d-%02d", year, int(month)),
		Weeks: make([][]calendarDayPayload, 0, len(grid)),
	}
	for _, week := range grid {
		row := make([]calendarDayPayload, 0, len(week))
		for _, cell := range week {
			row = append(row, calendarDayPayload{
				Date:       cell.Date.Format(report.DateLayout),
				Day:        cell.Day,
				InMonth:    cell.InMonth,
				HasEntries: cell.HasEntries,
			})
		}
		payload.Weeks = append(payload.Weeks, row)
	}
	return payload
}

func renderCalendarGrid(printer *output.Printer, grid [][]report.GridCell, year int, month time.Month) {
	styles := printer.Styles()

	printer.Section(fmt.Sprintf("%s %d", month, year))
	printer.Println(styles.Bold.Render("Mon Tue Wed Thu Fri Sat Sun"))

	for _, week := range grid {
		cells := make([]string, 0, len(week))
		for _, cell := range week {
			cells = append(cells, renderCalendarCell(printer, cell))
		}
		printer.Println(strings.Join(cells, " "))
	}
}

// renderCalendarCell formats one day as a fixed-width cell. Days with
// entries carry a dot marker and the accent color; days outside the
// month are dimmed.
func renderCalendarCell(printer *output.Printer, cell report.GridCell) string {
	styles := printer.Styles()

	marker := " "
	if cell.HasEntries {
		marker = "•"
	}
	text := fmt.Sprintf("%2d%s", cell.Day, marker)

	switch {
	case !cell.InMonth:
		return styles.Muted.Render(text)
	case cell.HasEntries:
		return styles.Accent.Render(text)
	default:
		return text
	}
}
