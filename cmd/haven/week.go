// Package main provides the entry point for the haven CLI.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/hearthwood/haven/internal/journal"
	"github.com/hearthwood/haven/internal/output"
	"github.com/hearthwood/haven/internal/report"
)

// weekBarWidth is the bar length a day at the weekly maximum gets.
const weekBarWidth = 10

// weekPayload is the JSON shape for a weekly view.
type weekPayload struct {
	Start string           `json:"start"`
	End   string           `json:"end"`
	Days  []weekDayPayload `json:"days"`
}

type weekDayPayload struct {
	Date    string `json:"date"`
	Happy   int    `json:"happy"`
	Neutral int    `json:"neutral"`
	Sad     int    `json:"sad"`
}

// newWeekCmd creates the week command.
func newWeekCmd() *cobra.Command {
	return newWeekCmdInternal(nil)
}

// newWeekCmdInternal creates the week command with an injectable store for testing.
func newWeekCmdInternal(store *journal.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week [date]",
		Short: "Show a weekly mood chart",
		Long: `Show the week containing a date as a bar chart of daily mood counts.

Weeks run Monday to Sunday. The date is YYYY-MM-DD and defaults to today.

Examples:
  haven week
  haven week 2026-03-04`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dateArg := ""
			if len(args) > 0 {
				dateArg = args[0]
			}
			return runWeek(cmd, store, dateArg)
		},
	}

	return cmd
}

func runWeek(cmd *cobra.Command, store *journal.Store, dateArg string) error {
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

	bucket := report.WeeklyCounts(entries, date)

	if env.printer.IsJSON() {
		env.printer.WriteJSON(buildWeekPayload(bucket))
		return nil
	}

	renderWeekChart(env.printer, bucket)
	return nil
}

func buildWeekPayload(bucket *report.WeekBucket) weekPayload {
	payload := weekPayload{
		Start: bucket.Start.Format(report.DateLayout),
		End:   bucket.End.Format(report.DateLayout),
		Days:  make([]weekDayPayload, 0, len(bucket.Days)),
	}
	for _, day := range bucket.Days {
		payload.Days = append(payload.Days, weekDayPayload{
			Date:    day.Date.Format(report.DateLayout),
			Happy:   day.Happy,
			Neutral: day.Neutral,
			Sad:     day.Sad,
		})
	}
	return payload
}

// renderWeekChart draws one bar row per day, happy then neutral then sad
// segments, scaled against the busiest day of the week.
func renderWeekChart(printer *output.Printer, bucket *report.WeekBucket) {
	styles := printer.Styles()
	max := bucket.MaxCount()

	printer.Section(fmt.Sprintf("Week %s – %s",
		bucket.Start.Format("Jan 02"), bucket.End.Format("Jan 02")))

	for _, day := range bucket.Days {
		bar := renderBar(styles.Happy, day.Happy, max) +
			renderBar(styles.Neutral, day.Neutral, max) +
			renderBar(styles.Sad, day.Sad, max)
		if bar == "" {
			bar = styles.Muted.Render("·")
		}
		counts := styles.Dim.Render(fmt.Sprintf("%d/%d/%d", day.Happy, day.Neutral, day.Sad))
		printer.Print("%s  %s %s\n", styles.Bold.Render(day.Date.Format("Mon")), bar, counts)
	}

	printer.Print("\n%s  %s  %s\n",
		styles.Happy.Render("█ happy"),
		styles.Neutral.Render("█ neutral"),
		styles.Sad.Render("█ sad"))
}

// renderBar draws a bar segment scaled so the busiest day fills
// weekBarWidth cells. Nonzero counts always get at least one cell.
func renderBar(style lipgloss.Style, count, max int) string {
	if count == 0 || max == 0 {
		return ""
	}
	width := count * weekBarWidth / max
	if width < 1 {
		width = 1
	}
	return style.Render(strings.Repeat("█", width))
}
