// Package main provides the entry point for the haven CLI.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hearthwood/haven/internal/journal"
	"github.com/hearthwood/haven/internal/output"
	"github.com/hearthwood/haven/internal/report"
)

// sparkRunes maps moods 1 through 5 onto bar heights.
var sparkRunes = []rune("▁▂▄▆█")

// trendsPayload is the JSON shape for the trends view.
type trendsPayload struct {
	Range   string           `json:"range"`
	Summary report.Summary   `json:"summary"`
	Entries []*journal.Entry `json:"entries"`
}

// newTrendsCmd creates the trends command.
func newTrendsCmd() *cobra.Command {
	return newTrendsCmdInternal(nil)
}

// newTrendsCmdInternal creates the trends command with an injectable store for testing.
func newTrendsCmdInternal(store *journal.Store) *cobra.Command {
	var rangeArg string

	cmd := &cobra.Command{
		Use:   "trends",
		Short: "Show mood trends over a time range",
		Long: `Show entry count, mean mood, and a sparkline over a time range.

Ranges: 7d, 30d (default), all.

Examples:
  haven trends
  haven trends --range 7d
  haven trends --range all`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTrends(cmd, store, rangeArg)
		},
	}

	cmd.Flags().StringVar(&rangeArg, "range", "30d", "Time range: 7d, 30d, or all")

	return cmd
}

func runTrends(cmd *cobra.Command, store *journal.Store, rangeArg string) error {
	env, err := setupCommand(cmd, store)
	if err != nil {
		return err
	}

	window, err := report.ParseWindow(rangeArg)
	if err != nil {
		err = output.NewUserError(err.Error())
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

	inWindow := report.Filter(entries, window, time.Now())
	series := report.Chronological(inWindow)
	summary := report.Summarize(inWindow)

	if env.printer.IsJSON() {
		env.printer.WriteJSON(trendsPayload{
			Range:   window.String(),
			Summary: summary,
			Entries: entriesJSON(series),
		})
		return nil
	}

	renderTrends(env.printer, window, summary, series)
	return nil
}

func renderTrends(printer *output.Printer, window report.Window, summary report.Summary, series []*journal.Entry) {
	printer.Section(window.Label())
	printer.KeyValue("Entries", fmt.Sprintf("%d", summary.Count))
	printer.KeyValue("Mean mood", formatMean(summary))

	if spark := renderSparkline(printer, series); spark != "" {
		printer.Print("\n%s\n", spark)
	}
}

func formatMean(summary report.Summary) string {
	if !summary.HasData() {
		return "n/a"
	}
	return fmt.Sprintf("%.2f / 5", summary.MeanMood)
}

// renderSparkline draws one colored bar per entry, oldest to newest.
// Entries missing a mood or timestamp are skipped rather than guessed at.
func renderSparkline(printer *output.Printer, series []*journal.Entry) string {
	styles := printer.Styles()

	var spark string
	for _, entry := range series {
		if !entry.HasMood() || !entry.HasTimestamp() {
			continue
		}
		bar := string(sparkRunes[entry.Mood-1])
		switch entry.Category() {
		case journal.CategoryHappy:
			bar = styles.Happy.Render(bar)
		case journal.CategorySad:
			bar = styles.Sad.Render(bar)
		default:
			bar = styles.Neutral.Render(bar)
		}
		spark += bar
	}
	return spark
}
