package mcp

import (
	"time"

	"github.com/hearthwood/haven/internal/journal"
	"github.com/hearthwood/haven/internal/report"
)

// toEntrySummary converts a journal entry to its tool output form.
func toEntrySummary(entry *journal.Entry) EntrySummary {
	summary := EntrySummary{
		Mood:     entry.Mood,
		Category: entry.Category().String(),
		Note:     entry.Note,
		Tags:     entry.Tags,
	}
	if entry.HasTimestamp() {
		summary.Timestamp = journal.FormatTimestamp(entry.Timestamp)
	}
	return summary
}

// toEntrySummaries converts journal entries to an EntrySummary slice.
func toEntrySummaries(entries []*journal.Entry) []EntrySummary {
	result := make([]EntrySummary, 0, len(entries))
	for _, entry := range entries {
		result = append(result, toEntrySummary(entry))
	}
	return result
}

// resolveDate parses a YYYY-MM-DD value, or returns today when empty.
func resolveDate(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	return report.ParseDate(value)
}

// resolveMonth parses a YYYY-MM value, or returns the current month when empty.
func resolveMonth(value string) (int, time.Month, error) {
	if value == "" {
		now := time.Now()
		return now.Year(), now.Month(), nil
	}
	return report.ParseMonth(value)
}
