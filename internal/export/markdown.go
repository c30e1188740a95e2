package export

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/hearthwood/haven/internal/journal"
	"github.com/hearthwood/haven/internal/output"
	"github.com/hearthwood/haven/internal/report"
)

// SchemaVersion identifies the markdown export document format.
const SchemaVersion = "haven.export/v1"

// FormatMarkdown formats the whole journal as one markdown document:
// YAML frontmatter, then a section per day, newest day first. Entries
// without a usable timestamp land in a closing Undated section.
func FormatMarkdown(entries []*journal.Entry, exported time.Time) string {
	var builder strings.Builder

	writeFrontmatter(&builder, entries, exported)
	builder.WriteString("# Mood journal\n")

	byDate := report.GroupByDate(entries)
	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	for _, date := range dates {
		writeDay(&builder, date, byDate[date])
	}

	var undated []*journal.Entry
	for _, entry := range entries {
		if !entry.HasTimestamp() {
			undated = append(undated, entry)
		}
	}
	writeUndated(&builder, undated)

	return builder.String()
}

// writeFrontmatter writes the YAML frontmatter section.
func writeFrontmatter(builder *strings.Builder, entries []*journal.Entry, exported time.Time) {
	builder.WriteString("---\n")
	fmt.Fprintf(builder, "schema: %s\n", SchemaVersion)
	fmt.Fprintf(builder, "exported: %s\n", exported.Format(report.DateLayout))
	fmt.Fprintf(builder, "entries: %d\n", len(entries))
	builder.WriteString("---\n\n")
}

// writeDay writes one day section, entries most recent first.
func writeDay(builder *strings.Builder, date string, entries []*journal.Entry) {
	weekday := entries[0].Timestamp.In(time.Local).Weekday()
	fmt.Fprintf(builder, "\n## %s (%s)\n\n", date, weekday)

	for _, entry := range report.SortByTimestampDesc(entries) {
		writeEntry(builder, entry)
	}
}

// writeUndated writes the section for entries whose timestamp cell
// could not be parsed.
func writeUndated(builder *strings.Builder, entries []*journal.Entry) {
	if len(entries) == 0 {
		return
	}

	builder.WriteString("\n## Undated\n\n")
	for _, entry := range entries {
		writeEntry(builder, entry)
	}
}

// writeEntry writes one list item. Notes keep their line breaks,
// indented to stay inside the item.
func writeEntry(builder *strings.Builder, entry *journal.Entry) {
	fmt.Fprintf(builder, "- %s %s", entryTime(entry), moodText(entry))
	if len(entry.Tags) > 0 {
		fmt.Fprintf(builder, " [%s]", strings.Join(entry.Tags, ", "))
	}
	builder.WriteString("\n")

	if entry.Note != "" {
		for _, line := range strings.Split(entry.Note, "\n") {
			fmt.Fprintf(builder, "  %s\n", line)
		}
	}
}

func entryTime(entry *journal.Entry) string {
	if !entry.HasTimestamp() {
		return "unknown time"
	}
	return entry.Timestamp.In(time.Local).Format("15:04")
}

func moodText(entry *journal.Entry) string {
	if !entry.HasMood() {
		return "mood ?/5"
	}
	return fmt.Sprintf("mood %d/5 (%s)", entry.Mood, entry.Category())
}

// WriteMarkdownFile writes the journal as one markdown file.
func WriteMarkdownFile(entries []*journal.Entry, path string, exported time.Time) error {
	content := FormatMarkdown(entries, exported)

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return output.NewSystemError(fmt.Sprintf("failed to write file %s: %v", path, err))
	}

	return nil
}
