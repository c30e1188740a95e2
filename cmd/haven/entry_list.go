// Package main provides the entry point for the haven CLI.
package main

import (
	"fmt"
	"strings"

	"github.com/hearthwood/haven/internal/journal"
	"github.com/hearthwood/haven/internal/output"
)

// maxNoteWidth caps the note column so one rambling entry does not blow
// out the table.
const maxNoteWidth = 48

// entryTable renders entries as a table, newest first as given.
func entryTable(printer *output.Printer, entries []*journal.Entry) {
	headers := []string{"When", "Mood", "Note", "Tags"}
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{
			whenCell(entry),
			moodCell(entry),
			noteCell(entry.Note),
			strings.Join(entry.Tags, ", "),
		})
	}
	printer.Table(headers, rows)
}

func whenCell(entry *journal.Entry) string {
	if !entry.HasTimestamp() {
		return "unknown"
	}
	return entry.Timestamp.Format("2006-01-02 15:04")
}

func moodCell(entry *journal.Entry) string {
	if !entry.HasMood() {
		return "?/5"
	}
	return fmt.Sprintf("%d/5 %s", entry.Mood, entry.Category())
}

// noteCell collapses whitespace and truncates long notes for table display.
func noteCell(note string) string {
	collapsed := strings.Join(strings.Fields(note), " ")
	runes := []rune(collapsed)
	if len(runes) <= maxNoteWidth {
		return collapsed
	}
	return string(runes[:maxNoteWidth-3]) + "..."
}

// entriesJSON normalizes a nil slice so JSON output is always an array.
func entriesJSON(entries []*journal.Entry) []*journal.Entry {
	if entries == nil {
		return []*journal.Entry{}
	}
	return entries
}
