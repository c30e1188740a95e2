package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hearthwood/haven/internal/journal"
	"github.com/hearthwood/haven/internal/report"
)

// --- Shared types ---

// EntrySummary is a simplified journal entry for tool output.
type EntrySummary struct {
	Timestamp string   `json:"timestamp,omitempty" jsonschema:"entry timestamp in YYYY-MM-DDTHH:MM:SS form"`
	Mood      int      `json:"mood"                jsonschema:"mood rating on the 1-5 scale"`
	Category  string   `json:"category,omitempty"  jsonschema:"mood category: happy, neutral, or sad"`
	Note      string   `json:"note,omitempty"      jsonschema:"free-form note"`
	Tags      []string `json:"tags,omitempty"      jsonschema:"normalized tags"`
}

// --- Recent tool ---

// RecentInput is the input for the recent tool.
type RecentInput struct {
	Last int `json:"last,omitempty" jsonschema:"number of entries to return (default 4)"`
}

// RecentOutput is the output for the recent tool.
type RecentOutput struct {
	Count   int            `json:"count"             jsonschema:"number of entries returned"`
	Entries []EntrySummary `json:"entries,omitempty" jsonschema:"entries, newest first"`
}

func handleRecent(store *journal.Store) mcp.ToolHandlerFor[RecentInput, RecentOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input RecentInput) (*mcp.CallToolResult, RecentOutput, error) {
		lastN := input.Last
		if lastN <= 0 {
			lastN = report.DefaultRecent
		}

		entries, _, err := store.Load()
		if err != nil {
			return nil, RecentOutput{}, fmt.Errorf("loading journal: %w", err)
		}

		recent := report.Recent(entries, lastN)
		out := RecentOutput{
			Count:   len(recent),
			Entries: toEntrySummaries(recent),
		}

		return nil, out, nil
	}
}

// --- Day tool ---

// DayInput is the input for the day tool.
type DayInput struct {
	Date string `json:"date,omitempty" jsonschema:"calendar day in YYYY-MM-DD form (default today)"`
}

// DayOutput is the output for the day tool.
type DayOutput struct {
	Date    string         `json:"date"              jsonschema:"the day reported on"`
	Count   int            `json:"count"             jsonschema:"number of entries on the day"`
	Entries []EntrySummary `json:"entries,omitempty" jsonschema:"entries on the day, newest first"`
}

func handleDay(store *journal.Store) mcp.ToolHandlerFor[DayInput, DayOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input DayInput) (*mcp.CallToolResult, DayOutput, error) {
		date, err := resolveDate(input.Date)
		if err != nil {
			return nil, DayOutput{}, err
		}

		entries, _, err := store.Load()
		if err != nil {
			return nil, DayOutput{}, fmt.Errorf("loading journal: %w", err)
		}

		day := report.DayEntries(entries, date)
		out := DayOutput{
			Date:    date.Format(report.DateLayout),
			Count:   len(day),
			Entries: toEntrySummaries(day),
		}

		return nil, out, nil
	}
}

// --- Status tool ---

// StatusInput is the input for the status tool (no parameters needed).
type StatusInput struct{}

// StatusOutput is the output for the status tool.
type StatusOutput struct {
	Path          string `json:"path"           jsonschema:"journal file path"`
	Exists        bool   `json:"exists"         jsonschema:"whether the journal file existed before this call"`
	Entries       int    `json:"entries"        jsonschema:"number of loaded entries"`
	Rows          int    `json:"rows"           jsonschema:"data rows seen in the file"`
	SkippedRows   int    `json:"skipped_rows"   jsonschema:"rows dropped entirely"`
	BadTimestamps int    `json:"bad_timestamps" jsonschema:"entries whose timestamp cell was unusable"`
	BadMoods      int    `json:"bad_moods"      jsonschema:"entries whose mood cell was missing or off the scale"`
}

func handleStatus(store *journal.Store) mcp.ToolHandlerFor[StatusInput, StatusOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ StatusInput) (*mcp.CallToolResult, StatusOutput, error) {
		exists := store.FileExists()

		entries, stats, err := store.Load()
		if err != nil {
			return nil, StatusOutput{}, fmt.Errorf("loading journal: %w", err)
		}

		out := StatusOutput{
			Path:          store.Path(),
			Exists:        exists,
			Entries:       len(entries),
			Rows:          stats.Rows,
			SkippedRows:   stats.SkippedRows,
			BadTimestamps: stats.BadTimestamps,
			BadMoods:      stats.BadMoods,
		}

		return nil, out, nil
	}
}
