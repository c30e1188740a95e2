package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hearthwood/haven/internal/journal"
	"github.com/hearthwood/haven/internal/report"
)

// --- Week tool ---

// WeekInput is the input for the week tool.
type WeekInput struct {
	Date string `json:"date,omitempty" jsonschema:"any day inside the target week in YYYY-MM-DD form (default today)"`
}

// WeekDay holds one day's classified counts.
type WeekDay struct {
	Date    string `json:"date"    jsonschema:"the day in YYYY-MM-DD form"`
	Happy   int    `json:"happy"   jsonschema:"entries rated 4 or 5"`
	Neutral int    `json:"neutral" jsonschema:"entries rated 3"`
	Sad     int    `json:"sad"     jsonschema:"entries rated 1 or 2"`
}

// WeekOutput is the output for the week tool.
type WeekOutput struct {
	Start string    `json:"start" jsonschema:"the week's Monday in YYYY-MM-DD form"`
	End   string    `json:"end"   jsonschema:"the week's Sunday in YYYY-MM-DD form"`
	Days  []WeekDay `json:"days"  jsonschema:"seven per-day count rows, Monday through Sunday"`
}

func handleWeek(store *journal.Store) mcp.ToolHandlerFor[WeekInput, WeekOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input WeekInput) (*mcp.CallToolResult, WeekOutput, error) {
		ref, err := resolveDate(input.Date)
		if err != nil {
			return nil, WeekOutput{}, err
		}

		entries, _, err := store.Load()
		if err != nil {
			return nil, WeekOutput{}, fmt.Errorf("loading journal: %w", err)
		}

		bucket := report.WeeklyCounts(entries, ref)
		days := make([]WeekDay, 0, len(bucket.Days))
		for _, day := range bucket.Days {
			days = append(days, WeekDay{
				Date:    day.Date.Format(report.DateLayout),
				Happy:   day.Happy,
				Neutral: day.Neutral,
				Sad:     day.Sad,
			})
		}

		out := WeekOutput{
			Start: bucket.Start.Format(report.DateLayout),
			End:   bucket.End.Format(report.DateLayout),
			Days:  days,
		}

		return nil, out, nil
	}
}

// --- Calendar tool ---

// CalendarInput is the input for the calendar tool.
type CalendarInput struct {
	Month string `json:"month,omitempty" jsonschema:"month in YYYY-MM form (default current month)"`
}

// CalendarDay is one cell of the month grid.
type CalendarDay struct {
	Date       string `json:"date"        jsonschema:"the day in YYYY-MM-DD form"`
	Day        int    `json:"day"         jsonschema:"day of month"`
	InMonth    bool   `json:"in_month"    jsonschema:"whether the day belongs to the requested month"`
	HasEntries bool   `json:"has_entries" jsonschema:"whether any entry falls on the day"`
}

// CalendarOutput is the output for the calendar tool.
type CalendarOutput struct {
	Month string          `json:"month" jsonschema:"the month in YYYY-MM form"`
	Weeks [][]CalendarDay `json:"weeks" jsonschema:"Monday-start rows of seven day cells"`
}

func handleCalendar(store *journal.Store) mcp.ToolHandlerFor[CalendarInput, CalendarOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input CalendarInput) (*mcp.CallToolResult, CalendarOutput, error) {
		year, month, err := resolveMonth(input.Month)
		if err != nil {
			return nil, CalendarOutput{}, err
		}

		entries, _, err := store.Load()
		if err != nil {
			return nil, CalendarOutput{}, fmt.Errorf("loading journal: %w", err)
		}

		grid := report.MonthGrid(year, month, entries)
		weeks := make([][]CalendarDay, 0, len(grid))
		for _, row := range grid {
			week := make([]CalendarDay, 0, len(row))
			for _, cell := range row {
				week = append(week, CalendarDay{
					Date:       cell.Date.Format(report.DateLayout),
					Day:        cell.Day,
					InMonth:    cell.InMonth,
					HasEntries: cell.HasEntries,
				})
			}
			weeks = append(weeks, week)
		}

		out := CalendarOutput{
			Month: fmt.Sprintf("%04d-%02d", year, int(month)),
			Weeks: weeks,
		}

		return nil, out, nil
	}
}

// --- Trends tool ---

// TrendsInput is the input for the trends tool.
type TrendsInput struct {
	Range string `json:"range,omitempty" jsonschema:"time range: 7d, 30d, or all (default 30d)"`
}

// TrendsOutput is the output for the trends tool.
type TrendsOutput struct {
	Range    string   `json:"range"     jsonschema:"the range reported on"`
	Count    int      `json:"count"     jsonschema:"entries with a usable mood in range"`
	MeanMood *float64 `json:"mean_mood" jsonschema:"arithmetic mean mood, null when no entries carry one"`
}

func handleTrends(store *journal.Store) mcp.ToolHandlerFor[TrendsInput, TrendsOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input TrendsInput) (*mcp.CallToolResult, TrendsOutput, error) {
		rangeArg := input.Range
		if rangeArg == "" {
			rangeArg = report.Window30Days.String()
		}
		window, err := report.ParseWindow(rangeArg)
		if err != nil {
			return nil, TrendsOutput{}, err
		}

		entries, _, err := store.Load()
		if err != nil {
			return nil, TrendsOutput{}, fmt.Errorf("loading journal: %w", err)
		}

		summary := report.Summarize(report.Filter(entries, window, time.Now()))
		out := TrendsOutput{
			Range: window.String(),
			Count: summary.Count,
		}
		if summary.HasData() {
			mean := summary.MeanMood
			out.MeanMood = &mean
		}

		return nil, out, nil
	}
}
