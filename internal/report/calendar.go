package report

import (
	"time"

	"github.com/hearthwood/haven/internal/journal"
)

// GridCell is one day cell of the month calendar.
type GridCell struct {
	Date       time.Time
	Day        int
	InMonth    bool
	HasEntries bool
}

// MonthGrid lays out the Monday-start calendar for a month as rows of
// seven cells, padding the first and last rows with adjacent-month
// days so every row is a full week. Cells flag month membership and
// whether any entry falls on that date.
func MonthGrid(year int, month time.Month, entries []*journal.Entry) [][]GridCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	offset := (int(first.Weekday()) + 6) % 7
	start := first.AddDate(0, 0, -offset)
	rows := (offset + daysIn(year, month) + 6) / 7

	byDate := GroupByDate(entries)

	grid := make([][]GridCell, rows)
	for r := range grid {
		row := make([]GridCell, 7)
		for c := range row {
			date := start.AddDate(0, 0, r*7+c)
			_, hasEntries := byDate[date.Format(DateLayout)]
			row[c] = GridCell{
				Date:       date,
				Day:        date.Day(),
				InMonth:    date.Month() == month && date.Year() == year,
				HasEntries: hasEntries,
			}
		}
		grid[r] = row
	}
	return grid
}

// daysIn returns the number of days in the month. Day zero of the
// following month normalizes to this month's last day.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}
