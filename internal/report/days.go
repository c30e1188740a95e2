package report

import (
	"sort"
	"time"

	"github.com/hearthwood/haven/internal/journal"
)

// DefaultRecent is the dashboard's recent-entries list size.
const DefaultRecent = 4

// SortByTimestampDesc returns a copy of entries sorted most recent
// first. The sort is stable, so entries at the same instant keep their
// file order.
func SortByTimestampDesc(entries []*journal.Entry) []*journal.Entry {
	sorted := make([]*journal.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})
	return sorted
}

// Chronological returns a copy of entries sorted oldest first.
func Chronological(entries []*journal.Entry) []*journal.Entry {
	sorted := make([]*journal.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted
}

// GroupByDate indexes entries by local calendar date, keyed in
// YYYY-MM-DD form. Entries without a usable timestamp are left out;
// each day's slice keeps file order.
func GroupByDate(entries []*journal.Entry) map[string][]*journal.Entry {
	byDate := make(map[string][]*journal.Entry)
	for _, e := range entries {
		if !e.HasTimestamp() {
			continue
		}
		key := e.Timestamp.In(time.Local).Format(DateLayout)
		byDate[key] = append(byDate[key], e)
	}
	return byDate
}

// DayEntries returns the entries on date's calendar day, most recent
// first. The result is empty, never nil-and-error, when nothing
// matches.
func DayEntries(entries []*journal.Entry, date time.Time) []*journal.Entry {
	var day []*journal.Entry
	for _, e := range entries {
		if !e.HasTimestamp() || !sameDate(e.Timestamp, date) {
			continue
		}
		day = append(day, e)
	}
	return SortByTimestampDesc(day)
}

// Recent returns the n most recent entries that carry a usable
// timestamp; rows whose timestamp failed to parse are never shown with
// a fabricated time. n at or below zero yields an empty list.
func Recent(entries []*journal.Entry, n int) []*journal.Entry {
	if n <= 0 {
		return nil
	}
	var timestamped []*journal.Entry
	for _, e := range entries {
		if e.HasTimestamp() {
			timestamped = append(timestamped, e)
		}
	}
	sorted := SortByTimestampDesc(timestamped)
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
