package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/hearthwood/haven/internal/journal"
)

// Window is a relative time range for the trends view.
type Window int

const (
	WindowAll Window = iota
	Window7Days
	Window30Days
)

// ParseWindow maps a range argument to a Window. Accepted values are
// "7d", "30d", and "all".
func ParseWindow(value string) (Window, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "7d":
		return Window7Days, nil
	case "30d":
		return Window30Days, nil
	case "all":
		return WindowAll, nil
	default:
		return WindowAll, fmt.Errorf("invalid range %q (expected 7d, 30d, or all)", value)
	}
}

// String returns the argument form of the window.
func (w Window) String() string {
	switch w {
	case Window7Days:
		return "7d"
	case Window30Days:
		return "30d"
	default:
		return "all"
	}
}

// Label returns the window's display name.
func (w Window) Label() string {
	switch w {
	case Window7Days:
		return "Last 7 days"
	case Window30Days:
		return "Last 30 days"
	default:
		return "All time"
	}
}

// Days returns the window length in days, or zero for WindowAll.
func (w Window) Days() int {
	switch w {
	case Window7Days:
		return 7
	case Window30Days:
		return 30
	default:
		return 0
	}
}

// Filter returns the entries visible in window w as of now. WindowAll
// passes every entry through, rows without usable timestamps included,
// so nothing the user might want to audit is dropped. The day windows
// keep entries with a timestamp strictly after now minus the window
// length; an entry at exactly the boundary instant falls outside.
func Filter(entries []*journal.Entry, w Window, now time.Time) []*journal.Entry {
	if w == WindowAll {
		return entries
	}

	cutoff := now.AddDate(0, 0, -w.Days())
	var inside []*journal.Entry
	for _, e := range entries {
		if e.HasTimestamp() && e.Timestamp.After(cutoff) {
			inside = append(inside, e)
		}
	}
	return inside
}

// Summary describes the mood statistics over a set of entries.
type Summary struct {
	Count    int
	MeanMood float64
}

// HasData reports whether any entry carried a usable mood.
func (s Summary) HasData() bool {
	return s.Count > 0
}

// MarshalJSON emits mean_mood as null when there is no data, so a
// consumer cannot mistake the zero value for a real average.
func (s Summary) MarshalJSON() ([]byte, error) {
	payload := struct {
		Count    int      `json:"count"`
		MeanMood *float64 `json:"mean_mood"`
	}{Count: s.Count}
	if s.HasData() {
		mean := s.MeanMood
		payload.MeanMood = &mean
	}
	return json.Marshal(payload)
}

// Summarize computes the entry count and arithmetic mean over the
// entries with a usable mood. Off-scale and unparseable moods are
// excluded from both the count and the mean.
func Summarize(entries []*journal.Entry) Summary {
	var sum, count int
	for _, e := range entries {
		if !e.HasMood() {
			continue
		}
		sum += e.Mood
		count++
	}
	if count == 0 {
		return Summary{}
	}
	return Summary{Count: count, MeanMood: float64(sum) / float64(count)}
}
