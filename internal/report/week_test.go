package report

import (
	"testing"
	"time"

	"github.com/hearthwood/haven/internal/journal"
)

func TestWeekBounds(t *testing.T) {
	tests := []struct {
		name      string
		ref       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "midweek",
			ref:       time.Date(2026, 8, 25, 14, 30, 0, 0, time.Local), // Tuesday
			wantStart: time.Date(2026, 8, 24, 0, 0, 0, 0, time.Local),
			wantEnd:   time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local),
		},
		{
			name:      "monday maps to itself",
			ref:       time.Date(2026, 8, 24, 23, 59, 59, 0, time.Local),
			wantStart: time.Date(2026, 8, 24, 0, 0, 0, 0, time.Local),
			wantEnd:   time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local),
		},
		{
			name:      "sunday ends its week",
			ref:       time.Date(2026, 8, 30, 8, 0, 0, 0, time.Local),
			wantStart: time.Date(2026, 8, 24, 0, 0, 0, 0, time.Local),
			wantEnd:   time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local),
		},
		{
			name:      "week crossing new year",
			ref:       time.Date(2026, 1, 1, 12, 0, 0, 0, time.Local), // Thursday
			wantStart: time.Date(2025, 12, 29, 0, 0, 0, 0, time.Local),
			wantEnd:   time.Date(2026, 1, 4, 0, 0, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := WeekBounds(tt.ref)
			if !start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", start, tt.wantStart)
			}
			if !end.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", end, tt.wantEnd)
			}
			if start.Weekday() != time.Monday {
				t.Errorf("start weekday = %v, want Monday", start.Weekday())
			}
			if end.Weekday() != time.Sunday {
				t.Errorf("end weekday = %v, want Sunday", end.Weekday())
			}
		})
	}
}

func TestWeeklyCounts(t *testing.T) {
	ref := time.Date(2026, 8, 25, 12, 0, 0, 0, time.Local) // Tuesday
	entries := []*journal.Entry{
		fixtureEntry(t, "2026-08-24T08:00:00", 5), // Monday, happy
		fixtureEntry(t, "2026-08-24T12:00:00", 4), // Monday, happy
		fixtureEntry(t, "2026-08-24T20:00:00", 3), // Monday, neutral
		fixtureEntry(t, "2026-08-25T09:00:00", 1), // Tuesday, sad
		fixtureEntry(t, "2026-08-30T22:00:00", 2), // Sunday, sad
		fixtureEntry(t, "2026-08-23T12:00:00", 5), // previous Sunday, outside
		fixtureEntry(t, "2026-08-31T08:00:00", 5), // next Monday, outside
		fixtureEntry(t, "2026-08-26T12:00:00", 9), // off the scale, no bin
		{Mood: 4},                                 // no timestamp, no bin
	}

	bucket := WeeklyCounts(entries, ref)

	if !bucket.Start.Equal(time.Date(2026, 8, 24, 0, 0, 0, 0, time.Local)) {
		t.Errorf("bucket start = %v, want Monday 2026-08-24", bucket.Start)
	}

	monday := bucket.Days[0]
	if monday.Happy != 2 || monday.Neutral != 1 || monday.Sad != 0 {
		t.Errorf("Monday counts = %+v, want 2 happy, 1 neutral, 0 sad", monday)
	}
	if bucket.Days[1].Sad != 1 {
		t.Errorf("Tuesday sad = %d, want 1", bucket.Days[1].Sad)
	}
	if bucket.Days[6].Sad != 1 {
		t.Errorf("Sunday sad = %d, want 1", bucket.Days[6].Sad)
	}

	// The off-scale entry lands on Wednesday but counts nowhere.
	if total := bucket.Days[2].Total(); total != 0 {
		t.Errorf("Wednesday total = %d, want 0", total)
	}

	var classified int
	for _, day := range bucket.Days {
		classified += day.Total()
	}
	if classified != 5 {
		t.Errorf("classified entries = %d, want 5", classified)
	}
}

func TestWeeklyCounts_DaySlotsAlwaysPopulated(t *testing.T) {
	ref := time.Date(2026, 8, 25, 0, 0, 0, 0, time.Local)

	bucket := WeeklyCounts(nil, ref)

	for i, day := range bucket.Days {
		wantDate := bucket.Start.AddDate(0, 0, i)
		if !day.Date.Equal(wantDate) {
			t.Errorf("day %d date = %v, want %v", i, day.Date, wantDate)
		}
		if day.Happy != 0 || day.Neutral != 0 || day.Sad != 0 {
			t.Errorf("day %d counts = %+v, want all zeros", i, day)
		}
	}
}

func TestWeekBucket_MaxCount(t *testing.T) {
	ref := time.Date(2026, 8, 25, 0, 0, 0, 0, time.Local)
	entries := []*journal.Entry{
		fixtureEntry(t, "2026-08-24T08:00:00", 5),
		fixtureEntry(t, "2026-08-24T09:00:00", 4),
		fixtureEntry(t, "2026-08-24T10:00:00", 4),
		fixtureEntry(t, "2026-08-25T09:00:00", 1),
	}

	bucket := WeeklyCounts(entries, ref)

	if got := bucket.MaxCount(); got != 3 {
		t.Errorf("MaxCount() = %d, want 3", got)
	}

	empty := WeeklyCounts(nil, ref)
	if got := empty.MaxCount(); got != 0 {
		t.Errorf("MaxCount() on empty week = %d, want 0", got)
	}
}
