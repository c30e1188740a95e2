package report

import (
	"time"

	"github.com/hearthwood/haven/internal/journal"
)

// DayCounts holds the classified entry counts for one day of a week.
type DayCounts struct {
	Date    time.Time
	Happy   int
	Neutral int
	Sad     int
}

// Total returns the number of classified entries on the day.
func (d DayCounts) Total() int {
	return d.Happy + d.Neutral + d.Sad
}

// WeekBucket is the weekly chart's data: one counts row per weekday,
// Monday through Sunday. The seven rows are always present, zeroed
// when a day has no entries.
type WeekBucket struct {
	Start time.Time
	End   time.Time
	Days  [7]DayCounts
}

// MaxCount returns the largest single count across all days and bins,
// which renderers use to scale bars.
func (b *WeekBucket) MaxCount() int {
	max := 0
	for _, day := range b.Days {
		for _, n := range []int{day.Happy, day.Neutral, day.Sad} {
			if n > max {
				max = n
			}
		}
	}
	return max
}

// WeekBounds returns the Monday and Sunday of the week containing ref,
// both at midnight in ref's location. Weeks always start on Monday.
func WeekBounds(ref time.Time) (time.Time, time.Time) {
	year, month, day := ref.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, ref.Location())
	offset := (int(midnight.Weekday()) + 6) % 7
	start := midnight.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 6)
}

// WeeklyCounts buckets entries into the Monday-to-Sunday week
// containing ref and counts each day's happy, neutral, and sad moods.
// Entries without a usable timestamp or mood are counted in no bin.
func WeeklyCounts(entries []*journal.Entry, ref time.Time) *WeekBucket {
	start, end := WeekBounds(ref)
	bucket := &WeekBucket{Start: start, End: end}
	for i := range bucket.Days {
		bucket.Days[i].Date = start.AddDate(0, 0, i)
	}

	for _, e := range entries {
		if !e.HasTimestamp() {
			continue
		}
		for i := range bucket.Days {
			if !sameDate(e.Timestamp, bucket.Days[i].Date) {
				continue
			}
			switch e.Category() {
			case journal.CategoryHappy:
				bucket.Days[i].Happy++
			case journal.CategoryNeutral:
				bucket.Days[i].Neutral++
			case journal.CategorySad:
				bucket.Days[i].Sad++
			}
			break
		}
	}
	return bucket
}
