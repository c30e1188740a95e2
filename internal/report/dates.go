package report

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date form used for grouping keys and CLI
// arguments.
const DateLayout = "2006-01-02"

// MonthLayout is the year-month form accepted by the calendar view.
const MonthLayout = "2006-01"

// ParseDate parses a YYYY-MM-DD value into a local midnight time.
func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", value)
	}
	return t, nil
}

// ParseMonth parses a YYYY-MM value into its year and month.
func ParseMonth(value string) (int, time.Month, error) {
	t, err := time.ParseInLocation(MonthLayout, strings.TrimSpace(value), time.Local)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q (expected YYYY-MM)", value)
	}
	return t.Year(), t.Month(), nil
}

// sameDate reports whether two times fall on the same local calendar
// day.
func sameDate(a, b time.Time) bool {
	ay, am, ad := a.In(time.Local).Date()
	by, bm, bd := b.In(time.Local).Date()
	return ay == by && am == bm && ad == bd
}
