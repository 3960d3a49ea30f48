package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// ISOWeekKey buckets a date into its ISO week, e.g. "2026-W01".
// The ISO year is used, so late-December dates can land in the next
// year's first week.
func ISOWeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// MonthKey buckets a date into its calendar month, e.g. "2026-08".
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// StartOfISOWeek returns midnight of the Monday opening t's ISO week.
func StartOfISOWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	day := t.AddDate(0, 0, 1-weekday)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, t.Location())
}

// WeeksWindowStart returns the Monday opening the ISO week that lies
// weeks-1 whole weeks before t's week, so the window covers the current
// week plus the weeks-1 preceding ones.
func WeeksWindowStart(t time.Time, weeks int) time.Time {
	return StartOfISOWeek(t).AddDate(0, 0, -7*(weeks-1))
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
