package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestISOWeekKey(t *testing.T) {
	assert.Equal(t, "2026-W35", ISOWeekKey(date(2026, time.August, 26)))

	// 2024-12-30 is a Monday belonging to ISO year 2025
	assert.Equal(t, "2025-W01", ISOWeekKey(date(2024, time.December, 30)))

	// 2021-01-01 is a Friday still in 2020's last week
	assert.Equal(t, "2020-W53", ISOWeekKey(date(2021, time.January, 1)))
}

func TestISOWeekKeysSortChronologically(t *testing.T) {
	earlier := ISOWeekKey(date(2025, time.March, 3))
	later := ISOWeekKey(date(2025, time.October, 20))
	assert.Less(t, earlier, later)

	// single-digit weeks are zero padded so W02 sorts before W11
	assert.Less(t, ISOWeekKey(date(2025, time.January, 8)), ISOWeekKey(date(2025, time.March, 12)))
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2026-08", MonthKey(date(2026, time.August, 26)))
	assert.Equal(t, "2026-01", MonthKey(date(2026, time.January, 2)))
}

func TestStartOfISOWeek(t *testing.T) {
	monday := date(2026, time.August, 24)

	for day := 0; day < 7; day++ {
		got := StartOfISOWeek(monday.AddDate(0, 0, day))
		assert.Equal(t, monday, got)
	}

	// Sunday maps back to the preceding Monday, not forward
	sunday := date(2026, time.August, 30)
	assert.Equal(t, monday, StartOfISOWeek(sunday))
}

func TestWeeksWindowStart(t *testing.T) {
	now := date(2026, time.August, 26) // Wednesday of 2026-W35

	// a one week window starts at this week's Monday
	assert.Equal(t, date(2026, time.August, 24), WeeksWindowStart(now, 1))

	// a 12 week window reaches back 11 whole weeks
	assert.Equal(t, date(2026, time.June, 8), WeeksWindowStart(now, 12))
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2026-08-26")
	require.NoError(t, err)
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.August, parsed.Month())
	assert.Equal(t, 26, parsed.Day())

	_, err = ParseDate("26/08/2026")
	assert.Error(t, err)
}
