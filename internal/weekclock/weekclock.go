// Package weekclock computes ISO-8601 calendar week numbers.
//
// ISO weeks start on Monday; week 1 is the week containing the year's
// first Thursday. The week number of late December/early January days
// can therefore belong to the adjacent year.
package weekclock

import (
	"fmt"
	"time"
)

// Current returns the ISO week number for today in the local timezone.
func Current() int {
	return WeekOf(time.Now())
}

// WeekOf returns the ISO week number of t, in the range [1, 53].
func WeekOf(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

// Label formats a week number the way the tray displays it, zero-padded
// to two digits.
func Label(week int) string {
	return fmt.Sprintf("%02d", week)
}
