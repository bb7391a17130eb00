// Package calendarview renders the full-year calendar window.
//
// The grid model is computed once per window open: twelve months of
// Monday-start week rows, each row carrying its ISO week number, with the
// current date flagged for highlighting.
package calendarview

import (
	"time"

	"github.com/calweek/calweek/internal/weekclock"
)

// DayNames are the Monday-start column headers.
var DayNames = [7]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// DayCell is one day slot in a week row. Day is zero for slots belonging to
// the previous or next month.
type DayCell struct {
	Day   int
	Today bool
}

// WeekRow is one calendar row: the ISO week number and seven day slots.
type WeekRow struct {
	Week int
	Days [7]DayCell
}

// MonthGrid is one month of week rows.
type MonthGrid struct {
	Year  int
	Month time.Month
	Weeks []WeekRow
}

// YearGrid computes all twelve month grids of year, flagging the cell
// matching today.
func YearGrid(year int, today time.Time) []MonthGrid {
	months := make([]MonthGrid, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, monthGrid(year, m, today))
	}
	return months
}

func monthGrid(year int, month time.Month, today time.Time) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	// Day zero of the next month is the last day of this one.
	daysIn := time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()

	isToday := today.Year() == year && today.Month() == month

	grid := MonthGrid{Year: year, Month: month}
	day := 1 - mondayIndex(first.Weekday())
	for day <= daysIn {
		var row WeekRow
		anchor := 0
		for i := 0; i < 7; i++ {
			if day >= 1 && day <= daysIn {
				row.Days[i] = DayCell{
					Day:   day,
					Today: isToday && day == today.Day(),
				}
				if anchor == 0 {
					anchor = day
				}
			}
			day++
		}
		row.Week = weekclock.WeekOf(time.Date(year, month, anchor, 0, 0, 0, 0, time.Local))
		grid.Weeks = append(grid.Weeks, row)
	}
	return grid
}

// mondayIndex maps a weekday to its Monday-start column, Monday = 0.
func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}
