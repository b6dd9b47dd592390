package calendar

import (
	"strings"
	"time"

	"github.com/ayush/multiuser-calendar/internal/models"
)

// MonthGrid returns the weeks of a month as rows of seven day numbers,
// Monday first. Slots belonging to the adjacent months are zero.
func MonthGrid(year, month int) [][]int {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	// time.Weekday is Sunday-based; shift so Monday lands in column 0.
	col := (int(first.Weekday()) + 6) % 7

	var weeks [][]int
	week := make([]int, 7)
	for d := 1; d <= daysInMonth; d++ {
		week[col] = d
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = make([]int, 7)
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}

// GroupByDay indexes event texts by their two-digit day-of-month key,
// preserving the order the store returned them in.
func GroupByDay(events []models.Event) map[string][]string {
	byDay := make(map[string][]string)
	for _, e := range events {
		parts := strings.Split(e.Date, "-")
		day := parts[len(parts)-1]
		byDay[day] = append(byDay[day], e.Text)
	}
	return byDay
}

// DaySlot is one cell of the rendered month grid. Day is zero for cells
// outside the month.
type DaySlot struct {
	Day    int
	Events []string
}

// OverlayEvents attaches each day's event texts to the grid. Presentation
// only; the grid and the event map are left untouched.
func OverlayEvents(grid [][]int, eventsByDay map[string][]string) [][]DaySlot {
	weeks := make([][]DaySlot, len(grid))
	for i, row := range grid {
		slots := make([]DaySlot, len(row))
		for j, day := range row {
			slots[j].Day = day
			if day != 0 {
				slots[j].Events = eventsByDay[DayKey(day)]
			}
		}
		weeks[i] = slots
	}
	return weeks
}
