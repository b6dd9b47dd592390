package calendar_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayush/multiuser-calendar/internal/calendar"
)

func TestDateString_ZeroPads(t *testing.T) {
	assert.Equal(t, "2024-09-05", calendar.DateString(2024, 9, 5))
	assert.Equal(t, "2024-12-31", calendar.DateString(2024, 12, 31))
}

func TestMonthPrefix_ZeroPads(t *testing.T) {
	assert.Equal(t, "2024-09", calendar.MonthPrefix(2024, 9))
	assert.Equal(t, "2024-11", calendar.MonthPrefix(2024, 11))
}

// A stored single-digit-month date must always match the query prefix for
// the same month. The original app padded only on the read side and lost
// such events.
func TestDateString_MatchesMonthPrefix(t *testing.T) {
	for month := 1; month <= 12; month++ {
		date := calendar.DateString(2024, month, 7)
		prefix := calendar.MonthPrefix(2024, month) + "-"
		assert.True(t, strings.HasPrefix(date, prefix), "month %d", month)
	}
}

func TestDayKey(t *testing.T) {
	assert.Equal(t, "05", calendar.DayKey(5))
	assert.Equal(t, "28", calendar.DayKey(28))
}
