package models

import "time"

// Event is a user-owned note attached to a calendar date, stored in the
// PostgreSQL events table. Date is always the canonical zero-padded
// YYYY-MM-DD form (see calendar.DateString).
type Event struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Date      string    `json:"date"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// AddEventForm is the form payload for POST /add_event.
type AddEventForm struct {
	Year  int
	Month int
	Day   int
	Text  string
}
