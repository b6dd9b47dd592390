package calendar

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/ayush/multiuser-calendar/internal/auth"
	"github.com/ayush/multiuser-calendar/internal/models"
	"github.com/ayush/multiuser-calendar/internal/web"
)

// EventStore defines the interface for event persistence.
type EventStore interface {
	CreateEvent(ctx context.Context, userID int64, date, text string) (*models.Event, error)
	ListEventsByMonth(ctx context.Context, userID int64, year, month int) ([]models.Event, error)
}

// Handler holds the calendar HTTP handlers.
type Handler struct {
	events EventStore
}

func NewHandler(events EventStore) *Handler {
	return &Handler{events: events}
}

// monthView is the data for calendar.html.
type monthView struct {
	Year      int
	Month     int
	MonthName string
	Weeks     [][]DaySlot
	PrevYear  int
	PrevMonth int
	NextYear  int
	NextMonth int
}

// Calendar renders the month grid with the user's events overlaid.
// year and month query parameters default to today.
func (h *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFrom(r.Context())
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	now := time.Now()
	year := queryInt(r, "year", now.Year())
	month := queryInt(r, "month", int(now.Month()))
	if month < 1 || month > 12 {
		year, month = now.Year(), int(now.Month())
	}

	events, err := h.events.ListEventsByMonth(r.Context(), userID, year, month)
	if err != nil {
		log.Printf("list events error: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	prevYear, prevMonth := year, month-1
	if prevMonth == 0 {
		prevYear, prevMonth = year-1, 12
	}
	nextYear, nextMonth := year, month+1
	if nextMonth == 13 {
		nextYear, nextMonth = year+1, 1
	}

	web.Render(w, "calendar.html", monthView{
		Year:      year,
		Month:     month,
		MonthName: time.Month(month).String(),
		Weeks:     OverlayEvents(MonthGrid(year, month), GroupByDay(events)),
		PrevYear:  prevYear,
		PrevMonth: prevMonth,
		NextYear:  nextYear,
		NextMonth: nextMonth,
	})
}

// AddEvent stores a new event and returns to the calendar of its month.
func (h *Handler) AddEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFrom(r.Context())
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	form, err := parseAddEventForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	date := DateString(form.Year, form.Month, form.Day)
	if _, err := h.events.CreateEvent(r.Context(), userID, date, form.Text); err != nil {
		log.Printf("create event error: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r,
		fmt.Sprintf("/calendar?year=%d&month=%d", form.Year, form.Month),
		http.StatusSeeOther)
}

func parseAddEventForm(r *http.Request) (*models.AddEventForm, error) {
	year, err := strconv.Atoi(r.PostFormValue("year"))
	if err != nil {
		return nil, fmt.Errorf("invalid year")
	}
	month, err := strconv.Atoi(r.PostFormValue("month"))
	if err != nil || month < 1 || month > 12 {
		return nil, fmt.Errorf("invalid month")
	}
	day, err := strconv.Atoi(r.PostFormValue("day"))
	if err != nil || day < 1 || day > 31 {
		return nil, fmt.Errorf("invalid day")
	}
	text := r.PostFormValue("event")
	if text == "" {
		return nil, fmt.Errorf("event text is required")
	}
	return &models.AddEventForm{Year: year, Month: month, Day: day, Text: text}, nil
}

// queryInt reads an integer query parameter, falling back when absent or
// unparsable.
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
