package events

import (
	"sync"
	"time"

	"github.com/DylanJDombrowski/pizzai-dashboard/internal/domain/models"
)

// Calendar is a read-only source of special events, matched by exact date.
type Calendar interface {
	EventsForDate(date string) []models.SpecialEvent
	EventsForRange(startDate, endDate string) []models.SpecialEvent
}

// StaticCalendar serves a fixed annual holiday table plus any ad-hoc custom
// events registered at runtime. Recurring entries match their month and day
// in any year; one-off entries match their exact date.
type StaticCalendar struct {
	mu     sync.RWMutex
	annual []models.SpecialEvent
	custom []models.SpecialEvent
}

// NewStaticCalendar builds a calendar preloaded with the annual holiday table.
func NewStaticCalendar() *StaticCalendar {
	return &StaticCalendar{annual: annualHolidays()}
}

// AddCustomEvent registers a one-off event.
func (c *StaticCalendar) AddCustomEvent(event models.SpecialEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.custom = append(c.custom, event)
}

// EventsForDate returns every event falling on the given date.
func (c *StaticCalendar) EventsForDate(date string) []models.SpecialEvent {
	return c.EventsForRange(date, date)
}

// EventsForRange returns every event falling within [startDate, endDate],
// inclusive on both ends.
func (c *StaticCalendar) EventsForRange(startDate, endDate string) []models.SpecialEvent {
	start, err := time.Parse(models.DateLayout, startDate)
	if err != nil {
		return nil
	}
	end, err := time.Parse(models.DateLayout, endDate)
	if err != nil {
		return nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	var matched []models.SpecialEvent
	for _, event := range c.annual {
		if date, ok := occurrenceInRange(event, start, end); ok {
			occurrence := event
			occurrence.Date = date
			matched = append(matched, occurrence)
		}
	}
	for _, event := range c.custom {
		if date, ok := occurrenceInRange(event, start, end); ok {
			occurrence := event
			occurrence.Date = date
			matched = append(matched, occurrence)
		}
	}
	return matched
}

// occurrenceInRange resolves whether an event falls inside [start, end] and
// returns the concrete date of the occurrence. Recurring events are pinned
// to their month/day in each candidate year.
func occurrenceInRange(event models.SpecialEvent, start, end time.Time) (string, bool) {
	eventDate, err := time.Parse(models.DateLayout, event.Date)
	if err != nil {
		return "", false
	}

	if !event.Recurring {
		if inRange(eventDate, start, end) {
			return event.Date, true
		}
		return "", false
	}

	for year := start.Year(); year <= end.Year(); year++ {
		candidate := time.Date(year, eventDate.Month(), eventDate.Day(), 0, 0, 0, 0, time.UTC)
		if inRange(candidate, start, end) {
			return candidate.Format(models.DateLayout), true
		}
	}
	return "", false
}

func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
