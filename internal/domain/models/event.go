package models

import (
	"strings"

	"github.com/lucsky/cuid"
)

// EventType categorizes what drives a special event.
type EventType string

const (
	EventHoliday       EventType = "holiday"
	EventSports        EventType = "sports"
	EventLocal         EventType = "local_event"
	EventSevereWeather EventType = "weather_severe"
	EventPromotion     EventType = "promotion"
)

// EventImpact is the qualitative demand tier of an event.
type EventImpact string

const (
	ImpactVeryHigh EventImpact = "very_high"
	ImpactHigh     EventImpact = "high"
	ImpactModerate EventImpact = "moderate"
	ImpactLow      EventImpact = "low"
)

// EventCustomizations carries optional staffing guidance attached to an event.
type EventCustomizations struct {
	StaffingNotes    string `json:"staffing_notes,omitempty"`
	RecommendedRoles []Role `json:"recommended_roles,omitempty"`
	ExtendedHours    bool   `json:"extended_hours,omitempty"`
}

// SpecialEvent is a calendar entry that shifts expected demand for a date.
// Multipliers below 1 mean suppressed demand. Events are immutable reference
// data; multiple events on one date never stack multiplicatively.
type SpecialEvent struct {
	ID               string               `json:"id"`
	Name             string               `json:"name"`
	Date             string               `json:"date"`
	Type             EventType            `json:"type"`
	Impact           EventImpact          `json:"impact"`
	ImpactMultiplier float64              `json:"impact_multiplier"`
	Description      string               `json:"description"`
	Recurring        bool                 `json:"recurring"`
	Customizations   *EventCustomizations `json:"customizations,omitempty"`
}

// ImpactForMultiplier derives the qualitative tier from a multiplier.
func ImpactForMultiplier(multiplier float64) EventImpact {
	switch {
	case multiplier >= 2.0:
		return ImpactVeryHigh
	case multiplier >= 1.5:
		return ImpactHigh
	case multiplier >= 1.2:
		return ImpactModerate
	default:
		return ImpactLow
	}
}

// NewCustomEvent builds a one-off event with its impact tier derived from
// the multiplier.
func NewCustomEvent(name, date string, eventType EventType, impactMultiplier float64, description string) SpecialEvent {
	if description == "" {
		description = "Custom event: " + name
	}

	return SpecialEvent{
		ID:               NewEventID(name),
		Name:             name,
		Date:             date,
		Type:             eventType,
		Impact:           ImpactForMultiplier(impactMultiplier),
		ImpactMultiplier: impactMultiplier,
		Description:      description,
		Recurring:        false,
	}
}

// NewEventID mints an event identifier carrying a readable slug of the name.
func NewEventID(name string) string {
	slug := strings.ToLower(strings.Join(strings.Fields(name), "_"))
	return "event_" + cuid.Slug() + "_" + slug
}
