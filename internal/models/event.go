package models

import "time"

// EventTime is either a timed instant or an all-day date, never both.
type EventTime struct {
	DateTime *time.Time `json:"dateTime,omitempty"` // keeps the offset it was published with
	Date     string     `json:"date,omitempty"`     // YYYY-MM-DD for all-day events
}

// IsTimed reports whether the time carries an instant.
func (t EventTime) IsTimed() bool {
	return t.DateTime != nil
}

// IsDate reports whether the time is a date-only (all-day) value.
func (t EventTime) IsDate() bool {
	return t.DateTime == nil && t.Date != ""
}

// String returns the instant in RFC3339 or the bare date.
func (t EventTime) String() string {
	if t.DateTime != nil {
		return t.DateTime.Format(time.RFC3339)
	}
	return t.Date
}

// Attendee is one invitee on an event
type Attendee struct {
	Email          string `json:"email"`
	ResponseStatus string `json:"responseStatus"` // "accepted", "declined", "tentative", "needsAction"
}

const ResponseAccepted = "accepted"

// CalendarEvent is a single event as returned by a calendar source.
type CalendarEvent struct {
	Summary   string     `json:"summary,omitempty"`
	Start     EventTime  `json:"start"`
	End       EventTime  `json:"end"`
	Organizer string     `json:"organizer,omitempty"`
	Attendees []Attendee `json:"attendees,omitempty"`
}

// EventPage is one bounded page of events. Truncated is set when the source
// reported more events than the page could hold.
type EventPage struct {
	Events    []CalendarEvent
	Truncated bool
}

// Window is the inclusive query range for a report run.
type Window struct {
	Start time.Time `json:"start" bson:"start"`
	End   time.Time `json:"end" bson:"end"`
}
