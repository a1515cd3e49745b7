package meetings

import (
	"context"
	"errors"
	"log"

	"meetinghours/internal/models"
)

// EventSource lists one person's events within a window, ordered by start time.
type EventSource interface {
	ListEvents(ctx context.Context, person string, window models.Window) (*models.EventPage, error)
}

// Aggregator totals tracked meeting hours for a single person.
type Aggregator struct {
	source     EventSource
	classifier *Classifier
}

func NewAggregator(source EventSource, classifier *Classifier) *Aggregator {
	return &Aggregator{
		source:     source,
		classifier: classifier,
	}
}

// Person fetches entry's events and sums the durations of the tracked ones.
// A failed fetch yields an unavailable zero-hour result instead of an error.
func (a *Aggregator) Person(ctx context.Context, entry models.RosterEntry, window models.Window) models.PersonResult {
	result := models.PersonResult{
		Person: entry.Person,
		Role:   entry.Role,
	}

	page, err := a.source.ListEvents(ctx, entry.Person, window)
	if err != nil {
		log.Printf("meetings: fetching events for %s failed: %v", entry.Person, err)
		result.Unavailable = true
		result.Error = err.Error()
		return result
	}

	result.EventCount = len(page.Events)
	result.Truncated = page.Truncated
	if page.Truncated {
		log.Printf("meetings: event list for %s was truncated at %d events", entry.Person, len(page.Events))
	}

	for _, ev := range page.Events {
		if err := validateShape(ev); err != nil {
			log.Printf("meetings: skipping event for %s: %v", entry.Person, err)
			result.MalformedEvents++
			continue
		}

		if !a.classifier.Tracked(ev, entry.Person) {
			continue
		}

		hours := Duration(ev)
		result.TotalHours += hours
		result.Meetings = append(result.Meetings, models.TrackedMeeting{
			Start:   ev.Start.String(),
			Summary: ev.Summary,
			Hours:   hours,
		})
	}

	return result
}

// Explanation is the classification of one event, for inspection.
type Explanation struct {
	Event    models.CalendarEvent
	Decision Decision
	Hours    float64
	Err      error // set for malformed events
}

// Explain classifies every event in person's window without aggregating.
func (a *Aggregator) Explain(ctx context.Context, person string, window models.Window) ([]Explanation, error) {
	page, err := a.source.ListEvents(ctx, person, window)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, errors.New("event source returned no page")
	}

	out := make([]Explanation, 0, len(page.Events))
	for _, ev := range page.Events {
		exp := Explanation{Event: ev}
		if err := validateShape(ev); err != nil {
			exp.Err = err
			out = append(out, exp)
			continue
		}
		exp.Decision = a.classifier.Classify(ev, person)
		if ev.Start.IsTimed() {
			exp.Hours = Duration(ev)
		}
		out = append(out, exp)
	}
	return out, nil
}
