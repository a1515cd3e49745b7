package meetings

import (
	"context"
	"testing"
	"time"

	"meetinghours/internal/models"
)

const viewer = "ada@example.com"

func at(t *testing.T, s string) *time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("bad time %q: %v", s, err)
	}
	return &ts
}

// meeting builds an accepted two-person meeting between start and end.
func meeting(t *testing.T, summary, start, end string) models.CalendarEvent {
	t.Helper()
	return models.CalendarEvent{
		Summary:   summary,
		Start:     models.EventTime{DateTime: at(t, start)},
		End:       models.EventTime{DateTime: at(t, end)},
		Organizer: "grace@example.com",
		Attendees: []models.Attendee{
			{Email: "grace@example.com", ResponseStatus: "accepted"},
			{Email: viewer, ResponseStatus: "accepted"},
		},
	}
}

func allDay(summary, start, end string) models.CalendarEvent {
	return models.CalendarEvent{
		Summary: summary,
		Start:   models.EventTime{Date: start},
		End:     models.EventTime{Date: end},
		Attendees: []models.Attendee{
			{Email: viewer, ResponseStatus: "accepted"},
			{Email: "grace@example.com", ResponseStatus: "accepted"},
		},
	}
}

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	c, err := NewClassifier(DefaultRules())
	if err != nil {
		t.Fatalf("NewClassifier: %v", err)
	}
	return c
}

// fakeSource serves canned pages per person.
type fakeSource struct {
	pages  map[string]*models.EventPage
	errs   map[string]error
	delays map[string]time.Duration
}

func (f *fakeSource) ListEvents(ctx context.Context, person string, w models.Window) (*models.EventPage, error) {
	if d, ok := f.delays[person]; ok {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err, ok := f.errs[person]; ok {
		return nil, err
	}
	if p, ok := f.pages[person]; ok {
		return p, nil
	}
	return &models.EventPage{}, nil
}
