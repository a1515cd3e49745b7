package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"meetinghours/internal/meetings"
	"meetinghours/internal/models"
)

type fakeSource struct {
	mu      sync.Mutex
	pages   map[string]*models.EventPage
	windows []models.Window
}

func (f *fakeSource) ListEvents(ctx context.Context, person string, w models.Window) (*models.EventPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.windows = append(f.windows, w)
	if p, ok := f.pages[person]; ok {
		return p, nil
	}
	return &models.EventPage{}, nil
}

type fakeStore struct {
	saved []*models.CohortReport
	err   error
}

func (f *fakeStore) Save(ctx context.Context, r *models.CohortReport) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, r)
	return nil
}

func timed(t *testing.T, summary, start, end string) models.CalendarEvent {
	t.Helper()
	s, err := time.Parse(time.RFC3339, start)
	if err != nil {
		t.Fatal(err)
	}
	e, err := time.Parse(time.RFC3339, end)
	if err != nil {
		t.Fatal(err)
	}
	return models.CalendarEvent{
		Summary:   summary,
		Start:     models.EventTime{DateTime: &s},
		End:       models.EventTime{DateTime: &e},
		Organizer: "lead@example.com",
		Attendees: []models.Attendee{{Email: "ada@example.com", ResponseStatus: models.ResponseAccepted}},
	}
}

func newTestCohort(t *testing.T, source meetings.EventSource) *meetings.Cohort {
	t.Helper()
	classifier, err := meetings.NewClassifier(meetings.DefaultRules())
	if err != nil {
		t.Fatal(err)
	}
	c := meetings.NewCohort(meetings.NewAggregator(source, classifier))
	c.Source = "test"
	return c
}
