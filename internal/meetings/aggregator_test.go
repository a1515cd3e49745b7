package meetings

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"meetinghours/internal/models"
)

func testWindow(t *testing.T) models.Window {
	t.Helper()
	w, err := NewWindow("2024-03-04", "2024-03-08", time.FixedZone("UTC-07:00", -7*60*60))
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func TestPersonSumsTrackedEvents(t *testing.T) {
	src := &fakeSource{pages: map[string]*models.EventPage{
		viewer: {Events: []models.CalendarEvent{
			meeting(t, "Design review", "2024-03-04T09:00:00-07:00", "2024-03-04T10:30:00-07:00"),
			meeting(t, "Team Lunch", "2024-03-04T11:00:00-07:00", "2024-03-04T12:00:00-07:00"),
			allDay("Offsite", "2024-03-05", "2024-03-06"),
			meeting(t, "1:1", "2024-03-06T14:00:00-07:00", "2024-03-06T14:30:00-07:00"),
		}},
	}}

	agg := NewAggregator(src, newTestClassifier(t))
	got := agg.Person(context.Background(), models.RosterEntry{Person: viewer, Role: "eng"}, testWindow(t))

	if math.Abs(got.TotalHours-2.0) > 1e-9 {
		t.Errorf("TotalHours = %v, want 2.0", got.TotalHours)
	}
	if got.EventCount != 4 {
		t.Errorf("EventCount = %d, want 4", got.EventCount)
	}
	if len(got.Meetings) != 2 {
		t.Fatalf("expected 2 tracked meetings, got %d", len(got.Meetings))
	}
	if got.Meetings[0].Summary != "Design review" || got.Meetings[0].Hours != 1.5 {
		t.Errorf("unexpected first meeting %+v", got.Meetings[0])
	}
	if got.Unavailable || got.Role != "eng" {
		t.Errorf("unexpected result %+v", got)
	}
}

func TestPersonFetchError(t *testing.T) {
	src := &fakeSource{errs: map[string]error{viewer: errors.New("403 forbidden")}}

	got := NewAggregator(src, newTestClassifier(t)).Person(context.Background(), models.RosterEntry{Person: viewer}, testWindow(t))
	if !got.Unavailable || got.TotalHours != 0 {
		t.Fatalf("expected unavailable zero result, got %+v", got)
	}
	if got.Error != "403 forbidden" {
		t.Errorf("Error = %q", got.Error)
	}
}

func TestPersonSkipsMalformedEvents(t *testing.T) {
	mixed := meeting(t, "Sync", "2024-03-04T09:00:00-07:00", "2024-03-04T10:00:00-07:00")
	mixed.End = models.EventTime{Date: "2024-03-04"}

	backwards := meeting(t, "Sync", "2024-03-04T10:00:00-07:00", "2024-03-04T09:00:00-07:00")

	shapeless := meeting(t, "Sync", "2024-03-04T09:00:00-07:00", "2024-03-04T10:00:00-07:00")
	shapeless.Start = models.EventTime{}
	shapeless.End = models.EventTime{}

	src := &fakeSource{pages: map[string]*models.EventPage{
		viewer: {Events: []models.CalendarEvent{
			mixed,
			backwards,
			shapeless,
			meeting(t, "Sync", "2024-03-04T14:00:00-07:00", "2024-03-04T15:00:00-07:00"),
		}, Truncated: true},
	}}

	got := NewAggregator(src, newTestClassifier(t)).Person(context.Background(), models.RosterEntry{Person: viewer}, testWindow(t))
	if got.MalformedEvents != 3 {
		t.Errorf("MalformedEvents = %d, want 3", got.MalformedEvents)
	}
	if got.TotalHours != 1 {
		t.Errorf("TotalHours = %v, want 1", got.TotalHours)
	}
	if !got.Truncated {
		t.Errorf("expected Truncated to be carried over")
	}
}

func TestExplain(t *testing.T) {
	mixed := meeting(t, "Sync", "2024-03-04T09:00:00-07:00", "2024-03-04T10:00:00-07:00")
	mixed.End = models.EventTime{Date: "2024-03-04"}

	src := &fakeSource{pages: map[string]*models.EventPage{
		viewer: {Events: []models.CalendarEvent{
			meeting(t, "Design review", "2024-03-04T09:00:00-07:00", "2024-03-04T10:30:00-07:00"),
			meeting(t, "Drinks", "2024-03-04T16:00:00-07:00", "2024-03-04T17:00:00-07:00"),
			mixed,
		}},
	}}

	out, err := NewAggregator(src, newTestClassifier(t)).Explain(context.Background(), viewer, testWindow(t))
	if err != nil {
		t.Fatalf("Explain: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 explanations, got %d", len(out))
	}
	if !out[0].Decision.Tracked || out[0].Hours != 1.5 {
		t.Errorf("unexpected first explanation %+v", out[0])
	}
	if out[1].Decision.Rule != RuleSocial {
		t.Errorf("expected social exclusion, got %+v", out[1].Decision)
	}
	if !errors.Is(out[2].Err, ErrMalformedEvent) {
		t.Errorf("expected malformed error, got %v", out[2].Err)
	}
}
