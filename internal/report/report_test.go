package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"meetinghours/internal/meetings"
	"meetinghours/internal/models"
)

func sampleReport() *models.CohortReport {
	return &models.CohortReport{
		ID: "r1",
		People: []models.PersonResult{
			{Person: "ada@example.com", Role: "engineer", TotalHours: 12.25, Tracked: true, EventCount: 9},
			{Person: "bob@example.com", Role: "engineering manager", TotalHours: 20, Tracked: true, EventCount: 15},
			{Person: "cy@example.com", TotalHours: 0.5, EventCount: 1},
			{Person: "dee@example.com", Role: "engineer", Unavailable: true, Error: "404"},
		},
		Groups: []models.GroupStats{
			{Key: "all", Count: 2, Mean: 16.125, Median: 16.125},
			{Key: "engineer", Count: 1, Mean: 12.25, Median: 12.25},
			{Key: "engineering manager", Count: 1, Mean: 20, Median: 20},
		},
	}
}

func TestFormatHours(t *testing.T) {
	tests := map[float64]string{
		0:      "0.0",
		1:      "1.0",
		2.25:   "2.3",
		12.34:  "12.3",
		0.05:   "0.1",
		16.125: "16.1",
	}
	for in, want := range tests {
		if got := FormatHours(in); got != want {
			t.Errorf("FormatHours(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	if err := Table(&buf, sampleReport()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"Person", "Hours in meetings", "Role",
		"ada@example.com", "12.3", "engineer",
		"cy@example.com (ignored)",
		"dee@example.com (unavailable)",
		"N/A",
		"Mean (All)", "Median (All)", "16.1",
		"Mean (Engineer)",
		"Median (Engineering Manager)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}

	// people first, in roster order, then groups with "all" leading
	order := []string{"ada@", "bob@", "cy@", "dee@", "Mean (All)", "Mean (Engineer)", "Mean (Engineering Manager)"}
	last := -1
	for _, s := range order {
		i := strings.Index(out, s)
		if i <= last {
			t.Fatalf("%q out of order in:\n%s", s, out)
		}
		last = i
	}
}

func TestTrace(t *testing.T) {
	p := models.PersonResult{
		Person:     "ada@example.com",
		TotalHours: 1.5,
		EventCount: 3,
		Meetings: []models.TrackedMeeting{
			{Start: "2025-03-10T10:00:00-07:00", Summary: "<b>Planning</b>", Hours: 1},
			{Start: "2025-03-11T10:00:00-07:00", Summary: "Sync", Hours: 0.5},
		},
	}

	var buf bytes.Buffer
	if err := Trace(&buf, p); err != nil {
		t.Fatal(err)
	}
	want := "Person: ada@example.com\n" +
		"Tracking: 2025-03-10T10:00:00-07:00 - Planning: 1\n" +
		"Tracking: 2025-03-11T10:00:00-07:00 - Sync: 0.5\n" +
		"Total: 1.5 hours\n"
	if buf.String() != want {
		t.Errorf("trace =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestTraceNoEvents(t *testing.T) {
	var buf bytes.Buffer
	if err := Trace(&buf, models.PersonResult{Person: "cy@example.com"}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "Person: cy@example.com\nNo upcoming events found.\n" {
		t.Errorf("trace = %q", buf.String())
	}
}

func TestExplain(t *testing.T) {
	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	exps := []meetings.Explanation{
		{Event: models.CalendarEvent{Summary: "Planning", Start: models.EventTime{DateTime: &start}}, Decision: meetings.Decision{Tracked: true}, Hours: 1},
		{Event: models.CalendarEvent{Summary: "Lunch", Start: models.EventTime{DateTime: &start}}, Decision: meetings.Decision{Rule: meetings.RuleMealtime}, Hours: 1},
		{Event: models.CalendarEvent{Summary: "Broken"}, Err: errors.New("no start")},
	}

	var buf bytes.Buffer
	if err := Explain(&buf, "ada@example.com", exps); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"tracked", "excluded (mealtime)", "malformed: no start", "Total"} {
		if !strings.Contains(out, want) {
			t.Errorf("explain output missing %q:\n%s", want, out)
		}
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, sampleReport()); err != nil {
		t.Fatal(err)
	}

	var decoded models.CohortReport
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded.ID != "r1" || len(decoded.People) != 4 || decoded.Groups[0].Key != models.GroupAll {
		t.Errorf("decoded = %+v", decoded)
	}
}
