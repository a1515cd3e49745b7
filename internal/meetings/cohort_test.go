package meetings

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"meetinghours/internal/models"
)

func results(pairs ...any) []models.PersonResult {
	var out []models.PersonResult
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, models.PersonResult{
			Person:     fmt.Sprintf("p%d@example.com", i/2),
			Role:       pairs[i].(string),
			TotalHours: pairs[i+1].(float64),
		})
	}
	return out
}

func TestSummarize(t *testing.T) {
	groups := Summarize(results("eng", 2.0, "eng", 4.0, "eng", 6.0, "pm", 3.0, "", 9.0), DefaultInclusionThreshold)

	report := &models.CohortReport{Groups: groups}

	eng, ok := report.Group("eng")
	if !ok {
		t.Fatal("expected eng group")
	}
	if eng.Mean != 4.0 || eng.Median != 4.0 || eng.Count != 3 {
		t.Errorf("eng = %+v, want mean 4 median 4 count 3", eng)
	}

	all, ok := report.Group(models.GroupAll)
	if !ok {
		t.Fatal("expected all group")
	}
	if all.Count != 5 || all.Mean != 4.8 || all.Median != 4.0 {
		t.Errorf("all = %+v", all)
	}

	if groups[0].Key != models.GroupAll || groups[1].Key != "eng" || groups[2].Key != "pm" {
		t.Errorf("unexpected group order %+v", groups)
	}
}

func TestSummarizeEvenMedian(t *testing.T) {
	groups := Summarize(results("eng", 2.0, "eng", 5.0, "eng", 3.0, "eng", 10.0), DefaultInclusionThreshold)
	if groups[1].Median != 4.0 {
		t.Errorf("median = %v, want 4.0", groups[1].Median)
	}
}

func TestSummarizeThresholdIsExclusive(t *testing.T) {
	groups := Summarize(results("eng", 1.0, "eng", 3.0, "design", 0.5), DefaultInclusionThreshold)

	report := &models.CohortReport{Groups: groups}
	eng, _ := report.Group("eng")
	if eng.Count != 1 || eng.Mean != 3.0 {
		t.Errorf("person at exactly 1.0 hour must be excluded, eng = %+v", eng)
	}
	if _, ok := report.Group("design"); ok {
		t.Errorf("role with no tracked people must be omitted")
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if groups := Summarize(results("eng", 0.0, "pm", 1.0), DefaultInclusionThreshold); len(groups) != 0 {
		t.Errorf("expected no groups, got %+v", groups)
	}
}

func TestSummarizeRoleNamedAll(t *testing.T) {
	groups := Summarize(results("all", 2.0, "eng", 4.0), DefaultInclusionThreshold)
	if len(groups) != 2 || groups[0].Count != 2 {
		t.Errorf("role named all must not be double counted: %+v", groups)
	}
}

func hoursOfMeetings(t *testing.T, n int) *models.EventPage {
	t.Helper()
	page := &models.EventPage{}
	for i := 0; i < n; i++ {
		start := time.Date(2024, 3, 4+i, 9, 0, 0, 0, time.FixedZone("", -7*60*60))
		ev := meeting(t, "Sync", start.Format(time.RFC3339), start.Add(time.Hour).Format(time.RFC3339))
		page.Events = append(page.Events, ev)
	}
	return page
}

func TestCohortRunKeepsRosterOrder(t *testing.T) {
	roster := []models.RosterEntry{
		{Person: viewer, Role: "eng"},
		{Person: "slow@example.com", Role: "eng"},
		{Person: "broken@example.com", Role: "pm"},
		{Person: "idle@example.com", Role: "design"},
	}

	// The meeting helper makes viewer an attendee, so every page is
	// classified from viewer's point of view; reuse it for all people.
	src := &fakeSource{
		pages: map[string]*models.EventPage{
			viewer:             hoursOfMeetings(t, 3),
			"slow@example.com": hoursOfMeetings(t, 5),
		},
		errs:   map[string]error{"broken@example.com": errors.New("backend error")},
		delays: map[string]time.Duration{"slow@example.com": 50 * time.Millisecond},
	}

	agg := NewAggregator(src, newTestClassifier(t))
	cohort := NewCohort(agg)
	cohort.Concurrency = 4
	cohort.Source = "fake"

	var mu sync.Mutex
	done := 0
	cohort.OnPersonDone = func(models.PersonResult) {
		mu.Lock()
		done++
		mu.Unlock()
	}

	report, err := cohort.Run(context.Background(), roster, testWindow(t))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if done != len(roster) {
		t.Errorf("OnPersonDone called %d times, want %d", done, len(roster))
	}
	for i, entry := range roster {
		if report.People[i].Person != entry.Person {
			t.Errorf("people[%d] = %s, want %s", i, report.People[i].Person, entry.Person)
		}
	}

	if !report.People[0].Tracked || report.People[0].TotalHours != 3 {
		t.Errorf("unexpected first result %+v", report.People[0])
	}
	if !report.People[2].Unavailable || report.People[2].Tracked {
		t.Errorf("broken fetch should be unavailable and untracked: %+v", report.People[2])
	}
	if report.People[3].Tracked {
		t.Errorf("idle person should not be tracked")
	}

	eng, ok := report.Group("eng")
	if !ok || eng.Mean != 4.0 || eng.Median != 4.0 {
		t.Errorf("eng = %+v", eng)
	}
	if _, ok := report.Group("pm"); ok {
		t.Errorf("pm has no tracked people and must be omitted")
	}
	if report.ID == "" || report.Source != "fake" || report.Threshold != DefaultInclusionThreshold {
		t.Errorf("unexpected report metadata %+v", report)
	}
}

func TestCohortFetchTimeoutIsPerPerson(t *testing.T) {
	roster := []models.RosterEntry{
		{Person: "stalled@example.com"},
		{Person: viewer},
	}
	src := &fakeSource{
		pages:  map[string]*models.EventPage{viewer: hoursOfMeetings(t, 2)},
		delays: map[string]time.Duration{"stalled@example.com": time.Minute},
	}

	cohort := NewCohort(NewAggregator(src, newTestClassifier(t)))
	cohort.FetchTimeout = 20 * time.Millisecond

	report, err := cohort.Run(context.Background(), roster, testWindow(t))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !report.People[0].Unavailable {
		t.Errorf("stalled fetch should time out as unavailable")
	}
	if report.People[1].TotalHours != 2 {
		t.Errorf("sibling fetch should be unaffected, got %+v", report.People[1])
	}
}

func TestCohortRunErrors(t *testing.T) {
	cohort := NewCohort(NewAggregator(&fakeSource{}, newTestClassifier(t)))

	if _, err := cohort.Run(context.Background(), nil, testWindow(t)); !errors.Is(err, ErrEmptyRoster) {
		t.Errorf("expected ErrEmptyRoster, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := cohort.Run(ctx, []models.RosterEntry{{Person: viewer}}, testWindow(t)); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
