package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"meetinghours/internal/models"
)

const defaultMaxOccurrences = 5000

// ICSService reads one <person>.ics file per person from a directory and
// expands recurring events within the requested window.
type ICSService struct {
	dir        string
	maxResults int
}

func NewICSService(dir string, maxResults int) *ICSService {
	if maxResults <= 0 {
		maxResults = 1000
	}
	return &ICSService{
		dir:        dir,
		maxResults: maxResults,
	}
}

// icsEvent is one parsed VEVENT before recurrence expansion.
type icsEvent struct {
	uid        string
	event      models.CalendarEvent
	allDay     bool
	start, end time.Time // for all-day events, midnight of the dates in UTC
	rrule      string
	exdates    []time.Time
	recurrence *time.Time
}

// ListEvents implements meetings.EventSource.
func (s *ICSService) ListEvents(ctx context.Context, person string, window models.Window) (*models.EventPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(s.dir, filepath.Base(person)+".ics")
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading calendar for %s: %w", person, err)
	}

	parsed, err := parseICS(body)
	if err != nil {
		return nil, fmt.Errorf("parsing calendar for %s: %w", person, err)
	}

	events := expandICS(parsed, window)
	sort.SliceStable(events, func(i, j int) bool {
		return sortKey(events[i], window.Start.Location()).Before(sortKey(events[j], window.Start.Location()))
	})

	page := &models.EventPage{Events: events}
	if len(events) > s.maxResults {
		page.Events = events[:s.maxResults]
		page.Truncated = true
	}
	return page, nil
}

func parseICS(body []byte) ([]icsEvent, error) {
	if len(body) == 0 {
		return nil, errors.New("empty ICS body")
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var out []icsEvent
	for _, ve := range cal.Events() {
		if p := ve.GetProperty(ical.ComponentPropertyStatus); p != nil && strings.EqualFold(p.Value, "CANCELLED") {
			continue
		}
		ev, err := parseVEvent(ve)
		if err != nil {
			log.Println("ics: skipping event:", err)
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}

func parseVEvent(ve *ical.VEvent) (icsEvent, error) {
	var out icsEvent

	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil {
		out.uid = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		out.event.Summary = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyOrganizer); p != nil {
		out.event.Organizer = stripMailto(p.Value)
	}
	for _, p := range ve.GetProperties(ical.ComponentPropertyAttendee) {
		partstat := ""
		if vs, ok := p.ICalParameters["PARTSTAT"]; ok && len(vs) > 0 {
			partstat = vs[0]
		}
		out.event.Attendees = append(out.event.Attendees, models.Attendee{
			Email:          stripMailto(p.Value),
			ResponseStatus: responseStatus(partstat),
		})
	}

	dtStart := ve.GetProperty(ical.ComponentPropertyDtStart)
	if dtStart == nil {
		return out, fmt.Errorf("event %q has no DTSTART", out.uid)
	}

	if isDateValue(dtStart) {
		start, err := time.Parse("20060102", dtStart.Value)
		if err != nil {
			return out, fmt.Errorf("event %q: %w", out.uid, err)
		}
		end := start.AddDate(0, 0, 1)
		if dtEnd := ve.GetProperty(ical.ComponentPropertyDtEnd); dtEnd != nil {
			if t, err := time.Parse("20060102", dtEnd.Value); err == nil {
				end = t
			}
		}
		out.allDay = true
		out.start, out.end = start, end
	} else {
		start, err := ve.GetStartAt()
		if err != nil {
			return out, fmt.Errorf("event %q: %w", out.uid, err)
		}
		end, err := ve.GetEndAt()
		if err != nil {
			end = start
		}
		out.start, out.end = start, end
	}

	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		out.rrule = p.Value
	}
	for _, p := range ve.GetProperties(ical.ComponentPropertyExdate) {
		for _, part := range strings.Split(p.Value, ",") {
			if t, err := parseICSTime(strings.TrimSpace(part), out.start.Location()); err == nil {
				out.exdates = append(out.exdates, t)
			}
		}
	}
	if p := ve.GetProperty("RECURRENCE-ID"); p != nil {
		if t, err := parseICSTime(p.Value, out.start.Location()); err == nil {
			out.recurrence = &t
		}
	}

	return out, nil
}

// expandICS turns parsed events into concrete occurrences overlapping the
// window. Overrides (RECURRENCE-ID) replace the matching generated occurrence.
func expandICS(events []icsEvent, window models.Window) []models.CalendarEvent {
	overridden := make(map[string]bool)
	for _, ev := range events {
		if ev.recurrence != nil {
			overridden[overrideKey(ev.uid, *ev.recurrence)] = true
		}
	}

	var out []models.CalendarEvent
	for _, ev := range events {
		if ev.rrule == "" || ev.recurrence != nil {
			if overlaps(ev, ev.start, ev.end, window) {
				out = append(out, occurrence(ev, ev.start, ev.end))
			}
			continue
		}

		r, err := rrule.StrToRRule(ev.rrule)
		if err != nil {
			log.Printf("ics: bad RRULE on %q: %v", ev.uid, err)
			continue
		}
		r.DTStart(ev.start)

		var set rrule.Set
		set.RRule(r)
		for _, ex := range ev.exdates {
			set.ExDate(ex)
		}

		length := ev.end.Sub(ev.start)
		// Widen the lower bound so occurrences that started before the
		// window but end inside it are kept.
		from := window.Start.Add(-length).In(ev.start.Location())
		to := window.End.In(ev.start.Location())
		if ev.allDay {
			from = from.AddDate(0, 0, -1)
			to = to.AddDate(0, 0, 1)
		}

		starts := set.Between(from, to, true)
		if len(starts) > defaultMaxOccurrences {
			log.Printf("ics: truncated %q at %d occurrences", ev.uid, defaultMaxOccurrences)
			starts = starts[:defaultMaxOccurrences]
		}
		for _, s := range starts {
			if overridden[overrideKey(ev.uid, s)] {
				continue
			}
			e := s.Add(length)
			if overlaps(ev, s, e, window) {
				out = append(out, occurrence(ev, s, e))
			}
		}
	}
	return out
}

func occurrence(ev icsEvent, start, end time.Time) models.CalendarEvent {
	out := ev.event
	out.Attendees = append([]models.Attendee(nil), ev.event.Attendees...)
	if ev.allDay {
		out.Start = models.EventTime{Date: start.Format("2006-01-02")}
		out.End = models.EventTime{Date: end.Format("2006-01-02")}
		return out
	}
	s, e := start, end
	out.Start = models.EventTime{DateTime: &s}
	out.End = models.EventTime{DateTime: &e}
	return out
}

// overlaps mirrors the Calendar API semantics: end after window start and
// start before window end. All-day dates are read in the window's zone.
func overlaps(ev icsEvent, start, end time.Time, window models.Window) bool {
	if ev.allDay {
		loc := window.Start.Location()
		start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
		end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, loc)
	}
	if !end.After(start) {
		return !start.Before(window.Start) && !start.After(window.End)
	}
	return end.After(window.Start) && start.Before(window.End)
}

func sortKey(ev models.CalendarEvent, loc *time.Location) time.Time {
	if ev.Start.DateTime != nil {
		return *ev.Start.DateTime
	}
	t, err := time.ParseInLocation("2006-01-02", ev.Start.Date, loc)
	if err != nil {
		return time.Time{}
	}
	return t
}

func overrideKey(uid string, t time.Time) string {
	return uid + "|" + t.UTC().Format(time.RFC3339)
}

func isDateValue(p *ical.IANAProperty) bool {
	if vs, ok := p.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
		return true
	}
	return !strings.Contains(p.Value, "T")
}

// parseICSTime handles the UTC, floating and date-only forms used by EXDATE
// and RECURRENCE-ID.
func parseICSTime(v string, loc *time.Location) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, errors.New("empty time value")
	}
	if strings.HasSuffix(v, "Z") {
		return time.Parse("20060102T150405Z", v)
	}
	if strings.Contains(v, "T") {
		return time.ParseInLocation("20060102T150405", v, loc)
	}
	return time.ParseInLocation("20060102", v, loc)
}

func stripMailto(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 7 && strings.EqualFold(v[:7], "mailto:") {
		return v[7:]
	}
	return v
}

// responseStatus maps an iCalendar PARTSTAT to the Calendar API vocabulary.
func responseStatus(partstat string) string {
	switch strings.ToUpper(partstat) {
	case "ACCEPTED":
		return models.ResponseAccepted
	case "DECLINED":
		return "declined"
	case "TENTATIVE":
		return "tentative"
	default:
		return "needsAction"
	}
}
