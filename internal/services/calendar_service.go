package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"meetinghours/internal/models"
)

// GoogleCalendarService lists events through the Google Calendar API.
type GoogleCalendarService struct {
	srv        *calendar.Service
	maxResults int64
}

// NewGoogleCalendarService creates the API client. Callers pass
// option.WithTokenSource (or another client option) for authentication.
func NewGoogleCalendarService(ctx context.Context, maxResults int64, opts ...option.ClientOption) (*GoogleCalendarService, error) {
	srv, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, err
	}

	if maxResults <= 0 {
		maxResults = 1000
	}

	return &GoogleCalendarService{
		srv:        srv,
		maxResults: maxResults,
	}, nil
}

// ListEvents requests a single page of the person's expanded events in start
// order. A non-empty next page token means the page was truncated.
func (s *GoogleCalendarService) ListEvents(ctx context.Context, person string, window models.Window) (*models.EventPage, error) {
	resp, err := s.srv.Events.List(person).
		TimeMin(window.Start.Format(time.RFC3339)).
		TimeMax(window.End.Format(time.RFC3339)).
		SingleEvents(true).
		MaxResults(s.maxResults).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("listing events for %s: %w", person, err)
	}

	page := &models.EventPage{
		Events:    make([]models.CalendarEvent, 0, len(resp.Items)),
		Truncated: resp.NextPageToken != "",
	}
	for _, item := range resp.Items {
		if item.Status == "cancelled" {
			continue
		}
		page.Events = append(page.Events, mapCalendarEvent(item))
	}

	return page, nil
}

func mapCalendarEvent(ev *calendar.Event) models.CalendarEvent {
	out := models.CalendarEvent{
		Summary: ev.Summary,
		Start:   mapEventTime(ev.Start),
		End:     mapEventTime(ev.End),
	}

	if ev.Organizer != nil {
		out.Organizer = ev.Organizer.Email
	}

	for _, a := range ev.Attendees {
		if a == nil {
			continue
		}
		out.Attendees = append(out.Attendees, models.Attendee{
			Email:          a.Email,
			ResponseStatus: a.ResponseStatus,
		})
	}

	return out
}

// mapEventTime keeps the offset the API published the instant with. A value
// that fails to parse is left empty so the event is reported as malformed.
func mapEventTime(t *calendar.EventDateTime) models.EventTime {
	if t == nil {
		return models.EventTime{}
	}

	if t.DateTime != "" {
		parsed, err := time.Parse(time.RFC3339, t.DateTime)
		if err != nil {
			return models.EventTime{}
		}
		return models.EventTime{DateTime: &parsed}
	}

	return models.EventTime{Date: strings.TrimSpace(t.Date)}
}
