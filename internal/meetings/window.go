package meetings

import (
	"fmt"
	"time"

	"meetinghours/internal/models"
)

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006/01/02", "01/02/2006"}

// NewWindow builds the inclusive window from the start of startDate to the
// end of endDate, both evaluated in loc.
func NewWindow(startDate, endDate string, loc *time.Location) (models.Window, error) {
	if loc == nil {
		loc = time.UTC
	}

	start, err := parseDate(startDate, loc)
	if err != nil {
		return models.Window{}, fmt.Errorf("%w: start: %v", ErrInvalidWindow, err)
	}
	end, err := parseDate(endDate, loc)
	if err != nil {
		return models.Window{}, fmt.Errorf("%w: end: %v", ErrInvalidWindow, err)
	}
	if end.Before(start) {
		return models.Window{}, fmt.Errorf("%w: end %s is before start %s", ErrInvalidWindow, endDate, startDate)
	}

	return models.Window{
		Start: start,
		End:   end.AddDate(0, 0, 1).Add(-time.Nanosecond),
	}, nil
}

// TrailingWindow covers the given number of whole days ending the day before now.
func TrailingWindow(now time.Time, days int, loc *time.Location) models.Window {
	if loc == nil {
		loc = time.UTC
	}
	now = now.In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	return models.Window{
		Start: today.AddDate(0, 0, -days),
		End:   today.Add(-time.Nanosecond),
	}
}

func parseDate(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err != nil {
			continue
		}
		t = t.In(loc)
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}
