package meetings

import "meetinghours/internal/models"

// Duration returns the length of a timed event in hours. Instants are
// subtracted directly, so each side's own offset is honored.
func Duration(ev models.CalendarEvent) float64 {
	return ev.End.DateTime.Sub(*ev.Start.DateTime).Hours()
}
