// Package report renders cohort reports for the terminal.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"meetinghours/internal/meetings"
	"meetinghours/internal/models"
	"meetinghours/internal/utils"
)

const noRole = "N/A"

var titleCaser = cases.Title(language.English)

// FormatHours rounds half away from zero to one decimal place.
func FormatHours(h float64) string {
	return strconv.FormatFloat(math.Round(h*10)/10, 'f', 1, 64)
}

// GroupLabel is the display name of a statistics group.
func GroupLabel(key string) string {
	return titleCaser.String(key)
}

// PersonLabel marks people left out of the statistics.
func PersonLabel(p models.PersonResult) string {
	switch {
	case p.Unavailable:
		return p.Person + " (unavailable)"
	case !p.Tracked:
		return p.Person + " (ignored)"
	default:
		return p.Person
	}
}

// Table writes one row per person in roster order followed by mean and
// median rows for each group.
func Table(w io.Writer, r *models.CohortReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "Person\tHours in meetings\tRole")
	fmt.Fprintln(tw, "------\t-----------------\t----")
	for _, p := range r.People {
		role := p.Role
		if role == "" {
			role = noRole
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", PersonLabel(p), FormatHours(p.TotalHours), role)
	}

	for _, g := range r.Groups {
		label := GroupLabel(g.Key)
		fmt.Fprintln(tw, "\t\t")
		fmt.Fprintf(tw, "Mean (%s)\t%s\t\n", label, FormatHours(g.Mean))
		fmt.Fprintf(tw, "Median (%s)\t%s\t\n", label, FormatHours(g.Median))
	}

	return tw.Flush()
}

// Trace writes the per-person detail shown in verbose mode.
func Trace(w io.Writer, p models.PersonResult) error {
	if _, err := fmt.Fprintf(w, "Person: %s\n", p.Person); err != nil {
		return err
	}

	if p.Unavailable {
		_, err := fmt.Fprintf(w, "Unavailable: %s\n", p.Error)
		return err
	}
	if p.EventCount == 0 {
		_, err := fmt.Fprintln(w, "No upcoming events found.")
		return err
	}

	for _, m := range p.Meetings {
		if _, err := fmt.Fprintf(w, "Tracking: %s - %s: %s\n", m.Start, utils.SanitizeSummary(m.Summary), formatRaw(m.Hours)); err != nil {
			return err
		}
	}
	if p.MalformedEvents > 0 {
		fmt.Fprintf(w, "Skipped: %d malformed events\n", p.MalformedEvents)
	}
	if p.Truncated {
		fmt.Fprintf(w, "Truncated: only the first %d events were read\n", p.EventCount)
	}
	_, err := fmt.Fprintf(w, "Total: %s hours\n", formatRaw(p.TotalHours))
	return err
}

// Explain writes one line per event with the rule that decided it.
func Explain(w io.Writer, person string, exps []meetings.Explanation) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Person: %s\n", person)
	if len(exps) == 0 {
		fmt.Fprintln(tw, "No upcoming events found.")
		return tw.Flush()
	}

	fmt.Fprintln(tw, "Start\tSummary\tHours\tDecision")
	var total float64
	for _, e := range exps {
		decision := "tracked"
		switch {
		case e.Err != nil:
			decision = "malformed: " + e.Err.Error()
		case !e.Decision.Tracked:
			decision = "excluded (" + string(e.Decision.Rule) + ")"
		default:
			total += e.Hours
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Event.Start.String(), utils.SanitizeSummary(e.Event.Summary), FormatHours(e.Hours), decision)
	}
	fmt.Fprintf(tw, "Total\t\t%s\t\n", FormatHours(total))

	return tw.Flush()
}

// JSON writes the report as indented JSON, including tracked meetings.
func JSON(w io.Writer, r *models.CohortReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func formatRaw(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
