package meetings

import (
	"fmt"
	"regexp"

	"meetinghours/internal/models"
)

// Decision is the outcome of classifying one event for one viewer.
type Decision struct {
	Tracked bool
	Rule    RuleName // the exclusion that applied; empty when tracked
}

func excluded(rule RuleName) Decision {
	return Decision{Rule: rule}
}

// Classifier decides whether a calendar event counts as a tracked meeting.
// It is safe for concurrent use.
type Classifier struct {
	rules    Rules
	patterns map[RuleName]*regexp.Regexp
}

// NewClassifier compiles the rule table.
func NewClassifier(rules Rules) (*Classifier, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	patterns := make(map[RuleName]*regexp.Regexp, len(rules.Patterns))
	for name, expr := range rules.Patterns {
		if expr == "" {
			continue
		}
		re, err := regexp.Compile("(?i)" + expr)
		if err != nil {
			return nil, fmt.Errorf("%w: pattern %s: %v", ErrInvalidRules, name, err)
		}
		patterns[RuleName(name)] = re
	}

	return &Classifier{rules: rules, patterns: patterns}, nil
}

// Tracked reports whether ev counts toward viewer's meeting hours.
func (c *Classifier) Tracked(ev models.CalendarEvent, viewer string) bool {
	return c.Classify(ev, viewer).Tracked
}

// Classify applies the exclusion rules in order; the first one that matches wins.
func (c *Classifier) Classify(ev models.CalendarEvent, viewer string) Decision {
	if !ev.Start.IsTimed() || !ev.End.IsTimed() {
		return excluded(RuleAllDay)
	}

	if Duration(ev) >= c.rules.MaxHours {
		return excluded(RuleLongEvent)
	}

	hour := ev.Start.DateTime.Hour()
	if hour < c.rules.DayStartHour || hour >= c.rules.DayEndHour {
		return excluded(RuleOffHours)
	}

	if hour == c.rules.MealHour || c.matches(RuleMealtime, ev.Summary) {
		return excluded(RuleMealtime)
	}

	if c.matches(RuleBlocked, ev.Summary) {
		return excluded(RuleBlocked)
	}

	if c.matches(RuleSocial, ev.Summary) {
		return excluded(RuleSocial)
	}

	for _, a := range ev.Attendees {
		if a.Email == viewer && a.ResponseStatus != models.ResponseAccepted {
			return excluded(RuleDeclined)
		}
	}

	if len(ev.Attendees) == 0 ||
		(ev.Organizer == viewer && len(ev.Attendees) == 1 && ev.Attendees[0].Email == viewer) {
		return excluded(RuleSolo)
	}

	if c.matches(RuleInterview, ev.Summary) {
		return excluded(RuleInterview)
	}

	return Decision{Tracked: true}
}

// matches never matches an absent summary.
func (c *Classifier) matches(rule RuleName, summary string) bool {
	if summary == "" {
		return false
	}
	re, ok := c.patterns[rule]
	return ok && re.MatchString(summary)
}

// validateShape rejects events whose start and end are not both timed or
// both all-day, and timed events that end before they start.
func validateShape(ev models.CalendarEvent) error {
	switch {
	case ev.Start.IsTimed() && ev.End.IsTimed():
		if ev.End.DateTime.Before(*ev.Start.DateTime) {
			return fmt.Errorf("%w: ends before it starts (%s)", ErrMalformedEvent, ev.Start)
		}
		return nil
	case ev.Start.IsDate() && ev.End.IsDate():
		return nil
	default:
		return fmt.Errorf("%w: start %q end %q", ErrMalformedEvent, ev.Start, ev.End)
	}
}
