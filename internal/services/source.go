package services

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"

	"meetinghours/config"
	"meetinghours/internal/auth"
	"meetinghours/internal/meetings"
)

const (
	SourceGoogle = "google"
	SourceICS    = "ics"
)

// NewEventSource picks the calendar backend named by cfg.CalendarSource.
func NewEventSource(ctx context.Context, cfg *config.Config) (meetings.EventSource, error) {
	switch strings.ToLower(cfg.CalendarSource) {
	case SourceGoogle, "":
		if cfg.CredentialsFile == "" {
			return nil, fmt.Errorf("google source needs a credentials file")
		}
		conf, err := auth.LoadOAuthConfig(cfg.CredentialsFile)
		if err != nil {
			return nil, err
		}
		ts, err := auth.TokenSource(ctx, conf, cfg.TokenFile)
		if err != nil {
			return nil, err
		}
		return NewGoogleCalendarService(ctx, cfg.MaxResults, option.WithTokenSource(ts))
	case SourceICS:
		return NewICSService(cfg.ICSDir, int(cfg.MaxResults)), nil
	default:
		return nil, fmt.Errorf("unknown calendar source %q", cfg.CalendarSource)
	}
}

// NewCohort assembles the classifier and aggregator around source using the
// rule file and run limits from cfg.
func NewCohort(cfg *config.Config, source meetings.EventSource) (*meetings.Cohort, error) {
	rules, err := meetings.LoadRules(cfg.RulesFile)
	if err != nil {
		return nil, err
	}

	classifier, err := meetings.NewClassifier(rules)
	if err != nil {
		return nil, err
	}

	cohort := meetings.NewCohort(meetings.NewAggregator(source, classifier))
	cohort.Source = strings.ToLower(cfg.CalendarSource)
	if cohort.Source == "" {
		cohort.Source = SourceGoogle
	}
	cohort.Threshold = cfg.InclusionThreshold
	if cfg.FetchConcurrency > 0 {
		cohort.Concurrency = cfg.FetchConcurrency
	}
	if cfg.FetchTimeout > 0 {
		cohort.FetchTimeout = cfg.FetchTimeout
	}
	return cohort, nil
}
