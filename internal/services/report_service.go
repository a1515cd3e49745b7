package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"meetinghours/internal/meetings"
	"meetinghours/internal/models"
)

// ReportStore persists finished reports.
type ReportStore interface {
	Save(ctx context.Context, report *models.CohortReport) error
}

// ReportService runs cohort reports and stores them when a store is set.
type ReportService struct {
	cohort *meetings.Cohort
	store  ReportStore
	loc    *time.Location
}

func NewReportService(cohort *meetings.Cohort, store ReportStore, loc *time.Location) *ReportService {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportService{
		cohort: cohort,
		store:  store,
		loc:    loc,
	}
}

// Location is the reference zone used to build report windows.
func (s *ReportService) Location() *time.Location {
	return s.loc
}

// Run builds the window from two dates in the reference zone and runs the report.
func (s *ReportService) Run(ctx context.Context, start, end string, roster []models.RosterEntry) (*models.CohortReport, error) {
	window, err := meetings.NewWindow(start, end, s.loc)
	if err != nil {
		return nil, err
	}
	return s.RunWindow(ctx, window, roster)
}

func (s *ReportService) RunWindow(ctx context.Context, window models.Window, roster []models.RosterEntry) (*models.CohortReport, error) {
	report, err := s.cohort.Run(ctx, roster, window)
	if err != nil {
		return nil, err
	}

	if s.store != nil {
		if err := s.store.Save(ctx, report); err != nil {
			return report, fmt.Errorf("saving report %s: %w", report.ID, err)
		}
		log.Printf("report %s saved (%d people, %s to %s)", report.ID, len(report.People),
			window.Start.Format("2006-01-02"), window.End.Format("2006-01-02"))
	}

	return report, nil
}
