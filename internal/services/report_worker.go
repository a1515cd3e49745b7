package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"meetinghours/internal/meetings"
	"meetinghours/internal/models"
	"meetinghours/internal/roster"
)

// ReportJob runs the cohort over a trailing window for the roster file.
type ReportJob struct {
	Service      *ReportService
	RosterFile   string
	LookbackDays int

	// Now is replaced in tests.
	Now func() time.Time
}

// Run executes one scheduled report.
func (j *ReportJob) Run(ctx context.Context) (*models.CohortReport, error) {
	people, err := roster.Load(j.RosterFile)
	if err != nil {
		return nil, err
	}

	now := time.Now
	if j.Now != nil {
		now = j.Now
	}

	window := meetings.TrailingWindow(now(), j.LookbackDays, j.Service.Location())
	return j.Service.RunWindow(ctx, window, people)
}

// StartReportWorker schedules job on the cron spec. The scheduler stops when
// ctx is done; a run in progress sees the cancelled context.
func StartReportWorker(ctx context.Context, spec string, job *ReportJob) (*cron.Cron, error) {
	c := cron.New(cron.WithLocation(job.Service.Location()))

	_, err := c.AddFunc(spec, func() {
		report, err := job.Run(ctx)
		if err != nil {
			log.Println("report worker: run failed:", err)
			return
		}
		log.Printf("report worker: report %s done for %d people", report.ID, len(report.People))
	})
	if err != nil {
		return nil, fmt.Errorf("invalid report schedule %q: %w", spec, err)
	}

	c.Start()
	go func() {
		<-ctx.Done()
		log.Println("report worker: shutting down")
		<-c.Stop().Done()
	}()

	return c, nil
}
