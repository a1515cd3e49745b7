package main

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"meetinghours/config"
	"meetinghours/internal/database"
	"meetinghours/internal/meetings"
	"meetinghours/internal/models"
	"meetinghours/internal/report"
	"meetinghours/internal/repository"
	"meetinghours/internal/roster"
	"meetinghours/internal/services"
)

type reportFlags struct {
	people string
	start  string
	end    string
	format string
	save   bool
}

func newReportCmd(g *globalFlags) *cobra.Command {
	f := &reportFlags{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Report meeting hours for everyone on a roster",
		Example: `  meetinghours report --people team.csv --credentials client_secret.json \
    --start 2025-03-10 --end 2025-03-14`,
		RunE: func(cmd *cobra.Command, args []string) error {
			required := map[string]string{"people": f.people, "start": f.start, "end": f.end}
			if g.needsCredentials() {
				required["credentials"] = g.cfg.CredentialsFile
			}
			if err := requireFlags(cmd, required); err != nil {
				return err
			}
			if f.format != "table" && f.format != "json" {
				return fmt.Errorf("unknown format %q", f.format)
			}
			return runReport(cmd, g, f)
		},
	}

	cmd.Flags().StringVar(&f.people, "people", "", "roster CSV of person,role rows")
	cmd.Flags().StringVar(&f.start, "start", "", "first day of the window (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.end, "end", "", "last day of the window (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.format, "format", "table", "output format: table or json")
	cmd.Flags().IntVar(&g.cfg.FetchConcurrency, "concurrency", g.cfg.FetchConcurrency, "calendars fetched at once")
	cmd.Flags().BoolVar(&f.save, "save", false, "store the report in MongoDB")
	return cmd
}

func runReport(cmd *cobra.Command, g *globalFlags, f *reportFlags) error {
	ctx := cmd.Context()
	cfg := g.cfg

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	people, err := roster.Load(f.people)
	if err != nil {
		return err
	}
	window, err := meetings.NewWindow(f.start, f.end, loc)
	if err != nil {
		return err
	}

	source, err := services.NewEventSource(ctx, cfg)
	if err != nil {
		return err
	}
	cohort, err := services.NewCohort(cfg, source)
	if err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	if !g.verbose {
		bar = newProgressBar(cmd.ErrOrStderr(), len(people))
		cohort.OnPersonDone = func(models.PersonResult) { _ = bar.Add(1) }
	}

	var store services.ReportStore
	if f.save {
		repo, closeDB, err := openReportStore(cfg)
		if err != nil {
			return err
		}
		defer closeDB()
		store = repo
	}

	result, err := services.NewReportService(cohort, store, loc).RunWindow(ctx, window, people)
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return fmt.Errorf("running report: %w", err)
	}

	return writeReport(cmd.OutOrStdout(), result, f.format, g.verbose)
}

func writeReport(w io.Writer, r *models.CohortReport, format string, verbose bool) error {
	if format == "json" {
		return report.JSON(w, r)
	}

	if verbose {
		for _, p := range r.People {
			if err := report.Trace(w, p); err != nil {
				return err
			}
		}
	}
	return report.Table(w, r)
}

func newProgressBar(w io.Writer, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("Reading calendars"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func openReportStore(cfg *config.Config) (*repository.ReportRepository, func(), error) {
	if cfg.MongoDBURI == "" {
		return nil, nil, fmt.Errorf("--save needs MONGODB_URI")
	}
	db, err := database.NewMongoDB(cfg.MongoDBURI, cfg.MongoDBDatabase)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to MongoDB: %w", err)
	}
	closeDB := func() {
		if err := db.Disconnect(); err != nil {
			fmt.Fprintln(os.Stderr, "Warning: disconnecting from MongoDB:", err)
		}
	}
	return repository.NewReportRepository(db.Database), closeDB, nil
}
