package meetings

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"

	"meetinghours/internal/models"
)

const (
	// DefaultInclusionThreshold is the total at or below which a person is
	// assumed absent and left out of the statistics.
	DefaultInclusionThreshold = 1.0
	DefaultConcurrency        = 4
	DefaultFetchTimeout       = 30 * time.Second
)

// Cohort runs the Aggregator over a roster and summarizes the results.
type Cohort struct {
	aggregator *Aggregator

	Source       string
	Threshold    float64
	Concurrency  int
	FetchTimeout time.Duration

	// OnPersonDone is called once per roster entry, possibly from several
	// goroutines at once.
	OnPersonDone func(models.PersonResult)
}

func NewCohort(aggregator *Aggregator) *Cohort {
	return &Cohort{
		aggregator:   aggregator,
		Threshold:    DefaultInclusionThreshold,
		Concurrency:  DefaultConcurrency,
		FetchTimeout: DefaultFetchTimeout,
	}
}

// Run measures every roster entry and returns the report with results in
// roster order. Per-person failures are recorded in the results.
func (c *Cohort) Run(ctx context.Context, roster []models.RosterEntry, window models.Window) (*models.CohortReport, error) {
	if len(roster) == 0 {
		return nil, ErrEmptyRoster
	}

	limit := c.Concurrency
	if limit <= 0 {
		limit = 1
	}

	results := make([]models.PersonResult, len(roster))

	var g errgroup.Group
	g.SetLimit(limit)
	for i, entry := range roster {
		i, entry := i, entry
		g.Go(func() error {
			pctx, cancel := c.personContext(ctx)
			defer cancel()

			results[i] = c.aggregator.Person(pctx, entry, window)
			if c.OnPersonDone != nil {
				c.OnPersonDone(results[i])
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("cohort run interrupted: %w", err)
	}

	for i := range results {
		results[i].Tracked = Included(results[i].TotalHours, c.Threshold)
	}

	return &models.CohortReport{
		ID:          uuid.NewString(),
		CreatedAt:   time.Now().UTC(),
		WindowStart: window.Start,
		WindowEnd:   window.End,
		Source:      c.Source,
		Threshold:   c.Threshold,
		People:      results,
		Groups:      Summarize(results, c.Threshold),
	}, nil
}

func (c *Cohort) personContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.FetchTimeout > 0 {
		return context.WithTimeout(ctx, c.FetchTimeout)
	}
	return context.WithCancel(ctx)
}

// Included reports whether a total enters the statistics pool.
func Included(totalHours, threshold float64) bool {
	return totalHours > threshold
}

// Summarize computes mean and median per group over the included results.
// The "all" group comes first, then roles in order of first appearance.
// Groups without members are omitted.
func Summarize(results []models.PersonResult, threshold float64) []models.GroupStats {
	order := []string{models.GroupAll}
	pools := map[string][]float64{}

	for _, r := range results {
		if !Included(r.TotalHours, threshold) {
			continue
		}
		pools[models.GroupAll] = append(pools[models.GroupAll], r.TotalHours)

		if r.Role == "" || r.Role == models.GroupAll {
			continue
		}
		if _, seen := pools[r.Role]; !seen {
			order = append(order, r.Role)
		}
		pools[r.Role] = append(pools[r.Role], r.TotalHours)
	}

	groups := make([]models.GroupStats, 0, len(order))
	for _, key := range order {
		values := pools[key]
		if len(values) == 0 {
			continue
		}
		mean, err := stats.Mean(values)
		if err != nil {
			continue
		}
		median, err := stats.Median(values)
		if err != nil {
			continue
		}
		groups = append(groups, models.GroupStats{
			Key:    key,
			Count:  len(values),
			Mean:   mean,
			Median: median,
		})
	}
	return groups
}
