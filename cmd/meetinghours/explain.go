package main

import (
	"github.com/spf13/cobra"

	"meetinghours/internal/meetings"
	"meetinghours/internal/report"
	"meetinghours/internal/services"
)

func newExplainCmd(g *globalFlags) *cobra.Command {
	var person, start, end string

	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Show how each event in one calendar was classified",
		RunE: func(cmd *cobra.Command, args []string) error {
			required := map[string]string{"person": person, "start": start, "end": end}
			if g.needsCredentials() {
				required["credentials"] = g.cfg.CredentialsFile
			}
			if err := requireFlags(cmd, required); err != nil {
				return err
			}

			ctx := cmd.Context()
			loc, err := g.cfg.Location()
			if err != nil {
				return err
			}
			window, err := meetings.NewWindow(start, end, loc)
			if err != nil {
				return err
			}

			source, err := services.NewEventSource(ctx, g.cfg)
			if err != nil {
				return err
			}
			rules, err := meetings.LoadRules(g.cfg.RulesFile)
			if err != nil {
				return err
			}
			classifier, err := meetings.NewClassifier(rules)
			if err != nil {
				return err
			}

			exps, err := meetings.NewAggregator(source, classifier).Explain(ctx, person, window)
			if err != nil {
				return err
			}
			return report.Explain(cmd.OutOrStdout(), person, exps)
		},
	}

	cmd.Flags().StringVar(&person, "person", "", "calendar to inspect (email)")
	cmd.Flags().StringVar(&start, "start", "", "first day of the window (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "last day of the window (YYYY-MM-DD)")
	return cmd
}
