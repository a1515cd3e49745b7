package main

import (
	"errors"

	"github.com/spf13/cobra"

	"meetinghours/config"
)

var errMissingFlags = errors.New("missing required flags")

// globalFlags are shared by every command that reads calendars.
type globalFlags struct {
	cfg     *config.Config
	verbose bool
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	g := &globalFlags{cfg: cfg}

	root := &cobra.Command{
		Use:   "meetinghours",
		Short: "Measure how much of a team's week goes to meetings",
		Long: `meetinghours reads each person's calendar for a date window, keeps the
events that look like real meetings and reports hours per person with
mean and median per role.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "print every tracked meeting")
	pf.StringVar(&cfg.CredentialsFile, "credentials", cfg.CredentialsFile, "Google OAuth client secret JSON")
	pf.StringVar(&cfg.TokenFile, "token", cfg.TokenFile, "cached OAuth token file")
	pf.StringVar(&cfg.CalendarSource, "source", cfg.CalendarSource, "calendar source: google or ics")
	pf.StringVar(&cfg.ICSDir, "ics-dir", cfg.ICSDir, "directory of <person>.ics files for the ics source")
	pf.StringVar(&cfg.RulesFile, "rules", cfg.RulesFile, "YAML rule file")
	pf.StringVar(&cfg.ReferenceOffset, "offset", cfg.ReferenceOffset, "UTC offset the date window is evaluated in")

	root.AddCommand(
		newReportCmd(g),
		newExplainCmd(g),
		newAuthCmd(g),
		newRulesCmd(g),
	)
	return root
}

// requireFlags prints help and fails when any named flag is empty, the way
// a bare invocation behaves.
func requireFlags(cmd *cobra.Command, values map[string]string) error {
	for _, v := range values {
		if v == "" {
			_ = cmd.Help()
			return errMissingFlags
		}
	}
	return nil
}

func (g *globalFlags) needsCredentials() bool {
	return g.cfg.CalendarSource == "" || g.cfg.CalendarSource == "google"
}
