package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"meetinghours/internal/meetings"
)

const defaultRulesFile = "rules.yaml"

func newRulesCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Manage the event classification rules",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default rules to a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := g.cfg.RulesFile
			if path == "" {
				path = defaultRulesFile
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			if err := meetings.DefaultRules().Save(path); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Rules written to", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	cmd.AddCommand(initCmd)
	return cmd
}
