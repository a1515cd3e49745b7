package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"meetinghours/internal/auth"
)

func newAuthCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Authorize calendar access and cache the token",
		Long: `Opens your browser for Google OAuth2 consent and stores the resulting
token in the --token file. Later runs refresh it automatically.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlags(cmd, map[string]string{"credentials": g.cfg.CredentialsFile}); err != nil {
				return err
			}

			conf, err := auth.LoadOAuthConfig(g.cfg.CredentialsFile)
			if err != nil {
				return err
			}
			tok, err := auth.RunConsentFlow(cmd.Context(), conf)
			if err != nil {
				return fmt.Errorf("OAuth flow failed: %w", err)
			}
			if err := auth.SaveToken(g.cfg.TokenFile, tok); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Token stored to", g.cfg.TokenFile)
			return nil
		},
	}
}
