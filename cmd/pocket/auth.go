package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vburojevic/pocket-cli/internal/commands"
)

func newAuthCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authorize this CLI with your Pocket account",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var save bool
	var waitTimeout time.Duration
	login := &cobra.Command{
		Use:   "login",
		Short: "Run the browser authorization flow and print the access token",
		Long: `login obtains a request code, opens the Pocket authorization page in your
browser and waits for Pocket to redirect back to a local port. The
resulting access token is printed, and stored in the config file with --save.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client(false)
			if err != nil {
				return err
			}
			store, err := a.store()
			if err != nil {
				return err
			}
			return commands.Login(cmd.Context(), a.loginDeps(client, store, waitTimeout), save, a.formatter())
		},
	}
	login.Flags().BoolVar(&save, "save", false, "store the access token in the config file")
	login.Flags().DurationVar(&waitTimeout, "wait-timeout", 0, "give up waiting for the browser after this long (0 waits forever)")
	cmd.AddCommand(login)
	return cmd
}
