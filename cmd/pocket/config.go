package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vburojevic/pocket-cli/internal/commands"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read and change stored settings",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	get := &cobra.Command{
		Use:   "get <key>",
		Short: "Print one setting (consumer_key or access_token)",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}
			return commands.ConfigGet(store, args[0], a.formatter())
		},
	}
	set := &cobra.Command{
		Use:   "set <key> [value]",
		Short: "Store a setting; without a value the setting is cleared",
		Args:  rangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}
			value := ""
			if len(args) == 2 {
				value = args[1]
			}
			return commands.ConfigSet(store, args[0], value, a.formatter())
		},
	}
	view := &cobra.Command{
		Use:   "view",
		Short: "Print all stored settings",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}
			return commands.ConfigView(store, a.formatter())
		},
	}
	path := &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, store.Path())
			return nil
		},
	}
	cmd.AddCommand(get, set, view, path)
	return cmd
}
