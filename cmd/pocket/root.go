package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vburojevic/pocket-cli/internal/version"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "pocket",
		Short: "Pocket CLI - save, list and organize your Pocket items",
		Long: `pocket talks to the Pocket v3 API from the command line.

Authorize once with 'pocket auth login --save', then use 'pocket add',
'pocket get' and the item actions to manage your list.`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.setupLogging()
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&a.opts.ConsumerKey, "consumer-key", "", "Pocket consumer key (env POCKET_CONSUMER_KEY)")
	pf.StringVar(&a.opts.AccessToken, "access-token", "", "Pocket access token (env POCKET_ACCESS_TOKEN)")
	pf.VarP(formatFlag{dst: &a.opts.Output}, "output", "o", "output format: text, json, yaml or toml")
	pf.StringVar(&a.opts.ConfigPath, "config", "", "config file path (env POCKET_CONFIG, default user config dir)")
	pf.StringVar(&a.opts.APIBase, "api-base", "", "API base URL (env POCKET_API_BASE, default https://getpocket.com)")
	pf.DurationVar(&a.opts.Timeout, "timeout", a.opts.Timeout, "HTTP timeout")
	pf.BoolVar(&a.opts.Debug, "debug", false, "log HTTP requests to stderr (never prints secrets)")

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError(err)
	})

	root.AddCommand(
		newAuthCmd(a),
		newAddCmd(a),
		newGetCmd(a),
		newTagCmd(a),
		newConfigCmd(a),
		newVersionCmd(a),
	)
	root.AddCommand(newSendCmds(a)...)
	return root
}

// noArgs rejects stray words after a command group, which cobra would
// otherwise ignore or report without marking them as usage errors.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	if cmd.HasSubCommands() {
		return usageError(fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath()))
	}
	return usageError(fmt.Errorf("unexpected arguments: %s", strings.Join(args, " ")))
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  noArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(a.stdout, version.String())
		},
	}
}
