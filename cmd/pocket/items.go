package main

import (
	"github.com/spf13/cobra"

	"github.com/vburojevic/pocket-cli/internal/commands"
	"github.com/vburojevic/pocket-cli/internal/pocket"
)

func newAddCmd(a *app) *cobra.Command {
	var opts commands.AddOptions
	cmd := &cobra.Command{
		Use:   "add <url>",
		Short: "Save a URL to Pocket",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.URL = args[0]
			client, err := a.client(true)
			if err != nil {
				return err
			}
			return commands.Add(cmd.Context(), client, opts, a.formatter())
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.Title, "title", "", "title to use when Pocket cannot resolve one")
	f.StringArrayVar(&opts.Tags, "tag", nil, "tag to apply (repeatable)")
	f.StringVar(&opts.TweetID, "tweet-id", "", "id of the tweet this URL came from")
	return cmd
}

func newGetCmd(a *app) *cobra.Command {
	var (
		opts     commands.GetOptions
		search   string
		domain   string
		tag      string
		favorite bool
		count    int
		offset   int
	)
	cmd := &cobra.Command{
		Use:   "get",
		Short: "List saved items",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			if f.Changed("search") {
				opts.Search = &search
			}
			if f.Changed("domain") {
				opts.Domain = &domain
			}
			if f.Changed("tag") {
				opts.Tag = &tag
			}
			if f.Changed("favorite") {
				opts.Favorite = &favorite
			}
			if f.Changed("count") {
				opts.Count = &count
			}
			if f.Changed("offset") {
				opts.Offset = &offset
			}
			// Reject bad combinations before touching credentials or the network.
			if _, err := commands.BuildGetRequest(opts); err != nil {
				return err
			}
			client, err := a.client(true)
			if err != nil {
				return err
			}
			return commands.Get(cmd.Context(), client, opts, a.formatter())
		},
	}
	f := cmd.Flags()
	f.StringVar(&search, "search", "", "only items whose title or URL contains this text")
	f.StringVar(&domain, "domain", "", "only items from this domain")
	f.StringVar(&tag, "tag", "", "only items with this tag")
	f.BoolVar(&opts.Untagged, "untagged", false, "only items without tags")
	f.Var(newEnumFlag(&opts.State, "state", pocket.ParseState), "state", "unread, archive or all")
	f.Var(newEnumFlag(&opts.ContentType, "type", pocket.ParseContentType), "content-type", "article, video or image")
	f.Var(newEnumFlag(&opts.DetailType, "detail", pocket.ParseDetailType), "detail-type", "simple or complete")
	f.BoolVar(&favorite, "favorite", false, "only favorited items (--favorite=false for the rest)")
	f.Var(timeFlag{dst: &opts.Since}, "since", "only items modified since this RFC 3339 time")
	f.Var(newEnumFlag(&opts.Sort, "sort", pocket.ParseSort), "sort", "newest, oldest, title or site")
	f.IntVar(&count, "count", 0, "number of items to return")
	f.IntVar(&offset, "offset", 0, "number of items to skip (use with --count)")
	return cmd
}
