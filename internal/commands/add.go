package commands

import (
	"context"
	"net/url"
	"strings"

	"github.com/vburojevic/pocket-cli/internal/models"
	"github.com/vburojevic/pocket-cli/internal/output"
	"github.com/vburojevic/pocket-cli/internal/pocket"
)

type AddOptions struct {
	URL     string
	Title   string
	Tags    []string
	TweetID string
}

func Add(ctx context.Context, api Adder, opts AddOptions, f *output.Formatter) error {
	u, err := url.Parse(strings.TrimSpace(opts.URL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return usagef("invalid url %q", opts.URL)
	}
	item, err := api.Add(ctx, pocket.AddRequest{
		URL:     u.String(),
		Title:   opts.Title,
		Tags:    opts.Tags,
		TweetID: opts.TweetID,
	})
	if err != nil {
		return err
	}
	return f.Write(models.FromAddedItem(item))
}
