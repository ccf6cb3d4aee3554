package commands

import (
	"context"
	"strings"
	"time"

	"github.com/vburojevic/pocket-cli/internal/models"
	"github.com/vburojevic/pocket-cli/internal/output"
	"github.com/vburojevic/pocket-cli/internal/pocket"
)

// GetOptions mirrors the get flags. Nil means the flag was not given.
type GetOptions struct {
	Search      *string
	Domain      *string
	Tag         *string
	Untagged    bool
	State       *pocket.State
	ContentType *pocket.ContentType
	DetailType  *pocket.DetailType
	Favorite    *bool
	Since       *time.Time
	Sort        *pocket.Sort
	Count       *int
	Offset      *int
}

func BuildGetRequest(opts GetOptions) (pocket.GetRequest, error) {
	req := pocket.GetRequest{
		Search:      opts.Search,
		Domain:      opts.Domain,
		State:       opts.State,
		ContentType: opts.ContentType,
		DetailType:  opts.DetailType,
		Favorite:    opts.Favorite,
		Since:       opts.Since,
		Sort:        opts.Sort,
		Count:       opts.Count,
		Offset:      opts.Offset,
	}
	switch {
	case opts.Tag != nil && opts.Untagged:
		return pocket.GetRequest{}, ErrTagConflict
	case opts.Tag != nil:
		name := strings.TrimSpace(*opts.Tag)
		if name == "" {
			return pocket.GetRequest{}, usagef("--tag must not be empty")
		}
		req.Tag = pocket.Tagged(name)
	case opts.Untagged:
		req.Tag = pocket.Untagged()
	}
	if opts.Count != nil && *opts.Count < 1 {
		return pocket.GetRequest{}, usagef("--count must be positive")
	}
	if opts.Offset != nil && *opts.Offset < 0 {
		return pocket.GetRequest{}, usagef("--offset must not be negative")
	}
	return req, nil
}

func Get(ctx context.Context, api Getter, opts GetOptions, f *output.Formatter) error {
	req, err := BuildGetRequest(opts)
	if err != nil {
		return err
	}
	items, err := api.Get(ctx, req)
	if err != nil {
		return err
	}
	return f.Write(models.FromItems(items))
}
