// Package commands implements the CLI operations on top of small
// interfaces, so they can run against the real Pocket client or a fake.
package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/vburojevic/pocket-cli/internal/config"
	"github.com/vburojevic/pocket-cli/internal/pocket"
)

var (
	// ErrUsage marks errors caused by how the command was invoked.
	ErrUsage              = errors.New("usage error")
	ErrTagConflict        = fmt.Errorf("%w: --tag and --untagged are mutually exclusive", ErrUsage)
	ErrUnknownConfigKey   = config.ErrUnknownKey
	ErrMissingConsumerKey = errors.New("missing consumer key")
	ErrMissingAccessToken = errors.New("missing access token")
)

func usagef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}

type Authenticator interface {
	RequestCode(ctx context.Context, redirectURI, state string) (string, error)
	AuthorizeURL(code, redirectURI string) string
	Authorize(ctx context.Context, code string) (pocket.User, error)
}

type Adder interface {
	Add(ctx context.Context, req pocket.AddRequest) (pocket.AddedItem, error)
}

type Getter interface {
	Get(ctx context.Context, req pocket.GetRequest) ([]pocket.Item, error)
}

type Sender interface {
	Send(ctx context.Context, req pocket.SendRequest) (pocket.SendResponse, error)
}

// API is everything the CLI needs from Pocket.
type API interface {
	Authenticator
	Adder
	Getter
	Sender
}

type ConfigStore interface {
	Load() (*config.Config, error)
	Save(c *config.Config) error
}

var _ API = (*pocket.Client)(nil)
var _ ConfigStore = (*config.FileStore)(nil)
