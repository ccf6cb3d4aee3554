package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/vburojevic/pocket-cli/internal/config"
	"github.com/vburojevic/pocket-cli/internal/logging"
	"github.com/vburojevic/pocket-cli/internal/models"
	"github.com/vburojevic/pocket-cli/internal/output"
)

// CallbackServer receives the browser redirect after the user approves
// access on getpocket.com.
type CallbackServer interface {
	Addr() string
	Wait(ctx context.Context) error
	Close() error
}

type LoginDeps struct {
	API         Authenticator
	Listen      func(ctx context.Context) (CallbackServer, error)
	OpenBrowser func(url string) error
	Store       ConfigStore
	// Prompt receives the authorization URL in case no browser opens.
	Prompt io.Writer
	Log    logging.Logger
}

// Login runs the Pocket OAuth flow and writes the authorized user. With
// save set the access token is persisted to the config store.
func Login(ctx context.Context, deps LoginDeps, save bool, f *output.Formatter) error {
	log := deps.Log
	if log == nil {
		log = logging.Nop()
	}
	srv, err := deps.Listen(ctx)
	if err != nil {
		return err
	}
	defer srv.Close()

	redirect := srv.Addr()
	state := uuid.NewString()
	code, err := deps.API.RequestCode(ctx, redirect, state)
	if err != nil {
		return fmt.Errorf("request authorization code: %w", err)
	}
	log.Debug(ctx, "obtained request code", "redirect_uri", redirect)

	authURL := deps.API.AuthorizeURL(code, redirect)
	if deps.Prompt != nil {
		fmt.Fprintf(deps.Prompt, "Open this URL to authorize Pocket CLI:\n\n  %s\n\n", authURL)
	}
	if deps.OpenBrowser != nil {
		if err := deps.OpenBrowser(authURL); err != nil {
			log.Warn(ctx, "could not open browser", "error", err)
		}
	}

	if err := srv.Wait(ctx); err != nil {
		return fmt.Errorf("wait for authorization: %w", err)
	}

	user, err := deps.API.Authorize(ctx, code)
	if err != nil {
		return fmt.Errorf("authorize: %w", err)
	}

	if save {
		cfg, err := deps.Store.Load()
		if err != nil {
			return err
		}
		if err := cfg.Set(config.KeyAccessToken, user.AccessToken); err != nil {
			return err
		}
		if err := deps.Store.Save(cfg); err != nil {
			return fmt.Errorf("save access token: %w", err)
		}
		log.Info(ctx, "saved access token", "username", user.Username)
	}
	return f.Write(models.FromUser(user))
}
