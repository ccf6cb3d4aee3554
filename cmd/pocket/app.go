package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/vburojevic/pocket-cli/internal/authserver"
	"github.com/vburojevic/pocket-cli/internal/browser"
	"github.com/vburojevic/pocket-cli/internal/commands"
	"github.com/vburojevic/pocket-cli/internal/config"
	"github.com/vburojevic/pocket-cli/internal/logging"
	"github.com/vburojevic/pocket-cli/internal/output"
	"github.com/vburojevic/pocket-cli/internal/pocket"
	"github.com/vburojevic/pocket-cli/internal/version"
)

type GlobalOptions struct {
	ConsumerKey string
	AccessToken string
	Output      output.Format
	ConfigPath  string
	APIBase     string
	Timeout     time.Duration
	Debug       bool
}

// app carries the global options and the seams tests replace.
type app struct {
	stdout io.Writer
	stderr io.Writer
	opts   GlobalOptions
	log    logging.Logger

	listen      func(ctx context.Context) (commands.CallbackServer, error)
	openBrowser func(url string) error
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout: stdout,
		stderr: stderr,
		opts:   GlobalOptions{Output: output.FormatText, Timeout: 15 * time.Second},
		log:    logging.Nop(),
		listen: func(ctx context.Context) (commands.CallbackServer, error) {
			srv, err := authserver.Start(ctx)
			if err != nil {
				return nil, err
			}
			return srv, nil
		},
		openBrowser: browser.Open,
	}
}

func (a *app) execute(ctx context.Context, args []string) int {
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	err := root.ExecuteContext(ctx)
	if err != nil {
		a.log.Debug(ctx, "command failed", "error_code", errorCodeForError(err))
	}
	return printError(a.stderr, err)
}

func (a *app) setupLogging() {
	level := "warn"
	if a.opts.Debug {
		level = "debug"
	}
	a.log = logging.New(a.stderr, level)
}

func (a *app) formatter() *output.Formatter {
	return output.New(a.opts.Output, a.stdout)
}

func (a *app) configPath() (string, error) {
	if a.opts.ConfigPath != "" {
		return a.opts.ConfigPath, nil
	}
	if env := os.Getenv("POCKET_CONFIG"); env != "" {
		return env, nil
	}
	return config.DefaultConfigPath()
}

func (a *app) store() (*config.FileStore, error) {
	path, err := a.configPath()
	if err != nil {
		return nil, err
	}
	return config.NewFileStore(path), nil
}

// firstNonEmpty picks the flag, then the environment, then the config file.
func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

// client builds a Pocket client from the resolved credentials. needToken
// is false only for the authorization flow.
func (a *app) client(needToken bool) (*pocket.Client, error) {
	store, err := a.store()
	if err != nil {
		return nil, err
	}
	cfg, err := store.Load()
	if err != nil {
		return nil, err
	}
	consumerKey := firstNonEmpty(a.opts.ConsumerKey, os.Getenv("POCKET_CONSUMER_KEY"), cfg.ConsumerKey)
	if consumerKey == "" {
		return nil, commands.ErrMissingConsumerKey
	}
	accessToken := firstNonEmpty(a.opts.AccessToken, os.Getenv("POCKET_ACCESS_TOKEN"), cfg.AccessToken)
	if needToken && accessToken == "" {
		return nil, commands.ErrMissingAccessToken
	}
	apiBase := firstNonEmpty(a.opts.APIBase, os.Getenv("POCKET_API_BASE"))

	c, err := pocket.NewClient(apiBase, consumerKey, accessToken, a.opts.Timeout)
	if err != nil {
		return nil, err
	}
	c.UserAgent = "pocket-cli/" + version.Version
	if a.opts.Debug {
		c.EnableDebug(a.log)
	}
	return c, nil
}

func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// timedServer bounds the wait for the browser callback.
type timedServer struct {
	commands.CallbackServer
	timeout time.Duration
}

func (s timedServer) Wait(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.CallbackServer.Wait(ctx)
}

func (a *app) loginDeps(api commands.Authenticator, store commands.ConfigStore, waitTimeout time.Duration) commands.LoginDeps {
	listen := a.listen
	if waitTimeout > 0 {
		listen = func(ctx context.Context) (commands.CallbackServer, error) {
			srv, err := a.listen(ctx)
			if err != nil {
				return nil, err
			}
			return timedServer{CallbackServer: srv, timeout: waitTimeout}, nil
		}
	}
	return commands.LoginDeps{
		API:         api,
		Listen:      listen,
		OpenBrowser: a.openBrowser,
		Store:       store,
		Prompt:      loginPrompt{w: a.stderr, tty: isTTY(a.stderr)},
		Log:         a.log,
	}
}

// loginPrompt adds a waiting hint when a person is watching the terminal.
type loginPrompt struct {
	w   io.Writer
	tty bool
}

func (p loginPrompt) Write(b []byte) (int, error) {
	n, err := p.w.Write(b)
	if err == nil && p.tty {
		fmt.Fprintln(p.w, "Waiting for authorization in your browser (Ctrl-C to cancel)...")
	}
	return n, err
}
