package browser

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Open asks the OS to open an http(s) URL in the default browser. A
// non-empty $BROWSER names the command to use instead.
func Open(rawURL string) error {
	cmd, err := command(rawURL, os.Getenv("BROWSER"), runtime.GOOS)
	if err != nil {
		return err
	}
	return cmd.Start()
}

func command(rawURL, override, goos string) (*exec.Cmd, error) {
	if rawURL == "" {
		return nil, errors.New("open: empty url")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("open: refusing to open %q scheme", u.Scheme)
	}
	if fields := strings.Fields(override); len(fields) > 0 {
		return exec.Command(fields[0], append(fields[1:], rawURL)...), nil
	}
	switch goos {
	case "darwin":
		return exec.Command("open", rawURL), nil
	case "windows":
		// cmd.exe would split the url at '&'.
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL), nil
	default:
		return exec.Command("xdg-open", rawURL), nil
	}
}
