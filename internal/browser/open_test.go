package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandPerPlatform(t *testing.T) {
	const u = "https://getpocket.com/auth/authorize?request_token=x&redirect_uri=http%3A%2F%2F127.0.0.1%3A8080"
	cases := map[string][]string{
		"darwin":  {"open", u},
		"windows": {"rundll32", "url.dll,FileProtocolHandler", u},
		"linux":   {"xdg-open", u},
	}
	for goos, want := range cases {
		cmd, err := command(u, "", goos)
		require.NoError(t, err)
		assert.Equal(t, want, cmd.Args, goos)
		assert.Contains(t, cmd.Args[len(cmd.Args)-1], "&redirect_uri=", goos)
	}
}

func TestCommandBrowserOverride(t *testing.T) {
	cmd, err := command("http://127.0.0.1:1/", "firefox --new-tab", "linux")
	require.NoError(t, err)
	assert.Equal(t, []string{"firefox", "--new-tab", "http://127.0.0.1:1/"}, cmd.Args)
}

func TestCommandRejectsNonHTTP(t *testing.T) {
	_, err := command("", "", "linux")
	assert.Error(t, err)
	_, err = command("file:///etc/passwd", "", "linux")
	assert.Error(t, err)
}
