package pocket

import (
	"net/http"
	"time"

	"github.com/vburojevic/pocket-cli/internal/logging"
)

type debugTransport struct {
	base http.RoundTripper
	log  logging.Logger
}

func (t *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	dur := time.Since(start)
	if err != nil {
		t.log.Debug(req.Context(), "http request failed",
			"method", req.Method, "url", req.URL.Redacted(), "duration", dur, "error", err)
		return nil, err
	}
	args := []any{"method", req.Method, "url", req.URL.Redacted(), "status", resp.StatusCode, "duration", dur}
	if code := resp.Header.Get("X-Error-Code"); code != "" {
		args = append(args, "error_code", code)
	}
	if remaining := resp.Header.Get("X-Limit-User-Remaining"); remaining != "" {
		args = append(args, "limit_user_remaining", remaining)
	}
	t.log.Debug(req.Context(), "http request", args...)
	return resp, nil
}

// EnableDebug logs every request through log. It never logs headers or
// bodies, which carry the consumer key and access token.
func (c *Client) EnableDebug(log logging.Logger) {
	if c == nil || log == nil {
		return
	}
	base := c.HTTP.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.HTTP.Transport = &debugTransport{base: base, log: log}
}
