package pocket

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const DefaultBaseURL = "https://getpocket.com"

type Client struct {
	BaseURL     string
	ConsumerKey string
	AccessToken string
	HTTP        *http.Client
	UserAgent   string
}

func NewClient(baseURL, consumerKey, accessToken string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if consumerKey == "" {
		return nil, errors.New("pocket: consumer key is empty")
	}
	hc := &http.Client{}
	if timeout > 0 {
		hc.Timeout = timeout
	}
	return &Client{
		BaseURL:     strings.TrimRight(baseURL, "/"),
		ConsumerKey: consumerKey,
		AccessToken: accessToken,
		HTTP:        hc,
		UserAgent:   "pocket-cli/0.1",
	}, nil
}

// APIError is returned for any non-2xx response. Pocket reports the reason
// in the X-Error-Code and X-Error headers rather than in the body.
type APIError struct {
	Status  int
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Code != 0 && e.Message != "":
		return fmt.Sprintf("Pocket API error %d: %s", e.Code, e.Message)
	case e.Code != 0:
		return fmt.Sprintf("Pocket API error %d", e.Code)
	case e.Message != "":
		return fmt.Sprintf("Pocket API error (HTTP %d): %s", e.Status, e.Message)
	default:
		return fmt.Sprintf("Pocket API error (HTTP %d)", e.Status)
	}
}

// postJSON sends payload to path and decodes the response body into out.
// out may be nil when the caller only needs the status check.
func (c *Client) postJSON(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	req.Header.Set("X-Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if err := ensureOK(resp.StatusCode, resp.Header, b); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func ensureOK(status int, h http.Header, body []byte) error {
	if status >= 200 && status <= 299 {
		return nil
	}
	apiErr := &APIError{Status: status, Message: strings.TrimSpace(h.Get("X-Error"))}
	if code := strings.TrimSpace(h.Get("X-Error-Code")); code != "" {
		if n, err := strconv.Atoi(code); err == nil {
			apiErr.Code = n
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	return apiErr
}

// authBody returns the credential fields every authenticated call carries.
func (c *Client) authBody() map[string]any {
	return map[string]any{
		"consumer_key": c.ConsumerKey,
		"access_token": c.AccessToken,
	}
}
