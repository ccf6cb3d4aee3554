package pocket

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// RequestCode obtains a one-time request token for the authorization flow.
// redirectURI is where Pocket sends the browser once the user has decided.
func (c *Client) RequestCode(ctx context.Context, redirectURI, state string) (string, error) {
	payload := map[string]any{
		"consumer_key": c.ConsumerKey,
		"redirect_uri": redirectURI,
	}
	if state != "" {
		payload["state"] = state
	}
	var resp struct {
		Code  string `json:"code"`
		State string `json:"state"`
	}
	if err := c.postJSON(ctx, "/v3/oauth/request", payload, &resp); err != nil {
		return "", err
	}
	if resp.Code == "" {
		return "", errors.New("missing code in oauth request response")
	}
	return resp.Code, nil
}

// AuthorizeURL is the page the user must visit to approve code.
func (c *Client) AuthorizeURL(code, redirectURI string) string {
	q := url.Values{}
	q.Set("request_token", code)
	q.Set("redirect_uri", redirectURI)
	return c.BaseURL + "/auth/authorize?" + q.Encode()
}

// Authorize exchanges an approved request code for an access token.
func (c *Client) Authorize(ctx context.Context, code string) (User, error) {
	payload := map[string]any{
		"consumer_key": c.ConsumerKey,
		"code":         code,
	}
	var u User
	if err := c.postJSON(ctx, "/v3/oauth/authorize", payload, &u); err != nil {
		return User{}, err
	}
	if u.AccessToken == "" {
		return User{}, errors.New("missing access_token in oauth authorize response")
	}
	return u, nil
}

func (c *Client) Add(ctx context.Context, req AddRequest) (AddedItem, error) {
	if req.URL == "" {
		return AddedItem{}, errors.New("add: url is empty")
	}
	payload := c.authBody()
	payload["url"] = req.URL
	if req.Title != "" {
		payload["title"] = req.Title
	}
	if len(req.Tags) > 0 {
		tags := make([]string, 0, len(req.Tags))
		for _, t := range req.Tags {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
		if len(tags) > 0 {
			payload["tags"] = strings.Join(tags, ",")
		}
	}
	if req.TweetID != "" {
		payload["tweet_id"] = req.TweetID
	}
	var resp struct {
		Item   *AddedItem `json:"item"`
		Status Uint64     `json:"status"`
	}
	if err := c.postJSON(ctx, "/v3/add", payload, &resp); err != nil {
		return AddedItem{}, err
	}
	if resp.Item == nil {
		return AddedItem{}, errors.New("empty add response")
	}
	return *resp.Item, nil
}

func (c *Client) Get(ctx context.Context, req GetRequest) ([]Item, error) {
	payload := c.authBody()
	for k, v := range req.body() {
		payload[k] = v
	}
	var resp struct {
		Status   Uint64           `json:"status"`
		Complete Uint64           `json:"complete"`
		List     Collection[Item] `json:"list"`
	}
	if err := c.postJSON(ctx, "/v3/get", payload, &resp); err != nil {
		return nil, err
	}
	sortBySortID(resp.List)
	return resp.List, nil
}

func (c *Client) Send(ctx context.Context, req SendRequest) (SendResponse, error) {
	if len(req.Actions) == 0 {
		return SendResponse{}, errors.New("send: no actions")
	}
	actions := make([]wireAction, 0, len(req.Actions))
	for _, a := range req.Actions {
		if err := a.Validate(); err != nil {
			return SendResponse{}, err
		}
		actions = append(actions, a.wire())
	}
	payload := c.authBody()
	payload["actions"] = actions
	var resp SendResponse
	if err := c.postJSON(ctx, "/v3/send", payload, &resp); err != nil {
		return SendResponse{}, err
	}
	if len(resp.ActionResults) != len(req.Actions) {
		return resp, fmt.Errorf("send: got %d results for %d actions", len(resp.ActionResults), len(req.Actions))
	}
	return resp, nil
}
