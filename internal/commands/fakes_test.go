package commands

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/vburojevic/pocket-cli/internal/config"
	"github.com/vburojevic/pocket-cli/internal/pocket"
)

type fakeAPI struct {
	addReqs  []pocket.AddRequest
	getReqs  []pocket.GetRequest
	sendReqs []pocket.SendRequest

	addItem  pocket.AddedItem
	items    []pocket.Item
	sendResp pocket.SendResponse
	err      error

	redirect string
	state    string
	user     pocket.User
}

func (f *fakeAPI) Add(ctx context.Context, req pocket.AddRequest) (pocket.AddedItem, error) {
	f.addReqs = append(f.addReqs, req)
	return f.addItem, f.err
}

func (f *fakeAPI) Get(ctx context.Context, req pocket.GetRequest) ([]pocket.Item, error) {
	f.getReqs = append(f.getReqs, req)
	return f.items, f.err
}

func (f *fakeAPI) Send(ctx context.Context, req pocket.SendRequest) (pocket.SendResponse, error) {
	f.sendReqs = append(f.sendReqs, req)
	if f.sendResp.ActionResults == nil {
		return pocket.SendResponse{Status: 1, ActionResults: []json.RawMessage{json.RawMessage("true")}}, f.err
	}
	return f.sendResp, f.err
}

func (f *fakeAPI) RequestCode(ctx context.Context, redirectURI, state string) (string, error) {
	f.redirect = redirectURI
	f.state = state
	return "code-1", f.err
}

func (f *fakeAPI) AuthorizeURL(code, redirectURI string) string {
	return "https://getpocket.com/auth/authorize?request_token=" + code
}

func (f *fakeAPI) Authorize(ctx context.Context, code string) (pocket.User, error) {
	if code != "code-1" {
		return pocket.User{}, errors.New("bad code")
	}
	return f.user, nil
}

type memStore struct {
	cfg   config.Config
	saves int
}

func (m *memStore) Load() (*config.Config, error) {
	c := m.cfg
	return &c, nil
}

func (m *memStore) Save(c *config.Config) error {
	m.cfg = *c
	m.saves++
	return nil
}

type fakeServer struct {
	waited bool
	closed bool
	err    error
}

func (s *fakeServer) Addr() string { return "http://127.0.0.1:4321" }

func (s *fakeServer) Wait(ctx context.Context) error {
	s.waited = true
	return s.err
}

func (s *fakeServer) Close() error {
	s.closed = true
	return nil
}
