package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vburojevic/pocket-cli/internal/models"
	"github.com/vburojevic/pocket-cli/internal/output"
	"github.com/vburojevic/pocket-cli/internal/pocket"
)

func jsonFormatter(buf *bytes.Buffer) *output.Formatter {
	return output.New(output.FormatJSON, buf)
}

func TestSendArchiveSingleAction(t *testing.T) {
	api := &fakeAPI{}
	var buf bytes.Buffer
	err := Send(context.Background(), api, pocket.ItemAction(pocket.ActionArchive, 42, nil), jsonFormatter(&buf))
	require.NoError(t, err)

	require.Len(t, api.sendReqs, 1)
	want := pocket.SendRequest{Actions: []pocket.Action{{Kind: pocket.ActionArchive, ItemID: 42}}}
	if diff := cmp.Diff(want, api.sendReqs[0]); diff != "" {
		t.Fatalf("send request mismatch (-want +got):\n%s", diff)
	}

	var res models.SendResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	assert.Equal(t, uint64(1), res.Status)
	assert.Equal(t, true, res.ActionResult)
}

func TestSendReportsActionError(t *testing.T) {
	api := &fakeAPI{sendResp: pocket.SendResponse{
		Status:        0,
		ActionResults: []json.RawMessage{json.RawMessage("false")},
		ActionErrors:  []*pocket.ActionError{{Code: 422, Message: "Invalid item"}},
	}}
	var buf bytes.Buffer
	err := Send(context.Background(), api, pocket.DeleteTag("old", nil), jsonFormatter(&buf))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid item")
	assert.Contains(t, buf.String(), `"action_error"`)
}

func TestSendInvalidActionIsUsage(t *testing.T) {
	api := &fakeAPI{}
	var buf bytes.Buffer
	err := Send(context.Background(), api, pocket.RenameTag("", "new", nil), jsonFormatter(&buf))
	assert.ErrorIs(t, err, ErrUsage)
	assert.Empty(t, api.sendReqs)
}

func TestBuildGetRequestNoOptions(t *testing.T) {
	req, err := BuildGetRequest(GetOptions{})
	require.NoError(t, err)
	if diff := cmp.Diff(pocket.GetRequest{}, req); diff != "" {
		t.Fatalf("unexpected request (-want +got):\n%s", diff)
	}
}

func TestGetTagAndUntaggedRejectedBeforeCall(t *testing.T) {
	api := &fakeAPI{}
	tag := "foo"
	var buf bytes.Buffer
	err := Get(context.Background(), api, GetOptions{Tag: &tag, Untagged: true}, jsonFormatter(&buf))
	assert.ErrorIs(t, err, ErrTagConflict)
	assert.ErrorIs(t, err, ErrUsage)
	assert.Empty(t, api.getReqs)
	assert.Empty(t, buf.String())
}

func TestGetPassesFilters(t *testing.T) {
	api := &fakeAPI{items: []pocket.Item{{ItemID: 1, GivenURL: "https://a"}}}
	tag := "foo"
	sort := pocket.SortNewest
	count := 10
	var buf bytes.Buffer
	require.NoError(t, Get(context.Background(), api, GetOptions{Tag: &tag, Sort: &sort, Count: &count}, jsonFormatter(&buf)))

	require.Len(t, api.getReqs, 1)
	want := pocket.GetRequest{Tag: pocket.Tagged("foo"), Sort: &sort, Count: &count}
	if diff := cmp.Diff(want, api.getReqs[0]); diff != "" {
		t.Fatalf("get request mismatch (-want +got):\n%s", diff)
	}

	var list models.ItemList
	require.NoError(t, json.Unmarshal(buf.Bytes(), &list))
	require.Len(t, list.Items, 1)
	assert.Equal(t, "https://a", list.Items[0].GivenURL)
}

func TestBuildGetRequestRejectsBadPaging(t *testing.T) {
	zero := 0
	_, err := BuildGetRequest(GetOptions{Count: &zero})
	assert.ErrorIs(t, err, ErrUsage)
	neg := -1
	_, err = BuildGetRequest(GetOptions{Offset: &neg})
	assert.ErrorIs(t, err, ErrUsage)
}

func TestAddFailureWritesNothing(t *testing.T) {
	api := &fakeAPI{err: errors.New("boom")}
	var buf bytes.Buffer
	err := Add(context.Background(), api, AddOptions{URL: "https://example.com"}, jsonFormatter(&buf))
	require.EqualError(t, err, "boom")
	assert.Empty(t, buf.String())
}

func TestAddRejectsRelativeURL(t *testing.T) {
	api := &fakeAPI{}
	var buf bytes.Buffer
	err := Add(context.Background(), api, AddOptions{URL: "example.com/a"}, jsonFormatter(&buf))
	assert.ErrorIs(t, err, ErrUsage)
	assert.Empty(t, api.addReqs)
}

func TestAddWritesItem(t *testing.T) {
	api := &fakeAPI{addItem: pocket.AddedItem{ItemID: 5, GivenURL: "https://example.com", Title: "Ex"}}
	var buf bytes.Buffer
	err := Add(context.Background(), api, AddOptions{URL: "https://example.com", Tags: []string{"a"}, TweetID: "9"}, jsonFormatter(&buf))
	require.NoError(t, err)
	require.Len(t, api.addReqs, 1)
	assert.Equal(t, pocket.AddRequest{URL: "https://example.com", Tags: []string{"a"}, TweetID: "9"}, api.addReqs[0])

	var item models.Item
	require.NoError(t, json.Unmarshal(buf.Bytes(), &item))
	assert.Equal(t, uint64(5), item.ItemID)
	assert.Nil(t, item.TimeAdded)
}

func TestLoginSavesToken(t *testing.T) {
	api := &fakeAPI{user: pocket.User{AccessToken: "at", Username: "pocketeer"}}
	srv := &fakeServer{}
	store := &memStore{}
	var opened string
	var prompt, buf bytes.Buffer

	err := Login(context.Background(), LoginDeps{
		API:         api,
		Listen:      func(context.Context) (CallbackServer, error) { return srv, nil },
		OpenBrowser: func(u string) error { opened = u; return nil },
		Store:       store,
		Prompt:      &prompt,
	}, true, jsonFormatter(&buf))
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:4321", api.redirect)
	_, err = uuid.Parse(api.state)
	assert.NoError(t, err, "state should be a uuid")
	assert.Equal(t, "https://getpocket.com/auth/authorize?request_token=code-1", opened)
	assert.Contains(t, prompt.String(), opened)
	assert.True(t, srv.waited)
	assert.True(t, srv.closed)
	assert.Equal(t, "at", store.cfg.AccessToken)
	assert.Equal(t, 1, store.saves)

	var user models.User
	require.NoError(t, json.Unmarshal(buf.Bytes(), &user))
	assert.Equal(t, models.User{AccessToken: "at", Username: "pocketeer"}, user)
}

func TestLoginWithoutSaveLeavesConfig(t *testing.T) {
	api := &fakeAPI{user: pocket.User{AccessToken: "at", Username: "u"}}
	store := &memStore{}
	var buf bytes.Buffer
	err := Login(context.Background(), LoginDeps{
		API:         api,
		Listen:      func(context.Context) (CallbackServer, error) { return &fakeServer{}, nil },
		OpenBrowser: func(string) error { return errors.New("no browser") },
		Store:       store,
	}, false, jsonFormatter(&buf))
	require.NoError(t, err)
	assert.Zero(t, store.saves)
	assert.Contains(t, buf.String(), `"username": "u"`)
}

func TestLoginWaitFailureAborts(t *testing.T) {
	api := &fakeAPI{user: pocket.User{AccessToken: "at"}}
	store := &memStore{}
	var buf bytes.Buffer
	err := Login(context.Background(), LoginDeps{
		API:    api,
		Listen: func(context.Context) (CallbackServer, error) { return &fakeServer{err: context.Canceled}, nil },
		Store:  store,
	}, true, jsonFormatter(&buf))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, store.saves)
	assert.Empty(t, buf.String())
}

func TestConfigSetGetView(t *testing.T) {
	store := &memStore{}
	var buf bytes.Buffer
	require.NoError(t, ConfigSet(store, "consumer_key", "abc123", output.New(output.FormatText, &buf)))
	assert.Equal(t, "abc123", store.cfg.ConsumerKey)

	buf.Reset()
	require.NoError(t, ConfigGet(store, "consumer_key", jsonFormatter(&buf)))
	var v models.ConfigValue
	require.NoError(t, json.Unmarshal(buf.Bytes(), &v))
	assert.Equal(t, models.ConfigValue{Key: "consumer_key", Value: "abc123"}, v)

	buf.Reset()
	require.NoError(t, ConfigView(store, output.New(output.FormatText, &buf)))
	assert.Contains(t, buf.String(), "abc123")

	require.NoError(t, ConfigSet(store, "consumer_key", "", jsonFormatter(&bytes.Buffer{})))
	assert.Empty(t, store.cfg.ConsumerKey)
}

func TestConfigUnknownKey(t *testing.T) {
	store := &memStore{}
	var buf bytes.Buffer
	assert.ErrorIs(t, ConfigGet(store, "username", jsonFormatter(&buf)), ErrUnknownConfigKey)
	assert.ErrorIs(t, ConfigSet(store, "username", "x", jsonFormatter(&buf)), ErrUnknownConfigKey)
	assert.Zero(t, store.saves)
	assert.Empty(t, buf.String())
}
