package models

import (
	"encoding/json"

	"github.com/vburojevic/pocket-cli/internal/pocket"
)

type User struct {
	AccessToken string `json:"access_token" yaml:"access_token" toml:"access_token"`
	Username    string `json:"username" yaml:"username" toml:"username"`
}

func FromUser(u pocket.User) User {
	return User{AccessToken: u.AccessToken, Username: u.Username}
}

type ActionError struct {
	Code    uint64 `json:"code" yaml:"code" toml:"code"`
	Message string `json:"message" yaml:"message" toml:"message"`
	Type    string `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
}

// SendResult is the outcome of a single modify action.
type SendResult struct {
	Status       uint64       `json:"status" yaml:"status" toml:"status"`
	ActionResult any          `json:"action_result" yaml:"action_result" toml:"action_result"`
	ActionError  *ActionError `json:"action_error,omitempty" yaml:"action_error,omitempty" toml:"action_error,omitempty"`
}

// FromSendResponse picks the first action's outcome; the CLI sends one
// action per request.
func FromSendResponse(r pocket.SendResponse) (SendResult, error) {
	out := SendResult{Status: uint64(r.Status)}
	if len(r.ActionResults) > 0 {
		var v any
		if err := json.Unmarshal(r.ActionResults[0], &v); err != nil {
			return SendResult{}, err
		}
		out.ActionResult = v
	}
	if len(r.ActionErrors) > 0 && r.ActionErrors[0] != nil {
		e := r.ActionErrors[0]
		out.ActionError = &ActionError{Code: uint64(e.Code), Message: e.Message, Type: e.Type}
	}
	return out, nil
}

// ConfigValue is one config key and its value; an unset key has an empty value.
type ConfigValue struct {
	Key   string `json:"key" yaml:"key" toml:"key"`
	Value string `json:"value" yaml:"value" toml:"value"`
}

// Settings is the whole stored configuration as printed by `config view`.
type Settings struct {
	ConsumerKey string `json:"consumer_key,omitempty" yaml:"consumer_key,omitempty" toml:"consumer_key,omitempty"`
	AccessToken string `json:"access_token,omitempty" yaml:"access_token,omitempty" toml:"access_token,omitempty"`
}
