package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/vburojevic/pocket-cli/internal/commands"
	"github.com/vburojevic/pocket-cli/internal/pocket"
)

const (
	ErrCodeUnknown      = "unknown"
	ErrCodeInvalidUsage = "invalid_usage"
	ErrCodeRateLimited  = "rate_limited"
	ErrCodeAuth         = "auth_error"
	ErrCodeServerError  = "server_error"
	ErrCodeAPIError     = "api_error"
	ErrCodeTimeout      = "timeout"
	ErrCodeNetwork      = "network_error"
	ErrCodeConfig       = "config_error"
)

func printError(stderr io.Writer, err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintln(stderr, "error:", err)
	if hint := hintForError(err); hint != "" {
		fmt.Fprintln(stderr, "hint:", hint)
	}
	return exitCodeForError(err)
}

func exitCodeForError(err error) int {
	if isUsageError(err) {
		return 2
	}
	return 1
}

func isUsageError(err error) bool {
	return errors.Is(err, commands.ErrUsage) || errors.Is(err, commands.ErrUnknownConfigKey) ||
		strings.HasPrefix(err.Error(), "unknown command ")
}

func hintForError(err error) string {
	var apiErr *pocket.APIError
	if errors.As(err, &apiErr) {
		if hint := apiErrorHint(apiErr.Code); hint != "" {
			return hint
		}
		return apiStatusHint(apiErr.Status)
	}
	switch {
	case errors.Is(err, commands.ErrMissingConsumerKey):
		return "pass --consumer-key, set POCKET_CONSUMER_KEY or run 'pocket config set consumer_key <key>'"
	case errors.Is(err, commands.ErrMissingAccessToken):
		return "run 'pocket auth login --save' or pass --access-token"
	case errors.Is(err, context.DeadlineExceeded):
		return "the request timed out; raise --timeout (or --wait-timeout for auth login)"
	}
	return ""
}

func apiErrorHint(code int) string {
	switch code {
	case 138:
		return "missing consumer key"
	case 140:
		return "missing redirect URL"
	case 152:
		return "invalid consumer key; check it at https://getpocket.com/developer/apps/"
	case 158:
		return "authorization was rejected in the browser"
	case 159:
		return "the request code was already used; run 'pocket auth login' again"
	case 181, 182:
		return "invalid redirect URI"
	case 185:
		return "request code not found; run 'pocket auth login' again"
	case 199:
		return "Pocket server issue; try again later"
	}
	return ""
}

func apiStatusHint(status int) string {
	switch status {
	case 401:
		return "access token rejected; run 'pocket auth login --save'"
	case 403:
		return "access denied or rate limited; wait and retry"
	case 503:
		return "Pocket is down for maintenance; try again later"
	}
	return ""
}

// errorCodeForError classifies err for debug logs.
func errorCodeForError(err error) string {
	if err == nil {
		return ErrCodeUnknown
	}
	if isUsageError(err) {
		return ErrCodeInvalidUsage
	}
	var apiErr *pocket.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Status == 401, apiErr.Code >= 150 && apiErr.Code < 190:
			return ErrCodeAuth
		case apiErr.Status == 403:
			return ErrCodeRateLimited
		case apiErr.Status >= 500:
			return ErrCodeServerError
		default:
			return ErrCodeAPIError
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrCodeTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return ErrCodeTimeout
		}
		return ErrCodeNetwork
	}
	if errors.Is(err, commands.ErrMissingConsumerKey) || errors.Is(err, commands.ErrMissingAccessToken) ||
		strings.Contains(err.Error(), "parse config") {
		return ErrCodeConfig
	}
	return ErrCodeUnknown
}
