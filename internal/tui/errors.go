// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package tui

import (
	"errors"
	"strings"

	"github.com/MyungJiwoo/career-log/internal/adapter"
)

// humanizeError turns adapter and transport errors into short status lines.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var loginErr *adapter.LoginError
	switch {
	case errors.As(err, &loginErr):
		return loginErr.Error()
	case errors.Is(err, adapter.ErrUnauthorized):
		return "session expired, log in again"
	case errors.Is(err, adapter.ErrConflict):
		return "username is already taken"
	case errors.Is(err, adapter.ErrPayloadTooLarge):
		return "file is too large"
	case errors.Is(err, adapter.ErrNotFound):
		return "not found"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "network is down or the server is unreachable"
	}

	return err.Error()
}
