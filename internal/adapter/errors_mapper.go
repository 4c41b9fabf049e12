// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MyungJiwoo/career-log/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := responseMessage(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%w: %s", ErrPayloadTooLarge, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// mapLoginError keeps the remaining attempts of a failed login.
func mapLoginError(resp *resty.Response) error {
	if resp.StatusCode() != http.StatusUnauthorized {
		return mapHTTPError(resp)
	}

	var failure models.LoginFailureResponse
	if err := json.Unmarshal(resp.Body(), &failure); err != nil || failure.Message == "" {
		return mapHTTPError(resp)
	}
	return &LoginError{Message: failure.Message, RemainingAttempts: failure.RemainingAttempts}
}

// responseMessage extracts the "message" of a JSON error body and falls back
// to the raw body.
func responseMessage(resp *resty.Response) string {
	raw := resp.Body()

	var msg models.MessageResponse
	if err := json.Unmarshal(raw, &msg); err == nil && msg.Message != "" {
		return msg.Message
	}
	return strings.TrimSpace(string(raw))
}
