// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	ErrInvalidServerURL = errors.New("invalid server url")
	ErrEmptyIPAddress   = errors.New("ip lookup returned an empty address")
)

// LoginError is returned by Login on a 401. RemainingAttempts is zero when
// the account is locked or the user is unknown.
type LoginError struct {
	Message           string
	RemainingAttempts int
}

func (e *LoginError) Error() string {
	if e.RemainingAttempts > 0 {
		return fmt.Sprintf("%s (%d attempts left)", e.Message, e.RemainingAttempts)
	}
	return e.Message
}

// Unwrap makes errors.Is(err, ErrUnauthorized) hold for login failures.
func (e *LoginError) Unwrap() error {
	return ErrUnauthorized
}
