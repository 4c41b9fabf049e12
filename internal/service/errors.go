// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountLocked      = errors.New("account is locked")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrConflict           = errors.New("conflict")
	ErrInternal           = errors.New("internal error")

	ErrTokenExpired        = errors.New("token is expired")
	ErrTokenInvalid        = errors.New("token is invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrSessionExpired marks a refresh with an expired or forged token; the
	// stored session has been cleared.
	ErrSessionExpired = errors.New("session expired")

	// ErrStaleSession marks a refresh with a valid token that was replaced
	// by a newer login.
	ErrStaleSession = errors.New("session was replaced by another login")
)

// WrongPasswordError is returned by Login while the account is still
// active.
type WrongPasswordError struct {
	RemainingAttempts int
}

func (e *WrongPasswordError) Error() string {
	return fmt.Sprintf("%s: %d attempts remaining", ErrInvalidCredentials, e.RemainingAttempts)
}

// Unwrap makes errors.Is(err, ErrInvalidCredentials) hold.
func (e *WrongPasswordError) Unwrap() error {
	return ErrInvalidCredentials
}
