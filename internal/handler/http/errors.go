// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrNoAccessToken is returned by the auth middleware when the request
	// carries no accessToken cookie.
	ErrNoAccessToken = errors.New("no access token")

	// ErrAccessTokenExpired is returned when the access token verified but is
	// past its expiry.
	ErrAccessTokenExpired = errors.New("access token expired")

	// ErrInvalidAccessToken is returned for any other token failure.
	ErrInvalidAccessToken = errors.New("invalid access token")

	ErrInvalidJSON      = errors.New("invalid JSON was passed")
	ErrInvalidPathParam = errors.New("invalid path parameter")
	ErrInvalidQuery     = errors.New("invalid query parameter")

	// ErrFileRequired is returned by the upload handler when the multipart
	// form has no "file" part.
	ErrFileRequired = errors.New("file is required")

	ErrFileTooLarge  = errors.New("file is too large")
	ErrRouteNotFound = errors.New("route not found")
)
