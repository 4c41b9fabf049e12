// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

// Package app contains the human-readable messages written into the
// `{"message": ...}` bodies of successful API responses.
package app

const (
	// MsgSignupCompleted answers POST /api/auth/signup.
	MsgSignupCompleted = "signup completed"

	// MsgAccessTokenReissued answers a successful refresh.
	MsgAccessTokenReissued = "access token reissued"

	// MsgLoggedOut answers POST /api/auth/logout, including when no session
	// was active.
	MsgLoggedOut = "logged out"

	MsgUserDeleted       = "user deleted"
	MsgAppliedJobDeleted = "applied job deleted"
)
