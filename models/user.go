// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package models

import "time"

// User represents an account of the tracker.
// Credential and session fields are never exposed via JSON.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"_id"`

	// Username is the unique login name (2-30 characters).
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// IsActive is false once the account is locked after repeated failed logins.
	IsActive bool `json:"isActive"`

	// IsLoggedIn reports whether the user currently holds a refresh token.
	IsLoggedIn bool `json:"isLoggedIn"`

	// FailedLoginAttempts counts consecutive wrong-password attempts.
	FailedLoginAttempts int `json:"failedLoginAttempts"`

	// LastLoginAttempt is the time of the most recent login attempt.
	LastLoginAttempt *time.Time `json:"lastLoginAttempt,omitempty"`

	// IPAddress is the last known address reported by the IP lookup service.
	IPAddress string `json:"ipAddress,omitempty"`

	// RefreshToken is the currently valid refresh token, empty when logged out.
	RefreshToken string `json:"-"`

	// RefreshTokenExpiresAt is the expiry of RefreshToken.
	RefreshTokenExpiresAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Credentials is the body of signup and login requests.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionUser is the identity carried by an access token.
type SessionUser struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}
