// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set used for both access and refresh tokens.
//
// The "sub" claim holds the user ID in base-10, "jti" is random so that two
// tokens issued within the same second are never identical.
type Claims struct {
	jwt.RegisteredClaims

	// Username duplicates the account name so the UI can greet the user
	// without an extra lookup.
	Username string `json:"username"`
}

// GetUserID parses the subject claim as an int64 user ID.
func (c *Claims) GetUserID() (int64, error) {
	sub, err := c.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// Token is a signed JWT together with its decoded claims.
type Token struct {
	// SignedString is the compact JWS form put into the cookie.
	SignedString string

	// UserID is the parsed "sub" claim.
	UserID int64

	// Username is the "username" claim.
	Username string

	// ExpiresAt is the "exp" claim.
	ExpiresAt time.Time
}

// String returns the compact JWS serialization of the token.
func (t Token) String() string {
	return t.SignedString
}

// SessionUser returns the identity carried by the token.
func (t Token) SessionUser() SessionUser {
	return SessionUser{UserID: t.UserID, Username: t.Username}
}

// Session is the result of a successful login: the user and both tokens.
type Session struct {
	User         User
	AccessToken  Token
	RefreshToken Token
}
