// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"

	"github.com/MyungJiwoo/career-log/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the user identifier in the context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, int64(42))
var UserIDCtxKey = contextKey("userID")

// UsernameCtxKey is the key used to store the account name in the context.
var UsernameCtxKey = contextKey("username")

// WithSessionUser returns a copy of ctx carrying the user's ID and username.
func WithSessionUser(ctx context.Context, user models.SessionUser) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, user.UserID)
	return context.WithValue(ctx, UsernameCtxKey, user.Username)
}

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true : value is found and has the correct int64 type
//   - ok == false: value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetSessionUserFromContext retrieves the identity stored by [WithSessionUser].
// ok is false when no user ID is present.
func GetSessionUserFromContext(ctx context.Context) (models.SessionUser, bool) {
	userID, ok := GetUserIDFromContext(ctx)
	if !ok {
		return models.SessionUser{}, false
	}
	username, _ := ctx.Value(UsernameCtxKey).(string)

	return models.SessionUser{UserID: userID, Username: username}, true
}
