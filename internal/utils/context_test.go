// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package utils

import (
	"context"
	"testing"

	"github.com/MyungJiwoo/career-log/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestUserIDCtxKey(t *testing.T) {
	if UserIDCtxKey.String() != "userID" {
		t.Errorf("expected 'userID', got '%s'", UserIDCtxKey.String())
	}
}

func TestGetUserIDFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))

	userID, ok := GetUserIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if userID != 42 {
		t.Errorf("expected userID=42, got %d", userID)
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	userID, ok := GetUserIDFromContext(context.Background())

	if ok {
		t.Error("expected ok=false for missing key")
	}
	if userID != 0 {
		t.Errorf("expected zero userID, got %d", userID)
	}
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "42")

	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Error("expected ok=false for string value")
	}
}

func TestGetUserIDFromContext_DifferentKey(t *testing.T) {
	// a plain string key must not collide with the typed key
	ctx := context.WithValue(context.Background(), "userID", int64(42)) //nolint:staticcheck

	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Error("expected ok=false for plain string key")
	}
}

func TestWithSessionUser(t *testing.T) {
	ctx := WithSessionUser(context.Background(), models.SessionUser{UserID: 7, Username: "mj"})

	user, ok := GetSessionUserFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if user.UserID != 7 || user.Username != "mj" {
		t.Errorf("unexpected user: %+v", user)
	}

	if _, ok = GetSessionUserFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
}
