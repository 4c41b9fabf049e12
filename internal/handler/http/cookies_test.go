// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MyungJiwoo/career-log/internal/config"
	"github.com/MyungJiwoo/career-log/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieSettings_Environment(t *testing.T) {
	dev := newCookieSettings(config.App{Environment: "development"})
	assert.False(t, dev.secure)
	assert.Equal(t, http.SameSiteLaxMode, dev.sameSite)

	prod := newCookieSettings(config.App{Environment: config.EnvironmentProduction})
	assert.True(t, prod.secure)
	assert.Equal(t, http.SameSiteNoneMode, prod.sameSite)
}

func TestCookieSettings_SetSessionAndClear(t *testing.T) {
	settings := newCookieSettings(config.App{
		Environment:          config.EnvironmentProduction,
		AccessTokenDuration:  15 * time.Minute,
		RefreshTokenDuration: 168 * time.Hour,
	})

	rec := httptest.NewRecorder()
	settings.setSession(rec, models.Session{
		AccessToken:  models.Token{SignedString: "a"},
		RefreshToken: models.Token{SignedString: "r"},
	})

	access := findCookie(rec, accessTokenCookie)
	require.NotNil(t, access)
	assert.Equal(t, "a", access.Value)
	assert.Equal(t, 900, access.MaxAge)
	assert.True(t, access.HttpOnly)
	assert.True(t, access.Secure)
	assert.Equal(t, "/", access.Path)

	refresh := findCookie(rec, refreshTokenCookie)
	require.NotNil(t, refresh)
	assert.Equal(t, 7*24*3600, refresh.MaxAge)

	rec = httptest.NewRecorder()
	settings.clear(rec)
	for _, name := range []string{accessTokenCookie, refreshTokenCookie} {
		cookie := findCookie(rec, name)
		require.NotNil(t, cookie, name)
		assert.Empty(t, cookie.Value)
		assert.Equal(t, -1, cookie.MaxAge, "parsed Max-Age=0 is reported as -1")
	}
}

func TestCookieValue(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, cookieValue(req, accessTokenCookie))

	req.AddCookie(&http.Cookie{Name: accessTokenCookie, Value: "v"})
	assert.Equal(t, "v", cookieValue(req, accessTokenCookie))
}
