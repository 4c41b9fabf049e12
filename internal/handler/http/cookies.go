// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package http

import (
	"net/http"
	"time"

	"github.com/MyungJiwoo/career-log/internal/config"
	"github.com/MyungJiwoo/career-log/models"
)

const (
	accessTokenCookie  = "accessToken"
	refreshTokenCookie = "refreshToken"
)

// cookieSettings holds the attributes shared by both session cookies.
type cookieSettings struct {
	secure   bool
	sameSite http.SameSite

	accessMaxAge  time.Duration
	refreshMaxAge time.Duration
}

func newCookieSettings(cfg config.App) cookieSettings {
	settings := cookieSettings{
		sameSite:      http.SameSiteLaxMode,
		accessMaxAge:  cfg.AccessTokenDuration,
		refreshMaxAge: cfg.RefreshTokenDuration,
	}
	if cfg.IsProduction() {
		settings.secure = true
		settings.sameSite = http.SameSiteNoneMode
	}
	return settings
}

func (c cookieSettings) cookie(name, value string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: c.sameSite,
	}
}

func (c cookieSettings) setSession(w http.ResponseWriter, session models.Session) {
	http.SetCookie(w, c.cookie(accessTokenCookie, session.AccessToken.SignedString, c.accessMaxAge))
	http.SetCookie(w, c.cookie(refreshTokenCookie, session.RefreshToken.SignedString, c.refreshMaxAge))
}

func (c cookieSettings) setAccess(w http.ResponseWriter, token models.Token) {
	http.SetCookie(w, c.cookie(accessTokenCookie, token.SignedString, c.accessMaxAge))
}

// clear expires both cookies; a negative MaxAge is sent as Max-Age=0.
func (c cookieSettings) clear(w http.ResponseWriter) {
	for _, name := range []string{accessTokenCookie, refreshTokenCookie} {
		cookie := c.cookie(name, "", 0)
		cookie.MaxAge = -1
		http.SetCookie(w, cookie)
	}
}

func cookieValue(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}
