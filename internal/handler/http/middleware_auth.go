// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package http

import (
	"errors"
	"net/http"

	"github.com/MyungJiwoo/career-log/internal/logger"
	"github.com/MyungJiwoo/career-log/internal/service"
	"github.com/MyungJiwoo/career-log/internal/utils"
)

// auth is an HTTP middleware that enforces cookie-based JWT authentication.
//
// It reads the accessToken cookie, validates it via
// [service.AuthService.ParseAccessToken], and on success stores the session
// user in the request context with [utils.WithSessionUser].
//
// Rejections:
//   - 401 when the cookie is absent ([ErrNoAccessToken]).
//   - 401 when the token has expired ([ErrAccessTokenExpired]).
//   - 403 for any other invalid token ([ErrInvalidAccessToken]).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		accessToken := cookieValue(r, accessTokenCookie)
		if accessToken == "" {
			writeError(w, r, ErrNoAccessToken)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseAccessToken(ctx, accessToken)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				log.Debug().Msg("access token expired")
				writeError(w, r, ErrAccessTokenExpired)
				return
			}
			log.Info().Err(err).Msg("rejected access token")
			writeError(w, r, ErrInvalidAccessToken)
			return
		}

		ctx = utils.WithSessionUser(ctx, token.SessionUser())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
