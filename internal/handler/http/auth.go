// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MyungJiwoo/career-log/internal/app"
	"github.com/MyungJiwoo/career-log/internal/logger"
	"github.com/MyungJiwoo/career-log/internal/service"
	"github.com/MyungJiwoo/career-log/internal/utils"
	"github.com/MyungJiwoo/career-log/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	user, err := h.services.AuthService.Signup(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", user.UserID).Msg("user signed up")
	utils.WriteMessage(w, app.MsgSignupCompleted, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	session, err := h.services.AuthService.Login(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("id", session.User.UserID).Msg("user successfully logged in")

	h.cookies.setSession(w, session)
	utils.WriteJSON(w, models.LoginResponse{User: session.User}, http.StatusOK)
}

// refreshToken issues a new access cookie. Cookies are cleared when the
// refresh token itself is no longer valid; a replaced session keeps them.
func (h *Handler) refreshToken(w http.ResponseWriter, r *http.Request) {
	token, err := h.services.AuthService.Refresh(r.Context(), cookieValue(r, refreshTokenCookie))
	if err != nil {
		if errors.Is(err, service.ErrSessionExpired) {
			h.cookies.clear(w)
		}
		writeError(w, r, err)
		return
	}

	h.cookies.setAccess(w, token)
	utils.WriteMessage(w, app.MsgAccessTokenReissued, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	err := h.services.AuthService.Logout(r.Context(), cookieValue(r, refreshTokenCookie))
	h.cookies.clear(w)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgLoggedOut, http.StatusOK)
}

// verifyToken always answers 200 with the verdict in the body.
func (h *Handler) verifyToken(w http.ResponseWriter, r *http.Request) {
	verdict := h.services.AuthService.Verify(r.Context(), cookieValue(r, accessTokenCookie))
	utils.WriteJSON(w, verdict, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: userId must be an integer", ErrInvalidPathParam))
		return
	}

	caller, ok := utils.GetSessionUserFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoAccessToken)
		return
	}

	if err = h.services.UserService.DeleteUser(ctx, caller, userID); err != nil {
		writeError(w, r, err)
		return
	}

	if caller.UserID == userID {
		h.cookies.clear(w)
	}
	utils.WriteMessage(w, app.MsgUserDeleted, http.StatusOK)
}
