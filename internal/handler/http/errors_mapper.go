// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package http

import (
	"errors"
	"net/http"

	"github.com/MyungJiwoo/career-log/internal/logger"
	"github.com/MyungJiwoo/career-log/internal/service"
	"github.com/MyungJiwoo/career-log/internal/utils"
	"github.com/MyungJiwoo/career-log/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrAccountLocked:       http.StatusUnauthorized,
	service.ErrUnauthorized:        http.StatusUnauthorized,
	service.ErrTokenExpired:        http.StatusUnauthorized,
	service.ErrTokenInvalid:        http.StatusForbidden,
	service.ErrForbidden:           http.StatusForbidden,
	service.ErrNotFound:            http.StatusNotFound,
	service.ErrInvalidArgument:     http.StatusBadRequest,
	service.ErrConflict:            http.StatusConflict,
	service.ErrInternal:            http.StatusInternalServerError,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,

	ErrNoAccessToken:      http.StatusUnauthorized,
	ErrAccessTokenExpired: http.StatusUnauthorized,
	ErrInvalidAccessToken: http.StatusForbidden,
	ErrInvalidJSON:        http.StatusBadRequest,
	ErrInvalidPathParam:   http.StatusBadRequest,
	ErrInvalidQuery:       http.StatusBadRequest,
	ErrFileRequired:       http.StatusBadRequest,
	ErrFileTooLarge:       http.StatusRequestEntityTooLarge,
	ErrRouteNotFound:      http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError renders err as a JSON message. Server errors are logged and
// their details are not sent to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var wrongPassword *service.WrongPasswordError
	if errors.As(err, &wrongPassword) {
		utils.WriteJSON(w, models.LoginFailureResponse{
			Message:           service.ErrInvalidCredentials.Error(),
			RemainingAttempts: wrongPassword.RemainingAttempts,
		}, http.StatusUnauthorized)
		return
	}

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed")
		utils.WriteMessage(w, http.StatusText(status), status)
		return
	}

	log.Debug().Err(err).Int("status", status).Msg("request rejected")
	utils.WriteMessage(w, err.Error(), status)
}
