// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MyungJiwoo/career-log/internal/config"
	"github.com/MyungJiwoo/career-log/internal/logger"
	"github.com/MyungJiwoo/career-log/internal/mock"
	"github.com/MyungJiwoo/career-log/internal/service"
	"github.com/MyungJiwoo/career-log/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testAccessToken = "access-token"
	testUserID      = int64(42)
)

type handlerMocks struct {
	auth  *mock.MockAuthService
	users *mock.MockUserService
	jobs  *mock.MockAppliedJobService
	stats *mock.MockStatisticsService
	files *mock.MockFileService
}

func newTestHandler(t *testing.T) (*Handler, handlerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := handlerMocks{
		auth:  mock.NewMockAuthService(ctrl),
		users: mock.NewMockUserService(ctrl),
		jobs:  mock.NewMockAppliedJobService(ctrl),
		stats: mock.NewMockStatisticsService(ctrl),
		files: mock.NewMockFileService(ctrl),
	}

	h := &Handler{
		services: &service.Services{
			AuthService:       m.auth,
			UserService:       m.users,
			AppliedJobService: m.jobs,
			StatisticsService: m.stats,
			FileService:       m.files,
		},
		cookies: newCookieSettings(config.App{
			AccessTokenDuration:  15 * time.Minute,
			RefreshTokenDuration: 168 * time.Hour,
		}),
		allowedOrigins: []string{"http://localhost:5173"},
		maxUploadSize:  1 << 10,
		logger:         logger.Nop(),
	}

	return h, m
}

// serve runs req through the full router.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// authenticated attaches the access cookie and expects it to be parsed.
func authenticated(m handlerMocks, req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: accessTokenCookie, Value: testAccessToken})
	m.auth.EXPECT().ParseAccessToken(gomock.Any(), testAccessToken).
		Return(models.Token{UserID: testUserID, Username: "jiwoo"}, nil)
	return req
}

func jsonRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestNewHandler_LocalFilesDir(t *testing.T) {
	cfg := &config.StructuredConfig{}
	cfg.Storage.Blob = config.Blob{Backend: config.BlobBackendLocal, LocalDir: "/tmp/blobs", MaxUploadSize: 10}
	assert.Equal(t, "/tmp/blobs", NewHandler(nil, cfg, logger.Nop()).filesDir)

	cfg.Storage.Blob.Backend = config.BlobBackendS3
	assert.Empty(t, NewHandler(nil, cfg, logger.Nop()).filesDir)
}
