// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MyungJiwoo/career-log/internal/config"
	"github.com/MyungJiwoo/career-log/internal/logger"
	"github.com/MyungJiwoo/career-log/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{ServerURL: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	assert.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNewHTTPServerAdapter_InvalidURL(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{ServerURL: "  "}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidServerURL)
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL("localhost:8080/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", got)

	_, err = normalizeBaseURL("http://")
	assert.Error(t, err)
}

// ── Auth ─────────────────────────────────────────────────────────────────────

func TestSignup_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/signup", r.URL.Path)
		writeJSON(t, w, http.StatusConflict, models.MessageResponse{Message: "username already exists"})
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).Signup(context.Background(), models.Credentials{Username: "jiwoo", Password: "pw"})

	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "username already exists")
}

func TestLogin_StoresCookies(t *testing.T) {
	var verifiedWithCookie atomic.Bool

	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var credentials models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&credentials))
		assert.Equal(t, "jiwoo", credentials.Username)

		http.SetCookie(w, &http.Cookie{Name: "accessToken", Value: "access", Path: "/", HttpOnly: true})
		http.SetCookie(w, &http.Cookie{Name: "refreshToken", Value: "refresh", Path: "/", HttpOnly: true})
		writeJSON(t, w, http.StatusOK, models.LoginResponse{User: models.User{UserID: 7, Username: "jiwoo"}})
	})
	mux.HandleFunc("/api/auth/verify-token", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("accessToken")
		verifiedWithCookie.Store(err == nil && cookie.Value == "access")
		writeJSON(t, w, http.StatusOK, models.VerifyResponse{IsValid: true, User: &models.SessionUser{UserID: 7, Username: "jiwoo"}})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	user, err := a.Login(context.Background(), models.Credentials{Username: "jiwoo", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)

	verify, err := a.Verify(context.Background())
	require.NoError(t, err)
	assert.True(t, verify.IsValid)
	assert.True(t, verifiedWithCookie.Load())
}

func TestLogin_WrongPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.LoginFailureResponse{Message: "wrong password", RemainingAttempts: 3})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.Credentials{Username: "jiwoo", Password: "x"})

	var loginErr *LoginError
	require.ErrorAs(t, err, &loginErr)
	assert.Equal(t, 3, loginErr.RemainingAttempts)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogin_LockedAccount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.MessageResponse{Message: "account is locked"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.Credentials{Username: "jiwoo", Password: "x"})

	var loginErr *LoginError
	require.ErrorAs(t, err, &loginErr)
	assert.Zero(t, loginErr.RemainingAttempts)
	assert.Equal(t, "account is locked", loginErr.Error())
}

// ── Applied jobs ─────────────────────────────────────────────────────────────

func TestListAppliedJobs_QueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/appliedJob", r.URL.Path)
		assert.Equal(t, "in progress", r.URL.Query().Get("progress"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))

		writeJSON(t, w, http.StatusOK, models.AppliedJobPage{
			Data:       []models.AppliedJob{{JobID: "j1", CompanyName: "Acme"}},
			Pagination: models.NewPagination(6, 2, 5),
		})
	}))
	defer srv.Close()

	page, err := newTestAdapter(t, srv.URL).ListAppliedJobs(context.Background(), models.ProgressInProgress, 2, 5)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Acme", page.Data[0].CompanyName)
	assert.Equal(t, 2, page.Pagination.TotalPages)
}

func TestUpdateStageStatus_Path(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/appliedJob/j1/stages/s1", r.URL.Path)

		var body models.StageStatusUpdateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, models.StageStatusPass, body.Status)

		writeJSON(t, w, http.StatusOK, models.AppliedJob{JobID: "j1", Stages: []models.Stage{{StageID: "s1", Status: models.StageStatusPass}}})
	}))
	defer srv.Close()

	job, err := newTestAdapter(t, srv.URL).UpdateStageStatus(context.Background(), "j1", "s1", models.StageStatusPass)
	require.NoError(t, err)
	assert.Equal(t, models.StageStatusPass, job.Stages[0].Status)
}

func TestGetAppliedJob_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, models.MessageResponse{Message: "applied job not found"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetAppliedJob(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUploadFile_Multipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "%EC%9D%B4%EB%A0%A5%EC%84%9C.pdf", r.FormValue("originalName"))

		file, _, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "pdf-bytes", string(data))

		writeJSON(t, w, http.StatusOK, models.FileUploadResponse{FileURL: "/files/post-files/1-cv.pdf"})
	}))
	defer srv.Close()

	fileURL, err := newTestAdapter(t, srv.URL).UploadFile(context.Background(), "이력서.pdf", strings.NewReader("pdf-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/files/post-files/1-cv.pdf", fileURL)
}

// ── Refresh handling ─────────────────────────────────────────────────────────

func TestAuthed_RefreshesOnceAndRetries(t *testing.T) {
	var refreshes, calls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		refreshes.Add(1)
		http.SetCookie(w, &http.Cookie{Name: "accessToken", Value: "fresh", Path: "/"})
		writeJSON(t, w, http.StatusOK, models.MessageResponse{Message: "token refreshed"})
	})
	mux.HandleFunc("/api/appliedJob/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		calls.Add(1)
		if cookie, err := r.Cookie("accessToken"); err != nil || cookie.Value != "fresh" {
			writeJSON(t, w, http.StatusUnauthorized, models.MessageResponse{Message: "token expired"})
			return
		}
		writeJSON(t, w, http.StatusOK, models.MessageResponse{Message: "deleted"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).DeleteAppliedJob(context.Background(), "j1")
	require.NoError(t, err)
	assert.Equal(t, int32(1), refreshes.Load())
	assert.Equal(t, int32(2), calls.Load())
}

func TestAuthed_RefreshFailureReturnsUnauthorized(t *testing.T) {
	var calls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.MessageResponse{Message: "refresh token expired"})
	})
	mux.HandleFunc("/api/appliedJob/statistics", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(t, w, http.StatusUnauthorized, models.MessageResponse{Message: "token expired"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Statistics(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, int32(1), calls.Load(), "no retry after a failed refresh")
}

func TestAuthed_ConcurrentUnauthorizedShareOneRefresh(t *testing.T) {
	const callers = 5

	var (
		refreshes    atomic.Int32
		unauthorized atomic.Int32
	)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		refreshes.Add(1)
		// hold the refresh until every caller has been rejected once
		deadline := time.Now().Add(2 * time.Second)
		for unauthorized.Load() < callers && time.Now().Before(deadline) {
			time.Sleep(5 * time.Millisecond)
		}
		time.Sleep(50 * time.Millisecond)

		http.SetCookie(w, &http.Cookie{Name: "accessToken", Value: "fresh", Path: "/"})
		writeJSON(t, w, http.StatusOK, models.MessageResponse{Message: "token refreshed"})
	})
	mux.HandleFunc("/api/appliedJob/statistics", func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie("accessToken"); err != nil || cookie.Value != "fresh" {
			unauthorized.Add(1)
			writeJSON(t, w, http.StatusUnauthorized, models.MessageResponse{Message: "token expired"})
			return
		}
		writeJSON(t, w, http.StatusOK, models.Statistics{TotalApplications: 4})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	var wg sync.WaitGroup
	errs := make([]error, callers)
	stats := make([]models.Statistics, callers)
	for i := range callers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			stats[i], errs[i] = a.Statistics(context.Background())
		}(i)
	}
	wg.Wait()

	for i := range callers {
		require.NoError(t, errs[i])
		assert.Equal(t, 4, stats[i].TotalApplications)
	}
	assert.Equal(t, int32(1), refreshes.Load())
}

// ── IP lookup ────────────────────────────────────────────────────────────────

func TestIPifyAdapter_LookupIP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]string{"ip": "203.0.113.7"})
	}))
	defer srv.Close()

	ip, err := NewIPifyAdapter(config.Adapter{IPLookupURL: srv.URL, RequestTimeout: time.Second}).LookupIP(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "203.0.113.7", ip)
}

func TestIPifyAdapter_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("fail") != "" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		writeJSON(t, w, http.StatusOK, map[string]string{"ip": ""})
	}))
	defer srv.Close()

	_, err := NewIPifyAdapter(config.Adapter{IPLookupURL: srv.URL}).LookupIP(context.Background())
	assert.ErrorIs(t, err, ErrEmptyIPAddress)

	_, err = NewIPifyAdapter(config.Adapter{IPLookupURL: srv.URL + "?fail=1"}).LookupIP(context.Background())
	assert.ErrorIs(t, err, ErrBadGateway)
}
