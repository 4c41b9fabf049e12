// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package adapter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"

	"github.com/MyungJiwoo/career-log/internal/config"
	"github.com/MyungJiwoo/career-log/internal/logger"
	"github.com/MyungJiwoo/career-log/internal/utils"
	"github.com/MyungJiwoo/career-log/models"
	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/singleflight"
)

const refreshKey = "refresh"

type httpServerAdapter struct {
	client *utils.HTTPClient

	// refresh coalesces concurrent token refreshes into one request.
	refresh singleflight.Group

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises adapterCfg.ServerURL, applies the request
// timeout and attaches an empty cookie jar that holds the session cookies.
//
// Returns [ErrInvalidServerURL] (wrapped) when the URL is empty or has no
// host.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidServerURL, err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("error creating cookie jar: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	client.SetBaseURL(baseURL).SetCookieJar(jar)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Signup implements [ServerAdapter]. POST /api/auth/signup.
func (h *httpServerAdapter) Signup(ctx context.Context, credentials models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		Post("/api/auth/signup")
	if err != nil {
		return fmt.Errorf("signup request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login implements [ServerAdapter]. POST /api/auth/login; the server sets
// both token cookies which the jar keeps for subsequent calls.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapLoginError(resp); err != nil {
		return models.User{}, err
	}

	return result.User, nil
}

// Logout implements [ServerAdapter]. POST /api/auth/logout.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// Verify implements [ServerAdapter]. POST /api/auth/verify-token always
// answers 200; the verdict is in the body.
func (h *httpServerAdapter) Verify(ctx context.Context) (models.VerifyResponse, error) {
	var result models.VerifyResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Post("/api/auth/verify-token")
	if err != nil {
		return models.VerifyResponse{}, fmt.Errorf("verify request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VerifyResponse{}, err
	}

	return result, nil
}

// Refresh implements [ServerAdapter]. POST /api/auth/refresh-token.
func (h *httpServerAdapter) Refresh(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Post("/api/auth/refresh-token")
	if err != nil {
		return fmt.Errorf("refresh request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteUser implements [ServerAdapter]. DELETE /api/auth/delete/{userId}.
func (h *httpServerAdapter) DeleteUser(ctx context.Context, userID int64) error {
	resp, err := h.authed(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetPathParam("userId", strconv.FormatInt(userID, 10)).
			Delete("/api/auth/delete/{userId}")
	})
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListAppliedJobs implements [ServerAdapter]. GET /api/appliedJob.
func (h *httpServerAdapter) ListAppliedJobs(ctx context.Context, progress models.Progress, page, limit int) (models.AppliedJobPage, error) {
	var result models.AppliedJobPage

	resp, err := h.authed(ctx, func(r *resty.Request) (*resty.Response, error) {
		r.SetResult(&result).SetQueryParams(map[string]string{
			"page":  strconv.Itoa(page),
			"limit": strconv.Itoa(limit),
		})
		if progress != "" {
			r.SetQueryParam("progress", string(progress))
		}
		return r.Get("/api/appliedJob")
	})
	if err != nil {
		return models.AppliedJobPage{}, fmt.Errorf("list applied jobs request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppliedJobPage{}, err
	}

	return result, nil
}

// GetAppliedJob implements [ServerAdapter]. GET /api/appliedJob/{id}.
func (h *httpServerAdapter) GetAppliedJob(ctx context.Context, jobID string) (models.AppliedJob, error) {
	var result models.AppliedJob

	resp, err := h.authed(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetResult(&result).
			SetPathParam("id", jobID).
			Get("/api/appliedJob/{id}")
	})
	if err != nil {
		return models.AppliedJob{}, fmt.Errorf("get applied job request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppliedJob{}, err
	}

	return result, nil
}

// CreateAppliedJob implements [ServerAdapter]. POST /api/appliedJob.
func (h *httpServerAdapter) CreateAppliedJob(ctx context.Context, request models.CreateAppliedJobRequest) (models.AppliedJob, error) {
	var result models.AppliedJob

	resp, err := h.authed(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(request).SetResult(&result).Post("/api/appliedJob")
	})
	if err != nil {
		return models.AppliedJob{}, fmt.Errorf("create applied job request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppliedJob{}, err
	}

	return result, nil
}

// UpdateAppliedJob implements [ServerAdapter]. PATCH /api/appliedJob/{id}.
func (h *httpServerAdapter) UpdateAppliedJob(ctx context.Context, jobID string, request models.UpdateAppliedJobRequest) (models.AppliedJob, error) {
	var result models.AppliedJob

	resp, err := h.authed(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(request).
			SetResult(&result).
			SetPathParam("id", jobID).
			Patch("/api/appliedJob/{id}")
	})
	if err != nil {
		return models.AppliedJob{}, fmt.Errorf("update applied job request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppliedJob{}, err
	}

	return result, nil
}

// UpdateStageStatus implements [ServerAdapter].
// PATCH /api/appliedJob/{jobId}/stages/{stageId}.
func (h *httpServerAdapter) UpdateStageStatus(ctx context.Context, jobID, stageID string, status models.StageStatus) (models.AppliedJob, error) {
	var result models.AppliedJob

	resp, err := h.authed(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(models.StageStatusUpdateRequest{Status: status}).
			SetResult(&result).
			SetPathParams(map[string]string{"jobId": jobID, "stageId": stageID}).
			Patch("/api/appliedJob/{jobId}/stages/{stageId}")
	})
	if err != nil {
		return models.AppliedJob{}, fmt.Errorf("update stage status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppliedJob{}, err
	}

	return result, nil
}

// DeleteAppliedJob implements [ServerAdapter]. DELETE /api/appliedJob/{id}.
func (h *httpServerAdapter) DeleteAppliedJob(ctx context.Context, jobID string) error {
	resp, err := h.authed(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetPathParam("id", jobID).Delete("/api/appliedJob/{id}")
	})
	if err != nil {
		return fmt.Errorf("delete applied job request: %w", err)
	}

	return mapHTTPError(resp)
}

// Statistics implements [ServerAdapter]. GET /api/appliedJob/statistics.
func (h *httpServerAdapter) Statistics(ctx context.Context) (models.Statistics, error) {
	var result models.Statistics

	resp, err := h.authed(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetResult(&result).Get("/api/appliedJob/statistics")
	})
	if err != nil {
		return models.Statistics{}, fmt.Errorf("statistics request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Statistics{}, err
	}

	return result, nil
}

// UploadFile implements [ServerAdapter]. POST /api/upload/file as
// multipart/form-data; the original name travels percent-encoded so
// non-ASCII names survive intermediaries.
func (h *httpServerAdapter) UploadFile(ctx context.Context, name string, r io.Reader) (string, error) {
	// buffered so the body can be sent again after a token refresh
	content, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read upload content: %w", err)
	}

	var result models.FileUploadResponse

	resp, err := h.authed(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.SetFileReader("file", name, bytes.NewReader(content)).
			SetFormData(map[string]string{"originalName": url.PathEscape(name)}).
			SetResult(&result).
			Post("/api/upload/file")
	})
	if err != nil {
		return "", fmt.Errorf("upload file request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.FileURL, nil
}

// authed sends a request built by send and, on 401, refreshes the access
// token and sends it once more. Concurrent callers share one refresh and
// all of them retry with its outcome.
func (h *httpServerAdapter) authed(ctx context.Context, send func(*resty.Request) (*resty.Response, error)) (*resty.Response, error) {
	log := logger.FromContext(ctx)

	resp, err := send(h.client.R().SetContext(ctx))
	if err != nil || resp.StatusCode() != http.StatusUnauthorized {
		return resp, err
	}

	_, refreshErr, shared := h.refresh.Do(refreshKey, func() (any, error) {
		return nil, h.Refresh(context.WithoutCancel(ctx))
	})
	if refreshErr != nil {
		log.Debug().Err(refreshErr).Bool("shared", shared).Msg("access token refresh failed")
		return resp, nil
	}

	return send(h.client.R().SetContext(ctx))
}
