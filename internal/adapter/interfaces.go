// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

// Package adapter provides transport-layer clients for external HTTP
// services.
//
// [ServerAdapter] is the terminal client's view of the career-log REST API.
// The HTTP implementation ([NewHTTPServerAdapter]) keeps the session cookies
// in a cookie jar and transparently refreshes an expired access token once
// per failed call. [IPLookup] resolves the public address of the server host
// and is used by the login flow.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"io"

	"github.com/MyungJiwoo/career-log/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter defines communication with the career-log API. Session
// state lives in cookies set by the server; implementations must keep them
// between calls.
type ServerAdapter interface {
	// Signup creates an account. Returns [ErrConflict] (wrapped) when the
	// username is taken.
	Signup(ctx context.Context, credentials models.Credentials) error

	// Login authenticates and stores the session cookies. A wrong password
	// is reported as *[LoginError] carrying the remaining attempts.
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Logout ends the session on the server and drops the cookies.
	Logout(ctx context.Context) error

	// Verify reports whether the current access token is still accepted.
	Verify(ctx context.Context) (models.VerifyResponse, error)

	// Refresh exchanges the refresh cookie for a new access cookie.
	Refresh(ctx context.Context) error

	// DeleteUser removes the account with userID.
	DeleteUser(ctx context.Context, userID int64) error

	// ListAppliedJobs fetches one page of the caller's applications. An
	// empty progress lists every application.
	ListAppliedJobs(ctx context.Context, progress models.Progress, page, limit int) (models.AppliedJobPage, error)

	GetAppliedJob(ctx context.Context, jobID string) (models.AppliedJob, error)
	CreateAppliedJob(ctx context.Context, request models.CreateAppliedJobRequest) (models.AppliedJob, error)
	UpdateAppliedJob(ctx context.Context, jobID string, request models.UpdateAppliedJobRequest) (models.AppliedJob, error)
	UpdateStageStatus(ctx context.Context, jobID, stageID string, status models.StageStatus) (models.AppliedJob, error)
	DeleteAppliedJob(ctx context.Context, jobID string) error

	// Statistics fetches the aggregated pass rates of the caller.
	Statistics(ctx context.Context) (models.Statistics, error)

	// UploadFile sends the content of r as an attachment named name and
	// returns its public URL.
	UploadFile(ctx context.Context, name string, r io.Reader) (string, error)
}

// IPLookup resolves the public IP address of the calling host.
type IPLookup interface {
	LookupIP(ctx context.Context) (string, error)
}
