// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

// Package service holds the business rules of career-log: the session
// lifecycle, per-author application records, statistics and attachments.
//
// Services speak in the sentinels of errors.go; store and validator errors
// never leave this package unwrapped.
package service

import (
	"context"

	"github.com/MyungJiwoo/career-log/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=AppliedJobServiceWrapper

// AuthService manages accounts and the access/refresh token pair.
type AuthService interface {
	// Signup creates an account for trimmed credentials.Username.
	Signup(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Login checks the password, maintains the failure counter and issues
	// both tokens on success.
	Login(ctx context.Context, credentials models.Credentials) (models.Session, error)

	// Refresh issues a new access token for a refresh token that is valid
	// and identical to the stored one.
	Refresh(ctx context.Context, refreshToken string) (models.Token, error)

	// Logout ends the session identified by refreshToken. An empty or
	// invalid token is not an error.
	Logout(ctx context.Context, refreshToken string) error

	// Verify never fails; the outcome is in the response.
	Verify(ctx context.Context, accessToken string) models.VerifyResponse

	// ParseAccessToken validates an access token. Returns [ErrTokenExpired]
	// or [ErrTokenInvalid].
	ParseAccessToken(ctx context.Context, accessToken string) (models.Token, error)
}

// UserService manages accounts on behalf of an authenticated caller.
type UserService interface {
	DeleteUser(ctx context.Context, caller models.SessionUser, userID int64) error
}

// AppliedJobService is the CRUD surface over the caller's applications.
type AppliedJobService interface {
	CreateAppliedJob(ctx context.Context, authorID int64, request models.CreateAppliedJobRequest) (models.AppliedJob, error)
	ListAppliedJobs(ctx context.Context, authorID int64, progress string, page, limit int) (models.AppliedJobPage, error)
	GetAppliedJob(ctx context.Context, authorID int64, jobID string) (models.AppliedJob, error)
	UpdateAppliedJob(ctx context.Context, authorID int64, jobID string, request models.UpdateAppliedJobRequest) (models.AppliedJob, error)
	UpdateStageStatus(ctx context.Context, authorID int64, jobID, stageID string, request models.StageStatusUpdateRequest) (models.AppliedJob, error)
	DeleteAppliedJob(ctx context.Context, authorID int64, jobID string) error
}

// StatisticsService aggregates pass rates over the caller's applications.
type StatisticsService interface {
	Statistics(ctx context.Context, authorID int64) (models.Statistics, error)
}

// FileService stores and removes attachments.
type FileService interface {
	// Upload stores the file and returns its public URL.
	Upload(ctx context.Context, file models.FileUpload) (string, error)

	// Delete removes the blob behind fileURL.
	Delete(ctx context.Context, fileURL string) error

	// Validate reports [ErrInvalidArgument] unless fileURL addresses an
	// attachment issued by Upload.
	Validate(fileURL string) error
}

// AppliedJobServiceWrapper defines middleware composition for
// AppliedJobService. Implementations wrap an existing AppliedJobService to
// add behavior such as validating.
type AppliedJobServiceWrapper interface {
	Wrap(AppliedJobService) AppliedJobService // returns a decorated AppliedJobService applying additional behavior
}
