// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package store

import (
	"context"
	"io"
	"time"

	"github.com/MyungJiwoo/career-log/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock -exclude_interfaces=ErrorClassificator

// UserRepository persists accounts and their session state in the "users"
// table. Counter and session mutations are single atomic statements.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// RegisterFailedLogin increments the failure counter and deactivates the
	// account once the counter reaches maxAttempts.
	RegisterFailedLogin(ctx context.Context, userID int64, maxAttempts int) (models.User, error)

	// StartSession resets the failure counter, marks the user logged in and
	// stores the refresh token with its expiry.
	StartSession(ctx context.Context, userID int64, refreshToken string, expiresAt time.Time) (models.User, error)

	UpdateIPAddress(ctx context.Context, userID int64, ipAddress string) error

	// EndSession clears the refresh token of userID only if it still equals
	// refreshToken. It reports whether a row was changed.
	EndSession(ctx context.Context, userID int64, refreshToken string) (bool, error)

	// RevokeRefreshToken clears the session of whichever user holds exactly
	// refreshToken and returns the number of affected users.
	RevokeRefreshToken(ctx context.Context, refreshToken string) (int64, error)

	// ClearExpiredSessions clears sessions whose refresh token expired before now.
	ClearExpiredSessions(ctx context.Context, now time.Time) (int64, error)

	DeleteUser(ctx context.Context, userID int64) error
}

// AppliedJobRepository persists job applications and their stages. Every
// method is scoped to authorID.
type AppliedJobRepository interface {
	// CreateAppliedJob assigns the next per-author number and inserts the job
	// together with its stages in one transaction.
	CreateAppliedJob(ctx context.Context, job models.AppliedJob) (models.AppliedJob, error)

	// ListAppliedJobs returns one page ordered newest-created first together
	// with the total number of matching jobs.
	ListAppliedJobs(ctx context.Context, filter models.AppliedJobFilter) ([]models.AppliedJob, int64, error)

	// ListAllAppliedJobs returns every job of the author.
	ListAllAppliedJobs(ctx context.Context, authorID int64) ([]models.AppliedJob, error)

	GetAppliedJob(ctx context.Context, authorID int64, jobID string) (models.AppliedJob, error)

	UpdateAppliedJob(ctx context.Context, authorID int64, jobID string, update models.AppliedJobUpdate) (models.AppliedJob, error)

	// UpdateStageStatus changes one stage status with a single scoped UPDATE
	// and bumps the job's updated_at.
	UpdateStageStatus(ctx context.Context, authorID int64, jobID, stageID string, status models.StageStatus) (models.AppliedJob, error)

	DeleteAppliedJob(ctx context.Context, authorID int64, jobID string) error
}

// BlobStorage stores attachment bytes and addresses them by public URL.
type BlobStorage interface {
	// Put stores body under key and returns its public URL.
	Put(ctx context.Context, object BlobObject) (string, error)

	// Delete removes the object addressed by url.
	Delete(ctx context.Context, url string) error

	// Key returns the object key addressed by url, or [ErrInvalidBlobURL]
	// when url was not issued by this store under its key prefix.
	Key(url string) (string, error)
}

// BlobObject is a single object written by [BlobStorage.Put].
type BlobObject struct {
	Key                string
	Body               io.Reader
	Size               int64
	ContentType        string
	ContentDisposition string
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
