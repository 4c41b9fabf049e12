// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when a signup collides with the
	// unique username index.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a query expected to match one user
	// produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrAppliedJobNotFound is returned when no job with the given ID is
	// owned by the author.
	ErrAppliedJobNotFound = errors.New("applied job was not found")

	// ErrStageNotFound is returned when a stage update matches no stage of
	// the author's job.
	ErrStageNotFound = errors.New("stage was not found")

	// ErrInvalidRecord is returned when a CHECK constraint rejects a row
	// (unknown enum value, stage order below 1).
	ErrInvalidRecord = errors.New("record violates a constraint")

	// ErrBlobNotFound is returned when a blob URL does not address an object
	// of the configured backend.
	ErrBlobNotFound = errors.New("blob was not found")

	// ErrInvalidBlobURL is returned when a URL cannot be mapped to a blob key.
	ErrInvalidBlobURL = errors.New("invalid blob url")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrBlobOperation is returned when the blob backend rejects a request.
	ErrBlobOperation = errors.New("blob storage operation failed")
)
