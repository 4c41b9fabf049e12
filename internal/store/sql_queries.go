// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package store

import (
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MyungJiwoo/career-log/models"
)

const userColumns = `user_id, username, password_hash, is_active, is_logged_in, failed_login_attempts,
    last_login_attempt, ip_address, refresh_token, refresh_token_expires_at, created_at, updated_at`

const (
	createUser = `INSERT INTO users (username, password_hash)
    VALUES ($1, $2)
    RETURNING ` + userColumns + `;`

	findUserByUsername = `SELECT ` + userColumns + `
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE user_id = $1;`

	// the SET list reads the pre-update row, so both expressions see the old counter
	registerFailedLogin = `UPDATE users
    SET failed_login_attempts = failed_login_attempts + 1,
        is_active = is_active AND failed_login_attempts + 1 < $2,
        last_login_attempt = NOW(),
        updated_at = NOW()
    WHERE user_id = $1
    RETURNING ` + userColumns + `;`

	startSession = `UPDATE users
    SET failed_login_attempts = 0,
        is_logged_in = TRUE,
        last_login_attempt = NOW(),
        refresh_token = $2,
        refresh_token_expires_at = $3,
        updated_at = NOW()
    WHERE user_id = $1
    RETURNING ` + userColumns + `;`

	updateIPAddress = `UPDATE users
    SET ip_address = $2, updated_at = NOW()
    WHERE user_id = $1;`

	clearSessionSet = `UPDATE users
    SET refresh_token = NULL,
        refresh_token_expires_at = NULL,
        is_logged_in = FALSE,
        updated_at = NOW()`

	endSession = clearSessionSet + `
    WHERE user_id = $1 AND refresh_token = $2;`

	revokeRefreshToken = clearSessionSet + `
    WHERE refresh_token = $1;`

	clearExpiredSessions = clearSessionSet + `
    WHERE refresh_token IS NOT NULL AND refresh_token_expires_at < $1;`

	deleteUser = `DELETE FROM users WHERE user_id = $1;`

	nextJobNumber = `UPDATE users
    SET job_counter = job_counter + 1
    WHERE user_id = $1
    RETURNING job_counter;`

	insertAppliedJob = `INSERT INTO applied_jobs (
            job_id,
            author_id,
            number,
            company_name,
            position,
            applied_date,
            contents,
            progress,
            file_urls
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING created_at, updated_at;`

	deleteStagesOfJob = `DELETE FROM stages WHERE job_id = $1;`

	// a single statement: the stage is only touched when the job is owned,
	// and updated_at is bumped for exactly that job
	updateStageStatus = `WITH updated AS (
        UPDATE stages s
        SET status = $1
        FROM applied_jobs j
        WHERE s.stage_id = $2 AND s.job_id = $3 AND j.job_id = s.job_id AND j.author_id = $4
        RETURNING s.job_id
    )
    UPDATE applied_jobs
    SET updated_at = NOW()
    WHERE job_id IN (SELECT job_id FROM updated);`

	deleteAppliedJob = `DELETE FROM applied_jobs WHERE job_id = $1 AND author_id = $2;`
)

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	appliedJobColumns = []string{
		"job_id",
		"author_id",
		"number",
		"company_name",
		"position",
		"applied_date",
		"contents",
		"progress",
		"file_urls",
		"created_at",
		"updated_at",
	}

	stageColumns = []string{"stage_id", "job_id", "stage_order", "name", "status"}
)

// appliedJobsWhere is the ownership filter shared by list and count queries.
func appliedJobsWhere(filter models.AppliedJobFilter) sq.Eq {
	where := sq.Eq{"author_id": filter.AuthorID}
	if filter.Progress != "" {
		where["progress"] = string(filter.Progress)
	}
	return where
}

// buildListAppliedJobsQuery selects one page of jobs, newest first. A zero
// Limit selects every matching job.
func buildListAppliedJobsQuery(filter models.AppliedJobFilter) (string, []any, error) {
	query := psql.Select(appliedJobColumns...).
		From("applied_jobs").
		Where(appliedJobsWhere(filter)).
		OrderBy("created_at DESC", "job_id DESC")

	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
		if offset := filter.Offset(); offset > 0 {
			query = query.Offset(uint64(offset))
		}
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sql, args, nil
}

func buildCountAppliedJobsQuery(filter models.AppliedJobFilter) (string, []any, error) {
	sql, args, err := psql.Select("COUNT(*)").
		From("applied_jobs").
		Where(appliedJobsWhere(filter)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sql, args, nil
}

func buildGetAppliedJobQuery(authorID int64, jobID string) (string, []any, error) {
	sql, args, err := psql.Select(appliedJobColumns...).
		From("applied_jobs").
		Where(sq.Eq{"job_id": jobID, "author_id": authorID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sql, args, nil
}

// buildSelectStagesQuery loads the stages of all given jobs ordered by
// job and stage order.
func buildSelectStagesQuery(jobIDs []string) (string, []any, error) {
	sql, args, err := psql.Select(stageColumns...).
		From("stages").
		Where(sq.Eq{"job_id": jobIDs}).
		OrderBy("job_id", "stage_order", "stage_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sql, args, nil
}

// buildInsertStagesQuery inserts every stage of jobID in one statement.
func buildInsertStagesQuery(jobID string, stages []models.Stage) (string, []any, error) {
	if len(stages) == 0 {
		return "", nil, fmt.Errorf("%w: no stages to insert", ErrBuildingSQLQuery)
	}

	query := psql.Insert("stages").Columns(stageColumns...)
	for _, stage := range stages {
		query = query.Values(stage.StageID, jobID, stage.Order, stage.Name, string(stage.Status))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sql, args, nil
}

// buildUpdateAppliedJobQuery sets only the supplied columns and always bumps
// updated_at. Stage replacement is handled separately.
func buildUpdateAppliedJobQuery(authorID int64, jobID string, update models.AppliedJobUpdate) (string, []any, error) {
	query := psql.Update("applied_jobs").Set("updated_at", sq.Expr("NOW()"))

	if update.CompanyName != nil {
		query = query.Set("company_name", *update.CompanyName)
	}
	if update.Position != nil {
		query = query.Set("position", *update.Position)
	}
	if update.AppliedDate != nil {
		query = query.Set("applied_date", update.AppliedDate.Time)
	}
	if update.Contents != nil {
		query = query.Set("contents", *update.Contents)
	}
	if update.Progress != nil {
		query = query.Set("progress", string(*update.Progress))
	}
	if update.FileURLs != nil {
		fileURLs, err := encodeFileURLs(*update.FileURLs)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		query = query.Set("file_urls", fileURLs)
	}

	sql, args, err := query.
		Where(sq.Eq{"job_id": jobID, "author_id": authorID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sql, args, nil
}

// encodeFileURLs renders the JSONB value of file_urls; nil becomes [].
func encodeFileURLs(urls []string) (string, error) {
	if urls == nil {
		urls = []string{}
	}
	data, err := json.Marshal(urls)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeFileURLs(data []byte) ([]string, error) {
	urls := make([]string, 0)
	if len(data) == 0 {
		return urls, nil
	}
	if err := json.Unmarshal(data, &urls); err != nil {
		return nil, err
	}
	return urls, nil
}
